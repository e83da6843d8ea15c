package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	identitydomain "github.com/campusmart/campusmart/services/identity/domain"
	"github.com/campusmart/campusmart/services/identity/domain/models"
)

// memAccountRepo is an in-memory AccountRepository for unit tests.
type memAccountRepo struct {
	accounts map[string]*models.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]*models.Account)}
}

func (r *memAccountRepo) Create(_ context.Context, a *models.Account) error {
	if _, ok := r.accounts[a.Email]; ok {
		return identitydomain.ErrEmailTaken
	}
	r.accounts[a.Email] = a
	return nil
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	a, ok := r.accounts[email]
	if !ok {
		return nil, identitydomain.ErrAccountNotFound
	}
	return a, nil
}

func TestSignUp_AllowedDomain(t *testing.T) {
	svc := NewIdentityService(newMemAccountRepo())

	account, err := svc.SignUp(context.Background(), "alice@iitd.ac.in", "s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Campus.String() != "iitd-ac-in" {
		t.Errorf("expected campus iitd-ac-in, got %s", account.Campus)
	}
	if string(account.PasswordHash) == "s3cret-pass" {
		t.Error("password stored in plaintext")
	}
}

func TestSignUp_AcademicSuffix(t *testing.T) {
	svc := NewIdentityService(newMemAccountRepo())
	if _, err := svc.SignUp(context.Background(), "bob@smallcollege.edu", "s3cret-pass"); err != nil {
		t.Fatalf("expected .edu suffix to pass the gate, got %v", err)
	}
}

func TestSignUp_DomainRejected(t *testing.T) {
	svc := NewIdentityService(newMemAccountRepo())
	_, err := svc.SignUp(context.Background(), "eve@gmail.com", "s3cret-pass")
	if !errors.Is(err, identitydomain.ErrDomainNotAllowed) {
		t.Fatalf("expected ErrDomainNotAllowed, got %v", err)
	}
}

func TestSignUp_EmailTaken(t *testing.T) {
	svc := NewIdentityService(newMemAccountRepo())
	if _, err := svc.SignUp(context.Background(), "alice@iitd.ac.in", "s3cret-pass"); err != nil {
		t.Fatalf("first sign-up failed: %v", err)
	}
	_, err := svc.SignUp(context.Background(), "alice@iitd.ac.in", "other-pass")
	if !errors.Is(err, identitydomain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignIn_Success(t *testing.T) {
	svc := NewIdentityService(newMemAccountRepo())
	if _, err := svc.SignUp(context.Background(), "alice@iitd.ac.in", "s3cret-pass"); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}

	account, err := svc.SignInWithPassword(context.Background(), "alice@iitd.ac.in", "s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Email != "alice@iitd.ac.in" {
		t.Errorf("unexpected email: %s", account.Email)
	}
}

func TestSignIn_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	svc := NewIdentityService(newMemAccountRepo())
	if _, err := svc.SignUp(context.Background(), "alice@iitd.ac.in", "s3cret-pass"); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}

	_, errWrongPass := svc.SignInWithPassword(context.Background(), "alice@iitd.ac.in", "bad-pass")
	_, errNoAccount := svc.SignInWithPassword(context.Background(), "ghost@iitd.ac.in", "s3cret-pass")

	if !errors.Is(errWrongPass, identitydomain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoAccount, identitydomain.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errNoAccount)
	}
	if errWrongPass.Error() != errNoAccount.Error() {
		t.Error("error messages differ; login leaks account existence")
	}
}

func TestSessionEvents_EmittedOnSignInAndOut(t *testing.T) {
	svc := NewIdentityService(newMemAccountRepo())

	var got []SessionEvent
	svc.OnSessionChange(func(_ context.Context, e SessionEvent) {
		got = append(got, e)
	})

	if _, err := svc.SignUp(context.Background(), "alice@iitd.ac.in", "s3cret-pass"); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if _, err := svc.SignInWithPassword(context.Background(), "alice@iitd.ac.in", "s3cret-pass"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	svc.SignOut(context.Background())

	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if !got[0].Authenticated || got[0].Email != "alice@iitd.ac.in" {
		t.Errorf("unexpected sign-up event: %+v", got[0])
	}
	if !got[1].Authenticated {
		t.Errorf("unexpected sign-in event: %+v", got[1])
	}
	if got[2].Authenticated || got[2].Email != "" {
		t.Errorf("unexpected sign-out event: %+v", got[2])
	}
}

func TestSessionEvents_NotEmittedOnFailedSignIn(t *testing.T) {
	svc := NewIdentityService(newMemAccountRepo())

	events := 0
	svc.OnSessionChange(func(_ context.Context, _ SessionEvent) { events++ })

	if _, err := svc.SignInWithPassword(context.Background(), "ghost@iitd.ac.in", "whatever"); err == nil {
		t.Fatal("expected sign-in failure")
	}
	if events != 0 {
		t.Fatalf("expected no events after failed sign-in, got %d", events)
	}
}

func TestOAuthURL(t *testing.T) {
	svc := NewIdentityService(newMemAccountRepo())

	u, err := svc.OAuthURL("google", "client-123", "https://mart.example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(u, "https://accounts.google.com/o/oauth2/v2/auth?") {
		t.Errorf("unexpected URL: %s", u)
	}
	if !strings.Contains(u, "client_id=client-123") {
		t.Errorf("missing client_id: %s", u)
	}

	if _, err := svc.OAuthURL("github", "client-123", "https://mart.example"); err == nil {
		t.Error("expected error for unsupported provider")
	}
	if _, err := svc.OAuthURL("google", "", "https://mart.example"); err == nil {
		t.Error("expected error for unconfigured provider")
	}
}
