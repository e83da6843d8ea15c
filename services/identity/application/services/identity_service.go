package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusmart/campusmart/pkg/campus"
	identitydomain "github.com/campusmart/campusmart/services/identity/domain"
	"github.com/campusmart/campusmart/services/identity/domain/models"
	"github.com/campusmart/campusmart/services/identity/domain/repositories"
)

// SessionEvent notifies listeners that a user signed in or out.
// Email is empty for sign-out events.
type SessionEvent struct {
	Email         string
	Authenticated bool
}

// IdentityService handles registration, credential checks, and session
// change notification. Registered listeners (the per-campus feed loader)
// receive a SessionEvent after every successful sign-in or sign-out.
type IdentityService struct {
	repo repositories.AccountRepository

	mu        sync.Mutex
	listeners []func(context.Context, SessionEvent)
}

// NewIdentityService returns an IdentityService wired with the given repository.
func NewIdentityService(repo repositories.AccountRepository) *IdentityService {
	return &IdentityService{repo: repo}
}

// OnSessionChange registers a listener for sign-in/sign-out events.
// Listeners run synchronously in registration order.
func (s *IdentityService) OnSessionChange(fn func(context.Context, SessionEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *IdentityService) emit(ctx context.Context, e SessionEvent) {
	s.mu.Lock()
	listeners := make([]func(context.Context, SessionEvent), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(ctx, e)
	}
}

// SignUp registers a new account. The email domain must belong to a known
// institution or carry an academic suffix; the gate runs before any
// credential work or database access.
func (s *IdentityService) SignUp(ctx context.Context, email, password string) (*models.Account, error) {
	email = strings.TrimSpace(email)

	domain, err := campus.Domain(email)
	if err != nil {
		return nil, err
	}
	if !campus.Allowed(domain) {
		return nil, identitydomain.ErrDomainNotAllowed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account, err := models.NewAccount(email, hash)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.emit(ctx, SessionEvent{Email: account.Email, Authenticated: true})
	return account, nil
}

// SignInWithPassword checks the credential pair. Unknown emails and wrong
// passwords both return ErrInvalidCredentials so sign-in never reveals
// whether an account exists.
func (s *IdentityService) SignInWithPassword(ctx context.Context, email, password string) (*models.Account, error) {
	email = strings.TrimSpace(email)

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identitydomain.ErrAccountNotFound) {
			return nil, identitydomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return nil, identitydomain.ErrInvalidCredentials
	}

	s.emit(ctx, SessionEvent{Email: account.Email, Authenticated: true})
	return account, nil
}

// SignOut emits the sign-out event. Cookie teardown is the handler's job.
func (s *IdentityService) SignOut(ctx context.Context) {
	s.emit(ctx, SessionEvent{Authenticated: false})
}

// OAuthURL builds the provider's redirect URL for browser-based sign-in.
// Only "google" is supported.
func (s *IdentityService) OAuthURL(provider, clientID, redirectBase string) (string, error) {
	if provider != "google" {
		return "", fmt.Errorf("unsupported oauth provider %q", provider)
	}
	if clientID == "" {
		return "", fmt.Errorf("oauth provider %q is not configured", provider)
	}
	q := url.Values{}
	q.Set("client_id", clientID)
	q.Set("redirect_uri", redirectBase+"/api/auth/oauth/google/callback")
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	u := url.URL{
		Scheme:   "https",
		Host:     "accounts.google.com",
		Path:     "/o/oauth2/v2/auth",
		RawQuery: q.Encode(),
	}
	return u.String(), nil
}
