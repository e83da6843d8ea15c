package auth

import (
	"context"
	"testing"

	"github.com/campusmart/campusmart/pkg/campus"
)

func TestWithUser_RoundTrip(t *testing.T) {
	ctx := WithUser(context.Background(), "bob@stanford.edu", campus.Key("stanford-edu"))

	email, ok := EmailFromContext(ctx)
	if !ok || email != "bob@stanford.edu" {
		t.Fatalf("expected email bob@stanford.edu, got %q (ok=%v)", email, ok)
	}
	key, ok := CampusFromContext(ctx)
	if !ok || key != campus.Key("stanford-edu") {
		t.Fatalf("expected campus stanford-edu, got %q (ok=%v)", key, ok)
	}
}

func TestEmailFromContext_EmptyContext(t *testing.T) {
	if _, ok := EmailFromContext(context.Background()); ok {
		t.Fatal("expected no email in empty context")
	}
	if _, ok := CampusFromContext(context.Background()); ok {
		t.Fatal("expected no campus in empty context")
	}
}

func TestWithUser_Isolation(t *testing.T) {
	ctx1 := WithUser(context.Background(), "a@iitd.ac.in", campus.Key("iitd-ac-in"))
	ctx2 := WithUser(context.Background(), "b@iitb.ac.in", campus.Key("iitb-ac-in"))

	e1, _ := EmailFromContext(ctx1)
	e2, _ := EmailFromContext(ctx2)
	if e1 == e2 {
		t.Fatal("expected different emails in isolated contexts")
	}
}
