package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrListingNotFound.Error() != "listing not found" {
		t.Fatalf("unexpected message: %q", ErrListingNotFound.Error())
	}
	if ErrInvalidDraft.Error() != "invalid listing draft" {
		t.Fatalf("unexpected message: %q", ErrInvalidDraft.Error())
	}
	if ErrNotSeller.Error() != "caller is not the listing seller" {
		t.Fatalf("unexpected message: %q", ErrNotSeller.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("load campus catalog: %w", ErrListingNotFound)
	if !errors.Is(wrapped, ErrListingNotFound) {
		t.Fatal("errors.Is must match wrapped ErrListingNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidDraft, errors.New("price must be non-negative"))
	if !errors.Is(wrapped2, ErrInvalidDraft) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidDraft")
	}
}
