package services

import (
	"context"
	"sync"

	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/pkg/logger"
)

// FeedLoader is implemented by the catalog service: it loads a campus feed
// snapshot on sign-in and drops it on sign-out.
type FeedLoader interface {
	Refresh(ctx context.Context, key campus.Key) error
	Clear(key campus.Key)
}

// SessionState tracks the signed-in user and drives the feed loader.
//
// Two states exist: unauthenticated (no email, no campus) and authenticated
// (email plus the campus derived from it). Every transition into the
// authenticated state triggers a feed load for the new campus; every
// transition out clears that campus's snapshot. An unparsable email leaves
// the state unauthenticated.
type SessionState struct {
	loader FeedLoader
	log    logger.Logger

	mu     sync.Mutex
	email  string
	campus campus.Key
}

// NewSessionState returns a SessionState in the unauthenticated state.
func NewSessionState(loader FeedLoader, log logger.Logger) *SessionState {
	return &SessionState{loader: loader, log: log}
}

// Apply processes a session event. Safe for concurrent use; wire it to
// IdentityService.OnSessionChange.
func (s *SessionState) Apply(ctx context.Context, e SessionEvent) {
	if e.Authenticated {
		s.signIn(ctx, e.Email)
	} else {
		s.signOut()
	}
}

func (s *SessionState) signIn(ctx context.Context, email string) {
	key, err := campus.Resolve(email)
	if err != nil {
		s.log.WarnContext(ctx, "session: unresolvable email on sign-in", "error", err)
		s.signOut()
		return
	}

	s.mu.Lock()
	prev := s.campus
	hadPrev := s.email != ""
	s.email = email
	s.campus = key
	s.mu.Unlock()

	// Switching accounts across campuses drops the old snapshot first.
	if hadPrev && prev != key {
		s.loader.Clear(prev)
	}

	if err := s.loader.Refresh(ctx, key); err != nil {
		// Sign-in still succeeds; the feed retries on next read.
		s.log.WarnContext(ctx, "session: feed load failed on sign-in", "campus", key, "error", err)
	}
}

func (s *SessionState) signOut() {
	s.mu.Lock()
	key := s.campus
	had := s.email != ""
	s.email = ""
	s.campus = ""
	s.mu.Unlock()

	if had {
		s.loader.Clear(key)
	}
}

// Current returns the signed-in email and campus, or ok=false when
// unauthenticated.
func (s *SessionState) Current() (email string, key campus.Key, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email, s.campus, s.email != ""
}
