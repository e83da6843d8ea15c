package domain

import "errors"

// Sentinel errors for the identity domain. Use errors.Is() to check these.
var (
	// ErrInvalidCredentials indicates a wrong email/password pair.
	// Account-not-found is folded into this so login never leaks existence.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDomainNotAllowed indicates a sign-up email outside the known
	// institution list and the generic academic suffixes. Rejected locally,
	// before any credential work.
	ErrDomainNotAllowed = errors.New("email domain is not a recognized college domain")

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrAccountNotFound indicates no account exists for the email.
	ErrAccountNotFound = errors.New("account not found")
)
