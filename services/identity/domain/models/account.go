package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/campus"
)

// Account is a registered student. The campus key is derived from the email
// domain exactly once, at registration; it is never recomputed or set
// independently of the email.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	Campus       campus.Key
	CreatedAt    time.Time
}

// NewAccount constructs an Account for an email whose domain already passed
// the sign-up gate. passwordHash must be a bcrypt hash, never the plaintext.
func NewAccount(email string, passwordHash []byte) (*Account, error) {
	key, err := campus.Resolve(email)
	if err != nil {
		return nil, err
	}
	return &Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Campus:       key,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
