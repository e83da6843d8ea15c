package repositories

import (
	"context"

	"github.com/campusmart/campusmart/services/identity/domain/models"
)

// AccountRepository is the persistence interface for the Account aggregate.
// The domain layer owns this interface; infrastructure implements it.
type AccountRepository interface {
	// Create persists a new account. Returns ErrEmailTaken when the email
	// already has an account.
	Create(ctx context.Context, account *models.Account) error

	// GetByEmail returns the account for email or ErrAccountNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
