package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/services/catalog/domain/models"
)

// ListingRepository is the persistence interface for the Listing aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Authorization for SetSold lives here, not in callers: implementations must
// only flip the flag when sellerEmail matches the stored seller, so a caller
// that skipped its own ownership check still cannot mutate someone else's
// listing.
type ListingRepository interface {
	Save(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)

	// FindByCampus retrieves the full listing set for a campus,
	// ordered newest-first by CreatedAt.
	FindByCampus(ctx context.Context, key campus.Key) ([]*models.Listing, error)

	// SetSold updates only the sold flag of the listing owned by sellerEmail.
	// Returns ErrListingNotFound when no row matches id, ErrNotSeller when the
	// row exists but belongs to a different seller.
	SetSold(ctx context.Context, id uuid.UUID, sellerEmail string, sold bool) error
}
