package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/campus"
	catalogdomain "github.com/campusmart/campusmart/services/catalog/domain"
	"github.com/campusmart/campusmart/services/catalog/domain/models"
	"github.com/campusmart/campusmart/services/catalog/domain/repositories"
	domainsvcs "github.com/campusmart/campusmart/services/catalog/domain/services"
)

// CatalogService orchestrates the per-campus listing feed.
// Event publishing is handled by the repository layer (outbox pattern).
// Each campus gets its own Store snapshot, loaded lazily on first read.
type CatalogService struct {
	repo repositories.ListingRepository

	mu     sync.Mutex
	stores map[campus.Key]*Store
}

// NewCatalogService returns a CatalogService wired with the given repository.
func NewCatalogService(repo repositories.ListingRepository) *CatalogService {
	return &CatalogService{
		repo:   repo,
		stores: make(map[campus.Key]*Store),
	}
}

// repoFetcher adapts ListingRepository to the Store's Fetcher interface.
type repoFetcher struct {
	repo repositories.ListingRepository
}

func (f repoFetcher) FetchByCampus(ctx context.Context, key campus.Key) ([]*models.Listing, error) {
	return f.repo.FindByCampus(ctx, key)
}

// StoreFor returns the snapshot store for the campus, creating it on first use.
func (s *CatalogService) StoreFor(key campus.Key) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stores[key]
	if !ok {
		st = NewStore(key, repoFetcher{repo: s.repo})
		s.stores[key] = st
	}
	return st
}

// Feed returns the viewer's campus listings after applying the filter config.
// The snapshot is loaded on first access; later reads serve from memory.
// Filtering never mutates the snapshot, so a relaxed filter restores the
// full campus feed.
func (s *CatalogService) Feed(ctx context.Context, viewer campus.Key, cfg domainsvcs.FilterConfig) ([]*models.Listing, error) {
	st := s.StoreFor(viewer)
	listings, loaded := st.Snapshot()
	if !loaded {
		if err := st.Load(ctx); err != nil {
			return nil, fmt.Errorf("load campus feed: %w", err)
		}
		listings, _ = st.Snapshot()
	}
	return domainsvcs.Filter(listings, viewer, cfg), nil
}

// Refresh forces a refetch of the campus snapshot from Postgres.
func (s *CatalogService) Refresh(ctx context.Context, key campus.Key) error {
	if err := s.StoreFor(key).Load(ctx); err != nil {
		return fmt.Errorf("refresh campus feed: %w", err)
	}
	return nil
}

// Clear drops the campus snapshot, e.g. when the last session for it ends.
func (s *CatalogService) Clear(key campus.Key) {
	s.StoreFor(key).Clear()
}

// Post validates the draft and persists a new listing for the seller.
// Nothing touches the database until every draft field passes. The repository
// publishes ListingCreatedEvent in the same transaction as the insert.
func (s *CatalogService) Post(ctx context.Context, sellerEmail string, d Draft) (*models.Listing, error) {
	if err := ValidateDraft(d); err != nil {
		return nil, err
	}

	// Enum and contact constructors cannot fail here; ValidateDraft already ran them.
	category, _ := models.NewCategory(d.Category)
	condition, _ := models.NewCondition(d.Condition)
	contact, _ := models.NewContact(d.Contact)

	listing, err := models.NewListing(
		sellerEmail,
		d.Title, d.Description,
		d.Price,
		category, condition,
		d.SellerName,
		contact,
		d.ImageRef,
	)
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	if err := s.repo.Save(ctx, listing); err != nil {
		return nil, fmt.Errorf("save listing: %w", err)
	}

	s.StoreFor(listing.Campus).Prepend(listing)
	return listing, nil
}

// SetSold flips the sold flag. Ownership is enforced by the repository's
// WHERE clause; this method only propagates the result into the snapshot.
func (s *CatalogService) SetSold(ctx context.Context, id uuid.UUID, sellerEmail string, sold bool) error {
	if err := s.repo.SetSold(ctx, id, sellerEmail, sold); err != nil {
		return err
	}
	if key, err := campus.Resolve(sellerEmail); err == nil {
		s.StoreFor(key).MarkSold(id, sold)
	}
	return nil
}

// ContactLink returns the WhatsApp deep link for a listing's seller.
// Sold listings and the seller's own listings have no contact option.
func (s *CatalogService) ContactLink(ctx context.Context, id uuid.UUID, viewerEmail string, viewer campus.Key) (string, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get listing: %w", err)
	}
	if listing.Campus != viewer {
		return "", catalogdomain.ErrListingNotFound // other campuses' listings do not exist for this viewer
	}
	if listing.Sold || listing.OwnedBy(viewerEmail) {
		return "", catalogdomain.ErrListingNotFound
	}
	return domainsvcs.ContactLink(listing), nil
}
