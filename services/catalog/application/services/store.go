package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/services/catalog/domain/models"
)

// Fetcher loads the full set of listings for one campus, newest first.
type Fetcher interface {
	FetchByCampus(ctx context.Context, key campus.Key) ([]*models.Listing, error)
}

// Store holds the in-memory listing snapshot for a single campus.
//
// Concurrent loads are serialized by a generation counter: each Load call
// bumps the generation before fetching, and a fetch that completes after a
// newer Load (or a Clear) started is discarded. A failed fetch leaves the
// previous snapshot in place.
type Store struct {
	campus campus.Key
	fetch  Fetcher

	mu       sync.Mutex
	gen      uint64
	listings []*models.Listing
	loaded   bool
}

// NewStore returns an empty Store scoped to the given campus.
func NewStore(key campus.Key, fetch Fetcher) *Store {
	return &Store{campus: key, fetch: fetch}
}

// Campus returns the campus this store is scoped to.
func (s *Store) Campus() campus.Key {
	return s.campus
}

// Load fetches the campus listings and replaces the snapshot.
// If another Load or Clear starts while the fetch is in flight, the stale
// result is dropped. On fetch error the previous snapshot is kept.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	listings, err := s.fetch.FetchByCampus(ctx, s.campus)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil // a newer load or clear superseded this fetch
	}
	s.listings = listings
	s.loaded = true
	return nil
}

// Clear drops the snapshot and invalidates any in-flight load.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.listings = nil
	s.loaded = false
}

// Snapshot returns a copy of the current listings and whether a load has
// completed since the last Clear.
func (s *Store) Snapshot() ([]*models.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Listing, len(s.listings))
	copy(out, s.listings)
	return out, s.loaded
}

// Prepend places a freshly created listing at the head of the snapshot, so
// the seller sees their post immediately without a refetch.
func (s *Store) Prepend(l *models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return
	}
	s.listings = append([]*models.Listing{l}, s.listings...)
}

// MarkSold flips the sold flag on the snapshot entry with the given ID.
func (s *Store) MarkSold(id uuid.UUID, sold bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listings {
		if l.ID == id {
			updated := *l
			updated.Sold = sold
			s.listings[i] = &updated
			return
		}
	}
}
