package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/pkg/database"
	"github.com/campusmart/campusmart/pkg/events"
	catalogdomain "github.com/campusmart/campusmart/services/catalog/domain"
	domainevents "github.com/campusmart/campusmart/services/catalog/domain/events"
	"github.com/campusmart/campusmart/services/catalog/domain/models"
)

const listingColumns = `id, campus, title, description, price, category, condition,
	seller_name, seller_email, contact, image_ref, sold, created_at`

// ListingRepository implements repositories.ListingRepository against PostgreSQL.
// Domain events are published through the Watermill outbox in the same
// transaction as the row change, so no event is emitted for a failed write.
type ListingRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewListingRepository returns a ListingRepository backed by the given connection
// pool and event bus.
func NewListingRepository(database *database.Database, bus *events.EventBus) *ListingRepository {
	return &ListingRepository{db: database, bus: bus}
}

// Save persists a new Listing and publishes a ListingCreatedEvent within the same transaction.
func (r *ListingRepository) Save(ctx context.Context, l *models.Listing) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO listings (`+listingColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			l.ID, string(l.Campus), l.Title, l.Description, l.Price,
			string(l.Category), string(l.Condition),
			l.SellerName, l.SellerEmail, l.Contact.String(), l.ImageRef,
			l.Sold, l.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert listing: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, l); err != nil {
				return fmt.Errorf("publish listing created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Listing by ID. Returns ErrListingNotFound if not found.
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE id = $1`, id)

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrListingNotFound
		}
		return nil, fmt.Errorf("query listing: %w", err)
	}
	return l, nil
}

// FindByCampus retrieves all listings for a campus, newest first.
func (r *ListingRepository) FindByCampus(ctx context.Context, key campus.Key) ([]*models.Listing, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE campus = $1
		ORDER BY created_at DESC`, string(key))
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var listings []*models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return listings, nil
}

// SetSold flips the sold flag on the listing owned by sellerEmail and publishes
// a ListingSoldEvent in the same transaction.
//
// Ownership is enforced by the WHERE clause, not by the caller: the UPDATE only
// matches when seller_email equals the authenticated seller, so a forged request
// for someone else's listing changes zero rows.
func (r *ListingRepository) SetSold(ctx context.Context, id uuid.UUID, sellerEmail string, sold bool) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE listings
			SET sold = $1
			WHERE id = $2 AND seller_email = $3
			RETURNING campus, title, seller_name`,
			sold, id, sellerEmail)

		var (
			campusKey  string
			title      string
			sellerName string
		)
		if err := row.Scan(&campusKey, &title, &sellerName); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return r.classifySoldFailure(ctx, tx, id)
			}
			return fmt.Errorf("update sold flag: %w", err)
		}

		if r.bus != nil {
			event := domainevents.ListingSoldEvent{
				EventID:     uuid.New(),
				Version:     1,
				ListingID:   id,
				Campus:      campus.Key(campusKey),
				Title:       title,
				SellerName:  sellerName,
				SellerEmail: sellerEmail,
				Sold:        sold,
				OccurredAt:  time.Now().UTC(),
			}
			if err := r.publishEvent(tx, domainevents.TopicListingSold, event.EventID, event); err != nil {
				return fmt.Errorf("publish listing sold: %w", err)
			}
		}
		return nil
	})
}

// classifySoldFailure distinguishes "no such listing" from "not your listing"
// after a zero-row UPDATE.
func (r *ListingRepository) classifySoldFailure(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM listings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check listing exists: %w", err)
	}
	if !exists {
		return catalogdomain.ErrListingNotFound
	}
	return catalogdomain.ErrNotSeller
}

func (r *ListingRepository) publishCreated(tx *sql.Tx, l *models.Listing) error {
	event := domainevents.ListingCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ListingID:   l.ID,
		Campus:      l.Campus,
		Title:       l.Title,
		Price:       l.Price,
		SellerName:  l.SellerName,
		SellerEmail: l.SellerEmail,
		OccurredAt:  l.CreatedAt,
	}
	return r.publishEvent(tx, domainevents.TopicListingCreated, event.EventID, event)
}

func (r *ListingRepository) publishEvent(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// scanner abstracts *sql.Row and *sql.Rows for scanListing.
type scanner interface {
	Scan(dest ...any) error
}

func scanListing(s scanner) (*models.Listing, error) {
	var (
		l         models.Listing
		campusKey string
		category  string
		condition string
		contact   string
	)
	err := s.Scan(
		&l.ID, &campusKey, &l.Title, &l.Description, &l.Price,
		&category, &condition,
		&l.SellerName, &l.SellerEmail, &contact, &l.ImageRef,
		&l.Sold, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Campus = campus.Key(campusKey)
	l.Category = models.Category(category)
	l.Condition = models.Condition(condition)
	l.Contact = models.Contact(contact)
	return &l, nil
}
