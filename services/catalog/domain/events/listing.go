package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/campus"
)

// Watermill topics published by the catalog context.
const (
	TopicListingCreated = "listing.created"
	TopicListingSold    = "listing.sold"
)

// ListingCreatedEvent is published after a new Listing is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicListingCreated).
type ListingCreatedEvent struct {
	EventID     uuid.UUID  `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int        `json:"version"`  // Schema version; increment on breaking changes
	ListingID   uuid.UUID  `json:"listing_id"`
	Campus      campus.Key `json:"campus"`
	Title       string     `json:"title"`
	Price       int64      `json:"price"`
	SellerName  string     `json:"seller_name"`
	SellerEmail string     `json:"seller_email"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

// ListingSoldEvent is published when a seller flips the sold flag.
type ListingSoldEvent struct {
	EventID     uuid.UUID  `json:"event_id"`
	Version     int        `json:"version"`
	ListingID   uuid.UUID  `json:"listing_id"`
	Campus      campus.Key `json:"campus"`
	Title       string     `json:"title"`
	SellerName  string     `json:"seller_name"`
	SellerEmail string     `json:"seller_email"`
	Sold        bool       `json:"sold"`
	OccurredAt  time.Time  `json:"occurred_at"`
}
