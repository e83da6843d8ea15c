package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/campus"
)

// PlaceholderImage is used when a draft supplies no image reference.
const PlaceholderImage = "/placeholder.svg"

// Listing is the core aggregate for the catalog bounded context.
// Campus is the privacy boundary — every query must filter by it.
// After creation only Sold may change, and only by the owning seller.
type Listing struct {
	ID          uuid.UUID
	Campus      campus.Key // derived once from the seller's email, immutable
	Title       string
	Description string
	Price       int64 // whole rupees; non-negative
	Category    Category
	Condition   Condition
	SellerName  string
	SellerEmail string
	Contact     Contact
	ImageRef    string
	Sold        bool
	CreatedAt   time.Time
}

// NewListing constructs a valid Listing with generated ID and current timestamp.
// The campus key is resolved from sellerEmail here and never recomputed.
func NewListing(
	sellerEmail string,
	title, description string,
	price int64,
	category Category,
	condition Condition,
	sellerName string,
	contact Contact,
	imageRef string,
) (*Listing, error) {
	key, err := campus.Resolve(sellerEmail)
	if err != nil {
		return nil, err
	}
	if imageRef == "" {
		imageRef = PlaceholderImage
	}
	return &Listing{
		ID:          uuid.New(),
		Campus:      key,
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		Condition:   condition,
		SellerName:  sellerName,
		SellerEmail: sellerEmail,
		Contact:     contact,
		ImageRef:    imageRef,
		Sold:        false,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// OwnedBy reports whether email is the listing's seller. This is the UI-level
// authorization check; the persistence layer enforces it independently.
func (l *Listing) OwnedBy(email string) bool {
	return l.SellerEmail == email
}

// Age renders the listing's age for display ("3 days ago", "2 weeks ago").
func (l *Listing) Age(now time.Time) string {
	days := int(now.Sub(l.CreatedAt).Hours() / 24)
	switch {
	case days <= 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
