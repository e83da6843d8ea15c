package services

import (
	"fmt"
	"strings"

	catalogdomain "github.com/campusmart/campusmart/services/catalog/domain"
	"github.com/campusmart/campusmart/services/catalog/domain/models"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
	maxSellerNameLen  = 100
)

// Draft holds the seller's proposed listing before any persistence happens.
// All checks run against the draft; nothing is saved unless every field passes.
type Draft struct {
	Title       string
	Description string
	Price       int64
	Category    string
	Condition   string
	SellerName  string
	Contact     string
	ImageRef    string
}

// DraftError reports every failing draft field at once, keyed by field name.
// It unwraps to ErrInvalidDraft so callers can errors.Is against the sentinel.
type DraftError struct {
	Fields map[string]string
}

func (e *DraftError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return fmt.Sprintf("invalid draft: %s", strings.Join(keys, ", "))
}

func (e *DraftError) Unwrap() error {
	return catalogdomain.ErrInvalidDraft
}

// ValidateDraft checks every draft field and collects all failures.
// Returns nil when the draft is publishable.
func ValidateDraft(d Draft) error {
	fields := make(map[string]string)

	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = "Title is required"
	} else if len(d.Title) > maxTitleLen {
		fields["title"] = fmt.Sprintf("Title must be at most %d characters", maxTitleLen)
	}

	if strings.TrimSpace(d.Description) == "" {
		fields["description"] = "Description is required"
	} else if len(d.Description) > maxDescriptionLen {
		fields["description"] = fmt.Sprintf("Description must be at most %d characters", maxDescriptionLen)
	}

	// Zero is a valid price: free items are allowed.
	if d.Price < 0 {
		fields["price"] = "Price must not be negative"
	}

	if _, err := models.NewCategory(d.Category); err != nil {
		fields["category"] = "Unknown category"
	}

	if _, err := models.NewCondition(d.Condition); err != nil {
		fields["condition"] = "Unknown condition"
	}

	if strings.TrimSpace(d.SellerName) == "" {
		fields["seller_name"] = "Seller name is required"
	} else if len(d.SellerName) > maxSellerNameLen {
		fields["seller_name"] = fmt.Sprintf("Seller name must be at most %d characters", maxSellerNameLen)
	}

	if _, err := models.NewContact(d.Contact); err != nil {
		fields["contact"] = "Must be a WhatsApp-dialable phone number"
	}

	if len(fields) > 0 {
		return &DraftError{Fields: fields}
	}
	return nil
}
