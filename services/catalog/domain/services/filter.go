// Package services contains stateless domain services for the catalog bounded
// context. They operate purely on domain types and have zero external
// dependencies beyond stdlib and the domain layer.
package services

import (
	"strings"

	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/services/catalog/domain/models"
)

// FilterAll is the neutral value for category and price bucket filters.
const FilterAll = "All"

// Price bucket names, fixed. Boundary prices (500, 2000, 10000) fall into
// both adjacent buckets; this overlap is observed behavior and kept.
const (
	BucketUnder500    = "Under ₹500"
	Bucket500To2000   = "₹500-₹2000"
	Bucket2000To10000 = "₹2000-₹10000"
	BucketAbove10000  = "Above ₹10000"
)

// PriceBuckets lists the bucket names in display order.
func PriceBuckets() []string {
	return []string{BucketUnder500, Bucket500To2000, Bucket2000To10000, BucketAbove10000}
}

// FilterConfig selects the visible subset of a campus catalog.
// Zero value (empty search, "" treated as All) selects everything.
type FilterConfig struct {
	SearchText  string
	Category    string // FilterAll or a models.Category value
	PriceBucket string // FilterAll or a price bucket name
}

// Filter returns the listings visible to a viewer on the given campus.
// All steps are conjunctive and order-independent:
//
//  1. campus equality — the privacy boundary; listings from other campuses
//     never appear regardless of the other settings
//  2. case-insensitive substring match on title or description
//  3. exact category match unless Category is All
//  4. price bucket membership unless PriceBucket is All
//
// The input order is preserved (stable); the input slice is not modified.
// Pure function — safe to call on every filter change.
func Filter(listings []*models.Listing, viewerCampus campus.Key, cfg FilterConfig) []*models.Listing {
	search := strings.ToLower(strings.TrimSpace(cfg.SearchText))

	out := make([]*models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Campus != viewerCampus {
			continue
		}
		if search != "" && !matchesSearch(l, search) {
			continue
		}
		if cfg.Category != "" && cfg.Category != FilterAll && l.Category.String() != cfg.Category {
			continue
		}
		if cfg.PriceBucket != "" && cfg.PriceBucket != FilterAll && !InBucket(l.Price, cfg.PriceBucket) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesSearch(l *models.Listing, loweredSearch string) bool {
	return strings.Contains(strings.ToLower(l.Title), loweredSearch) ||
		strings.Contains(strings.ToLower(l.Description), loweredSearch)
}

// InBucket reports whether price falls in the named bucket. Mid buckets are
// inclusive on both ends, so a price exactly on a shared boundary belongs to
// both neighbors. Unknown bucket names match everything, mirroring the
// neutral default.
func InBucket(price int64, bucket string) bool {
	switch bucket {
	case BucketUnder500:
		return price < 500
	case Bucket500To2000:
		return price >= 500 && price <= 2000
	case Bucket2000To10000:
		return price >= 2000 && price <= 10000
	case BucketAbove10000:
		return price > 10000
	default:
		return true
	}
}
