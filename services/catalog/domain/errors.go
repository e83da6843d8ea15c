package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrListingNotFound indicates the requested listing does not exist.
	ErrListingNotFound = errors.New("listing not found")

	// ErrInvalidDraft indicates a listing draft failed local validation.
	// No persistence call is made when this is returned.
	ErrInvalidDraft = errors.New("invalid listing draft")

	// ErrInvalidCategory indicates a category outside the fixed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidCondition indicates a condition outside the fixed set.
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrInvalidContact indicates a seller contact that is not a valid
	// international phone number.
	ErrInvalidContact = errors.New("invalid contact number")

	// ErrNotSeller indicates the caller does not own the listing.
	ErrNotSeller = errors.New("caller is not the listing seller")
)
