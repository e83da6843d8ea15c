package models

import "fmt"

// Category is the fixed listing category set.
type Category string

const (
	CategoryTextbooks     Category = "Textbooks"
	CategoryNotes         Category = "Notes"
	CategoryElectronics   Category = "Electronics"
	CategoryStationery    Category = "Stationery"
	CategoryMiscellaneous Category = "Miscellaneous"
)

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryTextbooks,
		CategoryNotes,
		CategoryElectronics,
		CategoryStationery,
		CategoryMiscellaneous,
	}
}

// NewCategory validates membership in the fixed category set.
func NewCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryTextbooks, CategoryNotes, CategoryElectronics, CategoryStationery, CategoryMiscellaneous:
		return Category(s), nil
	}
	return "", fmt.Errorf("category %q is not one of the allowed values", s)
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}
