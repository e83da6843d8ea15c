package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Contact is a value object for a WhatsApp-reachable phone number.
// Valid form after whitespace stripping: optional leading "+", then a full
// international number — first digit 1–9, 7 to 15 digits in total. Short
// local numbers without a country code are rejected.
type Contact string

var contactPattern = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

// NewContact strips whitespace and validates the international phone pattern.
func NewContact(s string) (Contact, error) {
	cleaned := strings.Join(strings.Fields(s), "")
	if !contactPattern.MatchString(cleaned) {
		return "", fmt.Errorf("contact %q is not a valid international phone number", s)
	}
	return Contact(cleaned), nil
}

// String returns the underlying string value.
func (c Contact) String() string {
	return string(c)
}

// Digits returns the number with the leading "+" removed, as required by
// wa.me deep links.
func (c Contact) Digits() string {
	return strings.TrimPrefix(string(c), "+")
}
