// Package campus derives campus identity from college email addresses.
//
// Listings are partitioned by a campus key: the email domain, lower-cased,
// with every dot replaced by a hyphen so the key is safe in storage keys and
// URLs ("alice@IITD.ac.in" → "iitd-ac-in"). The key is derived once at
// account or listing creation and never recomputed.
package campus

import (
	"errors"
	"strings"
)

// Key is a normalized, storage-safe campus identifier.
type Key string

// ErrInvalidEmail indicates the input is not a plain user@domain address.
// Callers must treat this as "unauthenticated", never as a fatal condition.
var ErrInvalidEmail = errors.New("invalid email address")

// Resolve derives the campus key from a raw email address.
// The address must contain exactly one "@"; everything after it is the domain.
// Only raw emails are valid input — passing an already-normalized key is not
// supported.
func Resolve(email string) (Key, error) {
	at := strings.Count(email, "@")
	if at != 1 {
		return "", ErrInvalidEmail
	}
	domain := email[strings.Index(email, "@")+1:]
	if domain == "" {
		return "", ErrInvalidEmail
	}
	return Key(strings.ReplaceAll(strings.ToLower(domain), ".", "-")), nil
}

// Domain extracts the raw, lower-cased domain from an email address without
// key normalization. Used for the sign-up gate and display lookups.
func Domain(email string) (string, error) {
	if strings.Count(email, "@") != 1 {
		return "", ErrInvalidEmail
	}
	d := strings.ToLower(email[strings.Index(email, "@")+1:])
	if d == "" {
		return "", ErrInvalidEmail
	}
	return d, nil
}

// String returns the key as a plain string.
func (k Key) String() string {
	return string(k)
}

// FormatDisplay renders a domain (or campus key) for humans: the first DNS
// label, upper-cased, with hyphens turned into spaces
// ("iit-delhi.ac.in" → "IIT DELHI").
func FormatDisplay(domain string) string {
	label, _, _ := strings.Cut(domain, ".")
	return strings.ReplaceAll(strings.ToUpper(label), "-", " ")
}

// institutionNames maps known institutional domains to display names.
// Plain lookup table; unknown domains fall back to FormatDisplay.
var institutionNames = map[string]string{
	"iitd.ac.in":         "IIT Delhi",
	"student.iitd.ac.in": "IIT Delhi",
	"iitb.ac.in":         "IIT Bombay",
	"iitk.ac.in":         "IIT Kanpur",
	"iitm.ac.in":         "IIT Madras",
	"iitr.ac.in":         "IIT Roorkee",
	"dtu.ac.in":          "Delhi Technological University",
	"nsit.ac.in":         "NSIT Delhi",
	"bits-pilani.ac.in":  "BITS Pilani",
	"vit.ac.in":          "VIT Vellore",
	"manipal.edu":        "Manipal Academy of Higher Education",
	"srm.ap.edu":         "SRM University AP",
}

// FullName returns the human-readable institution name for a raw domain,
// falling back to FormatDisplay when the domain is unrecognized.
func FullName(domain string) string {
	if name, ok := institutionNames[strings.ToLower(domain)]; ok {
		return name
	}
	return FormatDisplay(domain)
}

// Allowed reports whether an email domain may register: it must be a known
// institutional domain or carry a generic academic suffix (.edu or .ac.in).
func Allowed(domain string) bool {
	d := strings.ToLower(domain)
	if _, ok := institutionNames[d]; ok {
		return true
	}
	return strings.HasSuffix(d, ".edu") || strings.HasSuffix(d, ".ac.in")
}
