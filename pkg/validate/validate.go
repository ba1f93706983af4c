// Package validate format-checks and sanitizes operator-entered field values
// before they reach the persistence layer.
package validate

import (
	"regexp"
	"strings"
)

// MaxInputLength caps free-text field length after sanitization.
const MaxInputLength = 500

// Compiled patterns for field validation.
var (
	// Optional leading plus, then 10 to 15 digits. Stricter than the
	// display mask: spaces and dashes are rejected at intake.
	contactPattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Contact reports whether s is a storable phone number.
func Contact(s string) bool {
	return contactPattern.MatchString(s)
}

// Email reports whether s is a conventional local@domain.tld address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Sanitize strips the characters abused by naive string-interpolated queries
// and truncates to MaxInputLength runes. Parameterized persistence calls
// remain the primary injection defense.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ';', '\'', '"', '\\':
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if runes := []rune(out); len(runes) > MaxInputLength {
		out = string(runes[:MaxInputLength])
	}
	return out
}

// BloodGroups returns the eight clinical blood groups offered at intake.
func BloodGroups() []string {
	return []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
}

// BloodGroup reports whether s is one of the clinical blood groups.
func BloodGroup(s string) bool {
	for _, g := range BloodGroups() {
		if s == g {
			return true
		}
	}
	return false
}
