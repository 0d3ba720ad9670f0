// Package validation is the single shared input-validation module used by
// every boundary that accepts credentials or profile data.
package validation

import (
	"regexp"
	"strings"
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z '\-]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	MinNameLength     = 2
	MaxNameLength     = 50
	MinPasswordLength = 6
	MaxPasswordLength = 128
)

// Sanitize trims whitespace and strips angle brackets.
func Sanitize(input string) string {
	return strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(input), "<", ""), ">", "")
}

// ValidName reports whether name is 2-50 characters of letters, spaces,
// apostrophes, and hyphens.
func ValidName(name string) bool {
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return false
	}
	return namePattern.MatchString(name)
}

// ValidEmail reports whether email has a plausible local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword reports whether the password length is within bounds.
func ValidPassword(password string) bool {
	return len(password) >= MinPasswordLength && len(password) <= MaxPasswordLength
}
