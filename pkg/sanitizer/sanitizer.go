package sanitizer

import (
	"regexp"
	"strings"
)

var dotRegex = regexp.MustCompile(`\.{2,}`)

// NormalizeEmail lowercases and trims an email address so lookups and
// uniqueness checks are case-insensitive. Consecutive dots in the local part
// are consolidated since they cause delivery failures with some providers.
// Strings that are not shaped like an email address are returned trimmed and
// lowercased but otherwise untouched.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// MaskEmail hides the local part of an address for log output while keeping
// the domain recognizable: "john@example.com" becomes "j***@example.com".
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	if len(local) == 0 {
		return email
	}
	if len(local) == 1 {
		return "*@" + domain
	}

	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
}

// TrimName collapses inner whitespace runs and trims a person name field.
func TrimName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
