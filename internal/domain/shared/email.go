package shared

import "strings"

// CanonicalEmail is the stored form of an email: trimmed and lower-cased.
// Lookups and filters must apply it too, or mixed-case input misses rows.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
