package utils

import "strings"

// Slugify derives a URL-safe identifier from a display name: the name is
// lowercased and every run of whitespace collapses to a single hyphen.
// The derivation is deterministic and idempotent, so a product keeps the
// same slug across edits as long as its name does not change.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
