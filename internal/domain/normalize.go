package domain

import (
	"strings"
)

// NormalizeText prepares a headword for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses interior whitespace runs into single spaces
//
// Hyphens and apostrophes are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}
