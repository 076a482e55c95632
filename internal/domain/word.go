// Package domain provides domain models used across the application.
package domain

import "strings"

// Normalize converts a user-supplied word into its canonical lookup form:
// lower-cased, trimmed, with internal spaces replaced by hyphens. The result
// is the form used in source URLs and lookup keys. Normalize is idempotent.
func Normalize(word string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(word)), " ", "-")
}

// FileWord converts a word into the filename-safe form used as the word
// portion of cache filenames: lower-cased, trimmed, with both spaces and
// hyphens folded to underscores. Two words that normalize identically share
// the same cache prefix.
func FileWord(word string) string {
	w := strings.TrimSpace(strings.ToLower(word))
	w = strings.ReplaceAll(w, " ", "_")
	return strings.ReplaceAll(w, "-", "_")
}
