// Package cache persists downloaded sign videos on disk. The directory is
// the index: membership, sizing, and clearing are all derived from the
// deterministic filename layout, with no manifest file.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/jonesrussell/gosign/internal/domain"
)

// hashWidth is the number of hex characters of the URL hash kept in cache
// filenames. Eight characters keeps filenames short at the cost of a real,
// accepted collision risk at large cache sizes; widening it would orphan
// every existing cache entry.
const hashWidth = 8

// Ext is the extension of every cache file.
const Ext = ".mp4"

// Key maps a (word, video URL) pair to its cache filename:
// {file_word}_{8 hex chars of sha256(url)}.mp4. The mapping is stable across
// process runs, and distinct URLs for the same word get distinct names.
func Key(word, videoURL string) string {
	sum := sha256.Sum256([]byte(videoURL))
	return domain.FileWord(word) + "_" + hex.EncodeToString(sum[:])[:hashWidth] + Ext
}

// Prefix returns the filename prefix shared by all cache entries for a word.
func Prefix(word string) string {
	return domain.FileWord(word) + "_"
}
