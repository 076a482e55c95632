package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonesrussell/gosign/internal/logger"
	"github.com/jonesrussell/gosign/internal/metrics"
)

// Store enumerates, sizes, and purges cached video files. It scans the cache
// directory on every call; there is no manifest to drift out of sync.
type Store struct {
	log     logger.Interface
	metrics *metrics.Metrics
	dir     string
}

// NewStore creates a store over the given cache directory.
func NewStore(dir string, log logger.Interface, m *metrics.Metrics) *Store {
	return &Store{
		log:     log,
		metrics: m,
		dir:     dir,
	}
}

// Dir returns the cache root directory.
func (s *Store) Dir() string {
	return s.dir
}

// List returns the paths of cached video files, sorted by filename. With a
// non-empty word it returns only that word's entries.
func (s *Store) List(word string) ([]string, error) {
	pattern := "*" + Ext
	if word != "" {
		pattern = Prefix(word) + pattern
	}

	paths, err := filepath.Glob(filepath.Join(s.dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("scan cache dir: %w", err)
	}
	if paths == nil {
		paths = []string{}
	}
	return paths, nil
}

// TotalSize returns the byte sum of every cached video file.
func (s *Store) TotalSize() (int64, error) {
	paths, err := s.List("")
	if err != nil {
		return 0, err
	}

	var total int64
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}

// Clear deletes cached files, scoped to a word when one is given, and
// returns the number actually deleted. A failed deletion is logged and does
// not abort the rest of the batch.
func (s *Store) Clear(word string) int {
	paths, err := s.List(word)
	if err != nil {
		s.log.Error("Cache scan failed", "error", err)
		return 0
	}

	deleted := 0
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			s.log.Error("Failed to delete cached video", "path", path, "error", err)
			continue
		}
		deleted++
		s.log.Debug("Deleted cached video", "path", path)
	}

	s.metrics.RecordDeleted(int64(deleted))
	s.log.Info("Cache cleared", "word", word, "deleted", deleted)
	return deleted
}
