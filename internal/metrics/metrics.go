// Package metrics provides metrics collection and reporting functionality.
package metrics

import (
	"sync"
	"time"
)

// Metrics holds the scraping and caching counters.
type Metrics struct {
	// ScrapeRequests is the number of sign page fetches attempted.
	ScrapeRequests int64
	// WordsNotFound is the number of fetches that returned a 404 page.
	WordsNotFound int64
	// RetrievalErrors is the number of fetches that failed with a non-404 error.
	RetrievalErrors int64
	// Downloads is the number of videos downloaded successfully.
	Downloads int64
	// DownloadFailures is the number of video downloads that failed.
	DownloadFailures int64
	// CacheHits is the number of downloads satisfied from the cache.
	CacheHits int64
	// DeletedFiles is the number of cache files removed by clear operations.
	DeletedFiles int64
	// LastScrapeTime is the time of the last successful page fetch.
	LastScrapeTime time.Time
	// StartTime is when the metrics collection began.
	StartTime time.Time
	// mu protects concurrent access to metrics.
	mu sync.Mutex
}

// Snapshot is a point-in-time copy of the counters, safe to serialize.
type Snapshot struct {
	ScrapeRequests   int64     `json:"scrape_requests"`
	WordsNotFound    int64     `json:"words_not_found"`
	RetrievalErrors  int64     `json:"retrieval_errors"`
	Downloads        int64     `json:"downloads"`
	DownloadFailures int64     `json:"download_failures"`
	CacheHits        int64     `json:"cache_hits"`
	DeletedFiles     int64     `json:"deleted_files"`
	LastScrapeTime   time.Time `json:"last_scrape_time"`
	UptimeSeconds    int64     `json:"uptime_seconds"`
}

// NewMetrics creates a new Metrics instance with default values.
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// GetStartTime returns the time when metrics collection began.
func (m *Metrics) GetStartTime() time.Time {
	return m.StartTime
}

// RecordScrape updates the scrape counters based on fetch success.
func (m *Metrics) RecordScrape(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ScrapeRequests++
	if success {
		m.LastScrapeTime = time.Now()
	}
}

// RecordNotFound increments the not-found counter.
func (m *Metrics) RecordNotFound() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WordsNotFound++
}

// RecordRetrievalError increments the retrieval error counter.
func (m *Metrics) RecordRetrievalError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RetrievalErrors++
}

// RecordDownload updates the download counters based on transfer success.
func (m *Metrics) RecordDownload(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if success {
		m.Downloads++
	} else {
		m.DownloadFailures++
	}
}

// RecordCacheHit increments the cache hit counter.
func (m *Metrics) RecordCacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

// RecordDeleted adds to the deleted files counter.
func (m *Metrics) RecordDeleted(count int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletedFiles += count
}

// GetScrapeRequests returns the number of page fetches attempted.
func (m *Metrics) GetScrapeRequests() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ScrapeRequests
}

// GetWordsNotFound returns the number of not-found results.
func (m *Metrics) GetWordsNotFound() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.WordsNotFound
}

// GetRetrievalErrors returns the number of failed fetches.
func (m *Metrics) GetRetrievalErrors() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.RetrievalErrors
}

// GetDownloads returns the number of successful downloads.
func (m *Metrics) GetDownloads() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Downloads
}

// GetDownloadFailures returns the number of failed downloads.
func (m *Metrics) GetDownloadFailures() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.DownloadFailures
}

// GetCacheHits returns the number of cache hits.
func (m *Metrics) GetCacheHits() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CacheHits
}

// GetDeletedFiles returns the number of deleted cache files.
func (m *Metrics) GetDeletedFiles() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.DeletedFiles
}

// GetSnapshot returns a point-in-time copy of all counters.
func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		ScrapeRequests:   m.ScrapeRequests,
		WordsNotFound:    m.WordsNotFound,
		RetrievalErrors:  m.RetrievalErrors,
		Downloads:        m.Downloads,
		DownloadFailures: m.DownloadFailures,
		CacheHits:        m.CacheHits,
		DeletedFiles:     m.DeletedFiles,
		LastScrapeTime:   m.LastScrapeTime,
		UptimeSeconds:    int64(time.Since(m.StartTime).Seconds()),
	}
}

// ResetMetrics resets all counters to their initial values.
func (m *Metrics) ResetMetrics() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ScrapeRequests = 0
	m.WordsNotFound = 0
	m.RetrievalErrors = 0
	m.Downloads = 0
	m.DownloadFailures = 0
	m.CacheHits = 0
	m.DeletedFiles = 0
	m.LastScrapeTime = time.Time{}
}
