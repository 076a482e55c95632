package scraper

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gosign/internal/domain"
	"github.com/jonesrussell/gosign/internal/logger"
	"github.com/jonesrussell/gosign/internal/metrics"
)

// Scraper is the word-level facade over page fetching and URL extraction.
type Scraper struct {
	fetcher   *PageFetcher
	extractor *Extractor
	log       logger.Interface
	metrics   *metrics.Metrics
}

// NewScraper creates a scraper from its collaborators.
func NewScraper(fetcher *PageFetcher, log logger.Interface, m *metrics.Metrics) *Scraper {
	return &Scraper{
		fetcher:   fetcher,
		extractor: NewExtractor(),
		log:       log,
		metrics:   m,
	}
}

// WordExists reports whether the source site has a page with at least one
// video element for the word. Existence is independent of whether any video
// has a usable mp4 source; GetVideoURLs may still return nothing for an
// existing word.
//
// Unlike the URL-listing paths, WordExists never returns an error: retrieval
// failures degrade to false. Callers that need to distinguish "absent" from
// "unreachable" must use GetVideoURLs.
func (s *Scraper) WordExists(ctx context.Context, word string) bool {
	doc, err := s.fetch(ctx, word)
	if err != nil {
		if !errors.Is(err, ErrWordNotFound) {
			s.log.Error("Existence check failed", "word", word, "error", err)
		}
		return false
	}

	return s.extractor.HasVideos(doc)
}

// GetVideoURLs returns every mp4 source URL on the word's page in document
// order. An unknown word yields an empty slice and no error; retrieval
// failures are propagated.
func (s *Scraper) GetVideoURLs(ctx context.Context, word string) ([]string, error) {
	doc, err := s.fetch(ctx, word)
	if err != nil {
		if errors.Is(err, ErrWordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	urls := s.extractor.VideoURLs(doc)
	s.log.Info("Extracted video urls", "word", word, "count", len(urls))
	return urls, nil
}

// GetVideoDetails returns one reference per video element with a nested
// source on the word's page. Error contract matches GetVideoURLs.
func (s *Scraper) GetVideoDetails(ctx context.Context, word string) ([]domain.VideoReference, error) {
	doc, err := s.fetch(ctx, word)
	if err != nil {
		if errors.Is(err, ErrWordNotFound) {
			return []domain.VideoReference{}, nil
		}
		return nil, err
	}

	details := s.extractor.VideoDetails(doc)
	s.log.Info("Extracted video details", "word", word, "count", len(details))
	return details, nil
}

// GetPrimaryVideoURL returns the first video URL for the word, or "" when
// the word has none.
func (s *Scraper) GetPrimaryVideoURL(ctx context.Context, word string) (string, error) {
	urls, err := s.GetVideoURLs(ctx, word)
	if err != nil {
		return "", err
	}
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

// fetch wraps the fetcher with metrics accounting.
func (s *Scraper) fetch(ctx context.Context, word string) (*goquery.Document, error) {
	d, err := s.fetcher.FetchDocument(ctx, word)
	s.metrics.RecordScrape(err == nil)
	switch {
	case errors.Is(err, ErrWordNotFound):
		s.metrics.RecordNotFound()
	case err != nil:
		s.metrics.RecordRetrievalError()
	}
	return d, err
}
