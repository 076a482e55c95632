// Package scraper retrieves sign-language video references from the source
// site. It exposes a rate-limited page fetcher, a video URL extractor, and a
// facade combining the two.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gosign/internal/domain"
	"github.com/jonesrussell/gosign/internal/logger"
)

// DefaultBaseURL is the per-word page URL template of the source site.
const DefaultBaseURL = "https://www.signasl.org/sign/%s"

// DefaultUserAgent is sent with every page request. The source site rejects
// obvious non-browser agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultRequestTimeout bounds a single page retrieval.
const DefaultRequestTimeout = 10 * time.Second

// HTTPDoer executes a single HTTP request. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetcherConfig configures a PageFetcher.
type FetcherConfig struct {
	// BaseURL is a printf-style template with one %s verb for the word.
	BaseURL string
	// UserAgent is the User-Agent header value for page requests.
	UserAgent string
	// MinInterval is the minimum delay between page requests.
	MinInterval time.Duration
}

// PageFetcher retrieves and parses per-word pages from the source site under
// rate limiting. The HTTP client is constructed once by the caller and
// injected so tests can substitute a local server.
type PageFetcher struct {
	client    HTTPDoer
	limiter   *Limiter
	log       logger.Interface
	baseURL   string
	userAgent string
}

// NewPageFetcher creates a page fetcher with the given client and config.
// Zero-valued config fields fall back to package defaults.
func NewPageFetcher(client HTTPDoer, log logger.Interface, cfg FetcherConfig) *PageFetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &PageFetcher{
		client:    client,
		limiter:   NewLimiter(cfg.MinInterval),
		log:       log,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
	}
}

// PageURL returns the source site URL for a word.
func (f *PageFetcher) PageURL(word string) string {
	return fmt.Sprintf(f.baseURL, domain.Normalize(word))
}

// FetchDocument retrieves the page for a word and parses it into a document.
// Returns ErrWordNotFound on a 404 and a *RetrievalError on any other
// failure. The rate limit is respected before the request is issued.
func (f *PageFetcher) FetchDocument(ctx context.Context, word string) (*goquery.Document, error) {
	pageURL := f.PageURL(word)

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, &RetrievalError{URL: pageURL, Err: err}
	}

	f.log.Info("Fetching sign page", "word", word, "url", pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, &RetrievalError{URL: pageURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &RetrievalError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		f.log.Warn("Word not found on source site", "word", word)
		return nil, ErrWordNotFound
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, &RetrievalError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &RetrievalError{URL: pageURL, Err: fmt.Errorf("parse html: %w", err)}
	}

	return doc, nil
}
