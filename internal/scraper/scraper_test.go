package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gosign/internal/logger"
	"github.com/jonesrussell/gosign/internal/metrics"
	"github.com/jonesrussell/gosign/internal/scraper"
)

// videoNoMP4HTML has a video element whose only source is not an mp4. The
// word exists, but no usable URL can be extracted from it.
const videoNoMP4HTML = `<!DOCTYPE html>
<html>
<body>
  <video id="only-webm">
    <source src="https://media.example.com/clip.webm" type="video/webm">
  </video>
</body>
</html>`

// signSiteHandler serves canned pages per word, mimicking the source site.
func signSiteHandler(pages map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		html, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(html))
	}
}

func newTestScraper(t *testing.T, srv *httptest.Server) (*scraper.Scraper, *metrics.Metrics) {
	t.Helper()

	m := metrics.NewMetrics()
	fetcher := scraper.NewPageFetcher(srv.Client(), logger.NewNoOp(), scraper.FetcherConfig{
		BaseURL: srv.URL + "/sign/%s",
	})
	return scraper.NewScraper(fetcher, logger.NewNoOp(), m), m
}

func TestWordExists(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(signSiteHandler(map[string]string{
		"/sign/hello": twoVideosHTML,
		"/sign/empty": noVideosHTML,
	}))
	defer srv.Close()

	s, m := newTestScraper(t, srv)
	ctx := context.Background()

	assert.True(t, s.WordExists(ctx, "hello"))
	assert.False(t, s.WordExists(ctx, "empty"), "page without videos does not count")
	assert.False(t, s.WordExists(ctx, "missing"))

	assert.Equal(t, int64(3), m.GetScrapeRequests())
	assert.Equal(t, int64(1), m.GetWordsNotFound())
}

// A video element with no mp4 source still marks the word as existing, while
// the URL listing comes back empty. The checks are distinct on purpose.
func TestWordExists_URLAsymmetry(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(signSiteHandler(map[string]string{
		"/sign/webm-word": videoNoMP4HTML,
	}))
	defer srv.Close()

	s, _ := newTestScraper(t, srv)
	ctx := context.Background()

	assert.True(t, s.WordExists(ctx, "webm word"))

	urls, err := s.GetVideoURLs(ctx, "webm word")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestWordExists_SuppressesRetrievalErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s, m := newTestScraper(t, srv)

	assert.False(t, s.WordExists(context.Background(), "hello"))
	assert.Equal(t, int64(1), m.GetRetrievalErrors())
}

func TestGetVideoURLs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(signSiteHandler(map[string]string{
		"/sign/hello": twoVideosHTML,
	}))
	defer srv.Close()

	s, _ := newTestScraper(t, srv)

	urls, err := s.GetVideoURLs(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://media.example.com/a.mp4",
		"https://media.example.com/b.mp4",
	}, urls)
}

func TestGetVideoURLs_NotFoundIsEmptyNotError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(signSiteHandler(nil))
	defer srv.Close()

	s, _ := newTestScraper(t, srv)

	urls, err := s.GetVideoURLs(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestGetVideoURLs_PropagatesRetrievalErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s, _ := newTestScraper(t, srv)

	_, err := s.GetVideoURLs(context.Background(), "hello")
	var retrievalErr *scraper.RetrievalError
	require.ErrorAs(t, err, &retrievalErr)
	assert.Equal(t, http.StatusServiceUnavailable, retrievalErr.StatusCode)
}

func TestGetVideoDetails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(signSiteHandler(map[string]string{
		"/sign/hello": twoVideosHTML,
	}))
	defer srv.Close()

	s, _ := newTestScraper(t, srv)

	details, err := s.GetVideoDetails(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "video-1", details[0].SourceID)
	assert.Equal(t, "video/mp4", details[1].MimeType)
}

func TestGetPrimaryVideoURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(signSiteHandler(map[string]string{
		"/sign/hello": twoVideosHTML,
	}))
	defer srv.Close()

	s, _ := newTestScraper(t, srv)
	ctx := context.Background()

	url, err := s.GetPrimaryVideoURL(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/a.mp4", url)

	url, err = s.GetPrimaryVideoURL(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, url)
}
