package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gosign/internal/api"
	"github.com/jonesrussell/gosign/internal/cache"
	"github.com/jonesrussell/gosign/internal/config"
	"github.com/jonesrussell/gosign/internal/config/app"
	"github.com/jonesrussell/gosign/internal/config/cachecfg"
	"github.com/jonesrussell/gosign/internal/config/logging"
	"github.com/jonesrussell/gosign/internal/config/scrape"
	"github.com/jonesrussell/gosign/internal/config/server"
	"github.com/jonesrussell/gosign/internal/logger"
	"github.com/jonesrussell/gosign/internal/metrics"
	"github.com/jonesrussell/gosign/internal/scraper"
)

const signPageTemplate = `<!DOCTYPE html>
<html><body>
<div class="media">
  <video id="video-1" poster="%s/poster/1.jpg">
    <source src="%s/media/a.mp4" type="video/mp4">
  </video>
</div>
<div class="media">
  <video id="video-2">
    <source src="%s/media/b.mp4" type="video/mp4">
  </video>
</div>
</body></html>`

// testEnv wires a router against a fake sign site and a temp cache dir.
type testEnv struct {
	router   http.Handler
	metrics  *metrics.Metrics
	cacheDir string
	signSite *httptest.Server
}

func newTestEnv(t *testing.T, securityEnabled bool) *testEnv {
	t.Helper()

	var signSite *httptest.Server
	signSite = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sign/hello":
			fmt.Fprintf(w, signPageTemplate, signSite.URL, signSite.URL, signSite.URL)
		case "/media/a.mp4":
			_, _ = w.Write([]byte("video-a"))
		case "/media/b.mp4":
			_, _ = w.Write([]byte("video-b"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(signSite.Close)

	log := logger.NewNoOp()
	m := metrics.NewMetrics()

	fetcher := scraper.NewPageFetcher(signSite.Client(), log, scraper.FetcherConfig{
		BaseURL: signSite.URL + "/sign/%s",
	})
	s := scraper.NewScraper(fetcher, log, m)

	dir := t.TempDir()
	downloader, err := cache.NewDownloader(dir, signSite.Client(), log, m)
	require.NoError(t, err)
	store := cache.NewStore(dir, log, m)

	cfg := &config.Config{
		App:     app.NewConfig(),
		Logging: logging.NewConfig(),
		Server: &server.Config{
			Address:         ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			SecurityEnabled: securityEnabled,
			APIKey:          "id:secret",
		},
		Scrape: scrape.NewConfig(),
		Cache:  cachecfg.NewConfig(),
	}

	h := api.NewHandler(s, downloader, store, log, m)
	return &testEnv{
		router:   api.SetupRouter(log, h, cfg),
		metrics:  m,
		cacheDir: dir,
		signSite: signSite,
	}
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodGet, "/health", nil)

	assert.NotEmpty(t, w.Header().Get(api.RequestIDHeader))
}

func TestCheckWord_Exists(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodGet, "/api/v1/check/hello", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.WordCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hello", resp.Word)
	assert.True(t, resp.Exists)
	assert.Equal(t, 2, resp.VideoCount)
}

func TestCheckWord_Missing(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodGet, "/api/v1/check/zzzz", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.WordCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
	assert.Zero(t, resp.VideoCount)
}

func TestGetVideoURLs(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodGet, "/api/v1/videos/hello", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.VideoURLsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hello", resp.Word)
	require.Len(t, resp.VideoURLs, 2)
	assert.Contains(t, resp.VideoURLs[0], "/media/a.mp4")
}

func TestGetVideoURLs_NotFound(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodGet, "/api/v1/videos/zzzz", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVideoDetails(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodGet, "/api/v1/videos/hello/details", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.VideoDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Videos, 2)
	assert.Equal(t, "video-1", resp.Videos[0].SourceID)
	assert.Equal(t, "video/mp4", resp.Videos[0].MimeType)
	assert.Contains(t, resp.Videos[0].PosterURL, "/poster/1.jpg")
}

func TestDownloadWord(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodPost, "/api/v1/download/hello", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.DownloadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.CachedVideos, 2)
}

func TestDownloadWord_NotFound(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodPost, "/api/v1/download/zzzz", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBatchDownload(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodPost, "/api/v1/batch/download",
		api.BatchDownloadRequest{Words: []string{"hello", "zzzz"}})

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.BatchDownloadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalWords)
	assert.Equal(t, 1, resp.Successful)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 2)
	assert.True(t, resp.Results[0].Success)
	assert.False(t, resp.Results[1].Success)
}

func TestBatchDownload_MissingWords(t *testing.T) {
	env := newTestEnv(t, false)

	w := doRequest(t, env.router, http.MethodPost, "/api/v1/batch/download", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCacheLifecycle(t *testing.T) {
	env := newTestEnv(t, false)

	// Populate the cache through the download endpoint.
	w := doRequest(t, env.router, http.MethodPost, "/api/v1/download/hello", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, env.router, http.MethodGet, "/api/v1/cache", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list api.CacheListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.TotalVideos)
	assert.Positive(t, list.CacheSizeBytes)

	w = doRequest(t, env.router, http.MethodDelete, "/api/v1/cache?word=hello", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cleared api.CacheClearResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cleared))
	assert.Equal(t, 2, cleared.DeletedCount)

	w = doRequest(t, env.router, http.MethodGet, "/api/v1/cache", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Zero(t, list.TotalVideos)
}

func TestStats(t *testing.T) {
	env := newTestEnv(t, false)

	doRequest(t, env.router, http.MethodGet, "/api/v1/check/hello", nil)

	w := doRequest(t, env.router, http.MethodGet, "/api/v1/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var snapshot map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Contains(t, snapshot, "scrape_requests")
	assert.Positive(t, snapshot["scrape_requests"])
}

func TestSecurity_MissingAPIKey(t *testing.T) {
	env := newTestEnv(t, true)

	w := doRequest(t, env.router, http.MethodGet, "/api/v1/stats", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSecurity_ValidAPIKey(t *testing.T) {
	env := newTestEnv(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", http.NoBody)
	req.Header.Set("X-API-Key", "id:secret")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthBypassesSecurity(t *testing.T) {
	env := newTestEnv(t, true)

	w := doRequest(t, env.router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
