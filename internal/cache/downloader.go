package cache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonesrussell/gosign/internal/logger"
	"github.com/jonesrussell/gosign/internal/metrics"
)

// DefaultDownloadTimeout bounds a single video transfer.
const DefaultDownloadTimeout = 30 * time.Second

// Downloader streams videos into the cache directory. Downloads are
// idempotent: a (word, URL) pair already on disk is returned without network
// activity unless forced.
type Downloader struct {
	client  *http.Client
	log     logger.Interface
	metrics *metrics.Metrics
	dir     string

	// inflight serializes writers per cache path so concurrent downloads of
	// the identical (word, URL) never race on the same file.
	mu       sync.Mutex
	inflight map[string]*sync.Mutex
}

// NewDownloader creates a downloader rooted at dir, creating it if needed.
func NewDownloader(dir string, client *http.Client, log logger.Interface, m *metrics.Metrics) (*Downloader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultDownloadTimeout}
	}
	return &Downloader{
		client:   client,
		log:      log,
		metrics:  m,
		dir:      dir,
		inflight: make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the cache root directory.
func (d *Downloader) Dir() string {
	return d.dir
}

// Path returns the cache path a download for this pair would use.
func (d *Downloader) Path(word, videoURL string) string {
	return filepath.Join(d.dir, Key(word, videoURL))
}

// Download fetches one video into the cache and returns its path. A cached
// file short-circuits the transfer unless force is set. On any transfer or
// write failure the partial file is removed before the error is returned, so
// a cache entry is either complete or absent.
func (d *Downloader) Download(ctx context.Context, word, videoURL string, force bool) (string, error) {
	path := d.Path(word, videoURL)

	lock := d.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	if _, err := os.Stat(path); err == nil && !force {
		d.log.Debug("Video already cached", "word", word, "path", path)
		d.metrics.RecordCacheHit()
		return path, nil
	}

	d.log.Info("Downloading video", "word", word, "url", videoURL)

	if err := d.fetchToFile(ctx, videoURL, path); err != nil {
		d.metrics.RecordDownload(false)
		d.log.Error("Video download failed", "word", word, "url", videoURL, "error", err)
		return "", err
	}

	d.metrics.RecordDownload(true)
	return path, nil
}

// DownloadAll fetches every URL for a word, skipping per-URL failures. The
// result holds the paths of successful downloads only; callers can compare
// its length against the input to detect partial failure.
func (d *Downloader) DownloadAll(ctx context.Context, word string, videoURLs []string, force bool) []string {
	paths := make([]string, 0, len(videoURLs))

	for _, videoURL := range videoURLs {
		path, err := d.Download(ctx, word, videoURL, force)
		if err != nil {
			continue
		}
		paths = append(paths, path)
	}

	d.log.Info("Batch download finished",
		"word", word,
		"requested", len(videoURLs),
		"cached", len(paths),
	)
	return paths
}

// fetchToFile streams the URL body to path, deleting the file on failure.
func (d *Downloader) fetchToFile(ctx context.Context, videoURL, path string) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch video: unexpected status %d", resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close cache file: %w", cerr)
		}
		if err != nil {
			// Never leave a partial entry behind.
			_ = os.Remove(path)
		}
	}()

	if _, err = io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// pathLock returns the per-path writer lock, creating it on first use.
func (d *Downloader) pathLock(path string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	lock, ok := d.inflight[path]
	if !ok {
		lock = &sync.Mutex{}
		d.inflight[path] = lock
	}
	return lock
}
