package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gosign/internal/cache"
	"github.com/jonesrussell/gosign/internal/logger"
	"github.com/jonesrussell/gosign/internal/metrics"
	"github.com/jonesrussell/gosign/internal/scraper"
)

const bytesPerMB = 1024 * 1024

// Handler serves the gosign API endpoints.
type Handler struct {
	scraper    *scraper.Scraper
	downloader *cache.Downloader
	store      *cache.Store
	log        logger.Interface
	metrics    *metrics.Metrics
}

// NewHandler creates an API handler from its collaborators.
func NewHandler(
	s *scraper.Scraper,
	d *cache.Downloader,
	st *cache.Store,
	log logger.Interface,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		scraper:    s,
		downloader: d,
		store:      st,
		log:        log,
		metrics:    m,
	}
}

// CheckWord handles GET /api/v1/check/:word.
func (h *Handler) CheckWord(c *gin.Context) {
	word := c.Param("word")

	exists := h.scraper.WordExists(c.Request.Context(), word)

	videoCount := 0
	if exists {
		urls, err := h.scraper.GetVideoURLs(c.Request.Context(), word)
		if err == nil {
			videoCount = len(urls)
		}
	}

	c.JSON(http.StatusOK, WordCheckResponse{
		Word:       word,
		Exists:     exists,
		VideoCount: videoCount,
	})
}

// GetVideoURLs handles GET /api/v1/videos/:word.
func (h *Handler) GetVideoURLs(c *gin.Context) {
	word := c.Param("word")

	urls, err := h.scraper.GetVideoURLs(c.Request.Context(), word)
	if err != nil {
		respondBadGateway(c, err.Error())
		return
	}
	if len(urls) == 0 {
		respondNotFound(c, fmt.Sprintf("videos for word %q", word))
		return
	}

	c.JSON(http.StatusOK, VideoURLsResponse{Word: word, VideoURLs: urls})
}

// GetVideoDetails handles GET /api/v1/videos/:word/details.
func (h *Handler) GetVideoDetails(c *gin.Context) {
	word := c.Param("word")

	details, err := h.scraper.GetVideoDetails(c.Request.Context(), word)
	if err != nil {
		respondBadGateway(c, err.Error())
		return
	}
	if len(details) == 0 {
		respondNotFound(c, fmt.Sprintf("videos for word %q", word))
		return
	}

	c.JSON(http.StatusOK, VideoDetailsResponse{Word: word, Videos: details})
}

// DownloadWord handles POST /api/v1/download/:word.
func (h *Handler) DownloadWord(c *gin.Context) {
	word := c.Param("word")
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))

	resp := h.downloadOne(c, word, force)
	if !resp.Success && len(resp.CachedVideos) == 0 {
		c.JSON(http.StatusNotFound, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// BatchDownload handles POST /api/v1/batch/download.
func (h *Handler) BatchDownload(c *gin.Context) {
	var req BatchDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: words list is required")
		return
	}

	resp := BatchDownloadResponse{
		TotalWords: len(req.Words),
		Results:    make([]DownloadResponse, 0, len(req.Words)),
	}

	for _, word := range req.Words {
		result := h.downloadOne(c, word, req.Force)
		if result.Success {
			resp.Successful++
		} else {
			resp.Failed++
		}
		resp.Results = append(resp.Results, result)
	}

	c.JSON(http.StatusOK, resp)
}

// downloadOne scrapes a word's video URLs and downloads them all. A word
// with no URLs or no successful transfers reports Success false; the batch
// endpoint keeps going regardless.
func (h *Handler) downloadOne(c *gin.Context, word string, force bool) DownloadResponse {
	ctx := c.Request.Context()

	urls, err := h.scraper.GetVideoURLs(ctx, word)
	if err != nil {
		h.log.Error("Scrape failed during download", "word", word, "error", err)
		return DownloadResponse{
			Word:    word,
			Message: fmt.Sprintf("failed to retrieve video urls: %v", err),
		}
	}
	if len(urls) == 0 {
		return DownloadResponse{
			Word:    word,
			Message: "no videos found",
		}
	}

	paths := h.downloader.DownloadAll(ctx, word, urls, force)
	return DownloadResponse{
		Word:         word,
		Success:      len(paths) > 0,
		CachedVideos: paths,
		Message:      fmt.Sprintf("cached %d of %d video(s)", len(paths), len(urls)),
	}
}

// ListCache handles GET /api/v1/cache.
func (h *Handler) ListCache(c *gin.Context) {
	word := c.Query("word")

	videos, err := h.store.List(word)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	size, err := h.store.TotalSize()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, CacheListResponse{
		TotalVideos:    len(videos),
		CacheSizeBytes: size,
		CacheSizeMB:    float64(size) / bytesPerMB,
		Videos:         videos,
	})
}

// ClearCache handles DELETE /api/v1/cache.
func (h *Handler) ClearCache(c *gin.Context) {
	word := c.Query("word")

	deleted := h.store.Clear(word)

	message := fmt.Sprintf("cleared %d cached video(s)", deleted)
	if word != "" {
		message = fmt.Sprintf("cleared %d cached video(s) for %q", deleted, word)
	}

	c.JSON(http.StatusOK, CacheClearResponse{
		DeletedCount: deleted,
		Message:      message,
	})
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.GetSnapshot())
}
