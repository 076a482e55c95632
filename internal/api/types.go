package api

import "github.com/jonesrussell/gosign/internal/domain"

// WordCheckResponse reports whether a word exists on the source site.
type WordCheckResponse struct {
	Word       string `json:"word"`
	Exists     bool   `json:"exists"`
	VideoCount int    `json:"video_count"`
}

// VideoURLsResponse lists the video URLs found for a word.
type VideoURLsResponse struct {
	Word      string   `json:"word"`
	VideoURLs []string `json:"video_urls"`
}

// VideoDetailsResponse lists per-video metadata for a word.
type VideoDetailsResponse struct {
	Word   string                  `json:"word"`
	Videos []domain.VideoReference `json:"videos"`
}

// DownloadResponse reports the outcome of downloading one word's videos.
type DownloadResponse struct {
	Word         string   `json:"word"`
	Success      bool     `json:"success"`
	CachedVideos []string `json:"cached_videos"`
	Message      string   `json:"message"`
}

// BatchDownloadRequest asks for several words to be downloaded.
type BatchDownloadRequest struct {
	Words []string `json:"words" binding:"required"`
	Force bool     `json:"force"`
}

// BatchDownloadResponse summarizes a batch download.
type BatchDownloadResponse struct {
	TotalWords int                `json:"total_words"`
	Successful int                `json:"successful"`
	Failed     int                `json:"failed"`
	Results    []DownloadResponse `json:"results"`
}

// CacheListResponse describes the cache contents.
type CacheListResponse struct {
	TotalVideos    int      `json:"total_videos"`
	CacheSizeBytes int64    `json:"cache_size_bytes"`
	CacheSizeMB    float64  `json:"cache_size_mb"`
	Videos         []string `json:"videos"`
}

// CacheClearResponse reports how many cache files were deleted.
type CacheClearResponse struct {
	DeletedCount int    `json:"deleted_count"`
	Message      string `json:"message"`
}
