package common

import (
	"fmt"
	"net/http"

	"github.com/jonesrussell/gosign/internal/cache"
	"github.com/jonesrussell/gosign/internal/config"
	"github.com/jonesrussell/gosign/internal/logger"
	"github.com/jonesrussell/gosign/internal/metrics"
	"github.com/jonesrussell/gosign/internal/scraper"
)

// NewCommandDeps creates CommandDeps by loading config and creating logger.
// This consolidates the common initialization code shared by every command.
func NewCommandDeps() (CommandDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	logCfg := cfg.GetLoggingConfig()
	log, err := logger.New(&logger.Config{
		Level:       logger.Level(logCfg.Level),
		Development: logCfg.Development,
		Encoding:    logCfg.Encoding,
	})
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	deps := CommandDeps{
		Logger:  log,
		Config:  cfg,
		Metrics: metrics.NewMetrics(),
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}

// NewScraper builds the page scraper from the configured scrape settings.
func NewScraper(deps CommandDeps) *scraper.Scraper {
	scrapeCfg := deps.Config.GetScrapeConfig()

	client := &http.Client{Timeout: scrapeCfg.RequestTimeout}
	fetcher := scraper.NewPageFetcher(client, deps.Logger, scraper.FetcherConfig{
		BaseURL:     scrapeCfg.BaseURL,
		UserAgent:   scrapeCfg.UserAgent,
		MinInterval: scrapeCfg.RateLimit,
	})

	return scraper.NewScraper(fetcher, deps.Logger, deps.Metrics)
}

// NewDownloader builds the video downloader rooted at the configured
// cache directory.
func NewDownloader(deps CommandDeps) (*cache.Downloader, error) {
	cacheCfg := deps.Config.GetCacheConfig()

	client := &http.Client{Timeout: cacheCfg.DownloadTimeout}
	return cache.NewDownloader(cacheCfg.Dir, client, deps.Logger, deps.Metrics)
}

// NewStore builds the cache store over the configured cache directory.
func NewStore(deps CommandDeps) *cache.Store {
	return cache.NewStore(deps.Config.GetCacheConfig().Dir, deps.Logger, deps.Metrics)
}
