// Package download provides the download command implementation.
package download

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gosign/cmd/common"
	"github.com/jonesrussell/gosign/internal/cache"
	"github.com/jonesrussell/gosign/internal/logger"
	"github.com/jonesrussell/gosign/internal/scraper"
)

// Downloader scrapes one or more words and caches their videos locally.
type Downloader struct {
	scraper    *scraper.Scraper
	downloader *cache.Downloader
	logger     logger.Interface
	force      bool
}

// Command returns the download command.
func Command() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "download [word]...",
		Short: "Download a word's sign videos into the cache",
		Long:  `Scrape the sign page for each word and download every video into the local cache.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			cacheDownloader, err := common.NewDownloader(deps)
			if err != nil {
				return fmt.Errorf("failed to create downloader: %w", err)
			}

			d := &Downloader{
				scraper:    common.NewScraper(deps),
				downloader: cacheDownloader,
				logger:     deps.Logger,
				force:      force,
			}
			return d.Run(cmd.Context(), args)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "re-download videos already in the cache")

	return cmd
}

// Run downloads every word's videos, continuing past per-word failures.
// It fails only when no word produced a cached video.
func (d *Downloader) Run(ctx context.Context, words []string) error {
	var cached int
	for _, word := range words {
		n, err := d.downloadWord(ctx, word)
		if err != nil {
			d.logger.Error("Download failed", "word", word, "error", err)
			fmt.Printf("%s: %v\n", word, err)
			continue
		}
		cached += n
		fmt.Printf("%s: cached %d video(s)\n", word, n)
	}

	if cached == 0 {
		return fmt.Errorf("no videos downloaded for %d word(s)", len(words))
	}
	return nil
}

func (d *Downloader) downloadWord(ctx context.Context, word string) (int, error) {
	videoURLs, err := d.scraper.GetVideoURLs(ctx, word)
	if err != nil {
		return 0, fmt.Errorf("failed to get video urls: %w", err)
	}
	if len(videoURLs) == 0 {
		return 0, fmt.Errorf("no videos found for %q", word)
	}

	paths := d.downloader.DownloadAll(ctx, word, videoURLs, d.force)
	if len(paths) == 0 {
		return 0, fmt.Errorf("all %d download(s) failed", len(videoURLs))
	}

	return len(paths), nil
}
