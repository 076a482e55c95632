// Package urls provides the urls command implementation. It prints the
// video URLs found for a word, optionally as a detail table.
package urls

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gosign/cmd/common"
	"github.com/jonesrussell/gosign/internal/logger"
	"github.com/jonesrussell/gosign/internal/scraper"
)

// Lister fetches and prints a word's video URLs.
type Lister struct {
	scraper *scraper.Scraper
	logger  logger.Interface
	details bool
}

// Command returns the urls command.
func Command() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "urls [word]",
		Short: "List the video URLs for a word",
		Long:  `List the direct video URLs found on a word's sign page.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			lister := &Lister{
				scraper: common.NewScraper(deps),
				logger:  deps.Logger,
				details: details,
			}
			return lister.Run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "show per-video metadata")

	return cmd
}

// Run prints the URLs or the detail table for a single word.
func (l *Lister) Run(ctx context.Context, word string) error {
	if l.details {
		return l.renderDetails(ctx, word)
	}

	videoURLs, err := l.scraper.GetVideoURLs(ctx, word)
	if err != nil {
		return fmt.Errorf("failed to get video urls: %w", err)
	}
	if len(videoURLs) == 0 {
		return fmt.Errorf("no videos found for %q", word)
	}

	for _, u := range videoURLs {
		fmt.Println(u)
	}
	return nil
}

// renderDetails prints per-video metadata in a formatted table.
func (l *Lister) renderDetails(ctx context.Context, word string) error {
	videos, err := l.scraper.GetVideoDetails(ctx, word)
	if err != nil {
		return fmt.Errorf("failed to get video details: %w", err)
	}
	if len(videos) == 0 {
		return errors.New("no videos found for " + word)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Source URL", "Poster", "ID", "Type"})

	for i, v := range videos {
		t.AppendRow(table.Row{i + 1, v.SourceURL, v.PosterURL, v.SourceID, v.MimeType})
	}

	t.Render()
	return nil
}
