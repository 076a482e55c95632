// Package check provides the check command implementation.
package check

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gosign/cmd/common"
	"github.com/jonesrussell/gosign/internal/logger"
	"github.com/jonesrussell/gosign/internal/scraper"
)

// Checker reports whether a word has a sign video on the source site.
type Checker struct {
	scraper *scraper.Scraper
	logger  logger.Interface
}

// Command returns the check command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "check [word]...",
		Short: "Check whether words have sign videos",
		Long:  `Check whether the source site has at least one sign video for each word.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			checker := &Checker{
				scraper: common.NewScraper(deps),
				logger:  deps.Logger,
			}
			return checker.Run(cmd.Context(), args)
		},
	}
}

// Run checks each word in turn.
func (c *Checker) Run(ctx context.Context, words []string) error {
	for _, word := range words {
		c.logger.Debug("Checking word", "word", word)

		if c.scraper.WordExists(ctx, word) {
			fmt.Printf("%q has at least one sign video\n", word)
			continue
		}
		fmt.Printf("%q has no sign video\n", word)
	}
	return nil
}
