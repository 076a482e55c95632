// Package cachecmd provides the cache command implementation. It lists
// and clears the local video cache.
package cachecmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gosign/cmd/common"
	"github.com/jonesrussell/gosign/internal/cache"
	"github.com/jonesrussell/gosign/internal/logger"
)

const bytesPerMB = 1024 * 1024

// Command returns the cache command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local video cache",
		Long:  `List and clear videos in the local cache directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newSizeCommand())
	cmd.AddCommand(newClearCommand())

	return cmd
}

// newListCommand returns the cache list subcommand.
func newListCommand() *cobra.Command {
	var word string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached videos",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			lister := &Lister{store: common.NewStore(deps), logger: deps.Logger}
			return lister.Run(word)
		},
	}

	cmd.Flags().StringVar(&word, "word", "", "only list videos cached for this word")

	return cmd
}

// newSizeCommand returns the cache size subcommand.
func newSizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Report the total size of the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			store := common.NewStore(deps)
			videos, err := store.List("")
			if err != nil {
				return fmt.Errorf("failed to list cache: %w", err)
			}
			size, err := store.TotalSize()
			if err != nil {
				return fmt.Errorf("failed to size cache: %w", err)
			}

			fmt.Printf("%d video(s), %s\n", len(videos), formatSize(size))
			return nil
		},
	}
}

// newClearCommand returns the cache clear subcommand.
func newClearCommand() *cobra.Command {
	var word string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete cached videos",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			store := common.NewStore(deps)
			deleted := store.Clear(word)
			if word != "" {
				fmt.Printf("Deleted %d cached video(s) for %q\n", deleted, word)
				return nil
			}
			fmt.Printf("Deleted %d cached video(s)\n", deleted)
			return nil
		},
	}

	cmd.Flags().StringVar(&word, "word", "", "only delete videos cached for this word")

	return cmd
}

// Lister renders the cache contents as a table.
type Lister struct {
	store  *cache.Store
	logger logger.Interface
}

// Run lists cached videos, scoped to a word when one is given.
func (l *Lister) Run(word string) error {
	videos, err := l.store.List(word)
	if err != nil {
		return fmt.Errorf("failed to list cache: %w", err)
	}

	if len(videos) == 0 {
		fmt.Println("Cache is empty")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Size"})

	var total int64
	for _, path := range videos {
		info, statErr := os.Stat(path)
		if statErr != nil {
			l.logger.Warn("Failed to stat cached video", "path", path, "error", statErr)
			continue
		}
		total += info.Size()
		t.AppendRow(table.Row{filepath.Base(path), formatSize(info.Size())})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d video(s)", len(videos)), formatSize(total)})

	t.Render()
	return nil
}

// formatSize renders a byte count in a human friendly unit.
func formatSize(n int64) string {
	if n >= bytesPerMB {
		return fmt.Sprintf("%.1f MB", float64(n)/bytesPerMB)
	}
	return fmt.Sprintf("%d B", n)
}
