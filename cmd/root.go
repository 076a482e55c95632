// Package cmd implements the command-line interface for gosign.
// It provides the root command and subcommands for checking words,
// downloading videos, and managing the local video cache.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/gosign/cmd/cachecmd"
	"github.com/jonesrussell/gosign/cmd/check"
	"github.com/jonesrussell/gosign/cmd/download"
	"github.com/jonesrussell/gosign/cmd/serve"
	"github.com/jonesrussell/gosign/cmd/urls"
	"github.com/jonesrussell/gosign/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the gosign CLI.
	rootCmd = &cobra.Command{
		Use:   "gosign",
		Short: "A sign language video scraper and cache",
		Long:  `Look up sign language videos for English words and keep a local video cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get config path and debug flag before Viper runs
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := config.InitializeViper(cfgFile); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	if Debug || viper.GetBool("app.debug") {
		viper.Set("app.debug", true)
		viper.Set("logging.level", "debug")
		viper.Set("logging.development", true)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gosign version %s\n", viper.GetString("app.version"))
		},
	})

	rootCmd.AddCommand(check.Command())
	rootCmd.AddCommand(urls.Command())
	rootCmd.AddCommand(download.Command())
	rootCmd.AddCommand(cachecmd.Command())
	rootCmd.AddCommand(serve.Command())
}
