package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sorotlabs/sorot/internal/config"
	"github.com/sorotlabs/sorot/internal/logging"
)

var (
	verbose    bool
	configPath string

	logger   *logging.Logger
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "sorot",
	Short: "Short-form video metadata scraper",
	Long: `Sorot extracts metadata, transcripts and AI thumbnail analysis
from short-form video URLs.

It runs as an HTTP service or as a one-shot command line extractor.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger = logging.NewLogger(verbose || settings.DebugMode)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
}
