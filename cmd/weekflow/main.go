// Package main implements the weekflow CLI: a priority inbox, weekly
// recommendation and note-workflow toolkit over flat-file exports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecallahan/weekflow/internal/config"
	"github.com/ecallahan/weekflow/internal/score"
)

var (
	verbose bool
	version = "dev"

	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weekflow",
	Short: "Priority inbox and weekly planning from your notes and exports",
	Long: `weekflow turns exported emails, chat messages and calendar events plus
your markdown notes into a scored priority inbox, a top-3 weekly
recommendation, generated daily and weekly note files, and a weekly
meeting summary.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger = zap.NewNop()
		}
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig loads the user config, falling back to defaults when no
// config file exists yet.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", zap.Error(err))
		cfg = &config.Config{InboxMaxItems: 25}
	}
	return cfg
}

func newEngine(cfg *config.Config) *score.Engine {
	return score.NewEngine(cfg.ScoringKeywords())
}
