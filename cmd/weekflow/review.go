package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecallahan/weekflow/internal/config"
	"github.com/ecallahan/weekflow/internal/inbox"
	"github.com/ecallahan/weekflow/internal/records"
	"github.com/ecallahan/weekflow/internal/ui"
)

var (
	reviewEmailsFile string
	reviewChatFile   string
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the priority inbox interactively",
	Long: `Open a full-screen review of the scored inbox. Items marked done or
snoozed are remembered across runs: item identity is derived from the
record itself, so re-importing the same export keeps your marks.

Keys: j/k navigate, d done, s snooze, u undo, x select, b batch edit,
h show hidden, q quit.`,
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVar(&reviewEmailsFile, "emails", "", "path to JSON email export")
	reviewCmd.Flags().StringVar(&reviewChatFile, "chat", "", "path to JSON chat export")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	if reviewEmailsFile == "" && reviewChatFile == "" {
		return fmt.Errorf("at least one of --emails or --chat is required")
	}

	cfg := loadConfig()
	box := inbox.New(newEngine(cfg), logger)

	if reviewEmailsFile != "" {
		emails, err := records.LoadEmails(reviewEmailsFile)
		if err != nil {
			return err
		}
		box.AddEmails(emails)
	}
	if reviewChatFile != "" {
		messages, err := records.LoadChatMessages(reviewChatFile)
		if err != nil {
			return err
		}
		box.AddChatMessages(messages)
	}

	store, err := config.LoadMarkStore()
	if err != nil {
		return fmt.Errorf("failed to load mark store: %w", err)
	}

	return ui.Run(box.Items(), store)
}
