package main

import (
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecallahan/weekflow/internal/config"
	"github.com/ecallahan/weekflow/internal/inbox"
	"github.com/ecallahan/weekflow/internal/records"
	"github.com/ecallahan/weekflow/internal/render"
)

var (
	inboxEmailsFile string
	inboxChatFile   string
	inboxOutput     string
	inboxSlack      bool
	inboxCopy       bool
	inboxAll        bool
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Build a scored priority inbox from exported emails and chat",
	Long: `Score exported email and chat records by urgency and impact, group them
into priority tiers and render a one-screen markdown summary.

Examples:
  # Score an email export
  weekflow inbox --emails emails.json

  # Combine email and chat, copy the summary to the clipboard
  weekflow inbox --emails emails.json --chat slack.json --copy

  # Short Slack-style notification instead of the full summary
  weekflow inbox --emails emails.json --slack`,
	RunE: runInbox,
}

func init() {
	inboxCmd.Flags().StringVar(&inboxEmailsFile, "emails", "", "path to JSON email export")
	inboxCmd.Flags().StringVar(&inboxChatFile, "chat", "", "path to JSON chat export")
	inboxCmd.Flags().StringVarP(&inboxOutput, "output", "o", "", "write the summary to a file instead of stdout")
	inboxCmd.Flags().BoolVar(&inboxSlack, "slack", false, "render the short notification format")
	inboxCmd.Flags().BoolVar(&inboxCopy, "copy", false, "copy the output to the clipboard")
	inboxCmd.Flags().BoolVar(&inboxAll, "all", false, "include items already marked done or snoozed")
	rootCmd.AddCommand(inboxCmd)
}

func runInbox(cmd *cobra.Command, args []string) error {
	if inboxEmailsFile == "" && inboxChatFile == "" {
		return fmt.Errorf("at least one of --emails or --chat is required")
	}

	cfg := loadConfig()
	box := inbox.New(newEngine(cfg), logger)

	if inboxEmailsFile != "" {
		emails, err := records.LoadEmails(inboxEmailsFile)
		if err != nil {
			return err
		}
		box.AddEmails(emails)
		logger.Info("loaded emails", zap.Int("count", len(emails)))
	}
	if inboxChatFile != "" {
		messages, err := records.LoadChatMessages(inboxChatFile)
		if err != nil {
			return err
		}
		box.AddChatMessages(messages)
		logger.Info("loaded chat messages", zap.Int("count", len(messages)))
	}

	if !inboxAll {
		store, err := config.LoadMarkStore()
		if err != nil {
			return fmt.Errorf("failed to load mark store: %w", err)
		}
		now := time.Now()
		box.Filter(func(item inbox.Item) bool {
			return !store.IsHidden(item.ID, now)
		})
	}

	summary := box.Summarize(cfg.InboxMaxItems)

	var out string
	if inboxSlack {
		out = render.InboxNotification(summary, time.Now())
	} else {
		out = render.OneScreen(summary)
	}

	return emitOutput(out, inboxOutput, inboxCopy)
}

// emitOutput writes rendered output to a file, the clipboard or stdout.
func emitOutput(out, path string, copyToClipboard bool) error {
	if copyToClipboard {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Copied to clipboard.")
	}
	if path != "" {
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
		return nil
	}
	if !copyToClipboard {
		fmt.Print(out)
	}
	return nil
}
