package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ecallahan/weekflow/internal/workspace"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up weekflow interactively",
	Long: `Walk through the initial configuration: who you are, where your note
workspace lives and how large the inbox summary should be. Writes the
config file and creates the workspace directories.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	maxItems := strconv.Itoa(cfg.InboxMaxItems)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Description("Used to match your own action items in meeting notes").
				Value(&cfg.UserName),

			huh.NewInput().
				Title("Chat user ID (optional)").
				Description("Used to detect explicit mentions, e.g. U0123ABCD").
				Value(&cfg.UserID),

			huh.NewInput().
				Title("Workspace directory").
				Description("Root of your note tree (work/daily, work/meetings, ...)").
				Value(&cfg.Workspace),

			huh.NewInput().
				Title("Inbox summary size").
				Description("How many items the inbox summary keeps").
				Value(&maxItems).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}
	if n, err := strconv.Atoi(maxItems); err == nil {
		cfg.InboxMaxItems = n
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ws := workspace.New(cfg.Workspace, logger)
	if err := ws.EnsureDirectories(); err != nil {
		return err
	}

	fmt.Println("Configuration saved.")
	fmt.Printf("Workspace ready at %s\n", cfg.Workspace)
	return nil
}
