package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecallahan/weekflow/internal/extract"
	"github.com/ecallahan/weekflow/internal/records"
)

var (
	extractChatFile string
	extractJSON     bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Pull commitments, requests and decisions out of chat exports",
	Long: `Run the pattern extractors over a chat export and list what people
committed to, what they asked of you, and what was decided.

Name corrections from the config are applied before matching, so
recurring transcription misspellings do not split results.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractChatFile, "chat", "", "path to JSON chat export (required)")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "emit items as JSON instead of markdown")
	_ = extractCmd.MarkFlagRequired("chat")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	extractor := extract.New(
		extract.WithNameCorrections(cfg.NameCorrections),
		extract.WithLogger(logger),
	)

	messages, err := records.LoadChatMessages(extractChatFile)
	if err != nil {
		return err
	}

	recs := make([]extract.Record, 0, len(messages))
	for _, msg := range messages {
		if msg.BotID != "" {
			continue
		}
		var ts *time.Time
		if t := msg.Time(); !t.IsZero() {
			ts = &t
		}
		recs = append(recs, extract.Record{
			Text:      msg.Text,
			SourceRef: msg.Permalink,
			From:      msg.UserName,
			Timestamp: ts,
			Flags: extract.Flags{
				DirectMessage: msg.IsDM(),
				Mention:       msg.IsMention,
				Thread:        msg.InThread(),
			},
		})
	}
	logger.Info("extracting from chat records", zap.Int("count", len(recs)))

	commitments := extractor.Commitments(recs)
	requests := extractor.Requests(recs)
	decisions := extractor.Decisions(recs)

	if extractJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]extract.Item{
			"commitments": commitments,
			"requests":    requests,
			"decisions":   decisions,
		})
	}

	printItems := func(heading string, items []extract.Item) {
		fmt.Printf("## %s (%d)\n\n", heading, len(items))
		for _, item := range items {
			fmt.Printf("- %s\n", item.Text)
		}
		fmt.Println()
	}
	printItems("Commitments", commitments)
	printItems("Requests", requests)
	printItems("Decisions", decisions)
	return nil
}
