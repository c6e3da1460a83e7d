package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecallahan/weekflow/internal/extract"
	"github.com/ecallahan/weekflow/internal/recommend"
	"github.com/ecallahan/weekflow/internal/render"
	"github.com/ecallahan/weekflow/internal/workspace"
)

var (
	recommendTasksFile string
	recommendOutput    string
	recommendCopy      bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the top 3 tasks for this week",
	Long: `Categorize and score carry-forward tasks, then pick up to three: the best
strategic, stakeholder and operational task, each with a why statement and
related follow-up actions.

Without --tasks, the carry-forwards are extracted from last week's notes in
the configured workspace.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendTasksFile, "tasks", "", "markdown file with checklist tasks instead of last week's notes")
	recommendCmd.Flags().StringVarP(&recommendOutput, "output", "o", "", "write the recommendations to a file instead of stdout")
	recommendCmd.Flags().BoolVar(&recommendCopy, "copy", false, "copy the output to the clipboard")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	rec := recommend.New(newEngine(cfg))

	var carryForwards []string
	if recommendTasksFile != "" {
		data, err := os.ReadFile(recommendTasksFile)
		if err != nil {
			return fmt.Errorf("failed to read tasks file: %w", err)
		}
		doc := extract.Document{Name: recommendTasksFile, Content: string(data)}
		carryForwards = extract.IncompleteTasks([]extract.Document{doc})
	} else {
		ws := workspace.New(cfg.Workspace, logger)
		lastWeek := ws.ExtractWeek(workspace.WeekStart(time.Now()).AddDate(0, 0, -7))
		carryForwards = lastWeek.UnfinishedTasks
	}

	if len(carryForwards) == 0 {
		fmt.Println("No carry-forward tasks found. Clean slate.")
		return nil
	}
	logger.Info("analyzing carry-forwards", zap.Int("count", len(carryForwards)))

	recs := rec.TopThree(carryForwards, nil, nil)
	out := render.Recommendations(recs)
	return emitOutput(out, recommendOutput, recommendCopy)
}
