package ui

import (
	"github.com/charmbracelet/huh"
)

type BatchForm struct {
	form   *huh.Form
	result *BatchResult
}

type BatchResult struct {
	FilterTier int
	NewMark    string
}

func NewBatchForm() *BatchForm {
	result := &BatchResult{}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Filter by priority tier (optional)").
				Options(
					huh.NewOption("All items", 0),
					huh.NewOption("P1 - Urgent & Important", 1),
					huh.NewOption("P2 - Important", 2),
					huh.NewOption("P3 - Time Sensitive", 3),
					huh.NewOption("P4 - Everything Else", 4),
				).
				Value(&result.FilterTier),

			huh.NewSelect[string]().
				Title("Set mark to").
				Options(
					huh.NewOption("Keep current", ""),
					huh.NewOption("Done ✓", "done"),
					huh.NewOption("Snoozed ⏰", "snoozed"),
					huh.NewOption("Clear mark", "clear"),
				).
				Value(&result.NewMark),
		),
	)

	return &BatchForm{
		form:   form,
		result: result,
	}
}

func (bf *BatchForm) Run() (*BatchResult, error) {
	if err := bf.form.Run(); err != nil {
		return nil, err
	}
	return bf.result, nil
}

func (bf *BatchForm) GetForm() *huh.Form {
	return bf.form
}

// ApplyToRows applies the batch result to the selected rows, returning
// the indices of the rows it actually changed. Rows the tier filter
// excludes, and all rows when no new mark was chosen, are left alone.
func (bf *BatchForm) ApplyToRows(rows []Row, selectedIndices []int) []int {
	if bf.result == nil || bf.result.NewMark == "" {
		return nil
	}

	var changed []int
	for _, idx := range selectedIndices {
		if idx >= len(rows) {
			continue
		}
		row := &rows[idx]
		if bf.result.FilterTier != 0 && tier(row.Item.Priority) != bf.result.FilterTier {
			continue
		}
		mark := bf.result.NewMark
		if mark == "clear" {
			mark = ""
		}
		if row.Mark != mark {
			row.Mark = mark
			changed = append(changed, idx)
		}
	}
	return changed
}
