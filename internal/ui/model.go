package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ecallahan/weekflow/internal/config"
	"github.com/ecallahan/weekflow/internal/inbox"
)

type State int

const (
	StateReviewing State = iota
	StateBatch
	StateDone
)

func (s State) String() string {
	switch s {
	case StateReviewing:
		return "Reviewing"
	case StateBatch:
		return "Batch"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Model is the inbox review screen. Marks are written through to the
// mark store as they happen and persisted on quit.
type Model struct {
	state  State
	width  int
	height int
	styles Styles
	keys   KeyMap

	items      []inbox.Item
	listView   ListView
	store      *config.MarkStore
	showHidden bool
	showHelp   bool

	batchForm *BatchForm
	form      *huh.Form

	statusMessage string
	saveErr       error
}

// NewModel builds the review screen over scored items and the
// persisted mark store.
func NewModel(items []inbox.Item, store *config.MarkStore) *Model {
	m := &Model{
		state:    StateReviewing,
		styles:   DefaultStyles(),
		keys:     DefaultKeyMap(),
		items:    items,
		store:    store,
		listView: NewListView(80, 24),
	}
	m.refreshRows()
	return m
}

// refreshRows rebuilds the visible row set from items and marks.
func (m *Model) refreshRows() {
	now := time.Now()
	var rows []Row
	for _, item := range m.items {
		mark := m.markFor(item.ID)
		if !m.showHidden && m.store != nil && m.store.IsHidden(item.ID, now) {
			continue
		}
		rows = append(rows, Row{Item: item, Mark: mark})
	}
	m.listView.SetRows(rows)
}

func (m *Model) markFor(id string) string {
	if m.store == nil {
		return ""
	}
	entry, ok := m.store.Items[id]
	if !ok {
		return ""
	}
	switch entry.Action {
	case config.ActionDone:
		return "done"
	case config.ActionSnoozed:
		return "snoozed"
	default:
		return ""
	}
}

func (m *Model) applyMark(id, mark string) {
	if m.store == nil {
		return
	}
	switch mark {
	case "done":
		m.store.MarkDone(id)
	case "snoozed":
		m.store.Snooze(id, time.Now().AddDate(0, 0, 1))
	default:
		m.store.Clear(id)
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listView.SetWidthHeight(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.state == StateBatch {
			return m.updateBatchForm(msg)
		}
		return m.handleKeyPress(msg)
	}

	if m.state == StateBatch {
		return m.updateBatchForm(msg)
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.store != nil {
			m.saveErr = m.store.Save()
		}
		m.state = StateDone
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.listView.MoveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.listView.MoveCursor(1)

	case key.Matches(msg, m.keys.Select):
		m.listView.ToggleSelection()

	case key.Matches(msg, m.keys.Done):
		m.markCursored("done")

	case key.Matches(msg, m.keys.Snooze):
		m.markCursored("snoozed")

	case key.Matches(msg, m.keys.Undo):
		m.markCursored("")

	case key.Matches(msg, m.keys.Hidden):
		m.showHidden = !m.showHidden
		m.refreshRows()

	case key.Matches(msg, m.keys.Batch):
		selected := m.listView.GetSelected()
		if len(selected) == 0 {
			m.statusMessage = "Select items with x before batch editing"
			return m, nil
		}
		m.batchForm = NewBatchForm()
		m.form = m.batchForm.GetForm()
		m.state = StateBatch
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

func (m *Model) markCursored(mark string) {
	row := m.listView.GetRow(m.listView.Cursor())
	if row == nil {
		return
	}
	m.applyMark(row.Item.ID, mark)
	m.statusMessage = fmt.Sprintf("%s: %s", markText(mark), Truncate(row.Item.Subject, 50))
	m.refreshRows()
}

func (m *Model) updateBatchForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = StateReviewing
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		changed := m.applyBatchMarks()
		m.statusMessage = fmt.Sprintf("Batch updated %d items", changed)
		m.listView.ClearSelection()
		m.refreshRows()
		m.state = StateReviewing
		m.form = nil
		return m, nil
	}

	return m, cmd
}

// applyBatchMarks applies the completed batch form to the selected
// rows. Only rows the form actually changed are written to the store;
// an existing snooze on an untouched row keeps its expiry.
func (m *Model) applyBatchMarks() int {
	selected := m.listView.GetSelected()
	rows := make([]Row, 0, len(selected))
	for _, idx := range selected {
		if row := m.listView.GetRow(idx); row != nil {
			rows = append(rows, *row)
		}
	}
	changed := m.batchForm.ApplyToRows(rows, indexRange(len(rows)))
	for _, idx := range changed {
		m.applyMark(rows[idx].Item.ID, rows[idx].Mark)
	}
	return len(changed)
}

func indexRange(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

func (m *Model) View() string {
	switch m.state {
	case StateBatch:
		if m.form != nil {
			return m.form.View()
		}
		return ""
	case StateDone:
		return m.doneView()
	default:
		return m.reviewingView()
	}
}

func (m *Model) reviewingView() string {
	header := m.styles.Title.Render("Weekflow Review")
	count := m.styles.Help.Render(fmt.Sprintf("%d items", m.listView.Len()))

	var list string
	if len(m.items) == 0 {
		list = m.styles.Normal.Render("  Inbox is empty. Nothing to review.")
	} else {
		list = m.listView.View()
	}

	detail := m.listView.DetailView(m.width, m.styles)

	var statusLine string
	if m.statusMessage != "" {
		statusLine = m.styles.Help.Render("  " + m.statusMessage)
	}

	footer := m.footerView()

	parts := []string{header + " " + count, list}
	if detail != "" {
		parts = append(parts, detail)
	}
	if statusLine != "" {
		parts = append(parts, statusLine)
	}
	parts = append(parts, footer)

	return strings.Join(parts, "\n")
}

func (m *Model) footerView() string {
	if m.showHelp {
		var lines []string
		for _, binding := range m.keys.Keys() {
			help := binding.Help()
			lines = append(lines, fmt.Sprintf("  %-10s %s", help.Key, help.Desc))
		}
		return m.styles.Help.Render(strings.Join(lines, "\n"))
	}
	return m.styles.Help.Render("j/k: navigate • d: done • s: snooze • u: undo • x: select • b: batch • h: hidden • q: quit")
}

func (m *Model) doneView() string {
	if m.saveErr != nil {
		return m.styles.Error.Render(fmt.Sprintf("Failed to save marks: %v", m.saveErr))
	}
	return m.styles.Success.Render("Review saved.")
}

// Run starts the full-screen review program.
func Run(items []inbox.Item, store *config.MarkStore) error {
	model := NewModel(items, store)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	if model.saveErr != nil {
		return model.saveErr
	}
	return nil
}
