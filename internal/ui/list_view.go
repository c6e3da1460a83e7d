package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ecallahan/weekflow/internal/inbox"
	"github.com/ecallahan/weekflow/internal/score"
)

// Row is one reviewable inbox item plus its current mark.
type Row struct {
	Item inbox.Item
	Mark string // "", "done" or "snoozed"
}

type ListView struct {
	table       table.Model
	rows        []Row
	cursor      int
	selected    map[int]bool
	width       int
	height      int
	visibleRows int // number of data rows visible (excluding header)

	headerStyle   lipgloss.Style
	cellStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	mutedStyle    lipgloss.Style
	columns       []table.Column
}

func listColumns(width int) []table.Column {
	// Each cell has Padding(0,1) adding 2 chars per column (8 columns = 16 extra).
	// Subtract 2 more to avoid hitting exact terminal width (causes implicit wraps).
	fixedWidth := 2 + 6 + 4 + 8 + 8 + 18 + 16 // non-subject columns
	padding := 8*2 + 2
	subjectWidth := width - fixedWidth - padding
	if subjectWidth < 20 {
		subjectWidth = 20
	}
	return []table.Column{
		{Title: " ", Width: 2},
		{Title: "Mark", Width: 6},
		{Title: "Pri", Width: 4},
		{Title: "Urgency", Width: 8},
		{Title: "Impact", Width: 8},
		{Title: "Category", Width: 18},
		{Title: "From", Width: 16},
		{Title: "Subject", Width: subjectWidth},
	}
}

func NewListView(width, height int) ListView {
	columns := listColumns(width)
	styles := DefaultStyles()

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	// Reserve space for: header(2) + divider(1) + detail pane(4) + status(1) + footer(2)
	visibleRows := height - 10
	// Subtract 2 for the table header (text + border)
	visibleRows -= 2
	if visibleRows < 3 {
		visibleRows = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(visibleRows+2),
		table.WithFocused(true),
	)

	return ListView{
		table:         t,
		selected:      make(map[int]bool),
		width:         width,
		height:        height,
		visibleRows:   visibleRows,
		headerStyle:   headerStyle,
		cellStyle:     cellStyle,
		selectedStyle: selectedStyle,
		mutedStyle:    styles.Muted,
		columns:       columns,
	}
}

func (lv *ListView) SetRows(rows []Row) {
	lv.rows = rows
	if lv.cursor >= len(rows) && len(rows) > 0 {
		lv.cursor = len(rows) - 1
	}
	lv.updateRows()
}

func (lv *ListView) updateRows() {
	rows := make([]table.Row, len(lv.rows))
	for i, row := range lv.rows {
		sel := " "
		if lv.selected[i] {
			sel = "●"
		}

		mark := runewidth.FillRight(markText(row.Mark), 6)
		pri := fmt.Sprintf("P%d", tier(row.Item.Priority))
		urgency := runewidth.FillRight(levelText(row.Item.Urgency), 8)
		impact := runewidth.FillRight(levelText(row.Item.Impact), 8)
		category := Truncate(string(row.Item.Category), 18)
		from := Truncate(row.Item.From, 16)
		subject := Truncate(row.Item.Subject, lv.width-80)

		rows[i] = table.Row{sel, mark, pri, urgency, impact, category, from, subject}
	}
	lv.table.SetRows(rows)
}

func markText(mark string) string {
	switch mark {
	case "done":
		return "✓ Done"
	case "snoozed":
		return "⏰ Snz"
	default:
		return "· New"
	}
}

func levelText(level score.Level) string {
	switch level {
	case score.High:
		return "🔴 High"
	case score.Medium:
		return "🟡 Med"
	default:
		return "🟢 Low"
	}
}

func tier(priority int) int {
	switch {
	case priority >= 9:
		return 1
	case priority >= 6:
		return 2
	case priority >= 4:
		return 3
	default:
		return 4
	}
}

func Truncate(s string, maxLen int) string {
	if runewidth.StringWidth(s) > maxLen {
		return runewidth.Truncate(s, maxLen, "…")
	}
	return s
}

// detailPaneHeight is the fixed number of lines the detail pane always occupies.
const detailPaneHeight = 4

// DetailView renders a detail pane for the cursored item, padded to a fixed height.
func (lv *ListView) DetailView(width int, styles Styles) string {
	row := lv.GetRow(lv.cursor)
	if row == nil {
		return ""
	}
	item := row.Item

	maxWidth := width - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	var lines []string

	lines = append(lines, styles.Highlight.Render(Truncate(item.Subject, maxWidth)))

	var meta []string
	meta = append(meta, "src:"+string(item.Source))
	meta = append(meta, "from:"+item.From)
	meta = append(meta, fmt.Sprintf("priority:%d", item.Priority))
	if item.Flags.DirectMessage {
		meta = append(meta, "DM")
	}
	if item.Flags.Mention {
		meta = append(meta, "mention")
	}
	if item.Flags.Attachment {
		meta = append(meta, "attachment")
	}
	lines = append(lines, styles.Normal.Render(Truncate(strings.Join(meta, " · "), maxWidth)))

	if item.Preview != "" {
		lines = append(lines, styles.Help.Render(Truncate(item.Preview, maxWidth)))
	}
	if item.Permalink != "" {
		lines = append(lines, styles.Help.Render(Truncate(item.Permalink, maxWidth)))
	}

	for len(lines) < detailPaneHeight {
		lines = append(lines, "")
	}
	lines = lines[:detailPaneHeight]

	return strings.Join(lines, "\n")
}

func (lv ListView) Cursor() int {
	return lv.cursor
}

// Len returns the number of visible rows.
func (lv ListView) Len() int {
	return len(lv.rows)
}

func (lv *ListView) MoveCursor(delta int) {
	newPos := lv.cursor + delta
	if newPos >= 0 && newPos < len(lv.rows) {
		lv.cursor = newPos
		lv.table.SetCursor(newPos)
	}
}

func (lv *ListView) ToggleSelection() {
	if lv.cursor < len(lv.rows) {
		lv.selected[lv.cursor] = !lv.selected[lv.cursor]
		lv.updateRows()
	}
}

func (lv ListView) GetSelected() []int {
	var indices []int
	for i, selected := range lv.selected {
		if selected {
			indices = append(indices, i)
		}
	}
	return indices
}

func (lv *ListView) ClearSelection() {
	lv.selected = make(map[int]bool)
	lv.updateRows()
}

func (lv ListView) GetRow(index int) *Row {
	if index >= 0 && index < len(lv.rows) {
		return &lv.rows[index]
	}
	return nil
}

// renderCell renders a single cell value with the given column width.
func (lv *ListView) renderCell(value string, colWidth int) string {
	style := lipgloss.NewStyle().Width(colWidth).MaxWidth(colWidth).Inline(true)
	return lv.cellStyle.Render(style.Render(runewidth.Truncate(value, colWidth, "…")))
}

// View renders the table with our own scrolling logic, bypassing the
// bubbles table viewport which has broken YOffset calculations.
func (lv ListView) View() string {
	rows := lv.table.Rows()

	headerCells := make([]string, 0, len(lv.columns))
	for _, col := range lv.columns {
		if col.Width <= 0 {
			continue
		}
		style := lipgloss.NewStyle().Width(col.Width).MaxWidth(col.Width).Inline(true)
		cell := style.Render(runewidth.Truncate(col.Title, col.Width, "…"))
		headerCells = append(headerCells, lv.headerStyle.Render(lv.cellStyle.Render(cell)))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, headerCells...)

	visibleRows := lv.visibleRows
	if visibleRows <= 0 {
		visibleRows = 10
	}

	start := 0
	if lv.cursor >= visibleRows {
		start = lv.cursor - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(rows) {
		end = len(rows)
		start = end - visibleRows
		if start < 0 {
			start = 0
		}
	}

	renderedRows := make([]string, 0, visibleRows)
	for i := start; i < end; i++ {
		cells := make([]string, 0, len(lv.columns))
		for ci, value := range rows[i] {
			if lv.columns[ci].Width <= 0 {
				continue
			}
			cells = append(cells, lv.renderCell(value, lv.columns[ci].Width))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		switch {
		case i == lv.cursor:
			row = lv.selectedStyle.Render(row)
		case lv.rows[i].Mark == "done":
			row = lv.mutedStyle.Render(row)
		}
		renderedRows = append(renderedRows, row)
	}

	for len(renderedRows) < visibleRows {
		renderedRows = append(renderedRows, "")
	}

	return header + "\n" + strings.Join(renderedRows, "\n")
}

func (lv *ListView) SetWidthHeight(width, height int) {
	lv.width = width
	lv.height = height
	lv.columns = listColumns(width)

	visibleRows := height - 10
	visibleRows -= 2
	if visibleRows < 3 {
		visibleRows = 3
	}
	lv.visibleRows = visibleRows

	lv.table.SetHeight(visibleRows + 2)
	lv.table.SetColumns(lv.columns)
}

func (lv ListView) Init() tea.Cmd {
	return nil
}

func (lv ListView) Update(msg tea.Msg) (ListView, tea.Cmd) {
	var cmd tea.Cmd
	lv.table, cmd = lv.table.Update(msg)
	return lv, cmd
}
