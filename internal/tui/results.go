package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordtyper/internal/engine"
)

const (
	resultCorrect   = "correct"
	resultIncorrect = "incorrect"
	resultSkipped   = "skipped"
)

func resultRows(t *engine.Test) []table.Row {
	rows := make([]table.Row, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		slot := t.Slot(i)
		input := slot.Input()
		outcome := resultIncorrect
		switch {
		case slot.Correct():
			outcome = resultCorrect
		case input == "":
			outcome = resultSkipped
		}
		rows = append(rows, table.Row{strconv.Itoa(i + 1), slot.Target(), input, outcome})
	}
	return rows
}

func newResultsTable(t *engine.Test, styles Styles, height int) table.Model {
	wordWidth := 4
	for i := 0; i < t.Len(); i++ {
		if w := lipgloss.Width(t.Slot(i).Target()); w > wordWidth {
			wordWidth = w
		}
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Word", Width: wordWidth + 2},
		{Title: "Typed", Width: wordWidth + 4},
		{Title: "Result", Width: 9},
	}
	if height < 3 {
		height = 3
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(resultRows(t)),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Foreground(styles.Accent.GetForeground()).Bold(true)
	ts.Selected = ts.Selected.Foreground(styles.Root.GetForeground()).Background(styles.Accent.GetForeground())
	tbl.SetStyles(ts)
	return tbl
}
