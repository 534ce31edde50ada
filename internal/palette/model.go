// Package palette shows the standard terminal colors so users can pick theme values.
package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type color struct {
	name   string
	value  lipgloss.Color
	isDark bool
}

// contrast picks a readable background for the color used as text.
func (c color) contrast() lipgloss.Color {
	if c.isDark {
		return lipgloss.Color("15")
	}
	return lipgloss.Color("0")
}

var colors = []color{
	{"black", "0", true},
	{"red", "1", true},
	{"green", "2", false},
	{"yellow", "3", false},
	{"blue", "4", false},
	{"magenta", "5", false},
	{"cyan", "6", false},
	{"gray", "7", false},
	{"dark gray", "8", true},
	{"light red", "9", false},
	{"light green", "10", false},
	{"light yellow", "11", false},
	{"light blue", "12", false},
	{"light magenta", "13", false},
	{"light cyan", "14", false},
	{"white", "15", false},
}

const columnWidth = 20

var (
	quitKeys = key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"))
	prevKeys = key.NewBinding(key.WithKeys("left", "h"))
	nextKeys = key.NewBinding(key.WithKeys("right", "l"))
)

// Model implements the Bubble Tea color preview.
type Model struct {
	selected int
	width    int
	height   int
}

// NewModel returns a preview with the first color selected.
func NewModel() *Model {
	return &Model{}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKeys):
			return m, tea.Quit
		case key.Matches(msg, prevKeys):
			m.selected = m.prev()
		case key.Matches(msg, nextKeys):
			m.selected = m.next()
		}
	}
	return m, nil
}

func (m *Model) next() int {
	return (m.selected + 1) % len(colors)
}

func (m *Model) prev() int {
	if m.selected == 0 {
		return len(colors) - 1
	}
	return m.selected - 1
}

// Selected returns the terminal color value of the current selection.
func (m *Model) Selected() string {
	return string(colors[m.selected].value)
}

// View implements tea.Model.
func (m *Model) View() string {
	sel := colors[m.selected]
	cell := lipgloss.NewStyle().Width(columnWidth).Align(lipgloss.Center)
	bold := cell.Bold(true)

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			bold.Render("Color Name"), bold.Render("As Foreground"), bold.Render("As Background")),
		"",
	}
	for _, c := range colors {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			cell.Render(fmt.Sprintf("%s (%s)", c.name, c.value)),
			cell.Foreground(c.value).Render("Sample Text"),
			cell.Foreground(sel.value).Background(c.value).Render("Sample Text"),
		))
	}
	rows = append(rows, "",
		lipgloss.JoinHorizontal(lipgloss.Top,
			cell.Align(lipgloss.Right).Render(fmt.Sprintf("[%s]", colors[m.prev()].name)),
			cell.Render(fmt.Sprintf("<- %s ->", sel.name)),
			cell.Align(lipgloss.Left).Render(fmt.Sprintf("[%s]", colors[m.next()].name)),
		),
		"",
		"Press ESC, q, or CTRL+C to quit.",
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(sel.contrast()).
		Foreground(sel.contrast()).
		Background(sel.value).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
	title := lipgloss.NewStyle().Bold(true).Render("Available colors")
	content := lipgloss.JoinVertical(lipgloss.Center, title, box)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
