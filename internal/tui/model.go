package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordtyper/internal/engine"
	"github.com/verte-zerg/wordtyper/internal/lang"
	"github.com/verte-zerg/wordtyper/internal/model"
)

const (
	appName        = "wordtyper"
	welcomeStatus  = "Welcome to wordtyper! Press <F1> for help, or 'Ctrl+C' to exit."
	welcomeFor     = 5 * time.Second
	backHintStatus = "Press <ESC> or 'q' to go back."
	backHintFor    = 3 * time.Second
	errorFor       = 5 * time.Second
	clockWidth     = 8
)

const aboutText = `wordtyper

Type the words shown on the test screen. Press space to move to the next
word; a test ends once the last word is typed correctly or finished with a
space.

  backspace         delete a character (also ctrl+h)
  alt+backspace     delete a word (also ctrl+w)
  tab               start over with new words
  f1                this screen
  ctrl+c            quit

On the results screen, enter starts the next test and q quits.`

type screen int

const (
	screenTest screen = iota
	screenResults
	screenAbout
)

func (s screen) String() string {
	switch s {
	case screenResults:
		return "Results"
	case screenAbout:
		return "About"
	default:
		return "Testing"
	}
}

type tickMsg time.Time

// ProgressStore persists the word position of inorder languages.
type ProgressStore interface {
	SavePosition(ctx context.Context, lang string, pos int) error
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	config   model.Config
	source   *lang.Source
	progress ProgressStore
	styles   Styles
	keys     keyMap
	now      func() time.Time

	test        *engine.Test
	completions chan engine.Completion
	position    int

	screen     screen
	lastScreen screen

	status        string
	clearStatusAt time.Time

	results table.Model
	about   viewport.Model

	width  int
	height int
}

// NewModel constructs the typing UI and its first test. progress may be nil.
func NewModel(cfg model.Config, source *lang.Source, progress ProgressStore) (*Model, error) {
	m := &Model{
		config:      cfg,
		source:      source,
		progress:    progress,
		styles:      NewStyles(cfg.Theme),
		keys:        defaultKeyMap(),
		now:         time.Now,
		completions: make(chan engine.Completion, 1),
		about:       viewport.New(0, 0),
	}
	m.about.SetContent(aboutText)
	m.setStatusFor(welcomeStatus, welcomeFor)
	if err := m.startTest(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tickMsg:
		m.pollCompletion()
		if !m.clearStatusAt.IsZero() && !time.Time(msg).Before(m.clearStatusAt) {
			m.clearStatus()
		}
		return m, tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) && m.screen != screenAbout {
			m.setStatusFor(backHintStatus, backHintFor)
			m.changeScreen(screenAbout)
			return m, nil
		}
		switch m.screen {
		case screenTest:
			return m.updateTest(msg)
		case screenResults:
			return m.updateResults(msg)
		case screenAbout:
			return m.updateAbout(msg)
		}
	}
	return m, nil
}

func (m *Model) updateTest(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Restart) {
		m.restart()
		return m, nil
	}
	for _, in := range reduceKey(msg) {
		m.test.HandleEvent(in)
	}
	m.pollCompletion()
	return m, nil
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.restart()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m *Model) updateAbout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.clearStatus()
		m.changeScreen(m.lastScreen)
		return m, nil
	}
	var cmd tea.Cmd
	m.about, cmd = m.about.Update(msg)
	return m, cmd
}

// pollCompletion drains the completion channel without blocking.
func (m *Model) pollCompletion() {
	select {
	case c := <-m.completions:
		if c.TestID != m.test.ID() {
			log.Printf("ignoring completion of stale test %s", c.TestID)
			return
		}
		m.finishTest()
	default:
	}
}

func (m *Model) startTest() error {
	n := m.source.Prepare(m.config.Words)
	t, err := engine.New(m.source, n, engine.WithCompletions(m.completions))
	if err != nil {
		return fmt.Errorf("failed to build test from %s: %w", m.source.Lang().Name, err)
	}
	select {
	case <-m.completions:
	default:
	}
	m.test = t
	m.position = m.source.Position()
	log.Printf("test %s started with %d words", t.ID(), t.Len())
	return nil
}

func (m *Model) restart() {
	if err := m.startTest(); err != nil {
		m.setStatusFor(err.Error(), errorFor)
		return
	}
	m.changeScreen(screenTest)
}

func (m *Model) finishTest() {
	log.Printf("test %s complete", m.test.ID())
	l := m.source.Lang()
	if l.Inorder && m.progress != nil {
		if err := m.progress.SavePosition(context.Background(), l.Name, m.position); err != nil {
			m.setStatusFor(fmt.Sprintf("failed to save position: %v", err), errorFor)
		}
	}
	m.results = newResultsTable(m.test, m.styles, m.bodyHeight()-2)
	m.changeScreen(screenResults)
}

func (m *Model) changeScreen(s screen) {
	m.lastScreen = m.screen
	m.screen = s
}

func (m *Model) setStatusFor(s string, d time.Duration) {
	m.status = s
	m.clearStatusAt = m.now().Add(d)
}

func (m *Model) clearStatus() {
	m.status = ""
	m.clearStatusAt = time.Time{}
}

func (m *Model) bodyHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) contentWidth() int {
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) resize() {
	m.about.Width = m.contentWidth()
	m.about.Height = m.bodyHeight()
	if m.screen == screenResults || m.lastScreen == screenResults {
		m.results.SetHeight(m.bodyHeight() - 2)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenResults:
		body = m.renderResults()
	case screenAbout:
		body = m.about.View()
	default:
		body = m.renderTest()
	}
	modeline := m.renderModeline()
	status := m.renderStatus()
	if m.width == 0 || m.height == 0 {
		return body + "\n" + modeline + "\n" + status
	}
	placed := lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, body)
	return lipgloss.JoinVertical(lipgloss.Left, placed, modeline, status)
}

func (m *Model) renderTest() string {
	title := m.styles.Accent.Bold(true).Render(fmt.Sprintf("%s %d", m.source.Lang().Name, m.test.Len()))
	glyphs := buildGlyphs(m.test.Render(), m.styles)
	if m.width == 0 {
		return title + "\n" + renderGlyphs(glyphs)
	}
	width := m.contentWidth()
	text := lipgloss.NewStyle().Width(width).Render(wrapGlyphs(glyphs, width))
	return lipgloss.JoinVertical(lipgloss.Left, title, "", text)
}

func (m *Model) renderResults() string {
	correct := 0
	for i := 0; i < m.test.Len(); i++ {
		if m.test.Slot(i).Correct() {
			correct++
		}
	}
	summary := m.styles.Accent.Render(fmt.Sprintf("%d/%d words correct", correct, m.test.Len()))
	hint := m.styles.Untyped.Render("enter: next test  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, summary, m.results.View(), hint)
}

func (m *Model) renderModeline() string {
	left := m.styles.Modeline.Render(appName+" ") + m.styles.ModelineInv.Render(m.screen.String())
	clock := strings.Repeat(" ", clockWidth)
	if m.config.ShowClock {
		layout := "03:04:05"
		if m.config.Hour24 {
			layout = "15:04:05"
		}
		clock = m.now().Format(layout)
	}
	right := m.styles.Modeline.Render(clock)
	if m.width == 0 {
		return left + " " + right
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + m.styles.Modeline.Render(strings.Repeat(" ", gap)) + right
}

func (m *Model) renderStatus() string {
	return m.styles.Root.Render(m.status)
}
