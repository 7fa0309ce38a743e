// Package tui is the interactive terminal front end: a two-line display, a
// keypad legend, an optional history panel and a help footer.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qgcalc/internal/domain"
	"qgcalc/internal/logger"
	"qgcalc/internal/numfmt"
	"qgcalc/internal/services/calculator"
)

const (
	displayWidth = 28
	keyWidth     = 6
	panelRows    = 9
)

var keypad = [][]string{
	{"C", "(", ")", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", "%", "="},
}

// HistorySource re-reads the persisted history.
type HistorySource interface {
	Reload() ([]domain.HistoryRecord, error)
}

type (
	historyLoadedMsg struct {
		records []domain.HistoryRecord
		err     error
	}
	historyChangedMsg struct{}
)

// Model is the bubbletea model.
type Model struct {
	calc    *calculator.Service
	history HistorySource
	themes  domain.ThemeService
	changes <-chan struct{}
	log     *logger.Logger

	keys   keyMap
	help   help.Model
	theme  domain.Theme
	styles styles

	display     domain.DisplayState
	records     []domain.HistoryRecord
	showHistory bool
	status      string
}

// New builds the model. changes may be nil; when set, every receive reloads
// the history panel.
func New(calc *calculator.Service, history HistorySource, themes domain.ThemeService, changes <-chan struct{}) Model {
	m := Model{
		calc:    calc,
		history: history,
		themes:  themes,
		changes: changes,
		log:     logger.Global().WithPrefix("tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
		display: calc.Display(),
	}
	t, err := themes.Current()
	if err != nil {
		m.log.Warn("load theme: %v", err)
	}
	m.setTheme(t)
	return m
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadHistory(), waitForChange(m.changes))
}

func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		recs, err := m.history.Reload()
		return historyLoadedMsg{records: recs, err: err}
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return historyChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case historyChangedMsg:
		return m, tea.Batch(m.loadHistory(), waitForChange(m.changes))

	case historyLoadedMsg:
		if msg.err != nil {
			m.log.Warn("reload history: %v", msg.err)
			m.status = "history unavailable"
		}
		if msg.records != nil || msg.err == nil {
			m.records = msg.records
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		m.keys.Recall.SetEnabled(m.showHistory)
		if m.showHistory {
			return m, m.loadHistory()
		}
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		t, err := m.themes.Toggle()
		if err != nil {
			m.log.Warn("toggle theme: %v", err)
			m.status = "theme not saved"
		}
		m.setTheme(t)
		return m, nil

	case key.Matches(msg, m.keys.Recall):
		idx := int(msg.String()[0] - '1')
		d, err := m.calc.Recall(idx)
		if err != nil {
			m.status = fmt.Sprintf("no entry %d", idx+1)
			return m, nil
		}
		m.display = d
		m.showHistory = false
		m.keys.Recall.SetEnabled(false)
		return m, nil
	}

	d, ok := m.calc.Press(msg.String())
	if !ok {
		return m, nil
	}
	m.display = d
	if msg.String() == "enter" || msg.String() == "=" {
		// A successful evaluation appended to the history.
		return m, m.loadHistory()
	}
	return m, nil
}

func (m *Model) setTheme(t domain.Theme) {
	if !t.Valid() {
		t = domain.ThemeDark
	}
	m.theme = t
	m.styles = stylesFor(t)
}

func (m Model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left, m.viewDisplay(), m.viewKeypad())
	body := left
	if m.showHistory {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, m.viewHistory())
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewDisplay() string {
	primary := m.styles.primary.Render(m.display.Primary)
	if m.display.IsError {
		primary = m.styles.errorText.Render(m.display.Primary)
	}
	secondary := m.styles.secondary.Render(tail(m.display.Secondary, displayWidth-2))
	return m.styles.display.Render(secondary + "\n" + primary)
}

func (m Model) viewKeypad() string {
	rows := make([]string, len(keypad))
	for i, row := range keypad {
		cells := make([]string, len(row))
		for j, k := range row {
			st := m.styles.key
			if j == len(row)-1 {
				st = m.styles.opKey
			}
			cells[j] = st.Render(k)
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewHistory() string {
	lines := []string{m.styles.title.Render("History")}
	if len(m.records) == 0 {
		lines = append(lines, m.styles.secondary.Render("empty"))
	}
	for i := 0; i < len(m.records) && i < panelRows; i++ {
		r := m.records[len(m.records)-1-i]
		line := fmt.Sprintf("%d  %s = %s", i+1, numfmt.HistoryExpression(r.Expression), numfmt.HistoryNumber(r.Result))
		lines = append(lines, m.styles.item.Render(line))
	}
	return m.styles.panel.Render(strings.Join(lines, "\n"))
}

// tail keeps the last n bytes of s, marking the cut with "…".
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "…" + s[len(s)-n+1:]
}
