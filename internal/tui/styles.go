package tui

import (
	"github.com/charmbracelet/lipgloss"

	"qgcalc/internal/domain"
)

type palette struct {
	text, muted, accent, danger, border lipgloss.Color
}

var palettes = map[domain.Theme]palette{
	domain.ThemeDark: {
		text:   lipgloss.Color("#f5f5f7"),
		muted:  lipgloss.Color("#8e8e93"),
		accent: lipgloss.Color("#ff9f0a"),
		danger: lipgloss.Color("#ff453a"),
		border: lipgloss.Color("#3a3a3c"),
	},
	domain.ThemeLight: {
		text:   lipgloss.Color("#1c1c1e"),
		muted:  lipgloss.Color("#6e6e73"),
		accent: lipgloss.Color("#0a84ff"),
		danger: lipgloss.Color("#d70015"),
		border: lipgloss.Color("#c7c7cc"),
	},
}

type styles struct {
	display   lipgloss.Style
	primary   lipgloss.Style
	secondary lipgloss.Style
	errorText lipgloss.Style
	key       lipgloss.Style
	opKey     lipgloss.Style
	panel     lipgloss.Style
	title     lipgloss.Style
	item      lipgloss.Style
	status    lipgloss.Style
}

func stylesFor(t domain.Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[domain.ThemeDark]
	}
	return styles{
		display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1).
			Width(displayWidth).
			Align(lipgloss.Right),
		primary:   lipgloss.NewStyle().Bold(true).Foreground(p.text),
		secondary: lipgloss.NewStyle().Foreground(p.muted),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		key:       lipgloss.NewStyle().Foreground(p.text).Width(keyWidth).Align(lipgloss.Center),
		opKey:     lipgloss.NewStyle().Foreground(p.accent).Bold(true).Width(keyWidth).Align(lipgloss.Center),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 1).
			MarginLeft(2),
		title:  lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		item:   lipgloss.NewStyle().Foreground(p.text),
		status: lipgloss.NewStyle().Foreground(p.danger),
	}
}
