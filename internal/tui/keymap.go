package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings that are not calculator keys.
type keyMap struct {
	Quit    key.Binding
	History key.Binding
	Theme   key.Binding
	Help    key.Binding
	Recall  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Recall: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "recall entry"),
			key.WithDisabled(),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.History, k.Theme, k.Recall, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{calcBinding("enter", "evaluate"), calcBinding("backspace", "erase"), calcBinding("esc", "clear"), calcBinding("x", "multiply")},
		{k.History, k.Recall, k.Theme},
		{k.Help, k.Quit},
	}
}

// calcBinding documents a calculator key that is dispatched by the editor.
func calcBinding(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}
