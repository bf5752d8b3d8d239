package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the viewer.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextRow  key.Binding
	PrevRow  key.Binding
	Clear    key.Binding
}

// ShortHelp returns the compact set of keybindings shown by default in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Down, k.NextRow, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextRow, k.PrevRow, k.Clear},
		{k.Help, k.Quit},
	}
}

// keys holds the default key bindings used by the viewer.
var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "scroll up")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/dn", "scroll down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	NextRow:  key.NewBinding(key.WithKeys("n", "tab"), key.WithHelp("n", "next row")),
	PrevRow:  key.NewBinding(key.WithKeys("p", "shift+tab"), key.WithHelp("p", "prev row")),
	Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
}

// Bindings returns every viewer key binding in help order.
func Bindings() []key.Binding {
	var out []key.Binding
	for _, group := range keys.FullHelp() {
		out = append(out, group...)
	}
	return out
}
