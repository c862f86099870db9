// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings of the table preview. Row movement is
// handled by the table itself; Up and Down are listed for help only.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Up moves to the previous row.
	Up key.Binding

	// Down moves to the next row.
	Down key.Binding

	// Left scrolls one column to the left.
	Left key.Binding

	// Right scrolls one column to the right.
	Right key.Binding

	// Detail shows every field of the selected row.
	Detail key.Binding

	// Back returns from the detail view to the table.
	Back key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "columns"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "columns"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "record"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// TableHelp returns the keybindings shown while browsing the table.
func (k *KeyMap) TableHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Detail, k.Quit}
}

// DetailHelp returns the keybindings shown in the record detail.
func (k *KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Up, k.Back, k.Quit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
