package teainput

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings that translate into edit requests.
// Printable runes are not bound here; they always insert.
type KeyMap struct {
	// Characters
	DeleteBackward key.Binding
	DeleteForward  key.Binding
	CharBackward   key.Binding
	CharForward    key.Binding

	// Words
	WordBackward   key.Binding
	WordForward    key.Binding
	DeletePrevWord key.Binding
	DeleteNextWord key.Binding

	// Line
	LineStart     key.Binding
	LineEnd       key.Binding
	DeleteLine    key.Binding
	DeleteTillEnd key.Binding

	// Submit is handled by Model, not by the adapter.
	Submit key.Binding
}

// DefaultKeyMap returns readline-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		DeleteBackward: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("⌫", "delete char"),
		),
		DeleteForward: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
			key.WithHelp("del", "delete next char"),
		),
		CharBackward: key.NewBinding(
			key.WithKeys("left", "ctrl+b"),
			key.WithHelp("←/ctrl+b", "move left"),
		),
		CharForward: key.NewBinding(
			key.WithKeys("right", "ctrl+f"),
			key.WithHelp("→/ctrl+f", "move right"),
		),
		WordBackward: key.NewBinding(
			key.WithKeys("ctrl+left", "alt+left", "alt+b"),
			key.WithHelp("alt+b", "previous word"),
		),
		WordForward: key.NewBinding(
			key.WithKeys("ctrl+right", "alt+right", "alt+f"),
			key.WithHelp("alt+f", "next word"),
		),
		DeletePrevWord: key.NewBinding(
			key.WithKeys("ctrl+w", "alt+backspace"),
			key.WithHelp("ctrl+w", "delete previous word"),
		),
		DeleteNextWord: key.NewBinding(
			key.WithKeys("alt+delete", "alt+d"),
			key.WithHelp("alt+d", "delete next word"),
		),
		LineStart: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
			key.WithHelp("ctrl+a", "line start"),
		),
		LineEnd: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
			key.WithHelp("ctrl+e", "line end"),
		),
		DeleteLine: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear line"),
		),
		DeleteTillEnd: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "delete to end"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.WordBackward, k.WordForward, k.DeletePrevWord, k.DeleteLine, k.Submit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CharBackward, k.CharForward, k.DeleteBackward, k.DeleteForward},
		{k.WordBackward, k.WordForward, k.DeletePrevWord, k.DeleteNextWord},
		{k.LineStart, k.LineEnd, k.DeleteLine, k.DeleteTillEnd, k.Submit},
	}
}
