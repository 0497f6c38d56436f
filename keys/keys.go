package keys

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyPrev KeyName = iota
	KeyNext
	KeyYank
	KeyHelp
	KeyQuit
)

func (k KeyName) String() string {
	switch k {
	case KeyPrev:
		return "prev"
	case KeyNext:
		return "next"
	case KeyYank:
		return "yank"
	case KeyHelp:
		return "help"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"left":   KeyPrev,
	"h":      KeyPrev,
	"right":  KeyNext,
	"l":      KeyNext,
	"y":      KeyYank,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyPrev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	KeyNext: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	KeyYank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Lookup returns the name bound to a key string such as "left" or "ctrl+c".
func Lookup(s string) (KeyName, bool) {
	name, ok := GlobalKeyStringsMap[s]
	return name, ok
}

// KeyMap implements help.KeyMap over the global bindings.
type KeyMap struct{}

var _ help.KeyMap = KeyMap{}

// ShortHelp returns the bindings shown in the one-line footer.
func (KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		GlobalkeyBindings[KeyPrev],
		GlobalkeyBindings[KeyNext],
		GlobalkeyBindings[KeyHelp],
		GlobalkeyBindings[KeyQuit],
	}
}

// FullHelp groups navigation and actions into two columns.
func (KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{GlobalkeyBindings[KeyPrev], GlobalkeyBindings[KeyNext]},
		{GlobalkeyBindings[KeyYank], GlobalkeyBindings[KeyHelp], GlobalkeyBindings[KeyQuit]},
	}
}
