package keys

import "github.com/charmbracelet/bubbles/key"

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyTab

	KeyEnter
	KeyCity
	KeyCityNext
	KeyRefresh
	KeyCopy
	KeyDismiss
	KeyRestore

	KeyHelp
	KeyQuit
)

// GlobalkeyBindings is the master key registry. The menu renders help text
// from these bindings and the app matches input against them.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "left"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "right"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next widget"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("↵", "expand"),
	),
	KeyCity: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "city"),
	),
	KeyCityNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next city"),
	),
	KeyRefresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy layout"),
	),
	KeyDismiss: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "dismiss widget"),
	),
	KeyRestore: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "restore widgets"),
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
