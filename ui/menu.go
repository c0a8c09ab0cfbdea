package ui

import (
	"strings"

	"wxdeck/keys"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	StateOverlay
	StateHelp
)

type Menu struct {
	options       []keys.KeyName
	height, width int
	state         MenuState

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

// Navigation group, action group, system group.
var defaultMenuOptions = []keys.KeyName{
	keys.KeyUp, keys.KeyDown, keys.KeyLeft, keys.KeyRight,
	keys.KeyEnter, keys.KeyCity, keys.KeyRefresh, keys.KeyCopy, keys.KeyDismiss,
	keys.KeyHelp, keys.KeyQuit,
}

var overlayMenuOptions = []keys.KeyName{keys.KeyEnter, keys.KeyQuit}

func NewMenu() *Menu {
	return &Menu{
		options: defaultMenuOptions,
		state:   StateDefault,
		keyDown: -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	switch state {
	case StateOverlay, StateHelp:
		m.options = overlayMenuOptions
	default:
		m.options = defaultMenuOptions
	}
}

// SetSize sets the width of the window. The menu is centered within it.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder

	// Group boundaries: navigation | actions | system.
	var groups []struct {
		start int
		end   int
	}

	switch m.state {
	case StateDefault:
		groups = []struct {
			start int
			end   int
		}{
			{0, 4},  // Navigation group (arrows)
			{4, 9},  // Action group (expand, city, refresh, copy, dismiss)
			{9, 11}, // System group (?, q)
		}
	default:
		groups = []struct {
			start int
			end   int
		}{
			{0, len(m.options)},
		}
	}

	for i, k := range m.options {
		binding := keys.GlobalkeyBindings[k]

		var (
			localActionStyle = actionGroupStyle
			localKeyStyle    = keyStyle
			localDescStyle   = descStyle
		)
		if m.keyDown == k {
			localActionStyle = localActionStyle.Underline(true)
			localKeyStyle = localKeyStyle.Underline(true)
			localDescStyle = localDescStyle.Underline(true)
		}

		var inActionGroup bool
		if len(groups) > 1 {
			inActionGroup = i >= groups[1].start && i < groups[1].end
		}

		if inActionGroup {
			s.WriteString(localActionStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localActionStyle.Render(binding.Help().Desc))
		} else {
			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))
		}

		if i != len(m.options)-1 {
			isGroupEnd := false
			for _, group := range groups {
				if i == group.end-1 {
					s.WriteString(sepStyle.Render(verticalSeparator))
					isGroupEnd = true
					break
				}
			}
			if !isGroupEnd {
				s.WriteString(sepStyle.Render(separator))
			}
		}
	}

	centeredMenuText := menuStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centeredMenuText)
}
