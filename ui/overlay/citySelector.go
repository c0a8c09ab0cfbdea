package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wxdeck/weather"
)

// CitySelectorOverlay is a modal city picker.
type CitySelectorOverlay struct {
	Dismissed bool
	Selected  string // chosen city ID, empty until confirmed
	cities    []weather.City
	cursor    int
	width     int
}

// NewCitySelectorOverlay creates a city picker with the cursor on the
// current city.
func NewCitySelectorOverlay(currentID string) *CitySelectorOverlay {
	o := &CitySelectorOverlay{
		cities: weather.Cities,
		width:  44,
	}
	for i, c := range o.cities {
		if c.ID == currentID {
			o.cursor = i
			break
		}
	}
	return o
}

// HandleKeyPress processes a key press. It returns true when the overlay
// should close.
func (o *CitySelectorOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		o.moveCursor(-1)
		return false
	case "down", "j":
		o.moveCursor(1)
		return false
	case "enter":
		o.Selected = o.cities[o.cursor].ID
		o.Dismissed = true
		return true
	case "esc", "q":
		o.Dismissed = true
		return true
	default:
		return false
	}
}

func (o *CitySelectorOverlay) moveCursor(delta int) {
	o.cursor += delta
	if o.cursor < 0 {
		o.cursor = len(o.cities) - 1
	} else if o.cursor >= len(o.cities) {
		o.cursor = 0
	}
}

// Render renders the city picker box.
func (o *CitySelectorOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7aa2f7")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	stationStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888"))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Select City"))
	content.WriteString("\n\n")

	for i, c := range o.cities {
		prefix := "  "
		nameStyle := normalStyle
		if i == o.cursor {
			prefix = "> "
			nameStyle = selectedStyle
		}
		content.WriteString(prefix)
		content.WriteString(nameStyle.Render(c.Name))
		content.WriteString(" ")
		content.WriteString(stationStyle.Render(c.Station))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render(
		"[Enter] Select  [Esc] Cancel  [↑/↓] Navigate"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7aa2f7")).
		Padding(1, 2).
		Width(o.width)

	return borderStyle.Render(content.String())
}

// SetWidth sets the width of the overlay
func (o *CitySelectorOverlay) SetWidth(width int) {
	o.width = width
}

// GetSelected returns the chosen city ID.
func (o *CitySelectorOverlay) GetSelected() string {
	return o.Selected
}
