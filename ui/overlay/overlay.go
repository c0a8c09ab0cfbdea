// Package overlay provides modal dialogs drawn over the dashboard.
package overlay

import "github.com/charmbracelet/lipgloss"

// WhitespaceOption configures the whitespace surrounding a placed overlay.
type WhitespaceOption = lipgloss.WhitespaceOption

// PlaceCentered centers an overlay box within the terminal area.
func PlaceCentered(width, height int, content string, opts ...WhitespaceOption) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content, opts...)
}
