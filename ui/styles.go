package ui

import "github.com/charmbracelet/lipgloss"

// Semantic Color Palette
// Alert severities get both a color and an icon so severity survives
// colorblind rendering.

// Severity colors
var (
	// SeverityExtreme is for extreme alerts (tornado warnings, etc.)
	SeverityExtreme = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}

	// SeveritySevere is for severe alerts
	SeveritySevere = lipgloss.AdaptiveColor{Light: "#EA580C", Dark: "#F97316"}

	// SeverityModerate is for advisories and watches
	SeverityModerate = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}

	// SeverityMinor is for statements and minor advisories
	SeverityMinor = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}
)

// Market colors
var (
	// PriceUp is for rising prices and leading brackets
	PriceUp = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"}

	// PriceDown is for falling prices
	PriceDown = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}

	// PriceFlat is for unchanged prices
	PriceFlat = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// UI chrome colors
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#38BDF8"}

	// Border is the default widget border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderFocus is the border color for the selected widget
	BorderFocus = lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#38BDF8"}

	// BorderExpanded marks an expanded widget
	BorderExpanded = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for labels and captions
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
)

// Severity icons (shape + color)
const (
	IconExtreme  = "!!"
	IconSevere   = "!"
	IconModerate = "▲"
	IconMinor    = "•"
)

// SeverityStyle returns the style for an alert severity string.
func SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case "extreme":
		return lipgloss.NewStyle().Foreground(SeverityExtreme).Bold(true)
	case "severe":
		return lipgloss.NewStyle().Foreground(SeveritySevere).Bold(true)
	case "moderate":
		return lipgloss.NewStyle().Foreground(SeverityModerate)
	default:
		return lipgloss.NewStyle().Foreground(SeverityMinor)
	}
}

// SeverityIcon returns the icon for an alert severity string.
func SeverityIcon(severity string) string {
	switch severity {
	case "extreme":
		return IconExtreme
	case "severe":
		return IconSevere
	case "moderate":
		return IconModerate
	default:
		return IconMinor
	}
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
	Accent:    lipgloss.NewStyle().Foreground(Primary).Bold(true),
}

// TitleStyle renders widget titles in the top border area.
var TitleStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

// widgetBorderStyle picks the border for a widget's focus/expansion state.
func widgetBorderStyle(focused, expanded bool) lipgloss.Style {
	s := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	switch {
	case focused:
		return s.BorderForeground(BorderFocus)
	case expanded:
		return s.BorderForeground(BorderExpanded)
	default:
		return s.BorderForeground(Border)
	}
}

// StatusBarStyle renders the bottom status line.
var StatusBarStyle = lipgloss.NewStyle().Foreground(TextSecondary)

// KeyHintStyle renders key hints in the status bar.
var KeyHintStyle = lipgloss.NewStyle().Foreground(TextMuted)
