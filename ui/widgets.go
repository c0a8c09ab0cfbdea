package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"wxdeck/market"
	"wxdeck/ui/layout"
	"wxdeck/weather"
)

// WidgetData bundles everything the widget renderers read.
type WidgetData struct {
	Snapshot *weather.Snapshot
	Market   *market.Market
}

// WidgetState is one widget's render-time state.
type WidgetState struct {
	Focused  bool
	Expanded bool
}

// RenderWidget renders one widget's full bordered box at the exact size.
func RenderWidget(id string, d WidgetData, st WidgetState, width, height int) string {
	var title string
	var lines []string

	switch id {
	case layout.WidgetBrackets:
		title, lines = bracketLines(d, st.Expanded)
	case layout.WidgetModels:
		title, lines = modelLines(d, st.Expanded)
	case layout.WidgetMap:
		title, lines = mapLines(d)
	case layout.WidgetAlerts:
		title, lines = alertLines(d, st.Expanded, width-2)
	case layout.WidgetDiscussion:
		title, lines = discussionLines(d, st.Expanded, width-2)
	case layout.WidgetNearby:
		title, lines = nearbyLines(d, st.Expanded)
	case layout.WidgetSmallStack:
		title, lines = smallStackLines(d)
	case layout.WidgetPressure:
		title, lines = pressureLines(d)
	case layout.WidgetVisibility:
		title, lines = visibilityLines(d)
	case layout.WidgetRounding:
		title, lines = roundingLines(d, st.Expanded)
	default:
		title, lines = id, nil
	}

	return renderBox(title, lines, st, width, height)
}

// renderBox draws the shared widget chrome: a rounded border whose color
// tracks focus and expansion, a styled title line, and content clamped to
// the inner area.
func renderBox(title string, lines []string, st WidgetState, width, height int) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	content := make([]string, 0, innerH)
	content = append(content, TitleStyle.Render(truncate.String(title, uint(innerW))))
	for _, line := range lines {
		if len(content) >= innerH {
			break
		}
		content = append(content, truncate.String(line, uint(innerW)))
	}
	for len(content) < innerH {
		content = append(content, "")
	}

	style := widgetBorderStyle(st.Focused, st.Expanded).
		Width(innerW).
		Height(innerH).
		MaxWidth(width)
	return style.Render(strings.Join(content, "\n"))
}

func bracketLines(d WidgetData, expanded bool) (string, []string) {
	if d.Market == nil {
		return "TEMP BRACKETS", []string{TextStyles.Muted.Render("loading board...")}
	}
	title := fmt.Sprintf("TEMP BRACKETS · %s", d.Market.Date.Format("Jan 2"))

	leader, _ := d.Market.Leader()
	var lines []string
	for _, b := range d.Market.Brackets {
		price := fmt.Sprintf("%2d¢", b.YesPrice)
		row := fmt.Sprintf("%-14s %s", b.Label, price)
		if expanded {
			row = fmt.Sprintf("%-14s Y %2d¢  N %2d¢  vol %d", b.Label, b.YesPrice, b.NoPrice, b.Volume)
		}
		if b.Label == leader.Label {
			row = lipgloss.NewStyle().Foreground(PriceUp).Bold(true).Render("▸ " + row)
		} else {
			row = "  " + TextStyles.Primary.Render(row)
		}
		lines = append(lines, row)
	}
	if expanded {
		lines = append(lines, "",
			TextStyles.Muted.Render("last trade "+FormatRelativeTime(d.Market.LastTrade)))
	}
	return title, lines
}

func modelLines(d WidgetData, expanded bool) (string, []string) {
	if d.Snapshot == nil {
		return "MODELS", nil
	}
	var lines []string
	var sum float64
	for _, m := range d.Snapshot.Models {
		sum += m.HighF
		lines = append(lines, fmt.Sprintf("%-6s hi %3.0f°  lo %3.0f°", m.Model, m.HighF, m.LowF))
	}
	if expanded && len(d.Snapshot.Models) > 0 {
		mean := sum / float64(len(d.Snapshot.Models))
		lines = append(lines, "", TextStyles.Secondary.Render(fmt.Sprintf("consensus hi %.1f°", mean)))
		for _, m := range d.Snapshot.Models {
			delta := m.HighF - mean
			style := TextStyles.Muted
			if delta > 0.5 {
				style = lipgloss.NewStyle().Foreground(PriceUp)
			} else if delta < -0.5 {
				style = lipgloss.NewStyle().Foreground(PriceDown)
			}
			lines = append(lines, style.Render(fmt.Sprintf("%-6s %+.1f° vs consensus", m.Model, delta)))
		}
	}
	return "MODELS", lines
}

// mapArt stands in for the radar tile; terminal cells have no imagery.
var mapArt = []string{
	`    .--.      .-.   `,
	` .-(    ).   (   )  `,
	`(___.__)__) (___)   `,
	`  ' ' ' '    ' '    `,
}

func mapLines(d WidgetData) (string, []string) {
	title := "RADAR"
	lines := append([]string{}, mapArt...)
	if d.Snapshot != nil {
		title = "RADAR · " + d.Snapshot.City.Station
		lines = append(lines, "",
			TextStyles.Secondary.Render(d.Snapshot.Current.Conditions),
			TextStyles.Muted.Render("obs "+FormatRelativeTime(d.Snapshot.Current.ObservedAt)))
	}
	return title, lines
}

func alertLines(d WidgetData, expanded bool, wrapW int) (string, []string) {
	if d.Snapshot == nil || len(d.Snapshot.Alerts) == 0 {
		return "ALERTS", []string{TextStyles.Muted.Render("no active alerts")}
	}
	title := fmt.Sprintf("ALERTS (%d)", len(d.Snapshot.Alerts))
	var lines []string
	for _, a := range d.Snapshot.Alerts {
		lines = append(lines, SeverityStyle(a.Severity).Render(SeverityIcon(a.Severity)+" "+a.Event))
		if expanded {
			for _, l := range wrapLines(a.Headline, wrapW) {
				lines = append(lines, "  "+TextStyles.Secondary.Render(l))
			}
			lines = append(lines, "  "+TextStyles.Muted.Render("until "+a.Expires.Format("Mon 15:04")))
		}
	}
	return title, lines
}

func discussionLines(d WidgetData, expanded bool, wrapW int) (string, []string) {
	if d.Snapshot == nil {
		return "DISCUSSION", nil
	}
	disc := d.Snapshot.Discussion
	title := "DISCUSSION · " + disc.Office
	var lines []string
	if expanded {
		lines = append(lines,
			TextStyles.Muted.Render("issued "+FormatRelativeTime(disc.Issued)),
			"")
	}
	lines = append(lines, wrapLines(disc.Text, wrapW)...)
	return title, lines
}

func nearbyLines(d WidgetData, expanded bool) (string, []string) {
	if d.Snapshot == nil {
		return "NEARBY", nil
	}
	var lines []string
	for _, s := range d.Snapshot.Nearby {
		row := fmt.Sprintf("%-5s %4.1fmi %4.0f°", s.Station, s.DistanceMi, s.TempF)
		if expanded {
			name := runewidth.Truncate(s.Name, 16, "…")
			row = fmt.Sprintf("%-5s %-16s %4.1fmi %4.0f° %s", s.Station, name, s.DistanceMi, s.TempF, s.Conditions)
		}
		lines = append(lines, row)
	}
	return "NEARBY", lines
}

func smallStackLines(d WidgetData) (string, []string) {
	if d.Snapshot == nil {
		return "CONDITIONS", nil
	}
	cur := d.Snapshot.Current
	lines := []string{
		TextStyles.Secondary.Render("SUN"),
		fmt.Sprintf("  ↑ %s  ↓ %s",
			d.Snapshot.Sunrise.Format("15:04"), d.Snapshot.Sunset.Format("15:04")),
		TextStyles.Secondary.Render("WIND"),
		fmt.Sprintf("  %s %.0f mph", cur.WindDir, cur.WindMPH),
		TextStyles.Secondary.Render("HUMIDITY"),
		fmt.Sprintf("  %d%%  dew %.0f°", cur.HumidityPct, cur.DewpointF),
	}
	return "CONDITIONS", lines
}

func pressureLines(d WidgetData) (string, []string) {
	if d.Snapshot == nil {
		return "PRESSURE", nil
	}
	cur := d.Snapshot.Current
	arrow := "→"
	style := lipgloss.NewStyle().Foreground(PriceFlat)
	switch cur.PressureTrend {
	case "rising":
		arrow = "↑"
		style = lipgloss.NewStyle().Foreground(PriceUp)
	case "falling":
		arrow = "↓"
		style = lipgloss.NewStyle().Foreground(PriceDown)
	}
	return "PRESSURE", []string{
		fmt.Sprintf("%.1f mb %s", cur.PressureMB, style.Render(arrow)),
		TextStyles.Muted.Render(cur.PressureTrend),
	}
}

func visibilityLines(d WidgetData) (string, []string) {
	if d.Snapshot == nil {
		return "VISIBILITY", nil
	}
	return "VISIBILITY", []string{
		fmt.Sprintf("%.1f mi", d.Snapshot.Current.VisibilityMi),
		TextStyles.Muted.Render(d.Snapshot.Current.Conditions),
	}
}

func roundingLines(d WidgetData, expanded bool) (string, []string) {
	if d.Snapshot == nil {
		return "SETTLEMENT", nil
	}
	temp := d.Snapshot.Current.TempF
	settled := market.SettlementRound(temp)
	lines := []string{
		fmt.Sprintf("obs %.1f° → settles %d°", temp, settled),
	}
	if expanded && d.Market != nil {
		found := false
		for _, b := range d.Market.Brackets {
			if b.Contains(settled) {
				lines = append(lines, "",
					TextStyles.Secondary.Render("in bracket"),
					lipgloss.NewStyle().Foreground(PriceUp).Render(fmt.Sprintf("  %s @ %d¢", b.Label, b.YesPrice)))
				found = true
				break
			}
		}
		if !found {
			lines = append(lines, TextStyles.Muted.Render("no matching bracket"))
		}
	}
	return "SETTLEMENT", lines
}

// wrapLines word-wraps text to width and splits to lines. Width below 1
// passes the text through unwrapped.
func wrapLines(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	return strings.Split(wordwrap.String(text, width), "\n")
}
