package ui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wxdeck/market"
	"wxdeck/ui/layout"
	"wxdeck/weather"
)

func testData(t *testing.T) WidgetData {
	t.Helper()
	city, ok := weather.CityByID("nyc")
	require.True(t, ok)

	snap, err := weather.NewStaticProvider().Snapshot(context.Background(), city)
	require.NoError(t, err)

	board, err := market.NewStaticSource().TempBrackets(context.Background(), city.ID)
	require.NoError(t, err)

	return WidgetData{Snapshot: snap, Market: board}
}

func allWidgetIDs() []string {
	return []string{
		layout.WidgetBrackets,
		layout.WidgetModels,
		layout.WidgetMap,
		layout.WidgetAlerts,
		layout.WidgetDiscussion,
		layout.WidgetNearby,
		layout.WidgetSmallStack,
		layout.WidgetPressure,
		layout.WidgetVisibility,
		layout.WidgetRounding,
	}
}

func TestRenderWidgetExactDimensions(t *testing.T) {
	d := testData(t)

	for _, id := range allWidgetIDs() {
		t.Run(id, func(t *testing.T) {
			out := RenderWidget(id, d, WidgetState{}, 30, 10)
			lines := strings.Split(out, "\n")
			assert.Len(t, lines, 10)
			for i, line := range lines {
				assert.Equal(t, 30, lipgloss.Width(line), "line %d", i)
			}
		})
	}
}

func TestRenderWidgetExpandedDimensions(t *testing.T) {
	d := testData(t)

	for _, id := range allWidgetIDs() {
		t.Run(id, func(t *testing.T) {
			out := RenderWidget(id, d, WidgetState{Expanded: true}, 48, 14)
			lines := strings.Split(out, "\n")
			assert.Len(t, lines, 14)
			for i, line := range lines {
				assert.Equal(t, 48, lipgloss.Width(line), "line %d", i)
			}
		})
	}
}

func TestRenderWidgetNilDataDoesNotPanic(t *testing.T) {
	for _, id := range allWidgetIDs() {
		t.Run(id, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RenderWidget(id, WidgetData{}, WidgetState{Focused: true}, 24, 6)
			})
		})
	}
}

func TestRenderWidgetTinyBox(t *testing.T) {
	d := testData(t)
	assert.NotPanics(t, func() {
		RenderWidget(layout.WidgetBrackets, d, WidgetState{}, 3, 3)
		RenderWidget(layout.WidgetDiscussion, d, WidgetState{Expanded: true}, 1, 1)
	})
}

func TestBracketLinesMarkLeader(t *testing.T) {
	d := testData(t)
	_, lines := bracketLines(d, false)

	leader, ok := d.Market.Leader()
	require.True(t, ok)

	marked := 0
	for _, l := range lines {
		if strings.Contains(l, "▸") {
			marked++
			assert.Contains(t, l, leader.Label)
		}
	}
	assert.Equal(t, 1, marked)
}

func TestRoundingLinesUseSettlement(t *testing.T) {
	d := testData(t)
	_, lines := roundingLines(d, true)
	require.NotEmpty(t, lines)

	settled := market.SettlementRound(d.Snapshot.Current.TempF)
	assert.Contains(t, lines[0], fmt.Sprintf("settles %d°", settled))
	assert.Contains(t, strings.Join(lines, "\n"), "bracket")
}

func TestAlertLinesCarrySeverityIcons(t *testing.T) {
	// Miami carries canned alerts; New York does not.
	city, ok := weather.CityByID("mia")
	require.True(t, ok)
	snap, err := weather.NewStaticProvider().Snapshot(context.Background(), city)
	require.NoError(t, err)
	d := WidgetData{Snapshot: snap}
	require.NotEmpty(t, d.Snapshot.Alerts)

	_, lines := alertLines(d, false, 40)
	require.Len(t, lines, len(d.Snapshot.Alerts))
	for i, a := range d.Snapshot.Alerts {
		assert.Contains(t, lines[i], SeverityIcon(a.Severity))
	}
}

func TestWrapLines(t *testing.T) {
	lines := wrapLines("one two three four five", 9)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 9)
	}
	assert.Equal(t, []string{"short"}, wrapLines("short", 40))
	assert.Equal(t, []string{"no width"}, wrapLines("no width", 0))
}
