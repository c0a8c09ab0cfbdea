package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wxdeck/testing/harness"
	"wxdeck/testing/snapshot"
	"wxdeck/ui/layout"
)

// loadedDashboard builds a dashboard, sizes it, and delivers the static
// provider's data synchronously.
func loadedDashboard(t *testing.T, cityID string, width, height int) (*dashboard, *harness.Harness) {
	t.Helper()

	d := newDashboard(context.Background(), cityID)
	h := harness.New(t, d, width, height)

	// A fresh install opens on the help screen; dismiss it.
	if d.state == stateHelp {
		h.SendKey("x")
	}

	cmd := d.fetchCmd()
	require.NotNil(t, cmd)
	h.SendMsg(cmd())

	require.False(t, d.loading)
	require.NotNil(t, d.result)
	return d, h
}

func TestDashboardRendersWidgets(t *testing.T) {
	d, h := loadedDashboard(t, "nyc", 160, 48)

	snap := snapshot.New(t)
	view := h.View()

	snap.AssertContains(view, "TEMP BRACKETS")
	snap.AssertContains(view, "MODELS")
	snap.AssertContains(view, "RADAR")
	snap.AssertContains(view, "DISCUSSION")

	// New York carries no canned alerts, so the alerts widget is absent.
	assert.False(t, d.result.Placed(layout.WidgetAlerts))
	snap.AssertNotContains(view, "ALERTS")
}

func TestDashboardRendersAtCommonSizes(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		_, h := loadedDashboard(t, "nyc", size.Width, size.Height)
		view := h.View()
		assert.NotEmpty(t, view)
		assert.Greater(t, snapshot.Lines(view), 3)
	})
}

func TestDashboardExpandToggle(t *testing.T) {
	d, h := loadedDashboard(t, "nyc", 160, 48)

	focus := d.focusID
	require.NotEmpty(t, focus)

	h.SendSpecialKey(tea.KeyEnter)
	assert.True(t, d.expanded[focus])

	h.SendSpecialKey(tea.KeyEnter)
	assert.False(t, d.expanded[focus])
}

func TestDashboardFocusCycle(t *testing.T) {
	d, h := loadedDashboard(t, "nyc", 160, 48)

	seen := map[string]bool{d.focusID: true}
	for i := 0; i < len(d.result.AreaMap)-1; i++ {
		h.SendSpecialKey(tea.KeyTab)
		seen[d.focusID] = true
	}
	assert.Len(t, seen, len(d.result.AreaMap))
}

func TestDashboardDismissAndRestore(t *testing.T) {
	d, h := loadedDashboard(t, "nyc", 160, 48)

	placed := len(d.result.AreaMap)
	victim := d.focusID

	h.SendKey("x")
	assert.False(t, d.result.Placed(victim))
	assert.Len(t, d.result.AreaMap, placed-1)
	assert.NotEqual(t, victim, d.focusID)

	h.SendKey("u")
	assert.True(t, d.result.Placed(victim))
	assert.Len(t, d.result.AreaMap, placed)
}

func TestDashboardCityCycle(t *testing.T) {
	d, h := loadedDashboard(t, "nyc", 160, 48)

	cmd := h.SendKey("n")
	require.NotNil(t, cmd)
	assert.Equal(t, "chi", d.city.ID)
	assert.True(t, d.loading)

	h.SendMsg(cmd())
	assert.False(t, d.loading)
	assert.Equal(t, "chi", d.data.Snapshot.City.ID)
}

func TestDashboardCitySelectorOverlay(t *testing.T) {
	d, h := loadedDashboard(t, "nyc", 160, 48)

	h.SendKey("c")
	assert.Equal(t, stateCitySelect, d.state)
	snapshot.New(t).AssertContains(h.View(), "Select City")

	h.SendSpecialKey(tea.KeyEsc)
	assert.Equal(t, stateDefault, d.state)
}

func TestDashboardHelpScreen(t *testing.T) {
	d, h := loadedDashboard(t, "nyc", 160, 48)

	h.SendKey("?")
	assert.Equal(t, stateHelp, d.state)
	snapshot.New(t).AssertContains(h.View(), "wxdeck keys")

	h.SendKey("x")
	assert.Equal(t, stateDefault, d.state)
}

func TestDashboardResizeRecomputes(t *testing.T) {
	d, h := loadedDashboard(t, "nyc", 200, 50)
	require.Equal(t, layout.BreakpointDesktop, d.result.Breakpoint)
	wide := d.result.TotalCols

	// 40 columns at the default 8 px per cell is well inside mobile. The
	// resize is debounced; deliver the queued message.
	cmd := h.Resize(40, 50)
	require.NotNil(t, cmd)
	h.SendMsg(cmd())
	assert.Less(t, d.result.TotalCols, wide)
	assert.NotEqual(t, layout.BreakpointDesktop, d.result.Breakpoint)
}

func TestDashboardAlertsPlacedForMiami(t *testing.T) {
	d, h := loadedDashboard(t, "mia", 160, 48)

	assert.True(t, d.result.Placed(layout.WidgetAlerts))
	snapshot.New(t).AssertContains(h.View(), "ALERTS")
}
