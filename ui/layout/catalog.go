// Package layout computes responsive grid placements for the dashboard
// widgets. Given the static widget catalog, the current expansion state, and
// a viewport width, it bin-packs every visible widget into a non-overlapping
// grid and emits an area template the renderer maps widget views onto.
package layout

import "fmt"

// Widget identifiers. The catalog is fixed for the process lifetime.
const (
	WidgetBrackets   = "brackets"   // prediction-market temperature brackets
	WidgetModels     = "models"     // multi-model forecast comparison
	WidgetMap        = "map"        // satellite/radar map panel
	WidgetAlerts     = "alerts"     // active NWS alerts
	WidgetDiscussion = "discussion" // area forecast discussion text
	WidgetNearby     = "nearby"     // nearby station observations
	WidgetSmallStack = "smallstack" // composite stack of small readouts
	WidgetPressure   = "pressure"   // barometric pressure trend
	WidgetVisibility = "visibility" // visibility readout
	WidgetRounding   = "rounding"   // settlement rounding helper
)

// Size is a widget footprint in grid cells.
type Size struct {
	Cols int
	Rows int
}

// Area returns the number of cells the footprint covers.
func (s Size) Area() int {
	return s.Cols * s.Rows
}

// WidgetConstraint describes one widget's footprints and placement behavior.
type WidgetConstraint struct {
	ID        string
	Collapsed Size
	Expanded  Size
	// Min is a hard floor; size resolution never shrinks a widget below it,
	// even when a breakpoint's column ceiling is narrower.
	Min      Size
	Priority int
	// CanHide marks widgets that may be dropped entirely when an expanded
	// space-hungry widget starves the grid.
	CanHide bool
	// IsStack marks a composite widget that renders StackWidgets inside a
	// single footprint. Packing treats it like any other widget.
	IsStack      bool
	StackWidgets []string
}

// DefaultCatalog returns a fresh copy of the built-in widget catalog,
// ordered by descending priority.
func DefaultCatalog() []WidgetConstraint {
	return []WidgetConstraint{
		{
			ID:        WidgetBrackets,
			Collapsed: Size{2, 2},
			Expanded:  Size{4, 3},
			Min:       Size{2, 2},
			Priority:  100,
		},
		{
			ID:        WidgetModels,
			Collapsed: Size{2, 2},
			Expanded:  Size{4, 2},
			Min:       Size{2, 1},
			Priority:  90,
		},
		{
			ID:        WidgetMap,
			Collapsed: Size{2, 2},
			Expanded:  Size{3, 3},
			Min:       Size{2, 2},
			Priority:  80,
		},
		{
			ID:        WidgetDiscussion,
			Collapsed: Size{2, 1},
			Expanded:  Size{4, 3},
			Min:       Size{2, 1},
			Priority:  70,
		},
		{
			ID:        WidgetAlerts,
			Collapsed: Size{1, 1},
			Expanded:  Size{2, 2},
			Min:       Size{1, 1},
			Priority:  60,
			CanHide:   true,
		},
		{
			ID:        WidgetNearby,
			Collapsed: Size{2, 1},
			Expanded:  Size{2, 2},
			Min:       Size{1, 1},
			Priority:  50,
			CanHide:   true,
		},
		{
			ID:           WidgetSmallStack,
			Collapsed:    Size{1, 2},
			Expanded:     Size{2, 2},
			Min:          Size{1, 1},
			Priority:     40,
			CanHide:      true,
			IsStack:      true,
			StackWidgets: []string{"sun", "wind", "humidity"},
		},
		{
			ID:        WidgetPressure,
			Collapsed: Size{1, 1},
			Expanded:  Size{2, 1},
			Min:       Size{1, 1},
			Priority:  30,
			CanHide:   true,
		},
		{
			ID:        WidgetVisibility,
			Collapsed: Size{1, 1},
			Expanded:  Size{2, 1},
			Min:       Size{1, 1},
			Priority:  20,
			CanHide:   true,
		},
		{
			ID:        WidgetRounding,
			Collapsed: Size{1, 1},
			Expanded:  Size{2, 2},
			Min:       Size{1, 1},
			Priority:  10,
			CanHide:   true,
		},
	}
}

// ValidateCatalog checks the Min <= Collapsed <= Expanded invariant the
// packer depends on. Used when loading catalog overrides from config.
func ValidateCatalog(catalog []WidgetConstraint) error {
	seen := make(map[string]bool, len(catalog))
	for _, c := range catalog {
		if c.ID == "" {
			return fmt.Errorf("catalog entry with empty id")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate catalog entry %q", c.ID)
		}
		seen[c.ID] = true

		if c.Min.Cols <= 0 || c.Min.Rows <= 0 {
			return fmt.Errorf("widget %q: min footprint must be positive, got %dx%d", c.ID, c.Min.Cols, c.Min.Rows)
		}
		if c.Min.Cols > c.Collapsed.Cols || c.Min.Rows > c.Collapsed.Rows {
			return fmt.Errorf("widget %q: collapsed %dx%d below min %dx%d", c.ID, c.Collapsed.Cols, c.Collapsed.Rows, c.Min.Cols, c.Min.Rows)
		}
		if c.Collapsed.Cols > c.Expanded.Cols || c.Collapsed.Rows > c.Expanded.Rows {
			return fmt.Errorf("widget %q: expanded %dx%d below collapsed %dx%d", c.ID, c.Expanded.Cols, c.Expanded.Rows, c.Collapsed.Cols, c.Collapsed.Rows)
		}
	}
	return nil
}
