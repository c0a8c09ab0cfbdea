package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSize(t *testing.T) {
	brackets := WidgetConstraint{
		ID:        WidgetBrackets,
		Collapsed: Size{2, 2},
		Expanded:  Size{4, 3},
		Min:       Size{2, 2},
		Priority:  100,
	}
	alerts := WidgetConstraint{
		ID:        WidgetAlerts,
		Collapsed: Size{1, 1},
		Expanded:  Size{2, 2},
		Min:       Size{1, 1},
		Priority:  60,
		CanHide:   true,
	}
	stack := WidgetConstraint{
		ID:        WidgetSmallStack,
		Collapsed: Size{1, 2},
		Expanded:  Size{2, 2},
		Min:       Size{1, 1},
		Priority:  40,
		IsStack:   true,
	}

	tests := []struct {
		name     string
		c        WidgetConstraint
		expanded bool
		bp       Breakpoint
		want     Size
	}{
		{
			name: "collapsed footprint at desktop",
			c:    brackets, bp: BreakpointDesktop,
			want: Size{2, 2},
		},
		{
			name: "expanded footprint at desktop",
			c:    brackets, expanded: true, bp: BreakpointDesktop,
			want: Size{4, 3},
		},
		{
			name: "expanded cols clamped to tablet ceiling",
			c:    brackets, expanded: true, bp: BreakpointTablet,
			want: Size{3, 3},
		},
		{
			name: "mobile caps cols at two",
			c:    brackets, expanded: true, bp: BreakpointMobile,
			want: Size{2, 3},
		},
		{
			name: "xs floor wins over single-column clamp",
			c:    brackets, bp: BreakpointXS,
			// Forced to one column, then the 2x2 floor pulls it back; the
			// engine widens the grid instead.
			want: Size{2, 2},
		},
		{
			name: "xs forces single column for small widgets",
			c:    alerts, expanded: true, bp: BreakpointXS,
			want: Size{1, 2},
		},
		{
			name: "xs caps rows for non-exempt widgets",
			c: WidgetConstraint{
				ID: WidgetRounding, Collapsed: Size{1, 4}, Expanded: Size{2, 4},
				Min: Size{1, 1}, Priority: 10,
			},
			bp:   BreakpointXS,
			want: Size{1, 2},
		},
		{
			name: "xs row cap exempts high priority",
			c: WidgetConstraint{
				ID: WidgetDiscussion, Collapsed: Size{2, 4}, Expanded: Size{4, 4},
				Min: Size{1, 1}, Priority: 70,
			},
			bp:   BreakpointXS,
			want: Size{1, 4},
		},
		{
			name: "xs row cap exempts stacks",
			c:    stack, bp: BreakpointXS,
			want: Size{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveSize(tt.c, tt.expanded, tt.bp)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSizeNeverBelowMin(t *testing.T) {
	// Across the whole default catalog, every breakpoint, both expansion
	// states: the declared floor always holds.
	for _, c := range DefaultCatalog() {
		for _, bp := range []Breakpoint{BreakpointXS, BreakpointMobile, BreakpointTablet, BreakpointDesktop} {
			for _, expanded := range []bool{false, true} {
				got := resolveSize(c, expanded, bp)
				assert.GreaterOrEqual(t, got.Cols, c.Min.Cols, "%s cols at %s expanded=%v", c.ID, bp, expanded)
				assert.GreaterOrEqual(t, got.Rows, c.Min.Rows, "%s rows at %s expanded=%v", c.ID, bp, expanded)
			}
		}
	}
}
