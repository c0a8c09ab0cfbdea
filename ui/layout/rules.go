package layout

// HideRule hides low-priority widgets when an expanded space-hungry widget
// would starve the grid. The rule fires when Trigger is expanded and the
// breakpoint's column ceiling is at most WhenMaxCols; it is suppressed when
// any Unless widget is expanded at the same time (known-good pairings).
type HideRule struct {
	Trigger     string
	Hides       []string
	Unless      []string
	WhenMaxCols int
}

// DefaultHideRules returns the built-in space-pressure rules.
func DefaultHideRules() []HideRule {
	return []HideRule{
		{
			// An expanded map dominates a narrow grid. The brackets widget is
			// the exception: expanded map plus expanded brackets are known to
			// fit together, so nothing is hidden then.
			Trigger:     WidgetMap,
			Hides:       []string{WidgetAlerts, WidgetSmallStack},
			Unless:      []string{WidgetBrackets},
			WhenMaxCols: 4,
		},
		{
			// A full-width forecast discussion on a two-column grid pushes
			// the minor readouts below the fold; drop them instead.
			Trigger:     WidgetDiscussion,
			Hides:       []string{WidgetPressure, WidgetVisibility},
			WhenMaxCols: 2,
		},
	}
}

// applyHideRules evaluates every rule against the current expansion state
// and returns the IDs to exclude from placement. Only widgets flagged
// CanHide in the catalog are ever hidden.
func applyHideRules(rules []HideRule, byID map[string]WidgetConstraint, expanded map[string]bool, maxCols int) map[string]bool {
	hidden := make(map[string]bool)
	for _, r := range rules {
		if !expanded[r.Trigger] || maxCols > r.WhenMaxCols {
			continue
		}
		suppressed := false
		for _, u := range r.Unless {
			if expanded[u] {
				suppressed = true
				break
			}
		}
		if suppressed {
			continue
		}
		for _, id := range r.Hides {
			if c, ok := byID[id]; ok && c.CanHide {
				hidden[id] = true
			}
		}
	}
	return hidden
}
