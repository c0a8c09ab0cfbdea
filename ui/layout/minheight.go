package layout

// defaultPixelMinHeight is returned for widgets absent from both tables.
const defaultPixelMinHeight = 200

// Pixel minimum heights used for non-grid CSS-style sizing hints. Collapsed
// values; the expanded table overrides when the widget is expanded.
var defaultMinHeights = map[string]int{
	WidgetBrackets:   320,
	WidgetModels:     300,
	WidgetMap:        340,
	WidgetDiscussion: 260,
	WidgetAlerts:     180,
	WidgetNearby:     220,
	WidgetSmallStack: 240,
	WidgetPressure:   160,
	WidgetVisibility: 160,
	WidgetRounding:   160,
}

var defaultExpandedMinHeights = map[string]int{
	WidgetBrackets:   520,
	WidgetModels:     460,
	WidgetMap:        560,
	WidgetDiscussion: 480,
	WidgetAlerts:     300,
	WidgetNearby:     320,
	WidgetSmallStack: 360,
	WidgetPressure:   240,
	WidgetVisibility: 240,
	WidgetRounding:   280,
}

// DefaultMinHeights returns a copy of the collapsed min-height table, for
// callers that fold in user overrides before constructing an engine.
func DefaultMinHeights() map[string]int {
	out := make(map[string]int, len(defaultMinHeights))
	for k, v := range defaultMinHeights {
		out[k] = v
	}
	return out
}

// DefaultExpandedMinHeights returns a copy of the expanded min-height table.
func DefaultExpandedMinHeights() map[string]int {
	out := make(map[string]int, len(defaultExpandedMinHeights))
	for k, v := range defaultExpandedMinHeights {
		out[k] = v
	}
	return out
}

// MinHeight returns the pixel minimum-height hint for a widget. The expanded
// override table is consulted first when expanded is true; unknown widgets
// get the generic default.
func (e *Engine) MinHeight(id string, expanded bool) int {
	if expanded {
		if h, ok := e.expandedHeights[id]; ok {
			return h
		}
	}
	if h, ok := e.minHeights[id]; ok {
		return h
	}
	return defaultPixelMinHeight
}
