package layout

import (
	"sort"
	"strings"

	"wxdeck/log"
)

// GridStyles describes the packed grid for the renderer.
type GridStyles struct {
	Columns int
	Rows    int
	// AreaTemplate is the row-major matrix of widget IDs; empty cells hold
	// EmptyCell.
	AreaTemplate [][]string
}

// TemplateString serializes the area template as quoted rows, one per line,
// the form used by the layout subcommand and clipboard copy.
func (g GridStyles) TemplateString() string {
	var sb strings.Builder
	for i, row := range g.AreaTemplate {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.Join(row, " "))
		sb.WriteByte('"')
	}
	return sb.String()
}

// LayoutResult is the engine's output for one (expansion state, viewport)
// pair. Results are shared via the cache; callers must treat them as
// read-only.
type LayoutResult struct {
	Grid GridStyles
	// AreaMap lists the widget IDs actually placed, in placement order.
	AreaMap []string
	// HiddenWidgets lists IDs excluded by the space-pressure rules, sorted.
	HiddenWidgets []string
	Breakpoint    Breakpoint
	TotalCols     int
	TotalRows     int
}

// Placed reports whether the widget received a cell in this layout.
func (r *LayoutResult) Placed(id string) bool {
	for _, placed := range r.AreaMap {
		if placed == id {
			return true
		}
	}
	return false
}

// Engine owns the widget catalog, the hide rules, and a bounded layout
// cache. Construct one per dashboard; it is not safe for concurrent use and
// is only ever driven from the UI loop.
type Engine struct {
	catalog []WidgetConstraint
	byID    map[string]WidgetConstraint
	rules   []HideRule
	cache   *resultCache

	minHeights      map[string]int
	expandedHeights map[string]int
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the default widget catalog.
func WithCatalog(catalog []WidgetConstraint) Option {
	return func(e *Engine) { e.catalog = catalog }
}

// WithHideRules replaces the default space-pressure rules.
func WithHideRules(rules []HideRule) Option {
	return func(e *Engine) { e.rules = rules }
}

// WithCacheCapacity overrides the layout cache bound.
func WithCacheCapacity(n int) Option {
	return func(e *Engine) { e.cache = newResultCache(n) }
}

// WithMinHeights replaces the pixel min-height tables.
func WithMinHeights(base, expanded map[string]int) Option {
	return func(e *Engine) {
		e.minHeights = base
		e.expandedHeights = expanded
	}
}

// NewEngine builds an engine over the default catalog, rules, and height
// tables unless options say otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		catalog:         DefaultCatalog(),
		rules:           DefaultHideRules(),
		cache:           newResultCache(DefaultCacheCapacity),
		minHeights:      defaultMinHeights,
		expandedHeights: defaultExpandedMinHeights,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.byID = make(map[string]WidgetConstraint, len(e.catalog))
	for _, c := range e.catalog {
		e.byID[c.ID] = c
	}
	return e
}

// Catalog returns the engine's widget constraints in catalog order.
func (e *Engine) Catalog() []WidgetConstraint {
	return e.catalog
}

// Compute resolves the breakpoint for the viewport width, sizes every
// catalog widget for the current expansion state, bin-packs the visible
// ones, and returns the grid description. Unknown IDs in expanded or absent
// are ignored; neither input is mutated. Identical inputs return the same
// cached *LayoutResult.
func (e *Engine) Compute(expanded map[string]bool, viewportWidthPx int, absent []string) *LayoutResult {
	bp := ResolveBreakpoint(viewportWidthPx)
	cfg := bp.Config()

	key := e.cacheKey(bp, expanded, absent)
	if r, ok := e.cache.get(key); ok {
		log.LayoutTrace("cache hit %s", key)
		return r
	}

	absentSet := make(map[string]bool, len(absent))
	for _, id := range absent {
		if _, known := e.byID[id]; known {
			absentSet[id] = true
		}
	}

	// Expansion flags restricted to catalog widgets; rule evaluation and
	// sizing both read this filtered view.
	active := make(map[string]bool, len(expanded))
	for id, on := range expanded {
		if _, known := e.byID[id]; known && on {
			active[id] = true
		}
	}

	hiddenSet := applyHideRules(e.rules, e.byID, active, cfg.MaxCols)

	var hidden []string
	sized := make([]sizedWidget, 0, len(e.catalog))
	for _, c := range e.catalog {
		if absentSet[c.ID] {
			continue
		}
		if hiddenSet[c.ID] {
			hidden = append(hidden, c.ID)
			continue
		}
		sized = append(sized, sizedWidget{
			ID:       c.ID,
			Size:     resolveSize(c, active[c.ID], bp),
			Priority: c.Priority,
		})
	}
	sort.Strings(hidden)
	sortForPacking(sized)

	// The grid is sized to the breakpoint's preferred columns, widened when
	// a widget's floor is wider than the ceiling allows.
	totalCols := cfg.PreferredCols
	for _, w := range sized {
		if w.Size.Cols > totalCols {
			totalCols = w.Size.Cols
		}
	}

	grid := pack(sized, totalCols)

	areaMap := make([]string, 0, len(sized))
	for _, w := range sized {
		areaMap = append(areaMap, w.ID)
	}

	r := &LayoutResult{
		Grid: GridStyles{
			Columns:      totalCols,
			Rows:         len(grid),
			AreaTemplate: grid,
		},
		AreaMap:       areaMap,
		HiddenWidgets: hidden,
		Breakpoint:    bp,
		TotalCols:     totalCols,
		TotalRows:     len(grid),
	}

	log.LayoutTrace("computed %s: %dx%d, %d placed, %d hidden",
		key, r.TotalCols, r.TotalRows, len(r.AreaMap), len(r.HiddenWidgets))
	e.cache.put(key, r)
	return r
}

// cacheKey canonicalizes the inputs: breakpoint name, sorted expanded IDs,
// sorted absent IDs. Collapsed widgets and unknown IDs never influence the
// key.
func (e *Engine) cacheKey(bp Breakpoint, expanded map[string]bool, absent []string) string {
	ids := make([]string, 0, len(expanded))
	for id, on := range expanded {
		if _, known := e.byID[id]; known && on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	gone := make([]string, 0, len(absent))
	for _, id := range absent {
		if _, known := e.byID[id]; known {
			gone = append(gone, id)
		}
	}
	sort.Strings(gone)

	return bp.String() + "|" + strings.Join(ids, ",") + "|" + strings.Join(gone, ",")
}

// CacheLen reports the number of memoized layouts, for diagnostics.
func (e *Engine) CacheLen() int {
	return e.cache.len()
}
