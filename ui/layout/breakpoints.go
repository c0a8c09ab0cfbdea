package layout

// Breakpoint is a named viewport-width bucket. Thresholds are in viewport
// pixels; the TUI adapter converts terminal columns before calling in.
type Breakpoint int

const (
	// BreakpointXS is for viewports up to 480px. Single column.
	BreakpointXS Breakpoint = iota

	// BreakpointMobile is for viewports 481-640px. Two columns.
	BreakpointMobile

	// BreakpointTablet is for viewports 641-1024px. Three columns.
	BreakpointTablet

	// BreakpointDesktop is for viewports 1025px and up, and the fallback for
	// any width that matches no declared range. Four columns.
	BreakpointDesktop
)

// Width thresholds (inclusive upper bounds).
const (
	XSMaxWidth     = 480
	MobileMaxWidth = 640
	TabletMaxWidth = 1024
)

// String returns the breakpoint name used in cache keys and traces.
func (b Breakpoint) String() string {
	switch b {
	case BreakpointXS:
		return "xs"
	case BreakpointMobile:
		return "mobile"
	case BreakpointTablet:
		return "tablet"
	case BreakpointDesktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// BreakpointConfig holds the per-breakpoint grid parameters.
type BreakpointConfig struct {
	// MinWidth and MaxWidth bound the viewport range; MaxWidth 0 means
	// unbounded above.
	MinWidth int
	MaxWidth int

	// MaxCols is the absolute column ceiling any single widget may occupy.
	MaxCols int

	// PreferredCols is the column count the grid itself is sized to.
	PreferredCols int
}

var breakpointConfigs = map[Breakpoint]BreakpointConfig{
	BreakpointXS:      {MinWidth: 0, MaxWidth: XSMaxWidth, MaxCols: 1, PreferredCols: 1},
	BreakpointMobile:  {MinWidth: XSMaxWidth + 1, MaxWidth: MobileMaxWidth, MaxCols: 2, PreferredCols: 2},
	BreakpointTablet:  {MinWidth: MobileMaxWidth + 1, MaxWidth: TabletMaxWidth, MaxCols: 3, PreferredCols: 3},
	BreakpointDesktop: {MinWidth: TabletMaxWidth + 1, MaxCols: 4, PreferredCols: 4},
}

// Config returns the grid parameters for the breakpoint.
func (b Breakpoint) Config() BreakpointConfig {
	if cfg, ok := breakpointConfigs[b]; ok {
		return cfg
	}
	return breakpointConfigs[BreakpointDesktop]
}

// ResolveBreakpoint maps a viewport width to exactly one breakpoint via
// ordered threshold checks. Total over all non-negative widths.
func ResolveBreakpoint(widthPx int) Breakpoint {
	switch {
	case widthPx <= XSMaxWidth:
		return BreakpointXS
	case widthPx <= MobileMaxWidth:
		return BreakpointMobile
	case widthPx <= TabletMaxWidth:
		return BreakpointTablet
	default:
		return BreakpointDesktop
	}
}
