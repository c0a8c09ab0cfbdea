package layout

// xsExemptPriority is the priority at or above which widgets keep their full
// row count at the xs breakpoint. Stacked widgets are always exempt.
const xsExemptPriority = 70

// xsMaxRows caps non-exempt widgets at the xs breakpoint.
const xsMaxRows = 2

// mobileMaxCols caps widget width at the mobile breakpoint.
const mobileMaxCols = 2

// sizeTransform adjusts a clamped footprint for one breakpoint. Every
// widget's size passes through its breakpoint's transform before packing.
type sizeTransform func(c WidgetConstraint, s Size) Size

func identityTransform(_ WidgetConstraint, s Size) Size {
	return s
}

func xsTransform(c WidgetConstraint, s Size) Size {
	s.Cols = 1
	if !xsExempt(c) && s.Rows > xsMaxRows {
		s.Rows = xsMaxRows
	}
	return s
}

func mobileTransform(_ WidgetConstraint, s Size) Size {
	if s.Cols > mobileMaxCols {
		s.Cols = mobileMaxCols
	}
	return s
}

func xsExempt(c WidgetConstraint) bool {
	return c.Priority >= xsExemptPriority || c.IsStack
}

func transformFor(bp Breakpoint) sizeTransform {
	switch bp {
	case BreakpointXS:
		return xsTransform
	case BreakpointMobile:
		return mobileTransform
	default:
		return identityTransform
	}
}

// resolveSize computes the effective footprint a widget requests from the
// packer at the given breakpoint. The declared minimum is a hard floor: when
// clamping would shrink below it, the floor wins and the grid is widened by
// the caller instead.
func resolveSize(c WidgetConstraint, expanded bool, bp Breakpoint) Size {
	s := c.Collapsed
	if expanded {
		s = c.Expanded
	}

	if maxCols := bp.Config().MaxCols; s.Cols > maxCols {
		s.Cols = maxCols
	}
	s = transformFor(bp)(c, s)

	if s.Cols < c.Min.Cols {
		s.Cols = c.Min.Cols
	}
	if s.Rows < c.Min.Rows {
		s.Rows = c.Min.Rows
	}
	return s
}
