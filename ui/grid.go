package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wxdeck/log"
	"wxdeck/ui/layout"
)

// Rect is a widget's placement in grid cells.
type Rect struct {
	Col  int
	Row  int
	Cols int
	Rows int
}

// Placements extracts each placed widget's bounding rect from the area
// template. Placements are solid rectangles, so min/max cell tracking is
// exact.
func Placements(template [][]string) map[string]Rect {
	type bounds struct{ minR, maxR, minC, maxC int }
	seen := make(map[string]*bounds)

	for r, row := range template {
		for c, cell := range row {
			if cell == layout.EmptyCell {
				continue
			}
			b, ok := seen[cell]
			if !ok {
				seen[cell] = &bounds{minR: r, maxR: r, minC: c, maxC: c}
				continue
			}
			if r > b.maxR {
				b.maxR = r
			}
			if c < b.minC {
				b.minC = c
			}
			if c > b.maxC {
				b.maxC = c
			}
		}
	}

	rects := make(map[string]Rect, len(seen))
	for id, b := range seen {
		rects[id] = Rect{
			Col:  b.minC,
			Row:  b.minR,
			Cols: b.maxC - b.minC + 1,
			Rows: b.maxR - b.minR + 1,
		}
	}
	return rects
}

// CellMetrics converts terminal space into per-cell dimensions for a grid.
type CellMetrics struct {
	CellW int
	CellH int
}

// minCellH keeps widgets tall enough for a border plus one content line.
const minCellH = 3

// MetricsFor divides the terminal area across the grid. Width is split
// evenly per column; height per row, floored so small terminals still get
// usable boxes (the bottom of the grid may then run past the screen).
func MetricsFor(res *layout.LayoutResult, termWidth, termHeight int) CellMetrics {
	cols := res.TotalCols
	if cols < 1 {
		cols = 1
	}
	rows := res.TotalRows
	if rows < 1 {
		rows = 1
	}

	cellW := termWidth / cols
	if cellW < 8 {
		cellW = 8
	}
	cellH := termHeight / rows
	if cellH < minCellH {
		cellH = minCellH
	}
	return CellMetrics{CellW: cellW, CellH: cellH}
}

// WidgetRenderFunc renders one widget's full box at an exact width and
// height in terminal cells.
type WidgetRenderFunc func(id string, width, height int) string

// RenderGrid composites the packed layout into one frame. Each terminal row
// of the output is assembled by walking the corresponding template row and
// splicing the pre-rendered widget lines side by side; rectangles tile the
// grid, so plain concatenation is exact.
func RenderGrid(res *layout.LayoutResult, m CellMetrics, render WidgetRenderFunc) string {
	template := res.Grid.AreaTemplate
	if len(template) == 0 {
		return ""
	}

	rects := Placements(template)
	log.RenderTrace("grid", "compositing %d widgets at %dx%d cells",
		len(rects), m.CellW, m.CellH)

	// Pre-render every widget at its final size.
	rendered := make(map[string][]string, len(rects))
	for id, rect := range rects {
		box := render(id, rect.Cols*m.CellW, rect.Rows*m.CellH)
		rendered[id] = strings.Split(box, "\n")
	}

	blank := strings.Repeat(" ", m.CellW)

	var sb strings.Builder
	for r, row := range template {
		for line := 0; line < m.CellH; line++ {
			if r > 0 || line > 0 {
				sb.WriteByte('\n')
			}
			for c := 0; c < len(row); {
				id := row[c]
				if id == layout.EmptyCell {
					sb.WriteString(blank)
					c++
					continue
				}
				rect := rects[id]
				if c != rect.Col {
					// Interior column of a widget handled at its left edge.
					c++
					continue
				}
				lineIdx := (r-rect.Row)*m.CellH + line
				lines := rendered[id]
				if lineIdx < len(lines) {
					sb.WriteString(padLine(lines[lineIdx], rect.Cols*m.CellW))
				} else {
					sb.WriteString(strings.Repeat(" ", rect.Cols*m.CellW))
				}
				c += rect.Cols
			}
		}
	}
	return sb.String()
}

// padLine pads a rendered line with spaces to the exact visible width.
// Lipgloss already clamps overlong lines via MaxWidth on the box style.
func padLine(line string, width int) string {
	visible := lipgloss.Width(line)
	if visible >= width {
		return line
	}
	return line + strings.Repeat(" ", width-visible)
}
