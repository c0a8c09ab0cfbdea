package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wxdeck/ui/layout"
)

func TestPlacements(t *testing.T) {
	template := [][]string{
		{"a", "a", "b"},
		{"a", "a", "."},
		{"c", "c", "c"},
	}

	rects := Placements(template)

	require.Len(t, rects, 3)
	assert.Equal(t, Rect{Col: 0, Row: 0, Cols: 2, Rows: 2}, rects["a"])
	assert.Equal(t, Rect{Col: 2, Row: 0, Cols: 1, Rows: 1}, rects["b"])
	assert.Equal(t, Rect{Col: 0, Row: 2, Cols: 3, Rows: 1}, rects["c"])
}

func TestPlacementsEmptyTemplate(t *testing.T) {
	assert.Empty(t, Placements(nil))
	assert.Empty(t, Placements([][]string{{".", "."}}))
}

func TestMetricsFor(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		termW      int
		termH      int
		wantW      int
		wantH      int
	}{
		{"even split", 4, 6, 120, 36, 30, 6},
		{"truncating division", 4, 6, 121, 37, 30, 6},
		{"narrow terminal floors cell width", 4, 1, 20, 24, 8, 24},
		{"short terminal floors cell height", 2, 10, 80, 12, 40, 3},
		{"degenerate grid", 0, 0, 80, 24, 80, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &layout.LayoutResult{TotalCols: tt.cols, TotalRows: tt.rows}
			m := MetricsFor(res, tt.termW, tt.termH)
			assert.Equal(t, tt.wantW, m.CellW)
			assert.Equal(t, tt.wantH, m.CellH)
		})
	}
}

// fakeRender emits a box of the exact requested size filled with the
// widget's first letter, so compositing can be checked byte by byte.
func fakeRender(id string, width, height int) string {
	line := strings.Repeat(id[:1], width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func TestRenderGridCompositesBands(t *testing.T) {
	res := &layout.LayoutResult{
		Grid: layout.GridStyles{
			AreaTemplate: [][]string{
				{"a", "a", "b"},
				{"a", "a", "."},
			},
		},
		TotalCols: 3,
		TotalRows: 2,
	}
	m := CellMetrics{CellW: 4, CellH: 2}

	out := RenderGrid(res, m, fakeRender)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "aaaaaaaabbbb", lines[0])
	assert.Equal(t, "aaaaaaaabbbb", lines[1])
	assert.Equal(t, "aaaaaaaa    ", lines[2])
	assert.Equal(t, "aaaaaaaa    ", lines[3])
}

func TestRenderGridRowspanContinuesAcrossBands(t *testing.T) {
	// A widget spanning two grid rows must keep consuming its own lines in
	// the second band rather than restarting.
	res := &layout.LayoutResult{
		Grid: layout.GridStyles{
			AreaTemplate: [][]string{
				{"a", "b"},
				{"a", "c"},
			},
		},
		TotalCols: 2,
		TotalRows: 2,
	}
	m := CellMetrics{CellW: 3, CellH: 2}

	counting := func(id string, width, height int) string {
		lines := make([]string, height)
		for i := range lines {
			lines[i] = strings.Repeat(string(rune('0'+i)), width)
		}
		return strings.Join(lines, "\n")
	}

	out := RenderGrid(res, m, counting)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	// Widget a's lines 2 and 3 appear in the second band.
	assert.Equal(t, "222000", lines[2])
	assert.Equal(t, "333111", lines[3])
}

func TestRenderGridUniformLineWidth(t *testing.T) {
	res := &layout.LayoutResult{
		Grid: layout.GridStyles{
			AreaTemplate: [][]string{
				{"a", "a", "b", "c"},
				{"d", ".", "b", "c"},
			},
		},
		TotalCols: 4,
		TotalRows: 2,
	}
	m := CellMetrics{CellW: 5, CellH: 3}

	out := RenderGrid(res, m, fakeRender)
	for i, line := range strings.Split(out, "\n") {
		assert.Equal(t, 20, len(line), "line %d", i)
	}
}

func TestRenderGridEmptyLayout(t *testing.T) {
	res := &layout.LayoutResult{}
	assert.Equal(t, "", RenderGrid(res, CellMetrics{CellW: 4, CellH: 2}, fakeRender))
}

func TestRenderGridShortRenderPadded(t *testing.T) {
	// A renderer that returns fewer lines than requested still yields a
	// rectangular frame.
	res := &layout.LayoutResult{
		Grid: layout.GridStyles{
			AreaTemplate: [][]string{{"a"}},
		},
		TotalCols: 1,
		TotalRows: 1,
	}
	m := CellMetrics{CellW: 6, CellH: 4}

	short := func(id string, width, height int) string {
		return strings.Repeat("x", width)
	}

	out := RenderGrid(res, m, short)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "xxxxxx", lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, "      ", line)
	}
}
