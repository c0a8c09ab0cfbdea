package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortForPacking(t *testing.T) {
	ws := []sizedWidget{
		{ID: "c", Size: Size{1, 1}, Priority: 10},
		{ID: "b", Size: Size{2, 2}, Priority: 50},
		{ID: "a", Size: Size{1, 1}, Priority: 50},
		{ID: "d", Size: Size{1, 1}, Priority: 50},
	}

	sortForPacking(ws)

	// Priority first, then area, then ID.
	assert.Equal(t, "b", ws[0].ID)
	assert.Equal(t, "a", ws[1].ID)
	assert.Equal(t, "d", ws[2].ID)
	assert.Equal(t, "c", ws[3].ID)
}

func TestPackGoldenSmall(t *testing.T) {
	ws := []sizedWidget{
		{ID: "a", Size: Size{2, 2}, Priority: 100},
		{ID: "b", Size: Size{2, 1}, Priority: 90},
		{ID: "c", Size: Size{1, 1}, Priority: 80},
		{ID: "d", Size: Size{1, 1}, Priority: 70},
	}
	sortForPacking(ws)

	grid := pack(ws, 2)

	want := [][]string{
		{"a", "a"},
		{"a", "a"},
		{"b", "b"},
		{"c", "d"},
	}
	assert.Equal(t, want, grid)
}

func TestPackNoOverlapAndCellCounts(t *testing.T) {
	ws := []sizedWidget{
		{ID: "big", Size: Size{3, 2}, Priority: 90},
		{ID: "tall", Size: Size{1, 3}, Priority: 80},
		{ID: "wide", Size: Size{2, 1}, Priority: 70},
		{ID: "one", Size: Size{1, 1}, Priority: 60},
		{ID: "two", Size: Size{1, 1}, Priority: 50},
	}
	sortForPacking(ws)

	grid := pack(ws, 4)

	// Every cell holds at most one widget by construction; verify each
	// widget covers exactly its declared area and nothing vanished.
	counts := make(map[string]int)
	for _, row := range grid {
		require.Len(t, row, 4)
		for _, cell := range row {
			if cell != EmptyCell {
				counts[cell]++
			}
		}
	}
	for _, w := range ws {
		assert.Equal(t, w.Size.Area(), counts[w.ID], "cells for %s", w.ID)
	}
}

func TestPackPlacementsAreRectangular(t *testing.T) {
	ws := []sizedWidget{
		{ID: "a", Size: Size{2, 2}, Priority: 50},
		{ID: "b", Size: Size{3, 1}, Priority: 40},
		{ID: "c", Size: Size{1, 2}, Priority: 30},
		{ID: "d", Size: Size{2, 1}, Priority: 20},
	}
	sortForPacking(ws)

	grid := pack(ws, 3)

	type bounds struct{ minR, maxR, minC, maxC, count int }
	seen := make(map[string]*bounds)
	for r, row := range grid {
		for c, cell := range row {
			if cell == EmptyCell {
				continue
			}
			b, ok := seen[cell]
			if !ok {
				seen[cell] = &bounds{minR: r, maxR: r, minC: c, maxC: c, count: 1}
				continue
			}
			if r < b.minR {
				b.minR = r
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
			b.count++
		}
	}

	for id, b := range seen {
		area := (b.maxR - b.minR + 1) * (b.maxC - b.minC + 1)
		assert.Equal(t, area, b.count, "%s occupies a solid rectangle", id)
	}
}

func TestPackGrowsWhenFragmented(t *testing.T) {
	// Five 2x2 widgets on a 3-wide grid: each placement strands column 2,
	// the row estimate runs out, and the last widget must grow the grid.
	ws := []sizedWidget{
		{ID: "a", Size: Size{2, 2}, Priority: 50},
		{ID: "b", Size: Size{2, 2}, Priority: 40},
		{ID: "c", Size: Size{2, 2}, Priority: 30},
		{ID: "d", Size: Size{2, 2}, Priority: 20},
		{ID: "e", Size: Size{2, 2}, Priority: 10},
	}
	sortForPacking(ws)

	grid := pack(ws, 3)

	counts := make(map[string]int)
	for _, row := range grid {
		for _, cell := range row {
			if cell != EmptyCell {
				counts[cell]++
			}
		}
	}
	for _, w := range ws {
		assert.Equal(t, 4, counts[w.ID], "widget %s still fully placed", w.ID)
	}
	// The growth path appends exactly the widget's rows at the bottom.
	assert.Equal(t, "e", grid[len(grid)-1][0])
	assert.Equal(t, "e", grid[len(grid)-2][0])
}

func TestPackTrimsTrailingEmptyRows(t *testing.T) {
	ws := []sizedWidget{
		{ID: "only", Size: Size{1, 1}, Priority: 10},
	}

	grid := pack(ws, 4)

	require.NotEmpty(t, grid)
	assert.False(t, rowEmpty(grid[len(grid)-1]), "last row must be occupied")
	assert.Len(t, grid, 1)
}

func TestPackEmptyInput(t *testing.T) {
	grid := pack(nil, 4)
	assert.Empty(t, grid)
}

func TestPackClampsOversizeWidget(t *testing.T) {
	ws := []sizedWidget{
		{ID: "huge", Size: Size{6, 1}, Priority: 10},
	}

	grid := pack(ws, 2)

	require.Len(t, grid, 1)
	assert.Equal(t, []string{"huge", "huge"}, grid[0])
}

func TestPackDeterministic(t *testing.T) {
	ws := func() []sizedWidget {
		return []sizedWidget{
			{ID: "a", Size: Size{2, 2}, Priority: 50},
			{ID: "b", Size: Size{1, 2}, Priority: 50},
			{ID: "c", Size: Size{2, 1}, Priority: 40},
			{ID: "d", Size: Size{1, 1}, Priority: 40},
		}
	}

	w1, w2 := ws(), ws()
	sortForPacking(w1)
	sortForPacking(w2)
	assert.Equal(t, pack(w1, 3), pack(w2, 3))
}
