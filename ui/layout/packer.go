package layout

import "sort"

// EmptyCell is the placeholder token for an unoccupied cell in the area
// template.
const EmptyCell = "."

// packerSlack is the number of extra rows allocated beyond the area-based
// row estimate before packing starts.
const packerSlack = 2

// sizedWidget is a widget with its footprint already resolved for the
// current breakpoint.
type sizedWidget struct {
	ID       string
	Size     Size
	Priority int
}

// sortForPacking orders widgets by descending priority, breaking ties by
// larger area, then by ID so placement is fully deterministic.
func sortForPacking(ws []sizedWidget) {
	sort.SliceStable(ws, func(i, j int) bool {
		if ws[i].Priority != ws[j].Priority {
			return ws[i].Priority > ws[j].Priority
		}
		if ai, aj := ws[i].Size.Area(), ws[j].Size.Area(); ai != aj {
			return ai > aj
		}
		return ws[i].ID < ws[j].ID
	})
}

// pack places the sorted widgets into a grid that is cols wide using
// first-fit, scanning cells row-major. A widget that fits nowhere in the
// existing rows grows the grid by exactly its own row count and lands at
// column 0 of the first new row, so every widget is always placed. Greedy
// and non-backtracking on purpose: deterministic and cheap beats optimal
// here.
//
// The returned grid is the area template: row-major widget IDs with
// EmptyCell for unoccupied cells, trailing empty rows trimmed.
func pack(ws []sizedWidget, cols int) [][]string {
	if cols < 1 {
		cols = 1
	}

	totalArea := 0
	for _, w := range ws {
		totalArea += w.Size.Area()
	}
	rows := totalArea/cols + packerSlack
	if totalArea%cols != 0 {
		rows++
	}

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = emptyRow(cols)
	}

	for _, w := range ws {
		if w.Size.Cols > cols {
			w.Size.Cols = cols
		}
		col, row, ok := findFit(grid, cols, w.Size)
		if !ok {
			// Grow by exactly the widget's rows and place at column 0.
			row = len(grid)
			col = 0
			for i := 0; i < w.Size.Rows; i++ {
				grid = append(grid, emptyRow(cols))
			}
		}
		place(grid, w.ID, col, row, w.Size)
	}

	return trimEmptyRows(grid)
}

// findFit scans cells left-to-right, top-to-bottom and returns the first
// top-left position where the footprint fits inside the current grid bounds
// without overlap.
func findFit(grid [][]string, cols int, s Size) (col, row int, ok bool) {
	for r := 0; r+s.Rows <= len(grid); r++ {
		for c := 0; c+s.Cols <= cols; c++ {
			if fitsAt(grid, c, r, s) {
				return c, r, true
			}
		}
	}
	return 0, 0, false
}

func fitsAt(grid [][]string, col, row int, s Size) bool {
	for r := row; r < row+s.Rows; r++ {
		for c := col; c < col+s.Cols; c++ {
			if grid[r][c] != EmptyCell {
				return false
			}
		}
	}
	return true
}

func place(grid [][]string, id string, col, row int, s Size) {
	for r := row; r < row+s.Rows; r++ {
		for c := col; c < col+s.Cols; c++ {
			grid[r][c] = id
		}
	}
}

// trimEmptyRows drops fully-empty rows from the bottom of the grid.
func trimEmptyRows(grid [][]string) [][]string {
	last := len(grid)
	for last > 0 && rowEmpty(grid[last-1]) {
		last--
	}
	return grid[:last]
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != EmptyCell {
			return false
		}
	}
	return true
}

func emptyRow(cols int) []string {
	row := make([]string, cols)
	for i := range row {
		row[i] = EmptyCell
	}
	return row
}
