package tetris

// ClearRows removes completed rows from the grid and returns how many were
// removed. The scan starts at the bottom row. A completed row is removed by
// moving every row above it down by one, which leaves row 0 empty, and the
// same row index is scanned again since new content moved into it. The scan
// stops before row 0, so the top row is never cleared.
func ClearRows(g *Grid) int {
	cleared := 0
	row := g.Height() - 1
	for row > 0 {
		if !rowFull(g, row) {
			row--
			continue
		}
		collapse(g, row)
		cleared++
	}
	return cleared
}

func rowFull(g *Grid, row int) bool {
	for col := 0; col < g.Width(); col++ {
		if !g.Occupied(col, row) {
			return false
		}
	}
	return true
}

// collapse shifts rows [0, row-1] down by one over row and empties row 0.
// Every index written is inside the grid, so Set cannot fail here.
func collapse(g *Grid, row int) {
	for i := row; i >= 1; i-- {
		for col := 0; col < g.Width(); col++ {
			_ = g.Set(col, i, g.Get(col, i-1))
		}
	}
	for col := 0; col < g.Width(); col++ {
		_ = g.Set(col, 0, Empty)
	}
}
