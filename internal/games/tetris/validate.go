package tetris

// OccupancyCheckMinRow is the first row whose cells are tested for overlap
// with locked blocks. Cells in rows above it (including row 0) only need to
// be inside the column range: a piece can always move or turn while it
// touches the top row, even over locked blocks there.
const OccupancyCheckMinRow = 1

// Valid reports whether every cell of the pose may be placed on the grid:
// its column lies in [0, width-1], its row is at most height-1, and, from
// OccupancyCheckMinRow down, the cell is empty. Rows above the board are allowed.
func Valid(g *Grid, p Pose) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X > g.Width()-1 {
			return false
		}
		if c.Y > g.Height()-1 {
			return false
		}
		if c.Y >= OccupancyCheckMinRow && g.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}
