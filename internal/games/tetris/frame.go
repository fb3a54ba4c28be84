package tetris

// Frame is a render snapshot of a game. It owns its board copy, so a surface
// may keep it after the game has moved on.
type Frame struct {
	Width  int
	Height int
	Board  []int // Row-major copy of the grid
	Active [4]Point
	Kind   Kind
	Score  int
	Lines  int

	Running bool
	Reason  EndReason
}

// Frame captures the current board, active piece and score.
func (g *Game) Frame() Frame {
	board := make([]int, 0, g.grid.Width()*g.grid.Height())
	for row := 0; row < g.grid.Height(); row++ {
		for col := 0; col < g.grid.Width(); col++ {
			board = append(board, g.grid.Get(col, row))
		}
	}
	return Frame{
		Width:   g.grid.Width(),
		Height:  g.grid.Height(),
		Board:   board,
		Active:  g.pose.Cells(),
		Kind:    g.pose.Kind,
		Score:   g.score,
		Lines:   g.lines,
		Running: g.running,
		Reason:  g.reason,
	}
}

// Cell returns the locked value at (col, row), or Empty outside the board.
func (f Frame) Cell(col, row int) int {
	if col < 0 || col >= f.Width || row < 0 || row >= f.Height {
		return Empty
	}
	return f.Board[row*f.Width+col]
}

// VisibleActive returns the active cells inside the board. Cells above the
// top row are skipped, not drawn.
func (f Frame) VisibleActive() []Point {
	pts := make([]Point, 0, len(f.Active))
	for _, p := range f.Active {
		if p.X < 0 || p.X >= f.Width || p.Y < 0 || p.Y >= f.Height {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}
