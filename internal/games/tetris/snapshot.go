package tetris

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Pose    Pose
	Score   int
	Lines   int
	Pieces  int
	Locked  int
	Running bool
	Reason  EndReason
	Board   []int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	f := g.Frame()
	return Snapshot{
		Pose:    g.pose,
		Score:   g.score,
		Lines:   g.lines,
		Pieces:  g.pieces,
		Locked:  g.grid.Count(),
		Running: g.running,
		Reason:  g.reason,
		Board:   f.Board,
	}
}
