// Package tetris implements the falling-block game: the board grid, the shape
// table, the placement validator, the active piece state machine and row
// clearing. It knows nothing about timing or drawing; the engine package
// drives it and renderers read Frames from it.
package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Rules are the board and scoring tunables of a game.
type Rules struct {
	Width       int
	Height      int
	SpawnX      int // Pivot column of every new piece
	SpawnY      int // Pivot row of every new piece, above the board by default
	ScorePerRow int
}

// DefaultRules returns the classic 10x20 board.
func DefaultRules() Rules {
	return Rules{
		Width:       10,
		Height:      20,
		SpawnX:      5,
		SpawnY:      -1,
		ScorePerRow: 100,
	}
}

// EndReason tells why a game stopped running.
type EndReason int

const (
	EndNone      EndReason = iota // Still running
	EndQuit                       // Player quit or closed the surface
	EndBoardFull                  // A new piece could not be placed
)

// String returns a human-readable reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "running"
	case EndQuit:
		return "quit"
	case EndBoardFull:
		return "board full"
	default:
		return "unknown"
	}
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used to report dropped grid writes.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithSeed sets the seed of the piece generator.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// Game is the state machine of one match: the locked grid, the active piece,
// the score and the running flag. It is not safe for concurrent use; a single
// scheduler owns it.
type Game struct {
	rules  Rules
	log    *log.Logger
	seed   int64
	rng    *rand.Rand
	grid   *Grid
	pose   Pose
	score  int
	lines  int
	pieces int

	running bool
	reason  EndReason
}

// New creates a running game with an empty board and a first piece spawned.
func New(rules Rules, opts ...Option) *Game {
	g := &Game{
		rules: rules,
		log:   log.New(io.Discard),
		seed:  1,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(g.seed)
	return g
}

// Reset starts a new match with the given seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.grid = NewGrid(g.rules.Width, g.rules.Height)
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.running = true
	g.reason = EndNone
	g.Spawn()
}

// Rotate turns the active piece one quarter clockwise if the result is valid.
// It reports whether the rotation was committed.
func (g *Game) Rotate() bool {
	if !g.running {
		return false
	}
	next := g.pose.Rotated()
	if !Valid(g.grid, next) {
		return false
	}
	g.pose = next
	return true
}

// Move shifts the active piece by (dx, dy) if the result is valid.
// It reports false when the move is blocked; the pose is then unchanged.
func (g *Game) Move(dx, dy int) bool {
	if !g.running {
		return false
	}
	next := g.pose.Moved(dx, dy)
	if !Valid(g.grid, next) {
		return false
	}
	g.pose = next
	return true
}

// Spawn replaces the active piece with a random shape and orientation at the
// spawn point. It does not check whether the new pose fits.
func (g *Game) Spawn() {
	g.pose = Pose{
		Kind:     Kind(g.rng.Intn(KindCount)),
		Rotation: Rotation(g.rng.Intn(RotationCount)),
		X:        g.rules.SpawnX,
		Y:        g.rules.SpawnY,
	}
}

// Freeze locks the active piece into the grid. Cells outside the board are
// dropped and logged.
func (g *Game) Freeze() {
	g.freeze()
}

// freeze returns the number of cells that fell outside the board.
func (g *Game) freeze() int {
	dropped := 0
	for _, c := range g.pose.Cells() {
		if err := g.grid.Set(c.X, c.Y, Filled); err != nil {
			g.log.Warn("grid write dropped", "col", c.X, "row", c.Y, "kind", g.pose.Kind, "err", err)
			dropped++
		}
	}
	g.pieces++
	return dropped
}

// ClearFullRows removes every completed row, awarding ScorePerRow for each.
// It returns the number of rows removed.
func (g *Game) ClearFullRows() int {
	n := ClearRows(g.grid)
	g.score += n * g.rules.ScorePerRow
	g.lines += n
	return n
}

// AdvanceLogic applies one gravity step: the piece falls one row, or when it
// cannot it is frozen and a new piece spawns. Completed rows are then cleared.
// The game ends with EndBoardFull when the frozen piece still had cells above
// the board, or when the new piece does not fit once rows are cleared.
func (g *Game) AdvanceLogic() {
	if !g.running {
		return
	}

	spawned, lockedOut := false, false
	if !g.Move(0, 1) {
		lockedOut = g.freeze() > 0
		g.Spawn()
		spawned = true
	}

	g.ClearFullRows()

	if lockedOut || (spawned && !Valid(g.grid, g.pose)) {
		g.end(EndBoardFull)
	}
}

// Quit stops the game. Quitting a stopped game has no effect.
func (g *Game) Quit() {
	g.end(EndQuit)
}

func (g *Game) end(reason EndReason) {
	if !g.running {
		return
	}
	g.running = false
	g.reason = reason
	g.log.Debug("game ended", "reason", reason, "score", g.score, "lines", g.lines)
}

// Running reports whether the game still accepts input and gravity.
func (g *Game) Running() bool { return g.running }

// Reason returns why the game stopped, or EndNone while running.
func (g *Game) Reason() EndReason { return g.reason }

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Lines returns the number of rows cleared so far.
func (g *Game) Lines() int { return g.lines }

// Pieces returns the number of pieces locked so far.
func (g *Game) Pieces() int { return g.pieces }

// Pose returns the active piece.
func (g *Game) Pose() Pose { return g.pose }

// Grid returns the board. Callers must treat it as read-only.
func (g *Game) Grid() *Grid { return g.grid }

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules { return g.rules }

// Seed returns the seed of the current match.
func (g *Game) Seed() int64 { return g.seed }
