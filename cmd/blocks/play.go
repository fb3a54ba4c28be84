package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/render"
)

// terminalFrontends draw with characters and need a large enough terminal.
var terminalFrontends = map[string]bool{"tui": true, "term": true}

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play a game",
	Long: `Start a game on the given frontend (default: tui).

Controls:
  Left/Right  - Move
  Down        - Drop faster
  Space/Up    - Rotate clockwise
  Esc/Q       - Quit
  Ctrl+S      - Save a PNG screenshot (tui only)

Examples:
  blocks play
  blocks play term
  blocks play window --config ./blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id := "tui"
	if len(args) == 1 {
		id = args[0]
	}

	frontend, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("%w (run 'blocks list' to see available frontends)", err)
	}

	if terminalFrontends[id] {
		if err := checkTerminalSize(); err != nil {
			return err
		}
	}

	logger, closeLog, err := newLogger(terminalFrontends[id])
	if err != nil {
		return err
	}
	defer closeLog()

	game := tetris.New(cfg.Rules(), tetris.WithSeed(seed()), tetris.WithLogger(logger))
	logger.Debug("starting game", "frontend", id, "seed", game.Seed(), "config", cfg.Source)

	err = frontend.Run(registry.Session{
		Game:    game,
		Config:  cfg,
		Palette: render.NewPalette(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Game over (%s): score %d, %d lines, %d pieces\n",
		game.Reason(), game.Score(), game.Lines(), game.Pieces())
	return nil
}

// checkTerminalSize fails when stdout is a terminal too small for the board.
func checkTerminalSize() error {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil // Not a terminal; let the frontend decide
	}
	needW, needH := render.TextSize(cfg.Board.Width, cfg.Board.Height)
	needH++ // Help line
	if w < needW || h < needH {
		return fmt.Errorf("terminal too small: need %dx%d, have %dx%d", needW, needH, w, h)
	}
	return nil
}
