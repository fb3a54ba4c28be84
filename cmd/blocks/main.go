// blocks is a falling-block puzzle game for the terminal, a desktop window
// or remote play over SSH.
//
// Usage:
//
//	blocks play [frontend]    - Play (frontends: tui, term, window; default tui)
//	blocks list               - List available frontends
//	blocks serve              - Start SSH server for remote play
//	blocks snapshot           - Simulate a game headless and save it as PNG
//
// Global flags:
//
//	--config <path>      - Path to a blocks.yaml configuration
//	--seed <value>       - RNG seed for reproducible pieces (0 = time based)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
//	--print-fps          - Log loop rates once per sampling period
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-blocks/internal/platform/term"
	_ "github.com/vovakirdan/tui-blocks/internal/platform/tui"
	_ "github.com/vovakirdan/tui-blocks/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
	flagPrintFPS bool

	// Loaded in PersistentPreRunE
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle game",
	Long: `Blocks drops pieces onto a 10x20 board. Complete a row to clear it
and score; the game ends when a new piece no longer fits.

Available commands:
  play      - Play in the terminal or a window
  list      - Show all available frontends
  serve     - Start SSH server for remote play
  snapshot  - Simulate a game and save the board as PNG

Examples:
  blocks play
  blocks play window --seed 42
  blocks serve --ssh :2222
  blocks snapshot --ticks 200 --out board.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagPrintFPS {
			loaded.Timing.PrintFPS = true
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagPrintFPS, "print-fps", false, "Log loop rates periodically")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// seed returns the --seed value, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the logger from the global flags. Without --log-file,
// quiet loggers discard everything so terminal frontends keep a clean screen.
// The returned function closes the log file.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "blocks",
	})
	return logger, closeFn, nil
}
