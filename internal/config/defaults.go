package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, matching defaults/blocks.yaml.
func Default() Config {
	return Config{
		Board:   BoardConfig{Width: 10, Height: 20},
		Spawn:   SpawnConfig{X: 5, Y: -1},
		Scoring: ScoringConfig{PerRow: 100},
		Timing: TimingConfig{
			LogicTickMS:  700,
			InputTickMS:  50,
			RenderTickMS: 20,
			LoopSleepMS:  0,
			FPSSampleMS:  1000,
			PrintFPS:     false,
		},
		Window: WindowConfig{
			Title:  "Tetris",
			Width:  600,
			Height: 900,
			TPS:    120,
		},
		Cells: CellsConfig{
			SizePX:    20,
			PaddingPX: 1,
			BoardX:    20,
			BoardY:    20,
		},
		Terminal: TerminalConfig{IterationMS: 5},
		Source:   "builtin",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
