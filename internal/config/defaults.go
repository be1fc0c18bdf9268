package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 10x20 field
// starting at level 3, with gravity of 1000/level ms that bottoms out at
// 50 ms from level 20.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		StartLevel: 3,
		Gravity: GravityConfig{
			BaseIntervalMS: 1000,
			MinIntervalMS:  50,
			FastLevel:      20,
		},
		Input: InputConfig{
			DropHoldTicks: 9,
		},
		Difficulty: DifficultyConfig{
			Progression: true,
		},
	}
}
