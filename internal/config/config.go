// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import "fmt"

// Field size limits accepted by Validate.
const (
	MinFieldSize = 4
	MaxFieldSize = 64
)

// TetrisConfig contains all configuration for a game session.
type TetrisConfig struct {
	Field      FieldConfig      `yaml:"field"`
	StartLevel int              `yaml:"start_level"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playing field size in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines how fast pieces fall at each level.
type GravityConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"` // Interval at level 1; divided by the level
	MinIntervalMS  int `yaml:"min_interval_ms"`  // Interval from FastLevel on
	FastLevel      int `yaml:"fast_level"`       // First level that uses MinIntervalMS
}

// InputConfig defines input timing.
type InputConfig struct {
	DropHoldTicks int `yaml:"drop_hold_ticks"` // Ticks a soft drop stays held after a key press
}

// DifficultyConfig defines whether gravity follows the level.
type DifficultyConfig struct {
	Progression bool `yaml:"progression"` // false keeps the start level's gravity for the whole game
}

// Validate checks that the configuration can drive a game.
func (c TetrisConfig) Validate() error {
	if c.Field.Width < MinFieldSize || c.Field.Width > MaxFieldSize {
		return fmt.Errorf("config: field width %d out of range [%d, %d]", c.Field.Width, MinFieldSize, MaxFieldSize)
	}
	if c.Field.Height < MinFieldSize || c.Field.Height > MaxFieldSize {
		return fmt.Errorf("config: field height %d out of range [%d, %d]", c.Field.Height, MinFieldSize, MaxFieldSize)
	}
	if c.StartLevel < 1 {
		return fmt.Errorf("config: start level must be at least 1, got %d", c.StartLevel)
	}
	if c.Gravity.BaseIntervalMS <= 0 || c.Gravity.MinIntervalMS <= 0 {
		return fmt.Errorf("config: gravity intervals must be positive, got base=%d min=%d",
			c.Gravity.BaseIntervalMS, c.Gravity.MinIntervalMS)
	}
	if c.Input.DropHoldTicks < 0 {
		return fmt.Errorf("config: drop hold ticks must not be negative, got %d", c.Input.DropHoldTicks)
	}
	return nil
}
