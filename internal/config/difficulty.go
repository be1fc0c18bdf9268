package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// StartLevelForPreset returns the start level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 8
	default:
		return 3
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured start level and freezes gravity.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Progression = false
	default:
		cfg.Difficulty.Progression = true
		cfg.StartLevel = StartLevelForPreset(preset)
	}
}

// Interval returns the delay between gravity steps at the given level:
// BaseIntervalMS/level below FastLevel, MinIntervalMS from there on.
func (g GravityConfig) Interval(level int) time.Duration {
	level = max(level, 1)
	if g.FastLevel > 0 && level >= g.FastLevel {
		return time.Duration(g.MinIntervalMS) * time.Millisecond
	}
	ms := max(g.BaseIntervalMS/level, g.MinIntervalMS)
	return time.Duration(ms) * time.Millisecond
}

// TicksPer converts an interval to a whole number of ticks at tickRate,
// never less than one.
func TicksPer(interval time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	tick := time.Second / time.Duration(tickRate)
	n := int((interval + tick/2) / tick)
	return max(n, 1)
}
