package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status the game reports to the platform after each tick.
type GameState struct {
	Score    int64
	Lines    int
	Level    int
	GameOver bool
	Paused   bool
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventLock Event = iota
	EventLevelUp
	EventGameOver
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventLock:
		return "lock"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
