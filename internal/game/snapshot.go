package game

import "github.com/vovakirdan/blockfall/internal/tetris"

// StateType represents the current game state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StatePaused   StateType = "paused"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Score          int64
	Lines          int
	Level          int
	Locks          int
	Current        tetris.Kind
	Rotation       int
	AnchorX        int
	AnchorY        int
	Next           tetris.Kind
	Dropping       bool
	TicksPerUpdate int
	Statistics     [tetris.NumKinds]int
	Field          string // Stack without the live piece, top row first
	State          StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	e := g.engine
	return Snapshot{
		Tick:           g.tick,
		Score:          e.Score(),
		Lines:          e.Lines(),
		Level:          e.Level(),
		Locks:          e.Locks(),
		Current:        e.Current(),
		Rotation:       e.Piece().Rotation,
		AnchorX:        e.Anchor().X,
		AnchorY:        e.Anchor().Y,
		Next:           e.Next(),
		Dropping:       e.Dropping(),
		TicksPerUpdate: g.ticksPerUpdate,
		Statistics:     e.Statistics(),
		Field:          e.Field().String(),
		State:          state,
	}
}
