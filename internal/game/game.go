// Package game runs the rules engine at a fixed tick rate: it turns input
// frames into engine moves, applies gravity at the speed of the current
// level and draws the field and side panel into a core.Screen.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// Game drives one tetris.Engine.
type Game struct {
	cfg    config.TetrisConfig
	logger *log.Logger

	runtime core.RuntimeConfig
	rng     *rand.Rand
	engine  *tetris.Engine
	tick    uint64

	ticksPerUpdate int // Ticks between gravity steps at the current level
	gravityTicker  int // Counts ticks until the next gravity step
	dropHold       int // Ticks left before a soft drop is released
	locks          int // Engine lock count seen at the end of the last tick

	gameOver bool
	paused   bool
	events   []core.Event // Collected during the current Step
}

// New creates a game with the given configuration. A nil logger discards
// output. Reset must be called before the first Step.
func New(cfg config.TetrisConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: logger,
	}
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = tetris.New(g.cfg.Field.Width, g.cfg.Field.Height, g.cfg.StartLevel, tetris.WithRand(g.rng))
	g.engine.AttachLevelUp(g.onLevelUp)
	g.engine.AttachGameOver(g.onGameOver)

	g.tick = 0
	g.gravityTicker = 0
	g.dropHold = 0
	g.locks = 0
	g.gameOver = false
	g.paused = false
	g.events = nil
	g.applyGravity(g.engine.Level())

	g.logger.Debug("new game",
		"seed", cfg.Seed,
		"width", g.engine.Width(),
		"height", g.engine.Height(),
		"level", g.engine.Level(),
		"ticks_per_update", g.ticksPerUpdate)
}

// applyGravity sets the gravity cadence for level. With progression off the
// start level's cadence is kept.
func (g *Game) applyGravity(level int) {
	if !g.cfg.Difficulty.Progression {
		level = g.cfg.StartLevel
	}
	g.ticksPerUpdate = config.TicksPer(g.cfg.Gravity.Interval(level), g.runtime.TickRate)
}

func (g *Game) onLevelUp(level int) {
	g.events = append(g.events, core.EventLevelUp)
	g.applyGravity(level)
	g.logger.Info("level up", "level", level, "ticks_per_update", g.ticksPerUpdate)
}

func (g *Game) onGameOver() {
	g.gameOver = true
	g.dropHold = 0
	g.engine.SetDropping(false)
	g.events = append(g.events, core.EventGameOver)
	g.logger.Info("game over",
		"score", g.engine.Score(),
		"lines", g.engine.Lines(),
		"level", g.engine.Level())
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		cfg := g.runtime
		cfg.Seed = g.rng.Int63()
		g.logger.Info("restart", "seed", cfg.Seed)
		g.Reset(cfg)
		return g.result()
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		g.logger.Debug("pause", "paused", g.paused)
	}

	if g.gameOver || g.paused {
		return g.result()
	}

	g.processInput(input)

	// Gravity
	g.gravityTicker++
	if g.gravityTicker >= g.ticksPerUpdate {
		g.gravityTicker = 0
		g.engine.Update()
	}

	g.releaseDrop()

	if locks := g.engine.Locks(); locks > g.locks {
		g.locks = locks
		g.events = append(g.events, core.EventLock)
	}

	return g.result()
}

// processInput applies movement and rotation. A piece that already overlaps
// the stack is left alone so the next gravity step can end the game.
func (g *Game) processInput(input core.InputFrame) {
	if g.engine.Collides() {
		return
	}

	if input.Has(core.ActionLeft) {
		g.engine.MoveLeft()
	}
	if input.Has(core.ActionRight) {
		g.engine.MoveRight()
	}
	if input.Has(core.ActionRotateLeft) {
		g.engine.RotateLeft()
	}
	if input.Has(core.ActionRotateRight) {
		g.engine.RotateRight()
	}
	if input.Has(core.ActionDown) {
		g.dropHold = g.cfg.Input.DropHoldTicks
		g.engine.SetDropping(true)
		g.engine.MoveDown()
	}
}

// releaseDrop counts down the soft drop hold. Terminals report key presses
// only, so a press keeps dropping on until the hold runs out.
func (g *Game) releaseDrop() {
	if g.dropHold > 0 {
		g.dropHold--
	}
	if g.dropHold == 0 && g.engine.Dropping() {
		g.engine.SetDropping(false)
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: g.events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Level:    g.engine.Level(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Engine returns the underlying rules engine.
func (g *Game) Engine() *tetris.Engine {
	return g.engine
}
