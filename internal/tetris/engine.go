package tetris

import (
	"math/rand"
	"time"
)

// MinSize is the smallest accepted field width and height.
const MinSize = 4

// lineScores is the base award for clearing 1, 2, 3 or 4 rows with one lock.
// The award is multiplied by level+1.
var lineScores = [5]int64{0, 40, 100, 300, 1200}

// Rand is the randomness source used to draw piece kinds.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Point is an absolute field cell: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the source used to draw piece kinds.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// Engine owns the state of one game session.
//
// It is not safe for concurrent use; the driver must serialize calls.
type Engine struct {
	field   *Field
	current Piece
	next    Piece
	anchor  Point

	score             int64
	level             int
	lines             int
	consecutiveClears int
	locks             int

	dropping       bool
	droppingHeight int

	statistics [NumKinds]int
	rng        Rand

	gameOver listeners[func()]
	levelUp  listeners[func(int)]
}

// New creates an engine with an empty width x height field and draws the
// current and next pieces. Sizes below MinSize are raised to MinSize and a
// level below 1 becomes 1.
func New(width, height, level int, opts ...Option) *Engine {
	width = max(width, MinSize)
	height = max(height, MinSize)

	e := &Engine{
		field: NewField(width, height),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.SetLevel(level)
	e.current = e.spawn()
	e.statistics[e.current.Kind]++
	e.next = e.spawn()
	e.resetAnchor()
	return e
}

func (e *Engine) spawn() Piece {
	return NewPiece(Kinds[e.rng.Intn(NumKinds)])
}

func (e *Engine) resetAnchor() {
	e.anchor = Point{X: e.field.Width()/2 - 1, Y: e.field.Height() - 1}
}

// Collides reports whether the current piece at its anchor leaves the field
// or overlaps a filled cell.
func (e *Engine) Collides() bool {
	for _, p := range e.PieceCells() {
		if !e.field.contains(p.Y, p.X) {
			return true
		}
	}
	for _, p := range e.PieceCells() {
		if e.field.Occupied(p.Y, p.X) {
			return true
		}
	}
	return false
}

// PieceCells returns the field cells covered by the current piece.
// Cells may lie outside the field while a move is being validated.
func (e *Engine) PieceCells() [4]Point {
	var cells [4]Point
	for i, b := range e.current.Blocks() {
		cells[i] = Point{X: e.anchor.X + b.X, Y: e.anchor.Y - b.Y}
	}
	return cells
}

// RotateLeft turns the piece counter-clockwise unless the result collides.
// There are no wall kicks: the rotation either fits in place or is undone.
func (e *Engine) RotateLeft() {
	e.current.RotateForward()
	if e.Collides() {
		e.current.RotateBackward()
	}
}

// RotateRight turns the piece clockwise unless the result collides.
func (e *Engine) RotateRight() {
	e.current.RotateBackward()
	if e.Collides() {
		e.current.RotateForward()
	}
}

// MoveLeft shifts the piece one column left unless that collides.
func (e *Engine) MoveLeft() {
	e.anchor.X--
	if e.Collides() {
		e.anchor.X++
	}
}

// MoveRight shifts the piece one column right unless that collides.
func (e *Engine) MoveRight() {
	e.anchor.X++
	if e.Collides() {
		e.anchor.X--
	}
}

// MoveDown drops the piece one row. If it cannot descend it locks in place:
// its blocks are written into the field, full rows are cleared, the soft
// drop bonus and line score are awarded, the next piece is promoted and the
// level is advanced when the line threshold is crossed.
func (e *Engine) MoveDown() {
	e.anchor.Y--
	if e.dropping {
		e.droppingHeight++
	} else {
		e.droppingHeight = 0
	}

	if !e.Collides() {
		return
	}

	e.anchor.Y++
	e.lock()
}

func (e *Engine) lock() {
	for _, p := range e.PieceCells() {
		e.field.SetOccupied(p.Y, p.X)
	}
	e.locks++

	e.consecutiveClears = 0
	for row := 0; row < e.field.Height(); {
		// The row that drops into this index must be checked again.
		if e.field.IsRowFull(row) {
			e.field.ClearRow(row)
			e.lines++
			e.consecutiveClears++
		} else {
			row++
		}
	}

	if e.dropping {
		e.score += int64(e.droppingHeight)
		e.droppingHeight = 0
	}

	e.current = e.next
	e.next = e.spawn()
	e.statistics[e.current.Kind]++
	e.resetAnchor()
	e.current.Rotation = 0

	if e.consecutiveClears < len(lineScores) {
		e.score += lineScores[e.consecutiveClears] * int64(e.level+1)
	}

	if e.lines >= e.level*10 && e.lines < e.level*11 {
		e.level++
		e.fireLevelUp()
	}
}

// Update advances the game by one gravity step. If the current piece
// already collides where it stands, the game is over and every game-over
// listener runs; otherwise the piece moves down.
func (e *Engine) Update() {
	if e.Collides() {
		e.fireGameOver()
		return
	}
	e.MoveDown()
}

// SetDropping turns the soft drop mode on or off.
func (e *Engine) SetDropping(d bool) {
	e.dropping = d
}

// Dropping reports whether the soft drop mode is on.
func (e *Engine) Dropping() bool {
	return e.dropping
}

// Score returns the current score.
func (e *Engine) Score() int64 {
	return e.score
}

// SetScore overrides the score. Negative values become 0.
func (e *Engine) SetScore(s int64) {
	e.score = max(s, 0)
}

// Level returns the current level.
func (e *Engine) Level() int {
	return e.level
}

// SetLevel overrides the level. Values below 1 become 1.
func (e *Engine) SetLevel(l int) {
	e.level = max(l, 1)
}

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int {
	return e.lines
}

// SetLines overrides the cleared row count. Negative values become 0.
func (e *Engine) SetLines(l int) {
	e.lines = max(l, 0)
}

// ConsecutiveClears returns the number of rows cleared by the last lock.
func (e *Engine) ConsecutiveClears() int {
	return e.consecutiveClears
}

// Locks returns how many pieces have locked so far.
func (e *Engine) Locks() int {
	return e.locks
}

// Statistics returns how many pieces of each kind have become active,
// indexed by Kind.
func (e *Engine) Statistics() [NumKinds]int {
	return e.statistics
}

// Current returns the kind of the falling piece.
func (e *Engine) Current() Kind {
	return e.current.Kind
}

// Next returns the kind of the queued piece.
func (e *Engine) Next() Kind {
	return e.next.Kind
}

// Piece returns the falling piece.
func (e *Engine) Piece() Piece {
	return e.current
}

// Anchor returns the field position of the falling piece's pivot.
func (e *Engine) Anchor() Point {
	return e.anchor
}

// Width returns the field width.
func (e *Engine) Width() int {
	return e.field.Width()
}

// Height returns the field height.
func (e *Engine) Height() int {
	return e.field.Height()
}

// Field returns the locked blocks only.
func (e *Engine) Field() Grid {
	return e.field.Snapshot()
}

// Image returns the locked blocks with the falling piece drawn over them.
func (e *Engine) Image() Grid {
	g := e.field.Snapshot()
	for _, p := range e.PieceCells() {
		g.set(p.Y, p.X)
	}
	return g
}
