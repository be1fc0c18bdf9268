// Package tetris implements the rules engine of a falling-block puzzle game:
// the playing field, the active and queued pieces, collision resolution,
// line clearing, scoring and level progression.
//
// The engine is a synchronous state machine. It has no timers, does no I/O
// and never blocks; a driver calls Update on a fixed cadence and the
// movement operations in response to input, and learns about terminal and
// level transitions only through the registered listeners.
package tetris

// Kind identifies one of the seven piece shapes.
type Kind uint8

const (
	O Kind = iota
	I
	S
	Z
	J
	L
	T
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = 7

// Kinds lists every kind in index order.
var Kinds = [NumKinds]Kind{O, I, S, Z, J, L, T}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case O:
		return "O"
	case I:
		return "I"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	case T:
		return "T"
	default:
		return "?"
	}
}

// Offset is a block position relative to the pivot of a piece.
// The engine maps it to the field cell (anchor.X + X, anchor.Y - Y), so a
// positive Y points down the field.
type Offset struct {
	X, Y int
}

// shapes holds the four block offsets of every kind in every rotation.
// Index 0 is the spawn orientation and each following index is one
// counter-clockwise step. The first block is always the pivot.
// The entries are authored, not computed: O never changes, I/S/Z only
// alternate between two states, J/L/T have four.
var shapes = [NumKinds][4][4]Offset{
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	I: {
		{{0, 0}, {1, 0}, {-1, 0}, {-2, 0}},
		{{0, 0}, {0, 1}, {0, -1}, {0, -2}},
		{{0, 0}, {1, 0}, {-1, 0}, {-2, 0}},
		{{0, 0}, {0, 1}, {0, -1}, {0, -2}},
	},
	S: {
		{{0, 0}, {-1, 1}, {1, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -1}},
		{{0, 0}, {-1, 1}, {1, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -1}},
	},
	Z: {
		{{0, 0}, {0, 1}, {1, 1}, {-1, 0}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -1}},
		{{0, 0}, {0, 1}, {1, 1}, {-1, 0}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -1}},
	},
	J: {
		{{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {0, -1}, {1, -1}},
		{{0, 0}, {-1, 0}, {1, 0}, {-1, -1}},
		{{0, 0}, {0, -1}, {0, 1}, {-1, 1}},
	},
	L: {
		{{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
		{{0, 0}, {0, -1}, {0, 1}, {1, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {1, -1}},
		{{0, 0}, {0, 1}, {0, -1}, {-1, -1}},
	},
	T: {
		{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
		{{0, 0}, {0, -1}, {1, 0}, {0, 1}},
		{{0, 0}, {0, -1}, {1, 0}, {-1, 0}},
		{{0, 0}, {0, -1}, {0, 1}, {-1, 0}},
	},
}

// Offsets returns the four block offsets of kind in the given rotation.
// The rotation is taken mod 4.
func Offsets(kind Kind, rotation int) [4]Offset {
	return shapes[kind][normRotation(rotation)]
}

func normRotation(r int) int {
	return ((r % 4) + 4) % 4
}
