package tetris

// Piece is a kind together with its current rotation index in [0,4).
// It performs no validation; the engine checks every rotation against the
// field and rolls it back on collision.
type Piece struct {
	Kind     Kind
	Rotation int
}

// NewPiece returns a piece of the given kind in its spawn orientation.
func NewPiece(kind Kind) Piece {
	return Piece{Kind: kind}
}

// RotateForward turns the piece one step counter-clockwise.
func (p *Piece) RotateForward() {
	p.Rotation = (p.Rotation + 1) % 4
}

// RotateBackward turns the piece one step clockwise.
func (p *Piece) RotateBackward() {
	p.Rotation = (p.Rotation + 3) % 4
}

// Blocks returns the offsets of the piece's four blocks.
func (p Piece) Blocks() [4]Offset {
	return Offsets(p.Kind, p.Rotation)
}
