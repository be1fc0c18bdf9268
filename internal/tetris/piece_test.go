package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceRotation(t *testing.T) {
	p := NewPiece(L)
	assert.Equal(t, 0, p.Rotation)

	for want := 1; want <= 4; want++ {
		p.RotateForward()
		assert.Equal(t, want%4, p.Rotation)
	}

	p.RotateBackward()
	assert.Equal(t, 3, p.Rotation)
	p.RotateBackward()
	assert.Equal(t, 2, p.Rotation)
}

func TestPieceBlocksFollowRotation(t *testing.T) {
	p := NewPiece(T)
	assert.Equal(t, Offsets(T, 0), p.Blocks())

	p.RotateForward()
	assert.Equal(t, Offsets(T, 1), p.Blocks())

	p.RotateBackward()
	p.RotateBackward()
	assert.Equal(t, Offsets(T, 3), p.Blocks())
}
