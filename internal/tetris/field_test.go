package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(f *Field, row int) {
	for c := 0; c < f.Width(); c++ {
		f.SetOccupied(row, c)
	}
}

func TestFieldSetAndQuery(t *testing.T) {
	f := NewField(6, 5)
	require.Equal(t, 6, f.Width())
	require.Equal(t, 5, f.Height())

	assert.False(t, f.Occupied(2, 3))
	f.SetOccupied(2, 3)
	assert.True(t, f.Occupied(2, 3))
	assert.False(t, f.Occupied(3, 2))
}

func TestFieldOutOfRangePanics(t *testing.T) {
	f := NewField(4, 4)
	assert.Panics(t, func() { f.Occupied(4, 0) })
	assert.Panics(t, func() { f.Occupied(0, -1) })
	assert.Panics(t, func() { f.SetOccupied(-1, 0) })
	assert.Panics(t, func() { f.SetOccupied(0, 4) })
}

func TestFieldIsRowFull(t *testing.T) {
	f := NewField(4, 4)
	for c := 0; c < 3; c++ {
		f.SetOccupied(1, c)
	}
	assert.False(t, f.IsRowFull(1))

	f.SetOccupied(1, 3)
	assert.True(t, f.IsRowFull(1))
	assert.False(t, f.IsRowFull(0))
}

func TestFieldClearRowCollapses(t *testing.T) {
	f := NewField(4, 5)
	fillRow(f, 1)
	f.SetOccupied(0, 0)
	f.SetOccupied(2, 1)
	f.SetOccupied(4, 3)

	f.ClearRow(1)

	require.Equal(t, 5, f.Height())
	assert.True(t, f.Occupied(0, 0), "rows below are untouched")
	assert.True(t, f.Occupied(1, 1), "row 2 dropped to 1")
	assert.True(t, f.Occupied(3, 3), "row 4 dropped to 3")
	assert.False(t, f.Occupied(4, 3), "new top row is empty")
	assert.Equal(t, 3, f.Snapshot().Count())
}

func TestFieldSnapshotIsCopy(t *testing.T) {
	f := NewField(4, 4)
	f.SetOccupied(0, 0)

	snap := f.Snapshot()
	f.SetOccupied(3, 3)

	assert.True(t, snap.Occupied(0, 0))
	assert.False(t, snap.Occupied(3, 3))
	assert.Equal(t, 1, snap.Count())
}

func TestGridString(t *testing.T) {
	f := NewField(4, 3)
	f.SetOccupied(0, 0)
	f.SetOccupied(0, 1)
	f.SetOccupied(2, 3)

	assert.Equal(t, "...#\n....\n##..", f.Snapshot().String())
}

func TestGridOutOfRangeIsEmpty(t *testing.T) {
	g := NewField(4, 4).Snapshot()
	assert.False(t, g.Occupied(-1, 0))
	assert.False(t, g.Occupied(0, 4))
}
