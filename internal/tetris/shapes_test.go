package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetsTable(t *testing.T) {
	tests := []struct {
		kind Kind
		rots [4][4]Offset
	}{
		{O, [4][4]Offset{
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		}},
		{I, [4][4]Offset{
			{{0, 0}, {1, 0}, {-1, 0}, {-2, 0}},
			{{0, 0}, {0, 1}, {0, -1}, {0, -2}},
			{{0, 0}, {1, 0}, {-1, 0}, {-2, 0}},
			{{0, 0}, {0, 1}, {0, -1}, {0, -2}},
		}},
		{S, [4][4]Offset{
			{{0, 0}, {-1, 1}, {1, 0}, {0, 1}},
			{{0, 0}, {1, 0}, {1, 1}, {0, -1}},
			{{0, 0}, {-1, 1}, {1, 0}, {0, 1}},
			{{0, 0}, {1, 0}, {1, 1}, {0, -1}},
		}},
		{Z, [4][4]Offset{
			{{0, 0}, {0, 1}, {1, 1}, {-1, 0}},
			{{0, 0}, {-1, 0}, {-1, 1}, {0, -1}},
			{{0, 0}, {0, 1}, {1, 1}, {-1, 0}},
			{{0, 0}, {-1, 0}, {-1, 1}, {0, -1}},
		}},
		{J, [4][4]Offset{
			{{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
			{{0, 0}, {0, 1}, {0, -1}, {1, -1}},
			{{0, 0}, {-1, 0}, {1, 0}, {-1, -1}},
			{{0, 0}, {0, -1}, {0, 1}, {-1, 1}},
		}},
		{L, [4][4]Offset{
			{{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
			{{0, 0}, {0, -1}, {0, 1}, {1, 1}},
			{{0, 0}, {-1, 0}, {1, 0}, {1, -1}},
			{{0, 0}, {0, 1}, {0, -1}, {-1, -1}},
		}},
		{T, [4][4]Offset{
			{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
			{{0, 0}, {0, -1}, {1, 0}, {0, 1}},
			{{0, 0}, {0, -1}, {1, 0}, {-1, 0}},
			{{0, 0}, {0, -1}, {0, 1}, {-1, 0}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			for r := range 4 {
				got := Offsets(tt.kind, r)
				assert.Equal(t, tt.rots[r], got, "rotation %d", r)
				assert.Equal(t, Offset{0, 0}, got[0], "rotation %d pivot", r)
			}
		})
	}
}

func TestOffsetsDistinctRotations(t *testing.T) {
	distinct := map[Kind]int{O: 1, I: 2, S: 2, Z: 2, J: 4, L: 4, T: 4}

	for _, k := range Kinds {
		seen := make(map[[4]Offset]bool)
		for r := range 4 {
			seen[Offsets(k, r)] = true
		}
		assert.Len(t, seen, distinct[k], "kind %s", k)
	}
}

func TestOffsetsRotationWraps(t *testing.T) {
	assert.Equal(t, Offsets(J, 1), Offsets(J, 5))
	assert.Equal(t, Offsets(J, 3), Offsets(J, -1))
	assert.Equal(t, Offsets(T, 0), Offsets(T, -4))
}

func TestKindString(t *testing.T) {
	var names []string
	for _, k := range Kinds {
		names = append(names, k.String())
	}
	assert.Equal(t, []string{"O", "I", "S", "Z", "J", "L", "T"}, names)
	assert.Equal(t, "?", Kind(42).String())
}
