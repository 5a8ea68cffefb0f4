package gonality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chipfire/gonality"
)

func TestRank_Triangle(t *testing.T) {
	g := complete(t, 3)

	tests := []struct {
		name   string
		values map[string]int64
		want   int
	}{
		{"zero divisor", nil, 0},
		{"two chips on one vertex", map[string]int64{"v0": 2}, 1},
		{"two chips spread", map[string]int64{"v0": 1, "v1": 1}, 1},
		// Degree 3 exceeds 2g-1 on the genus-1 triangle, so the rank is
		// exactly deg-g = 2 by Riemann-Roch.
		{"three chips spread", map[string]int64{"v0": 1, "v1": 1, "v2": 1}, 2},
		{"in debt", map[string]int64{"v2": -1}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gonality.Rank(div(t, g, tc.values))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRank_SingleEdge(t *testing.T) {
	g := path(t, 2)

	got, err := gonality.Rank(div(t, g, map[string]int64{"v0": 1}))
	require.NoError(t, err)
	assert.Equal(t, 1, got, "one chip on a tree absorbs debt anywhere")

	got, err = gonality.Rank(div(t, g, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestRank_NilDivisor(t *testing.T) {
	_, err := gonality.Rank(nil)
	assert.ErrorIs(t, err, gonality.ErrDivisorNil)
}
