package gonality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chipfire/gonality"
)

func TestIsParkingFunction(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		want bool
	}{
		{"empty", nil, true},
		{"single", []int{1}, true},
		{"repeat then shift", []int{1, 1, 2}, true},
		{"permutations always park", []int{1, 3, 2}, true},
		{"late preferences collide", []int{2, 2}, false},
		{"order does not matter", []int{2, 1, 1}, true},
		{"nobody wants the first spot", []int{2, 2, 3}, false},
		{"spots are 1-based", []int{0, 1}, false},
		{"preference beyond the street", []int{1, 4, 2}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gonality.IsParkingFunction(tc.seq))
		})
	}
}

func TestParkingFunctions(t *testing.T) {
	assert.Nil(t, gonality.ParkingFunctions(0))
	assert.Equal(t, [][]int{{1}}, gonality.ParkingFunctions(1))

	two := gonality.ParkingFunctions(2)
	assert.Equal(t, [][]int{{1, 1}, {1, 2}, {2, 1}}, two, "lexicographic order")

	three := gonality.ParkingFunctions(3)
	require.Len(t, three, 16)
	assert.Equal(t, []int{1, 1, 1}, three[0])
	assert.Equal(t, []int{3, 2, 1}, three[len(three)-1])
}

func TestParkingCount(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 16},
		{4, 125},
	}
	for _, tc := range tests {
		got, err := gonality.ParkingCount(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	// Counts and generation agree while generation is still feasible.
	want, err := gonality.ParkingCount(4)
	require.NoError(t, err)
	assert.Equal(t, int(want), len(gonality.ParkingFunctions(4)))

	got, err := gonality.ParkingCount(16)
	require.NoError(t, err)
	assert.Positive(t, got, "n=16 still fits int64")

	_, err = gonality.ParkingCount(17)
	assert.ErrorIs(t, err, gonality.ErrOverflow)
}
