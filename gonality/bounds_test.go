package gonality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chipfire/builder"
	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/gonality"
)

func TestBounds_Platonic(t *testing.T) {
	tests := []struct {
		solid        builder.PlatonicSolid
		lower, upper int
	}{
		{builder.Tetrahedron, 3, 3},
		{builder.Cube, 3, 4},
		{builder.Octahedron, 4, 4},
		{builder.Dodecahedron, 3, 7},
		{builder.Icosahedron, 5, 9},
	}
	for _, tc := range tests {
		t.Run(tc.solid.String(), func(t *testing.T) {
			r, err := gonality.Bounds(platonic(t, tc.solid))
			require.NoError(t, err)
			assert.Equal(t, tc.lower, r.Lower)
			assert.Equal(t, tc.upper, r.Upper)
		})
	}
}

func TestBounds_Cycle4Components(t *testing.T) {
	r, err := gonality.Bounds(cycle(t, 4))
	require.NoError(t, err)

	assert.Equal(t, 2, r.Lower)
	assert.Equal(t, 2, r.Upper)
	assert.Equal(t, 2, r.MinDegree)
	assert.Equal(t, 3, r.Trivial)
	assert.Equal(t, 2, r.Independence, "n minus the independence number 2")
	assert.Equal(t, 2, r.BrillNoether, "genus 1 gives floor(4/2)")
}

func TestBounds_SmallGraphs(t *testing.T) {
	r, err := gonality.Bounds(path(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Lower)
	assert.Equal(t, 1, r.Upper, "trees have gonality 1")

	r, err = gonality.Bounds(complete(t, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Lower)
	assert.Equal(t, 1, r.Upper)
	assert.Equal(t, 0, r.Trivial, "n-1 needs at least two vertices")
}

func TestBounds_Multigraph(t *testing.T) {
	r, err := gonality.Bounds(banana(t))
	require.NoError(t, err)

	assert.Equal(t, 1, r.Lower, "parallel edges collapse for the degree bound")
	assert.Equal(t, 2, r.Upper)
	assert.Equal(t, 1, r.MinDegree)
	assert.Equal(t, 0, r.Trivial, "simple-graph bound does not apply")
	assert.Equal(t, 0, r.Independence, "simple-graph bound does not apply")
	assert.Equal(t, 2, r.BrillNoether, "genus 2 gives floor(5/2)")
}

func TestBounds_ContainGonality(t *testing.T) {
	graphs := map[string]*core.Graph{
		"triangle": complete(t, 3),
		"C4":       cycle(t, 4),
		"P4":       path(t, 4),
		"K23":      bipartite(t, 2, 3),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			r, err := gonality.Bounds(g)
			require.NoError(t, err)
			gon, err := gonality.Gonality(g)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, gon, r.Lower)
			assert.LessOrEqual(t, gon, r.Upper)
		})
	}
}

func TestBounds_Validation(t *testing.T) {
	_, err := gonality.Bounds(nil)
	assert.ErrorIs(t, err, gonality.ErrGraphNil)

	_, err = gonality.Bounds(core.NewGraph())
	assert.ErrorIs(t, err, gonality.ErrEmptyGraph)

	split, gerr := core.NewGraphFrom([]string{"A", "B"}, nil)
	require.NoError(t, gerr)
	_, err = gonality.Bounds(split)
	assert.ErrorIs(t, err, gonality.ErrDisconnected)
}
