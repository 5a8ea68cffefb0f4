package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chipfire/builder"
	"github.com/katalvlaran/chipfire/core"
)

// assertRegular checks that every vertex has degree k.
func assertRegular(t *testing.T, g *core.Graph, k int64) {
	t.Helper()
	for _, v := range g.Vertices() {
		deg, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, k, deg, "vertex %s", v)
	}
}

func TestComplete(t *testing.T) {
	g, err := builder.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeTotal())
	assert.True(t, g.IsConnected())

	g, err = builder.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, g.Vertices())
	assert.EqualValues(t, 6, g.EdgeTotal())
	assert.True(t, g.IsSimple())
	assertRegular(t, g, 3)
}

func TestCycle(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.EqualValues(t, 5, g.EdgeTotal())
	assert.True(t, g.IsConnected())
	assertRegular(t, g, 2)

	// The ring closes: v0 touches both ends.
	nbrs, err := g.Neighbors("v0")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v4"}, nbrs)
}

func TestPath(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)
	assert.EqualValues(t, 3, g.EdgeTotal())

	deg := func(v string) int64 {
		d, err := g.Degree(v)
		require.NoError(t, err)
		return d
	}
	assert.EqualValues(t, 1, deg("v0"))
	assert.EqualValues(t, 2, deg("v1"))
	assert.EqualValues(t, 2, deg("v2"))
	assert.EqualValues(t, 1, deg("v3"))
}

func TestStar(t *testing.T) {
	g, err := builder.Star(5)
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.EqualValues(t, 5, g.EdgeTotal())

	center, err := g.Degree("v0")
	require.NoError(t, err)
	assert.EqualValues(t, 5, center)
	leaf, err := g.Degree("v3")
	require.NoError(t, err)
	assert.EqualValues(t, 1, leaf)
}

func TestGrid(t *testing.T) {
	g, err := builder.Grid(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	// 2 rows of 2 horizontal edges plus 3 verticals.
	assert.EqualValues(t, 7, g.EdgeTotal())
	assert.True(t, g.IsConnected())

	corner, err := g.Degree("v0")
	require.NoError(t, err)
	assert.EqualValues(t, 2, corner)
	mid, err := g.Degree("v4")
	require.NoError(t, err)
	assert.EqualValues(t, 3, mid)

	// A 1×1 grid degenerates to a single vertex.
	g, err = builder.Grid(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeTotal())
}

func TestCompleteBipartite(t *testing.T) {
	g, err := builder.CompleteBipartite(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.EqualValues(t, 6, g.EdgeTotal())

	left, err := g.Degree("v0")
	require.NoError(t, err)
	assert.EqualValues(t, 3, left)
	right, err := g.Degree("v4")
	require.NoError(t, err)
	assert.EqualValues(t, 2, right)
}

func TestCompleteMultipartite(t *testing.T) {
	// All parts of size one collapse to the complete graph.
	g, err := builder.CompleteMultipartite([]int{1, 1, 1, 1})
	require.NoError(t, err)
	k4, err := builder.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, k4.Edges(), g.Edges())

	// K_{2,2,2}: no edges inside a part.
	g, err = builder.CompleteMultipartite([]int{2, 2, 2})
	require.NoError(t, err)
	assert.EqualValues(t, 12, g.EdgeTotal())
	inside, err := g.EdgeCount("v0", "v1")
	require.NoError(t, err)
	assert.Zero(t, inside)
	across, err := g.EdgeCount("v0", "v2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, across)
}

func TestPlatonic(t *testing.T) {
	cases := []struct {
		solid    builder.PlatonicSolid
		vertices int
		edges    int64
		degree   int64
	}{
		{builder.Tetrahedron, 4, 6, 3},
		{builder.Cube, 8, 12, 3},
		{builder.Octahedron, 6, 12, 4},
		{builder.Dodecahedron, 20, 30, 3},
		{builder.Icosahedron, 12, 30, 5},
	}
	for _, tc := range cases {
		t.Run(tc.solid.String(), func(t *testing.T) {
			g, err := builder.Platonic(tc.solid)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeTotal())
			assert.True(t, g.IsConnected())
			assert.True(t, g.IsSimple())
			assertRegular(t, g, tc.degree)
		})
	}
}

func TestPlatonic_OctahedronIsTripartite(t *testing.T) {
	octa, err := builder.Platonic(builder.Octahedron)
	require.NoError(t, err)
	k222, err := builder.CompleteMultipartite([]int{2, 2, 2})
	require.NoError(t, err)

	assert.Equal(t, k222.Edges(), octa.Edges(),
		"the octahedron shell is exactly K_{2,2,2}")
}

func TestPlatonicGonality(t *testing.T) {
	cases := []struct {
		solid builder.PlatonicSolid
		want  builder.GonalityRange
	}{
		{builder.Tetrahedron, builder.GonalityRange{Lower: 3, Upper: 3, Exact: true}},
		{builder.Cube, builder.GonalityRange{Lower: 4, Upper: 4, Exact: true}},
		{builder.Octahedron, builder.GonalityRange{Lower: 4, Upper: 4, Exact: true}},
		{builder.Dodecahedron, builder.GonalityRange{Lower: 3, Upper: 7, Exact: false}},
		{builder.Icosahedron, builder.GonalityRange{Lower: 5, Upper: 9, Exact: false}},
	}
	for _, tc := range cases {
		t.Run(tc.solid.String(), func(t *testing.T) {
			got, err := builder.PlatonicGonality(tc.solid)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := builder.PlatonicGonality(builder.PlatonicSolid(99))
	assert.ErrorIs(t, err, builder.ErrUnknownSolid)
}

func TestWithLabel(t *testing.T) {
	g, err := builder.Cycle(3, builder.WithLabel(func(i int) string {
		return fmt.Sprintf("n%d", i)
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2"}, g.Vertices())

	// A constant labeler collides on the second vertex.
	_, err = builder.Complete(3, builder.WithLabel(func(int) string { return "same" }))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestBadShapes(t *testing.T) {
	cases := []struct {
		name  string
		build func() error
	}{
		{"Complete(0)", func() error { _, err := builder.Complete(0); return err }},
		{"Cycle(2)", func() error { _, err := builder.Cycle(2); return err }},
		{"Path(1)", func() error { _, err := builder.Path(1); return err }},
		{"Star(0)", func() error { _, err := builder.Star(0); return err }},
		{"Grid(0,3)", func() error { _, err := builder.Grid(0, 3); return err }},
		{"CompleteBipartite(0,2)", func() error { _, err := builder.CompleteBipartite(0, 2); return err }},
		{"CompleteMultipartite()", func() error { _, err := builder.CompleteMultipartite(nil); return err }},
		{"CompleteMultipartite(5)", func() error { _, err := builder.CompleteMultipartite([]int{5}); return err }},
		{"CompleteMultipartite(1,0)", func() error { _, err := builder.CompleteMultipartite([]int{1, 0}); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.build(), builder.ErrBadShape)
		})
	}

	_, err := builder.Platonic(builder.PlatonicSolid(-1))
	assert.ErrorIs(t, err, builder.ErrUnknownSolid)
}
