package layout_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chipfire/builder"
	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
	"github.com/katalvlaran/chipfire/layout"
)

func TestBuild_BareGraph(t *testing.T) {
	g, err := builder.Complete(3)
	require.NoError(t, err)

	m, err := layout.Build(g, nil)
	require.NoError(t, err)

	require.Len(t, m.Nodes, 3)
	for _, n := range m.Nodes {
		assert.Equal(t, int64(0), n.Value)
		assert.False(t, n.InDebt)
		assert.Equal(t, layout.ColorNeutral, n.Color)
	}
	assert.Len(t, m.Links, 3)
	assert.False(t, m.Meta.HasDivisor)
	assert.Equal(t, int64(0), m.Meta.Degree)
	assert.Equal(t, 3, m.Meta.Stats.TotalNodes)
	assert.Equal(t, 3, m.Meta.Stats.TotalEdges)
	assert.WithinDuration(t, time.Now(), m.Meta.GeneratedAt, 5*time.Second)
}

func TestBuild_WithDivisor(t *testing.T) {
	g, err := builder.Complete(3)
	require.NoError(t, err)
	d, err := divisor.NewDivisor(g, map[string]int64{"v0": 2, "v1": -1})
	require.NoError(t, err)

	m, err := layout.Build(g, d)
	require.NoError(t, err)

	require.Len(t, m.Nodes, 3)
	assert.Equal(t, int64(2), m.Nodes[0].Value)
	assert.Equal(t, layout.ColorCredit, m.Nodes[0].Color)
	assert.False(t, m.Nodes[0].InDebt)

	assert.Equal(t, int64(-1), m.Nodes[1].Value)
	assert.Equal(t, layout.ColorDebt, m.Nodes[1].Color)
	assert.True(t, m.Nodes[1].InDebt)

	assert.Equal(t, int64(0), m.Nodes[2].Value)
	assert.Equal(t, layout.ColorNeutral, m.Nodes[2].Color)

	assert.True(t, m.Meta.HasDivisor)
	assert.Equal(t, int64(1), m.Meta.Degree)
}

func TestBuild_CirclePositions(t *testing.T) {
	g, err := builder.Cycle(4)
	require.NoError(t, err)

	m, err := layout.Build(g, nil)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 4)

	// Quarter turns starting at twelve o'clock: (0,-1), (1,0), (0,1), (-1,0).
	want := [][2]float64{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for i, n := range m.Nodes {
		assert.InDelta(t, want[i][0], n.X, 1e-9, "node %d X", i)
		assert.InDelta(t, want[i][1], n.Y, 1e-9, "node %d Y", i)
	}
}

func TestBuild_Multigraph(t *testing.T) {
	g, err := core.NewGraphFrom(
		[]string{"A", "B"},
		[]core.Edge{{U: "A", V: "B", Count: 3}},
	)
	require.NoError(t, err)

	m, err := layout.Build(g, nil)
	require.NoError(t, err)

	require.Len(t, m.Links, 1, "parallel edges collapse into one link")
	assert.Equal(t, "A", m.Links[0].Source)
	assert.Equal(t, "B", m.Links[0].Target)
	assert.Equal(t, int64(3), m.Links[0].Count)
	assert.Equal(t, 3, m.Meta.Stats.TotalEdges, "multiplicity counts in the stats")
}

func TestBuild_Validation(t *testing.T) {
	_, err := layout.Build(nil, nil)
	assert.ErrorIs(t, err, layout.ErrGraphNil)

	g, gerr := builder.Complete(3)
	require.NoError(t, gerr)
	other, gerr := builder.Complete(3)
	require.NoError(t, gerr)
	d, derr := divisor.NewDivisor(other, nil)
	require.NoError(t, derr)

	_, err = layout.Build(g, d)
	assert.ErrorIs(t, err, divisor.ErrGraphMismatch)
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	g, err := builder.Cycle(4)
	require.NoError(t, err)
	d, err := divisor.NewDivisor(g, map[string]int64{"v0": 1, "v2": -2})
	require.NoError(t, err)
	m, err := layout.Build(g, d)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.WriteJSON(&buf))
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("}\n")))
	assert.Contains(t, buf.String(), "\n  \"nodes\"", "output is indented")

	var back layout.Model
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, m.Nodes, back.Nodes)
	assert.Equal(t, m.Links, back.Links)
	assert.Equal(t, m.Meta.Stats, back.Meta.Stats)
	assert.True(t, back.Meta.HasDivisor)
	assert.Equal(t, int64(-1), back.Meta.Degree)
}
