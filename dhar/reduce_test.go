package dhar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/dhar"
)

// path4 returns the path A-B-C-D.
func path4(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFrom(
		[]string{"A", "B", "C", "D"},
		[]core.Edge{{U: "A", V: "B"}, {U: "B", V: "C"}, {U: "C", V: "D"}},
	)
	require.NoError(t, err)

	return g
}

func TestSendDebt_Triangle(t *testing.T) {
	g := triangle(t)
	d := div(t, g, map[string]int64{"A": 2, "B": -1, "C": -1})

	out, script, err := dhar.SendDebt(d, "B")
	require.NoError(t, err)

	assert.Equal(t, []int64{1, -2, 1}, out.ToVector(),
		"one round of legal-set-plus-q firing drains the debt to B")
	assert.Equal(t, map[string]int64{"A": 1, "B": 1, "C": 0}, script.ToMap())
	assert.Equal(t, d.Degree(), out.Degree())
	assert.Equal(t, []string{"B"}, out.InDebt(), "only q may remain negative")
	assert.Equal(t, []int64{2, -1, -1}, d.ToVector(), "input untouched")
}

func TestSendDebt_AlreadyClean(t *testing.T) {
	g := triangle(t)
	d := div(t, g, map[string]int64{"A": 1})

	out, script, err := dhar.SendDebt(d, "A")
	require.NoError(t, err)
	assert.True(t, out.Equal(d), "nothing to do when no non-q vertex is in debt")
	assert.True(t, script.IsZero())
}

func TestSendDebt_PathDebtFarFromQ(t *testing.T) {
	g := path4(t)
	d := div(t, g, map[string]int64{"D": -1})

	var rounds int
	out, _, err := dhar.SendDebt(d, "A", dhar.WithOnFire(func(round int, fired []string) {
		rounds = round
	}))
	require.NoError(t, err)

	assert.Equal(t, []int64{-2, 1, 0, 0}, out.ToVector(),
		"debt at the far end walks down the path into A")
	assert.Equal(t, 4, rounds, "the walk takes one round per hop and stall")
	assert.Equal(t, int64(-1), out.Degree())
}

func TestReduce_TriangleWinnable(t *testing.T) {
	g := triangle(t)
	d := div(t, g, map[string]int64{"A": 2, "B": -1, "C": -1})

	res, err := dhar.Reduce(d, "B")
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 0, 0}, res.Reduced.ToVector())
	assert.Equal(t, map[string]int64{"A": 1, "B": 0, "C": 0}, res.Script.ToMap(),
		"the net script normalizes to a single firing of A")
	assert.Equal(t, "B", res.Q)
	assert.Equal(t, 1, res.DebtRounds)
	assert.Equal(t, 1, res.FireRounds)

	// The reported script must reproduce the reduced divisor exactly.
	replay, err := d.ApplyScript(res.Script)
	require.NoError(t, err)
	assert.True(t, replay.Equal(res.Reduced))
}

func TestReduce_TriangleUnwinnable(t *testing.T) {
	g := triangle(t)
	d := div(t, g, map[string]int64{"C": -1})

	res, err := dhar.Reduce(d, "A")
	require.NoError(t, err)

	assert.Equal(t, []int64{-2, 1, 0}, res.Reduced.ToVector())
	assert.Equal(t, int64(-1), res.Reduced.Degree(), "degree rides through the reduction")
	assert.Equal(t, 1, res.DebtRounds)
	assert.Equal(t, 0, res.FireRounds)

	ok, err := dhar.IsReduced(res.Reduced, "A")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReduce_Cycle4(t *testing.T) {
	g := cycle4(t)
	d := div(t, g, map[string]int64{"A": 3, "B": -3, "C": 3, "D": -3})

	res, err := dhar.Reduce(d, "B")
	require.NoError(t, err)

	assert.Equal(t, []int64{0, -1, 0, 1}, res.Reduced.ToVector())
	assert.Equal(t, 2, res.DebtRounds)
	assert.Equal(t, 1, res.FireRounds)
	assert.Equal(t, map[string]int64{"A": 2, "B": 1, "C": 2, "D": 0}, res.Script.ToMap())

	replay, err := d.ApplyScript(res.Script)
	require.NoError(t, err)
	assert.True(t, replay.Equal(res.Reduced))
}

func TestReduce_Idempotent(t *testing.T) {
	g := cycle4(t)
	d := div(t, g, map[string]int64{"A": 3, "B": -3, "C": 3, "D": -3})

	first, err := dhar.Reduce(d, "B")
	require.NoError(t, err)
	second, err := dhar.Reduce(first.Reduced, "B")
	require.NoError(t, err)

	assert.True(t, second.Reduced.Equal(first.Reduced))
	assert.True(t, second.Script.IsZero(), "a fixed point fires nothing")
	assert.Zero(t, second.DebtRounds)
	assert.Zero(t, second.FireRounds)
}

func TestReduce_UniqueAcrossEquivalentInputs(t *testing.T) {
	g := triangle(t)
	d := div(t, g, map[string]int64{"A": 2, "B": -1, "C": -1})

	base, err := dhar.Reduce(d, "B")
	require.NoError(t, err)

	// Shuffle the position inside its equivalence class; the q-reduced
	// representative must not move.
	moved, script, err := dhar.SendDebt(d, "C")
	require.NoError(t, err)
	require.False(t, script.IsZero(), "the shuffle actually fired something")

	again, err := dhar.Reduce(moved, "B")
	require.NoError(t, err)
	assert.True(t, again.Reduced.Equal(base.Reduced),
		"equivalent inputs share one q-reduced representative")
}

func TestReduce_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	d := div(t, g, map[string]int64{"A": -7})

	res, err := dhar.Reduce(d, "A")
	require.NoError(t, err)
	assert.Equal(t, []int64{-7}, res.Reduced.ToVector(),
		"a lone vertex is already reduced whatever its balance")
	assert.Zero(t, res.DebtRounds)
	assert.Zero(t, res.FireRounds)
}

func TestReduce_HooksSeeRounds(t *testing.T) {
	g := triangle(t)
	d := div(t, g, map[string]int64{"A": 2, "B": -1, "C": -1})

	var fired [][]string
	res, err := dhar.Reduce(d, "B", dhar.WithOnFire(func(round int, set []string) {
		fired = append(fired, set)
	}))
	require.NoError(t, err)

	require.Len(t, fired, res.DebtRounds+res.FireRounds)
	assert.Equal(t, []string{"A", "B"}, fired[0], "debt round fires legal set plus q")
	assert.Equal(t, []string{"A", "C"}, fired[1], "saturation round fires the legal set alone")
}

func TestReduce_ContextCancel(t *testing.T) {
	g := triangle(t)
	d := div(t, g, map[string]int64{"A": 2, "B": -1, "C": -1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dhar.Reduce(d, "B", dhar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReduce_OptionViolation(t *testing.T) {
	g := triangle(t)
	d := div(t, g, nil)

	_, err := dhar.IsWinnable(d, dhar.WithDistinguished(""))
	assert.ErrorIs(t, err, dhar.ErrOptionViolation)
}
