package greedy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/dhar"
	"github.com/katalvlaran/chipfire/divisor"
	"github.com/katalvlaran/chipfire/greedy"
)

// triangle builds A-B-C-A with unit edges.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFrom(
		[]string{"A", "B", "C"},
		[]core.Edge{{U: "A", V: "B"}, {U: "B", V: "C"}, {U: "C", V: "A"}},
	)
	require.NoError(t, err)
	return g
}

// path4 builds the path A-B-C-D.
func path4(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFrom(
		[]string{"A", "B", "C", "D"},
		[]core.Edge{{U: "A", V: "B"}, {U: "B", V: "C"}, {U: "C", V: "D"}},
	)
	require.NoError(t, err)
	return g
}

func div(t *testing.T, g *core.Graph, vals map[string]int64) *divisor.Divisor {
	t.Helper()
	d, err := divisor.NewDivisor(g, vals)
	require.NoError(t, err)
	return d
}

func TestSolve_Triangle(t *testing.T) {
	g := triangle(t)
	d := div(t, g, map[string]int64{"A": 2, "B": -1, "C": -1})

	var played []string
	res, ok, err := greedy.Solve(d, greedy.WithOnMove(func(_ int, v string) {
		played = append(played, v)
	}))
	require.NoError(t, err)
	require.True(t, ok)

	// B borrows first (earliest debtor), then C clears the fallout.
	assert.Equal(t, []string{"B", "C"}, played)
	assert.Equal(t, 2, res.Moves)
	assert.Equal(t, map[string]int64{"A": 0, "B": -1, "C": -1}, res.Script.ToMap())
	assert.True(t, res.Final.IsEffective())
	assert.Equal(t, []int64{0, 0, 0}, res.Final.ToVector())

	// The input never moves.
	assert.Equal(t, []int64{2, -1, -1}, d.ToVector())
}

func TestSolve_PathDebtChasedToTheEnd(t *testing.T) {
	g := path4(t)
	d := div(t, g, map[string]int64{"A": 1, "D": -1})

	var moves []int
	var played []string
	res, ok, err := greedy.Solve(d, greedy.WithOnMove(func(m int, v string) {
		moves = append(moves, m)
		played = append(played, v)
	}))
	require.NoError(t, err)
	require.True(t, ok)

	// Borrowing at D pushes the debt one step up the path; each round
	// the earliest debtor moves, so the play walks D,C,B then unwinds.
	assert.Equal(t, []string{"D", "C", "B", "D", "C", "D"}, played)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, moves)
	assert.Equal(t, 6, res.Moves)
	assert.Equal(t, map[string]int64{"A": 0, "B": -1, "C": -2, "D": -3}, res.Script.ToMap())
	assert.Equal(t, []int64{0, 0, 0, 0}, res.Final.ToVector())
}

func TestSolve_Multigraph(t *testing.T) {
	g, err := core.NewGraphFrom(
		[]string{"A", "B"},
		[]core.Edge{{U: "A", V: "B", Count: 3}},
	)
	require.NoError(t, err)
	d := div(t, g, map[string]int64{"A": -2, "B": 3})

	res, ok, err := greedy.Solve(d)
	require.NoError(t, err)
	require.True(t, ok)

	// One borrow moves three chips at once across the triple edge.
	assert.Equal(t, 1, res.Moves)
	assert.Equal(t, []int64{1, 0}, res.Final.ToVector())
}

func TestSolve_AlreadyEffective(t *testing.T) {
	g := triangle(t)
	d := div(t, g, map[string]int64{"A": 1, "C": 2})

	res, ok, err := greedy.Solve(d)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Zero(t, res.Moves)
	assert.True(t, res.Script.IsZero())
	assert.True(t, res.Final.Equal(d))
}

func TestSolve_EmptyGraph(t *testing.T) {
	d := div(t, core.NewGraph(), nil)

	res, ok, err := greedy.Solve(d)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, res.Moves)
}

func TestSolve_BudgetExhausted(t *testing.T) {
	g := triangle(t)
	// Degree -1 on a triangle is unwinnable; borrowing cycles the debt
	// around the triangle forever, so the default 30-move budget dies.
	d := div(t, g, map[string]int64{"C": -1})

	res, ok, err := greedy.Solve(d)
	require.NoError(t, err, "running out of budget is not an error")
	assert.False(t, ok)
	assert.Nil(t, res)
}

func TestSolve_BudgetEdge(t *testing.T) {
	g := path4(t)
	vals := map[string]int64{"A": 1, "D": -1}

	// The path fixture needs exactly six moves: a budget of six wins,
	// a budget of five does not.
	res, ok, err := greedy.Solve(div(t, g, vals), greedy.WithMaxMoves(6))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 6, res.Moves)

	res, ok, err = greedy.Solve(div(t, g, vals), greedy.WithMaxMoves(5))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, res)
}

func TestSolve_AgreesWithTheOracle(t *testing.T) {
	g := path4(t)

	winnable := div(t, g, map[string]int64{"A": 1, "D": -1})
	verdict, err := dhar.IsWinnable(winnable)
	require.NoError(t, err)
	require.True(t, verdict)
	_, ok, err := greedy.Solve(winnable)
	require.NoError(t, err)
	assert.True(t, ok, "greedy must find a play on this winnable board")

	hopeless := div(t, triangle(t), map[string]int64{"C": -1})
	verdict, err = dhar.IsWinnable(hopeless)
	require.NoError(t, err)
	require.False(t, verdict)
	_, ok, err = greedy.Solve(hopeless)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSolve_Preconditions(t *testing.T) {
	_, _, err := greedy.Solve(nil)
	assert.ErrorIs(t, err, greedy.ErrDivisorNil)

	d := div(t, triangle(t), map[string]int64{"C": -1})
	_, _, err = greedy.Solve(d, greedy.WithMaxMoves(0))
	assert.ErrorIs(t, err, greedy.ErrOptionViolation)
	_, _, err = greedy.Solve(d, greedy.WithMaxMoves(-3))
	assert.ErrorIs(t, err, greedy.ErrOptionViolation)
}

func TestSolve_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := div(t, triangle(t), map[string]int64{"A": 2, "B": -1, "C": -1})
	_, _, err := greedy.Solve(d, greedy.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
