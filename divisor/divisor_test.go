package divisor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

// triangle returns the single-edge triangle on A, B, C.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFrom(
		[]string{"A", "B", "C"},
		[]core.Edge{{U: "A", V: "B"}, {U: "B", V: "C"}, {U: "A", V: "C"}},
	)
	require.NoError(t, err)

	return g
}

func TestNewDivisor_DefaultsAndValidation(t *testing.T) {
	g := triangle(t)

	d, err := divisor.NewDivisor(g, map[string]int64{"A": 2, "B": -1})
	require.NoError(t, err)

	a, err := d.Get("A")
	require.NoError(t, err)
	c, err := d.Get("C")
	require.NoError(t, err)
	assert.Equal(t, int64(2), a)
	assert.Equal(t, int64(0), c, "unnamed vertices default to zero")

	_, err = divisor.NewDivisor(nil, nil)
	assert.ErrorIs(t, err, divisor.ErrGraphNil)

	_, err = divisor.NewDivisor(g, map[string]int64{"Z": 1})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDivisor_GetSet_UnknownVertex(t *testing.T) {
	g := triangle(t)
	d, err := divisor.NewDivisor(g, nil)
	require.NoError(t, err)

	_, err = d.Get("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.ErrorIs(t, d.Set("Z", 5), core.ErrVertexNotFound)

	require.NoError(t, d.Set("B", -4))
	b, err := d.Get("B")
	require.NoError(t, err)
	assert.Equal(t, int64(-4), b)
}

func TestDivisor_ModuleAlgebra(t *testing.T) {
	g := triangle(t)
	d1, err := divisor.NewDivisor(g, map[string]int64{"A": 2, "B": -1, "C": -1})
	require.NoError(t, err)
	d2, err := divisor.NewDivisor(g, map[string]int64{"A": 1, "B": 1, "C": 0})
	require.NoError(t, err)

	sum, err := d1.Add(d2)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, -1}, sum.ToVector())

	diff, err := d1.Sub(d2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, -2, -1}, diff.ToVector())

	assert.Equal(t, []int64{4, -2, -2}, d1.Scale(2).ToVector())
	assert.Equal(t, []int64{-2, 1, 1}, d1.Neg().ToVector())

	// Operands over a distinct graph instance are incompatible even
	// though the shape is identical.
	other := triangle(t)
	alien, err := divisor.NewDivisor(other, nil)
	require.NoError(t, err)
	_, err = d1.Add(alien)
	assert.ErrorIs(t, err, divisor.ErrGraphMismatch)
	_, err = d1.Sub(nil)
	assert.ErrorIs(t, err, divisor.ErrDivisorNil)
	assert.False(t, d1.Equal(alien), "same shape, different graph: not equal")
}

func TestDivisor_DegreeEffectiveInDebt(t *testing.T) {
	g := triangle(t)
	d, err := divisor.NewDivisor(g, map[string]int64{"A": 2, "B": -1, "C": -1})
	require.NoError(t, err)

	assert.Equal(t, int64(0), d.Degree())
	assert.False(t, d.IsEffective())
	assert.Equal(t, []string{"B", "C"}, d.InDebt())

	eff, err := divisor.NewDivisor(g, map[string]int64{"A": 1})
	require.NoError(t, err)
	assert.True(t, eff.IsEffective())
	assert.Empty(t, eff.InDebt())
}

func TestDivisor_RoundTrips(t *testing.T) {
	g := triangle(t)
	d, err := divisor.NewDivisor(g, map[string]int64{"A": 3, "B": -2, "C": 7})
	require.NoError(t, err)

	fromVec, err := divisor.NewDivisorFromVector(g, d.ToVector())
	require.NoError(t, err)
	assert.True(t, d.Equal(fromVec))

	fromMap, err := divisor.NewDivisor(g, d.ToMap())
	require.NoError(t, err)
	assert.True(t, d.Equal(fromMap))

	_, err = divisor.NewDivisorFromVector(g, []int64{1, 2})
	assert.ErrorIs(t, err, divisor.ErrDimensionMismatch)
}

func TestDivisor_ApplyScript_FireVertex(t *testing.T) {
	g := triangle(t)
	d, err := divisor.NewDivisor(g, map[string]int64{"A": 2, "B": -1, "C": -1})
	require.NoError(t, err)

	fireA, err := divisor.NewScriptFrom(g, map[string]int64{"A": 1})
	require.NoError(t, err)

	next, err := d.ApplyScript(fireA)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, next.ToVector(),
		"A discharges one chip along each of its two edges")
	assert.Equal(t, d.Degree(), next.Degree(), "degree is conserved")
	assert.Equal(t, []int64{2, -1, -1}, d.ToVector(), "receiver untouched")
}

func TestDivisor_ApplyScript_BorrowAndAllOnes(t *testing.T) {
	g := triangle(t)
	d, err := divisor.NewDivisor(g, nil)
	require.NoError(t, err)

	borrowC, err := divisor.NewScriptFrom(g, map[string]int64{"C": -1})
	require.NoError(t, err)
	next, err := d.ApplyScript(borrowC)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, -1, 2}, next.ToVector(),
		"borrowing pulls one chip across each incident edge")

	// Firing every vertex once moves nothing: L·1 = 0.
	ones, err := divisor.NewScriptFrom(g, map[string]int64{"A": 1, "B": 1, "C": 1})
	require.NoError(t, err)
	same, err := d.ApplyScript(ones)
	require.NoError(t, err)
	assert.True(t, d.Equal(same))
}

func TestDivisor_ApplyScript_Multigraph(t *testing.T) {
	g, err := core.NewGraphFrom(
		[]string{"A", "B", "C"},
		[]core.Edge{{U: "A", V: "B", Count: 2}, {U: "B", V: "C"}},
	)
	require.NoError(t, err)

	d, err := divisor.NewDivisor(g, nil)
	require.NoError(t, err)
	fireB, err := divisor.NewScriptFrom(g, map[string]int64{"B": 1})
	require.NoError(t, err)

	next, err := d.ApplyScript(fireB)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, -3, 1}, next.ToVector(),
		"the doubled edge carries two chips per firing")
}

func TestDivisor_ApplyScript_Composition(t *testing.T) {
	g := triangle(t)
	d, err := divisor.NewDivisor(g, map[string]int64{"A": 2, "B": -1, "C": -1})
	require.NoError(t, err)

	s1, err := divisor.NewScriptFrom(g, map[string]int64{"A": 1})
	require.NoError(t, err)
	s2, err := divisor.NewScriptFrom(g, map[string]int64{"B": 1})
	require.NoError(t, err)

	step1, err := d.ApplyScript(s1)
	require.NoError(t, err)
	step2, err := step1.ApplyScript(s2)
	require.NoError(t, err)

	combined, err := s1.Add(s2)
	require.NoError(t, err)
	direct, err := d.ApplyScript(combined)
	require.NoError(t, err)

	assert.True(t, step2.Equal(direct), "scripts compose additively")
	assert.Equal(t, []int64{1, -2, 1}, direct.ToVector())
}

func TestDivisor_ApplyScript_Mismatch(t *testing.T) {
	g := triangle(t)
	d, err := divisor.NewDivisor(g, nil)
	require.NoError(t, err)

	_, err = d.ApplyScript(nil)
	assert.ErrorIs(t, err, divisor.ErrScriptNil)

	other := triangle(t)
	alien, err := divisor.NewScript(other)
	require.NoError(t, err)
	_, err = d.ApplyScript(alien)
	assert.ErrorIs(t, err, divisor.ErrGraphMismatch)
}

func TestDivisor_String(t *testing.T) {
	g := triangle(t)
	d, err := divisor.NewDivisor(g, map[string]int64{"A": 2, "B": -1})
	require.NoError(t, err)
	assert.Equal(t, "{A:2, B:-1, C:0}", d.String())
}
