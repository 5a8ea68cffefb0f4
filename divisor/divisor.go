// File: divisor.go
// Role: Divisor type, constructors, accessors and ℤ-module algebra.
//
// Determinism:
//   - ToVector, InDebt and String follow vertex declaration order.

package divisor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/chipfire/core"
)

// Sentinel errors for divisor and script operations.
var (
	// ErrGraphNil indicates a constructor received a nil *core.Graph.
	ErrGraphNil = errors.New("divisor: graph is nil")

	// ErrDivisorNil indicates a binary operation received a nil operand.
	ErrDivisorNil = errors.New("divisor: divisor is nil")

	// ErrScriptNil indicates ApplyScript received a nil script.
	ErrScriptNil = errors.New("divisor: script is nil")

	// ErrGraphMismatch indicates two operands belong to different graph
	// instances. Identity is compared by pointer, never by shape.
	ErrGraphMismatch = errors.New("divisor: operands belong to different graphs")

	// ErrDimensionMismatch indicates a vector whose length differs from
	// the graph's vertex count.
	ErrDimensionMismatch = errors.New("divisor: vector length does not match vertex count")
)

// Divisor is a total function from the vertices of one graph to ℤ,
// the "chip count" at each vertex. The zero value is unusable; always
// construct through NewDivisor or NewDivisorFromVector.
type Divisor struct {
	g      *core.Graph
	values map[string]int64
}

// NewDivisor creates a divisor over g. Vertices named in values start
// with the given chip counts; every other vertex starts at zero. A nil
// values map yields the all-zero divisor.
//
// Errors: ErrGraphNil; unknown keys wrap core.ErrVertexNotFound.
func NewDivisor(g *core.Graph, values map[string]int64) (*Divisor, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	d := &Divisor{g: g, values: make(map[string]int64, g.VertexCount())}
	for _, v := range g.Vertices() {
		d.values[v] = 0
	}
	for v, chips := range values {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("divisor: unknown vertex %q: %w", v, core.ErrVertexNotFound)
		}
		d.values[v] = chips
	}

	return d, nil
}

// NewDivisorFromVector creates a divisor from coordinates aligned with
// the graph's vertex declaration order, the inverse of ToVector.
//
// Errors: ErrGraphNil, ErrDimensionMismatch.
func NewDivisorFromVector(g *core.Graph, vec []int64) (*Divisor, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	order := g.Vertices()
	if len(vec) != len(order) {
		return nil, fmt.Errorf("divisor: got %d coordinates for %d vertices: %w",
			len(vec), len(order), ErrDimensionMismatch)
	}
	d := &Divisor{g: g, values: make(map[string]int64, len(order))}
	for i, v := range order {
		d.values[v] = vec[i]
	}

	return d, nil
}

// Graph returns the graph this divisor is defined over.
func (d *Divisor) Graph() *core.Graph { return d.g }

// Get returns the chip count at v.
// Errors: wraps core.ErrVertexNotFound for undeclared vertices.
func (d *Divisor) Get(v string) (int64, error) {
	if !d.g.HasVertex(v) {
		return 0, fmt.Errorf("divisor: unknown vertex %q: %w", v, core.ErrVertexNotFound)
	}

	return d.values[v], nil
}

// Set replaces the chip count at v. This is a setup operation; game
// moves go through ApplyScript so that degree stays conserved.
// Errors: wraps core.ErrVertexNotFound for undeclared vertices.
func (d *Divisor) Set(v string, chips int64) error {
	if !d.g.HasVertex(v) {
		return fmt.Errorf("divisor: unknown vertex %q: %w", v, core.ErrVertexNotFound)
	}
	d.values[v] = chips

	return nil
}

// Add returns the pointwise sum d + o as a new divisor.
// Errors: ErrDivisorNil, ErrGraphMismatch.
func (d *Divisor) Add(o *Divisor) (*Divisor, error) {
	if o == nil {
		return nil, ErrDivisorNil
	}
	if d.g != o.g {
		return nil, ErrGraphMismatch
	}
	out := d.Clone()
	for v, chips := range o.values {
		out.values[v] += chips
	}

	return out, nil
}

// Sub returns the pointwise difference d - o as a new divisor.
// Errors: ErrDivisorNil, ErrGraphMismatch.
func (d *Divisor) Sub(o *Divisor) (*Divisor, error) {
	if o == nil {
		return nil, ErrDivisorNil
	}
	if d.g != o.g {
		return nil, ErrGraphMismatch
	}
	out := d.Clone()
	for v, chips := range o.values {
		out.values[v] -= chips
	}

	return out, nil
}

// Scale returns k·d as a new divisor.
func (d *Divisor) Scale(k int64) *Divisor {
	out := d.Clone()
	for v := range out.values {
		out.values[v] *= k
	}

	return out
}

// Neg returns -d as a new divisor.
func (d *Divisor) Neg() *Divisor { return d.Scale(-1) }

// Equal reports pointwise equality. Divisors over different graph
// instances are never equal, without being an error.
func (d *Divisor) Equal(o *Divisor) bool {
	if o == nil || d.g != o.g {
		return false
	}
	for v, chips := range d.values {
		if o.values[v] != chips {
			return false
		}
	}

	return true
}

// Clone returns an independent copy sharing the same graph.
func (d *Divisor) Clone() *Divisor {
	values := make(map[string]int64, len(d.values))
	for v, chips := range d.values {
		values[v] = chips
	}

	return &Divisor{g: d.g, values: values}
}

// Degree returns the total number of chips, Σ_v D(v). Degree is
// invariant under ApplyScript.
func (d *Divisor) Degree() int64 {
	var sum int64
	for _, chips := range d.values {
		sum += chips
	}

	return sum
}

// IsEffective reports whether every vertex is out of debt (D(v) ≥ 0).
func (d *Divisor) IsEffective() bool {
	for _, chips := range d.values {
		if chips < 0 {
			return false
		}
	}

	return true
}

// InDebt returns the vertices with negative chip counts, in declaration
// order. An effective divisor yields an empty slice.
func (d *Divisor) InDebt() []string {
	var out []string
	for _, v := range d.g.Vertices() {
		if d.values[v] < 0 {
			out = append(out, v)
		}
	}

	return out
}

// ToMap returns a copy of the full vertex→chips mapping.
func (d *Divisor) ToMap() map[string]int64 {
	out := make(map[string]int64, len(d.values))
	for v, chips := range d.values {
		out[v] = chips
	}

	return out
}

// ToVector returns the chip counts in vertex declaration order, the
// layout the matrix package uses for Laplacian rows.
func (d *Divisor) ToVector() []int64 {
	order := d.g.Vertices()
	out := make([]int64, len(order))
	for i, v := range order {
		out[i] = d.values[v]
	}

	return out
}

// ApplyScript returns D' = D - L·σ as a new divisor, evaluated edge by
// edge rather than through an explicit Laplacian: vertex v loses
// σ(v)·deg(v) chips and gains σ(u)·w(u,v) from each neighbor u.
// The receiver is never modified and the total degree is preserved.
//
// Complexity: O(V + E)
// Errors: ErrScriptNil, ErrGraphMismatch.
func (d *Divisor) ApplyScript(s *Script) (*Divisor, error) {
	if s == nil {
		return nil, ErrScriptNil
	}
	if d.g != s.g {
		return nil, ErrGraphMismatch
	}
	out := d.Clone()
	for _, v := range d.g.Vertices() {
		sigma := s.fires[v]
		if sigma == 0 {
			continue
		}
		deg, err := d.g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("divisor: apply script: %w", err)
		}
		// v discharges sigma chips along each incident edge.
		out.values[v] -= sigma * deg
		nbrs, err := d.g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("divisor: apply script: %w", err)
		}
		for _, u := range nbrs {
			w, err := d.g.EdgeCount(v, u)
			if err != nil {
				return nil, fmt.Errorf("divisor: apply script: %w", err)
			}
			out.values[u] += sigma * w
		}
	}

	return out, nil
}

// String renders the divisor as {A:2, B:-1, ...} in declaration order.
func (d *Divisor) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range d.g.Vertices() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%d", v, d.values[v])
	}
	b.WriteByte('}')

	return b.String()
}
