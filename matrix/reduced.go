// File: reduced.go
// Role: reduced Laplacian and the matrix form of script application.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/chipfire/divisor"
)

// Reduced returns a new Laplacian with the row and column of q deleted.
// On a one-vertex graph the result is a valid 0×0 matrix; callers that
// need cells must check Dim first. The receiver is never modified.
//
// Complexity: O(V²)
// Errors: ErrUnknownVertex.
func (l *Laplacian) Reduced(q string) (*Laplacian, error) {
	qi, ok := l.index[q]
	if !ok {
		return nil, fmt.Errorf("matrix: reduce at %q: %w", q, ErrUnknownVertex)
	}
	out := &Laplacian{
		g:     l.g,
		order: make([]string, 0, len(l.order)-1),
		index: make(map[string]int, len(l.order)-1),
		data:  make([][]int64, 0, len(l.order)-1),
	}
	for i, v := range l.order {
		if i == qi {
			continue
		}
		out.index[v] = len(out.order)
		out.order = append(out.order, v)
		row := make([]int64, 0, len(l.order)-1)
		for j := range l.order {
			if j == qi {
				continue
			}
			row = append(row, l.data[i][j])
		}
		out.data = append(out.data, row)
	}

	return out, nil
}

// Apply computes D' = D - L·σ through the dense matrix. The adjacency
// walk in divisor.ApplyScript is the fast path; this form exists so
// tests and tooling can cross-check the two against each other.
//
// Only full Laplacians support Apply; a reduced matrix no longer spans
// the graph's vertex order and returns ErrUnknownVertex.
//
// Complexity: O(V²)
// Errors: divisor.ErrDivisorNil, divisor.ErrScriptNil,
// divisor.ErrGraphMismatch, ErrUnknownVertex.
func (l *Laplacian) Apply(d *divisor.Divisor, s *divisor.Script) (*divisor.Divisor, error) {
	if d == nil {
		return nil, divisor.ErrDivisorNil
	}
	if s == nil {
		return nil, divisor.ErrScriptNil
	}
	if d.Graph() != l.g || s.Graph() != l.g {
		return nil, fmt.Errorf("matrix: apply: %w", divisor.ErrGraphMismatch)
	}
	if len(l.order) != l.g.VertexCount() {
		return nil, fmt.Errorf("matrix: apply on reduced matrix: %w", ErrUnknownVertex)
	}
	vec := d.ToVector()
	sig := s.ToVector()
	out := make([]int64, len(vec))
	for i := range l.data {
		acc := vec[i]
		for j, cell := range l.data[i] {
			acc -= cell * sig[j]
		}
		out[i] = acc
	}

	return divisor.NewDivisorFromVector(l.g, out)
}
