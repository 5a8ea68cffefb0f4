// File: shapes.go
// Role: the parametric graph families.
//
// Canonical orders:
//   - vertices are declared by increasing index 0..n-1;
//   - edges are emitted lowest index first (pairs (i,j) with i < j in
//     lexicographic order of the family's documented sweep).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chipfire/core"
)

// addVertices declares n labeled vertices in canonical order and
// returns their IDs. A labeler that maps two indices to the same ID is
// rejected here, before any edge exists.
func addVertices(g *core.Graph, n int, o Options) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := o.Label(i)
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("builder: vertex %d: %w", i, err)
		}
		if g.VertexCount() != i+1 {
			return nil, fmt.Errorf("%w: label %q collides at index %d", ErrOptionViolation, id, i)
		}
		ids[i] = id
	}

	return ids, nil
}

// connect adds a unit edge and wraps any failure with both endpoints.
func connect(g *core.Graph, u, v string) error {
	if err := g.AddEdge(u, v, 1); err != nil {
		return fmt.Errorf("builder: edge {%s,%s}: %w", u, v, err)
	}

	return nil
}

// Complete builds the complete simple graph K_n (n >= 1).
// Complexity: O(n²).
func Complete(n int, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: Complete needs n >= 1, got %d", ErrBadShape, n)
	}

	g := core.NewGraph()
	ids, err := addVertices(g, n, o)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = connect(g, ids[i], ids[j]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Cycle builds the n-cycle C_n (n >= 3).
// Complexity: O(n).
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: Cycle needs n >= 3, got %d", ErrBadShape, n)
	}

	g := core.NewGraph()
	ids, err := addVertices(g, n, o)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = connect(g, ids[i], ids[(i+1)%n]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Path builds the path P_n (n >= 2). Single-vertex boards come from
// Complete(1).
// Complexity: O(n).
func Path(n int, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: Path needs n >= 2, got %d", ErrBadShape, n)
	}

	g := core.NewGraph()
	ids, err := addVertices(g, n, o)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = connect(g, ids[i], ids[i+1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Star builds a star: index 0 is the center, indices 1..leaves hang
// off it (leaves >= 1).
// Complexity: O(leaves).
func Star(leaves int, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if leaves < 1 {
		return nil, fmt.Errorf("%w: Star needs leaves >= 1, got %d", ErrBadShape, leaves)
	}

	g := core.NewGraph()
	ids, err := addVertices(g, leaves+1, o)
	if err != nil {
		return nil, err
	}
	for i := 1; i <= leaves; i++ {
		if err = connect(g, ids[0], ids[i]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Grid builds a rows×cols 4-neighborhood grid in row-major order:
// index r·cols+c, edges right then down per cell (rows, cols >= 1).
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: Grid needs rows, cols >= 1, got %d×%d", ErrBadShape, rows, cols)
	}

	g := core.NewGraph()
	ids, err := addVertices(g, rows*cols, o)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := r*cols + c
			if c+1 < cols {
				if err = connect(g, ids[at], ids[at+1]); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err = connect(g, ids[at], ids[at+cols]); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// CompleteBipartite builds K_{m,n}: indices 0..m-1 on the left,
// m..m+n-1 on the right (m, n >= 1).
// Complexity: O(m·n).
func CompleteBipartite(m, n int, opts ...Option) (*core.Graph, error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("%w: CompleteBipartite needs m, n >= 1, got %d,%d", ErrBadShape, m, n)
	}

	return CompleteMultipartite([]int{m, n}, opts...)
}

// CompleteMultipartite builds K_{p1,...,pk}: vertices grouped into
// parts by index order, an edge between every two vertices of
// different parts and none inside a part. At least two parts, each
// of size >= 1 (a single class is just an edgeless board; use
// Complete for K_n).
// Complexity: O(n²).
func CompleteMultipartite(parts []int, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: CompleteMultipartite needs at least 2 parts, got %d", ErrBadShape, len(parts))
	}
	n := 0
	for _, p := range parts {
		if p < 1 {
			return nil, fmt.Errorf("%w: CompleteMultipartite part size %d", ErrBadShape, p)
		}
		n += p
	}

	g := core.NewGraph()
	ids, err := addVertices(g, n, o)
	if err != nil {
		return nil, err
	}
	// part[i] = which class vertex i belongs to.
	part := make([]int, n)
	at := 0
	for k, p := range parts {
		for i := 0; i < p; i++ {
			part[at] = k
			at++
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if part[i] == part[j] {
				continue
			}
			if err = connect(g, ids[i], ids[j]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
