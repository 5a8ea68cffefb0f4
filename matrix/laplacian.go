// File: laplacian.go
// Role: Laplacian construction and cell access.
//
// Determinism:
//   - Row/column order is the graph's vertex declaration order.

package matrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/chipfire/core"
)

// Sentinel errors for Laplacian operations.
var (
	// ErrGraphNil indicates a constructor received a nil *core.Graph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates a graph with no vertices; a 0×0 Laplacian
	// of a whole graph carries no information, so it is rejected.
	ErrEmptyGraph = errors.New("matrix: graph has no vertices")

	// ErrOutOfRange indicates a row or column index outside [0, Dim).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownVertex indicates a vertex that is not part of the
	// matrix order, either undeclared or deleted by reduction.
	ErrUnknownVertex = errors.New("matrix: unknown vertex")
)

// Laplacian is the integer Laplacian of a multigraph, L = Deg - Adj.
// Row i and column i both correspond to the i-th declared vertex.
// Values are frozen at construction; later graph edits are not seen.
type Laplacian struct {
	g     *core.Graph
	order []string
	index map[string]int
	data  [][]int64
}

// NewLaplacian builds the full |V|×|V| Laplacian of g.
//
// Complexity: O(V²)
// Errors: ErrGraphNil, ErrEmptyGraph.
func NewLaplacian(g *core.Graph) (*Laplacian, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	order := g.Vertices()
	if len(order) == 0 {
		return nil, ErrEmptyGraph
	}
	l := &Laplacian{
		g:     g,
		order: order,
		index: make(map[string]int, len(order)),
		data:  make([][]int64, len(order)),
	}
	for i, u := range order {
		l.index[u] = i
		row := make([]int64, len(order))
		for j, v := range order {
			if i == j {
				deg, err := g.Degree(u)
				if err != nil {
					return nil, fmt.Errorf("matrix: degree of %q: %w", u, err)
				}
				row[j] = deg
				continue
			}
			w, err := g.EdgeCount(u, v)
			if err != nil {
				return nil, fmt.Errorf("matrix: edge {%s,%s}: %w", u, v, err)
			}
			row[j] = -w
		}
		l.data[i] = row
	}

	return l, nil
}

// Graph returns the graph the matrix was built from.
func (l *Laplacian) Graph() *core.Graph { return l.g }

// Dim returns the number of rows (and columns).
func (l *Laplacian) Dim() int { return len(l.order) }

// Order returns the vertex behind each row, as a copy.
func (l *Laplacian) Order() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)

	return out
}

// At returns the cell (i, j).
// Errors: ErrOutOfRange.
func (l *Laplacian) At(i, j int) (int64, error) {
	if i < 0 || i >= len(l.order) || j < 0 || j >= len(l.order) {
		return 0, fmt.Errorf("matrix: cell (%d,%d) of %d×%d: %w",
			i, j, len(l.order), len(l.order), ErrOutOfRange)
	}

	return l.data[i][j], nil
}

// Entry returns the cell addressed by vertex names instead of indices.
// Errors: ErrUnknownVertex.
func (l *Laplacian) Entry(u, v string) (int64, error) {
	i, ok := l.index[u]
	if !ok {
		return 0, fmt.Errorf("matrix: %q: %w", u, ErrUnknownVertex)
	}
	j, ok := l.index[v]
	if !ok {
		return 0, fmt.Errorf("matrix: %q: %w", v, ErrUnknownVertex)
	}

	return l.data[i][j], nil
}

// Dense returns a deep copy of the underlying rows.
func (l *Laplacian) Dense() [][]int64 {
	out := make([][]int64, len(l.data))
	for i, row := range l.data {
		cp := make([]int64, len(row))
		copy(cp, row)
		out[i] = cp
	}

	return out
}

// String renders the matrix with vertex-labelled rows and aligned
// columns, one row per line.
func (l *Laplacian) String() string {
	nameW, cellW := 0, 1
	for _, v := range l.order {
		if len(v) > nameW {
			nameW = len(v)
		}
	}
	for _, row := range l.data {
		for _, cell := range row {
			if w := len(fmt.Sprintf("%d", cell)); w > cellW {
				cellW = w
			}
		}
	}
	var b strings.Builder
	for i, v := range l.order {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-*s │", nameW, v)
		for _, cell := range l.data[i] {
			fmt.Fprintf(&b, " %*d", cellW, cell)
		}
	}

	return b.String()
}
