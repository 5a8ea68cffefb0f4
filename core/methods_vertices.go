// File: methods_vertices.go
// Role: vertex lifecycle and vertex-level queries.
//
// Determinism:
//   - Vertices() returns IDs in declaration order, never sorted.

package core

// AddVertex declares a vertex if it is missing. Re-declaring an existing
// vertex is a no-op, so construction code never needs a HasVertex guard.
//
// Complexity: O(1) amortized.
// Errors: ErrEmptyVertexID when id == "".
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.index[id]; exists {
		return nil // idempotent
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adj[id] = make(map[string]int64)

	return nil
}

// HasVertex reports whether id was declared.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Vertices returns all vertex IDs in declaration order.
// The slice is a copy; callers may modify it freely.
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of declared vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.order) }

// Index returns the position of id in declaration order, or false when
// the vertex was never declared. Matrix rows and divisor vectors use
// this position.
// Complexity: O(1)
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}
