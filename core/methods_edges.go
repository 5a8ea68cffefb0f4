// File: methods_edges.go
// Role: edge mutation and edge-level queries.
//
// Determinism:
//   - Neighbors() and Edges() follow vertex declaration order.

package core

import "fmt"

// AddEdge adds count parallel edges between u and v, accumulating with
// any multiplicity already present. Both endpoints must exist; edges
// never declare vertices implicitly.
//
// Complexity: O(1)
// Errors: ErrVertexNotFound (either endpoint missing), ErrLoopNotAllowed
// (u == v), ErrBadMultiplicity (count < 1).
func (g *Graph) AddEdge(u, v string, count int64) error {
	// 1) Validate endpoints before touching any state.
	if _, ok := g.index[u]; !ok {
		return fmt.Errorf("core: endpoint %q: %w", u, ErrVertexNotFound)
	}
	if _, ok := g.index[v]; !ok {
		return fmt.Errorf("core: endpoint %q: %w", v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("core: endpoint %q: %w", u, ErrLoopNotAllowed)
	}
	if count < 1 {
		return fmt.Errorf("core: count %d: %w", count, ErrBadMultiplicity)
	}
	// 2) Mirror the multiplicity on both endpoints.
	g.adj[u][v] += count
	g.adj[v][u] += count
	g.total += count

	return nil
}

// EdgeCount returns the multiplicity of the edge {u,v}. Vertices that
// are declared but unconnected yield zero; undeclared vertices are an
// error, never a silent zero.
//
// Complexity: O(1)
// Errors: ErrVertexNotFound.
func (g *Graph) EdgeCount(u, v string) (int64, error) {
	if _, ok := g.index[u]; !ok {
		return 0, fmt.Errorf("core: endpoint %q: %w", u, ErrVertexNotFound)
	}
	if _, ok := g.index[v]; !ok {
		return 0, fmt.Errorf("core: endpoint %q: %w", v, ErrVertexNotFound)
	}

	return g.adj[u][v], nil
}

// Degree returns the valence of id: the sum of multiplicities of all
// incident edges. A vertex joined to one neighbor by three parallel
// edges has degree three.
//
// Complexity: O(deg)
// Errors: ErrVertexNotFound.
func (g *Graph) Degree(id string) (int64, error) {
	if _, ok := g.index[id]; !ok {
		return 0, fmt.Errorf("core: vertex %q: %w", id, ErrVertexNotFound)
	}
	var deg int64
	for _, count := range g.adj[id] {
		deg += count
	}

	return deg, nil
}

// Neighbors returns each vertex adjacent to id exactly once, in
// declaration order, regardless of edge multiplicities.
//
// Complexity: O(V)
// Errors: ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("core: vertex %q: %w", id, ErrVertexNotFound)
	}
	// Scan the declaration order so the result is stable run to run.
	row := g.adj[id]
	out := make([]string, 0, len(row))
	for _, v := range g.order {
		if row[v] > 0 {
			out = append(out, v)
		}
	}

	return out, nil
}

// Edges returns every unordered pair with its multiplicity. Pairs are
// emitted with the earlier-declared endpoint first and are ordered by
// (U, V) declaration positions.
//
// Complexity: O(V²) in the worst case, O(V + E) on sparse graphs.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.order))
	for i, u := range g.order {
		row := g.adj[u]
		for _, v := range g.order[i+1:] {
			if count := row[v]; count > 0 {
				out = append(out, Edge{U: u, V: v, Count: count})
			}
		}
	}

	return out
}

// EdgeTotal returns the number of edges counted with multiplicity.
// Complexity: O(1)
func (g *Graph) EdgeTotal() int64 { return g.total }

// IsSimple reports whether every multiplicity is at most one. Several
// gonality bounds only hold on simple graphs, so those checks consult
// this before applying.
//
// Complexity: O(V + E)
func (g *Graph) IsSimple() bool {
	for _, row := range g.adj {
		for _, count := range row {
			if count > 1 {
				return false
			}
		}
	}

	return true
}
