// This file declares the Graph and Edge types, sentinel errors, and the
// NewGraph / NewGraphFrom constructors.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrLoopNotAllowed  - self-loop attempted (identical endpoints).
//	ErrBadMultiplicity - edge count is zero or negative.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates AddEdge was called with identical endpoints.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadMultiplicity indicates an edge count that is zero or negative.
	ErrBadMultiplicity = errors.New("core: edge multiplicity must be positive")
)

// Edge is one unordered vertex pair together with its multiplicity.
//
// Edges() yields U before V in declaration order, and Count is always ≥ 1.
// In NewGraphFrom literals a zero Count is read as a single edge.
type Edge struct {
	// U is the endpoint that was declared first.
	U string

	// V is the endpoint that was declared second.
	V string

	// Count is the number of parallel edges between U and V.
	Count int64
}

// Graph is an undirected multigraph with a fixed vertex declaration order.
//
// Parallel edges are stored as a single multiplicity per unordered pair;
// self-loops are rejected. The declaration order of vertices is the
// canonical iteration order for every query and every algorithm built on
// top of this type.
//
// Graph carries no locks: assemble it fully in one goroutine, then share
// it read-only. The divisor, matrix and dhar packages never mutate an
// existing Graph.
type Graph struct {
	// order lists vertex IDs in declaration order.
	order []string

	// index maps a vertex ID to its position in order.
	index map[string]int

	// adj[u][v] holds the multiplicity of edge {u,v}, mirrored so that
	// adj[u][v] == adj[v][u]. Absent keys mean multiplicity zero.
	adj map[string]map[string]int64

	// total counts edges with multiplicity.
	total int64
}

// NewGraph creates an empty multigraph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		adj:   make(map[string]map[string]int64),
	}
}

// NewGraphFrom builds a graph from a vertex list and an edge list in one
// call. Vertices are declared in slice order; edges are added in slice
// order, accumulating multiplicity for repeated pairs. An Edge with
// Count == 0 is treated as a single edge so that table literals stay terse.
//
// Complexity: O(V + E)
// Errors: ErrEmptyVertexID, ErrVertexNotFound (edge endpoint missing from
// vertices), ErrLoopNotAllowed, ErrBadMultiplicity (negative Count).
func NewGraphFrom(vertices []string, edges []Edge) (*Graph, error) {
	// 1) Declare vertices in the given order.
	g := NewGraph()
	for _, id := range vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("core: vertex %q: %w", id, err)
		}
	}
	// 2) Accumulate edges, defaulting Count 0 → 1.
	for _, e := range edges {
		count := e.Count
		if count == 0 {
			count = 1
		}
		if err := g.AddEdge(e.U, e.V, count); err != nil {
			return nil, fmt.Errorf("core: edge {%s,%s}: %w", e.U, e.V, err)
		}
	}

	return g, nil
}
