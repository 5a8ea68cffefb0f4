// Package core provides the in-memory multigraph that every other
// chipfire package builds on.
//
// The Graph G = (V,E) is deliberately small and strict:
//
//   - Undirected edges only, with integer multiplicity (parallel edges
//     collapse into a single count per unordered pair)
//   - No self-loops (AddEdge(v,v) → ErrLoopNotAllowed)
//   - Vertices keep their declaration order; every query that returns
//     vertices (Vertices, Neighbors, Edges) follows that order, so two
//     runs over the same construction sequence are byte-identical
//   - Build-then-query lifecycle: graphs are assembled once and then
//     shared read-only by divisors, Laplacians and games
//
// Why use core.Graph?
//
//   - Deterministic iteration: chip-firing algorithms (burning, debt
//     reduction, rank search) are only reproducible when the vertex
//     order is fixed; declaration order is the contract.
//   - Integer-only arithmetic: multiplicities and degrees are int64,
//     so Laplacian rows and divisor updates never touch floats.
//   - Cheap sharing: a Graph is never mutated by the algorithm
//     packages, so one instance can back many divisors at once.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph
//	NewGraphFrom(vertices, edges) (*Graph, error)
//	AddVertex(id string) error              // O(1), idempotent
//	AddEdge(u, v string, count int64) error // O(1), adds multiplicity
//
//	// Query
//	HasVertex(id string) bool          // O(1)
//	EdgeCount(u, v string) (int64, error) // O(1); 0 when no edge
//	Degree(id string) (int64, error)   // O(deg), counts multiplicity
//	Neighbors(id string) ([]string, error) // O(V), declaration order
//	Vertices() []string                // O(V), declaration order
//	Edges() []Edge                     // O(V²) worst, declaration order
//	Index(id string) (int, bool)       // O(1), position in order
//	VertexCount() int                  // O(1)
//	EdgeTotal() int64                  // O(1), sum of multiplicities
//	IsSimple() bool                    // O(E)
//	IsConnected() bool                 // O(V+E)
//	Clone() *Graph                     // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – endpoint or query vertex was never declared
//	ErrLoopNotAllowed  – AddEdge with identical endpoints
//	ErrBadMultiplicity – AddEdge with a negative or zero count
//
// The package has no locks: assemble the graph in one goroutine, then
// share it freely once construction is done.
package core
