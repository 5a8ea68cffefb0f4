// Package matrix provides the integer Laplacian view of a core.Graph.
//
// The Laplacian L of an undirected multigraph has diagonal entries
// equal to vertex degrees and off-diagonal entries equal to the negated
// edge multiplicities: L[i][i] = deg(vᵢ), L[i][j] = -w(vᵢ,vⱼ). Rows and
// columns follow the graph's vertex declaration order, the same layout
// divisor.ToVector uses, so L·σ lines up coordinate by coordinate.
//
// The reduced Laplacian L̃(q) deletes the row and column of one
// distinguished vertex q. Its determinant counts spanning trees and its
// lattice governs which divisors are linearly equivalent; chipfire uses
// it for display and cross-checking rather than for solving systems.
//
// Everything here is exact int64 arithmetic. There is no eigen-analysis
// and no floating point anywhere in the package.
//
// Errors:
//
//	ErrGraphNil      - constructor received a nil graph.
//	ErrEmptyGraph    - constructor received a graph with no vertices.
//	ErrOutOfRange    - row or column index outside [0, Dim).
//	ErrUnknownVertex - named vertex is not part of the matrix order.
package matrix
