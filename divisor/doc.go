// Package divisor implements the integer chip configurations that
// chip-firing games are played with, together with the firing scripts
// that move chips around.
//
// A Divisor assigns an int64 chip count to every vertex of one fixed
// core.Graph; vertices left out at construction default to zero. All
// arithmetic is exact integer arithmetic, and the ℤ-module operations
// (Add, Sub, Scale, Neg) return new values instead of mutating their
// receivers. Two divisors are compatible only when they share the same
// *core.Graph instance; same-shaped but distinct graphs are rejected
// with ErrGraphMismatch, compared by pointer identity on purpose.
//
// A Script records how many times each vertex fires (positive) or
// borrows (negative). Divisor.ApplyScript(σ) returns D' = D - L·σ for
// the graph Laplacian L, evaluated adjacency-wise: each vertex v loses
// σ(v)·deg(v) chips and receives σ(u)·w(u,v) from every neighbor u.
// Applying a script never changes the divisor's total degree.
//
// Round-trip laws the package guarantees:
//
//	NewDivisorFromVector(g, d.ToVector()) equals d
//	NewDivisorFrom(g, d.ToMap()) equals d
//
// Vector layouts follow the graph's vertex declaration order, the same
// order the matrix package uses for Laplacian rows.
//
// Errors:
//
//	ErrGraphNil          - constructor received a nil graph.
//	ErrDivisorNil        - binary operation received a nil operand.
//	ErrScriptNil         - ApplyScript received a nil script.
//	ErrGraphMismatch     - operands belong to different graph instances.
//	ErrDimensionMismatch - vector length differs from the vertex count.
//
// Unknown-vertex lookups wrap core.ErrVertexNotFound.
package divisor
