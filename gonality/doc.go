// Package gonality computes divisor ranks, gonality and the combinatorial
// graph invariants that bracket it.
//
// What:
//
//   - Rank(d) - the Baker-Norine rank of a divisor: -1 when the divisor is
//     unwinnable, otherwise the largest k such that removing ANY effective
//     divisor of degree k leaves a winnable board.
//   - Gonality(g) - the least degree of a positive-rank divisor on g, found
//     by exhaustive search below a proven upper bound.
//   - Bounds(g) - sound lower and upper estimates (minimum degree,
//     independence and Brill-Noether bounds) that hold without any search.
//   - EnumerateEffective - deterministic enumeration of all effective
//     divisors of a fixed degree, the engine behind Rank and Gonality.
//   - Graph invariants: IndependenceNumber, TreewidthUpperBound, Genus,
//     IsBipartite, IsTree, IsRegular, degree statistics and an Analyze
//     aggregate for reporting.
//   - Parking functions: IsParkingFunction, ParkingFunctions, ParkingCount.
//     Increasing parking functions of length n biject with the superstable
//     configurations on the complete graph K_{n+1}, which is why they live
//     next to the gonality machinery.
//
// Why:
//
// The rank of a divisor measures how much debt a board can absorb anywhere
// and still stay winnable; gonality is the cheapest budget that achieves
// rank one. Both are the graph-theoretic shadows of classical invariants of
// algebraic curves, and both are NP-hard in general, so this package keeps
// the semantics exact and the instances small rather than approximating.
// Bounds exists for the cases where the search is too expensive: every
// bound it reports is a theorem, not a heuristic.
//
// Determinism:
//
// Enumeration follows vertex declaration order. EnumerateEffective emits
// divisors in a fixed order (earlier vertices greedy-first), Gonality scans
// degrees upward, and tie-breaks in the treewidth elimination pick the
// earliest declared vertex. Same graph, same answers, same order.
//
// Complexity:
//
//   - EnumerateEffective: C(d+n-1, n-1) divisors for degree d on n vertices.
//   - Rank: O(Σ_k C(k+n-1, n-1)) winnability checks, k up to deg(d).
//   - Gonality: the same enumeration per candidate degree, times n
//     winnability checks per candidate; exponential in general.
//   - IndependenceNumber: branch and bound, exponential worst case.
//   - TreewidthUpperBound, Genus, degree statistics: polynomial.
//
// Usage:
//
//	g, _ := builder.Complete(3)
//	gon, err := gonality.Gonality(g)            // 2
//	rng, err := gonality.Bounds(g)              // Lower 2, Upper 2
//	d, _ := divisor.NewDivisor(g, map[string]int64{"v0": 2})
//	r, err := gonality.Rank(d)                  // 1
//
// Options (Gonality only):
//
//   - WithMaxDegree(n) - cap the exhaustive search at degree n instead of
//     the Bounds upper estimate.
//   - WithContext(ctx) - abort a long search via context.
//
// Errors:
//
//	ErrGraphNil        – graph argument is nil
//	ErrDivisorNil      – divisor argument is nil
//	ErrEmptyGraph      – the invariant needs at least one vertex
//	ErrDisconnected    – the invariant is defined on connected graphs only
//	ErrNegativeDegree  – enumeration degree below zero
//	ErrBadPartition    – empty or non-positive multipartite part sizes
//	ErrBudgetExceeded  – no positive-rank divisor within the degree cap
//	ErrOverflow        – parking-function count exceeds int64
//	ErrOptionViolation – malformed functional option
package gonality
