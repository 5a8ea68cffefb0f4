// Package dhar implements Dhar's burning algorithm and the divisor
// reductions built on it: legal firing sets, q-reduced forms, debt
// consolidation, winnability and linear equivalence.
//
// # The burning algorithm
//
// Fix a connected graph G, a divisor D and a distinguished vertex q.
// A non-empty S ⊆ V∖{q} is a legal firing set when every v ∈ S can fire
// once without going into debt, that is D(v) ≥ outdeg_S(v), the number
// of edges from v to vertices outside S (counted with multiplicity).
//
// LegalFiringSet finds the unique maximal such S by burning: q ignites
// first, every vertex already in debt ignites with it, and fire spreads
// along edges. A vertex v burns as soon as the number of edges it has
// into the burnt region exceeds D(v); the chips at v are firefighters,
// each blocking one edge. Whatever survives the fire is the maximal
// legal set. Burning is monotone (a vertex shown to burn can never be
// rescued by later burns), so the fixed point is unique and is reached
// after at most |V|−1 ignitions.
//
// # Reduction
//
// A divisor is q-reduced when every non-q vertex is out of debt and the
// legal firing set is empty. Every divisor is linearly equivalent to
// exactly one q-reduced divisor, which Reduce computes in two phases:
//
//  1. Debt phase (SendDebt): while some non-q vertex is in debt, fire
//     the legal set together with q itself. Firing q pushes chips
//     outward and drains debt toward the distinguished vertex, which
//     is the only vertex allowed to stay negative.
//  2. Saturation phase: while the legal firing set is non-empty, fire
//     it. This never drives a non-q vertex negative and strictly
//     shrinks a potential, so it terminates at the q-reduced form.
//
// The net effect of every firing across both phases is accumulated
// into a single script and normalized so its minimum entry is zero
// (shifting a script by a constant changes nothing, L·1 = 0).
//
// # Winnability
//
// D is winnable when some linearly equivalent divisor is effective.
// IsWinnable reduces at a distinguished vertex (first declared unless
// WithDistinguished overrides) and checks the chips left at q; the
// answer is independent of which q is chosen. WinningStrategy returns
// the normalized reduction script whenever the reduced form is
// effective, and reports absence otherwise.
//
// Principal and LinearlyEquivalent answer the algebraic questions
// through the same machinery: D is principal iff it has degree zero
// and reduces to the all-zero divisor; two divisors are equivalent iff
// their difference is principal.
//
// All functions take divisors by pointer but never mutate them; they
// return freshly built values. Hooks (WithOnBurn, WithOnFire) observe
// the run, and WithContext allows cancellation between rounds.
//
// Preconditions, checked in this order:
//
//	ErrDivisorNil           - nil divisor argument.
//	ErrOptionViolation      - invalid functional option.
//	ErrEmptyGraph           - underlying graph has no vertices.
//	core.ErrVertexNotFound  - distinguished vertex not declared (wrapped).
//	ErrDisconnected         - underlying graph is not connected.
//
// A disconnected graph is rejected rather than answered misleadingly:
// debt cannot travel between components, so reduction is undefined.
package dhar
