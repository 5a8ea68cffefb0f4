// Package greedy plays the dollar game the way a patient human would:
// while any vertex is in debt, the first such vertex (in declaration
// order) borrows once from its neighbors. The loop stops when the board
// turns effective or when the move budget runs out.
//
// This is a bounded heuristic, not a decision procedure. A winnable
// board with deep debt can outlast the default budget of |V|·10 moves,
// and an unwinnable board always will, so ok=false from Solve means
// only "no solution found within the budget". Use dhar.IsWinnable for
// the exact verdict and dhar.WinningStrategy for a certified script;
// use this package when the move-by-move trace itself is the point
// (demos, teaching, the render pipeline).
//
// Complexity (V = |Vertices|, M = move budget)
//
//   - Time:   O(M·V) (each move rescans for the first debtor)
//   - Memory: O(V)
//
// Errors
//
//   - ErrDivisorNil      – nil divisor pointer.
//   - ErrOptionViolation – invalid option value (e.g. MaxMoves < 1).
//
// Budget exhaustion is reported as ok=false, never as an error.
package greedy
