// Package game wraps a graph and a running chip configuration into a
// playable dollar-game session.
//
// A DollarGame owns a private copy of the board. Sandbox moves
// (FireVertex, BorrowVertex, FireSet) apply a firing script to the
// current state with no legality constraints, so vertices may dip
// below zero mid-play, exactly like pushing coins around by hand.
// Analysis calls (IsWinnable, WinningStrategy, Reduced) delegate to
// the dhar package against the current state without disturbing it.
//
// Every accessor and move returns a snapshot; the internal divisor
// never escapes, so a session can only change through moves. Sessions
// are not safe for concurrent movers. Each session carries a uuid and
// logs its moves at debug level through a zap SugaredLogger (no-op
// unless WithLogger installs a real one).
//
// Errors
//
//   - ErrGraphNil         – nil graph at construction.
//   - ErrOptionViolation  – invalid option value.
//   - divisor.ErrGraphMismatch – initial divisor built over another graph.
//   - move/analysis errors pass through from divisor and dhar.
package game
