// File: greedy.go
// Role: the bounded borrowing loop.
//
// Each move picks the first in-debt vertex in declaration order and lets
// it borrow once (every neighbor sends one chip per shared edge). The
// move log doubles as a firing script with non-positive entries, so the
// final board is reproducible as d.ApplyScript(Script).

package greedy

import (
	"fmt"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

// defaultBudgetFactor scales |V| into the default move budget.
const defaultBudgetFactor = 10

// solver encapsulates mutable state for one Solve run.
type solver struct {
	g      *core.Graph
	opts   Options
	order  []string         // declaration order, cached once
	vals   map[string]int64 // working chip counts
	fires  map[string]int64 // accumulated move log (borrow = -1)
	budget int
	moves  int
}

// Solve plays bounded greedy borrowing on d and reports whether the
// board turned effective within the budget. The input divisor is never
// mutated. ok=false with a nil error means the budget ran out; it is
// not an unwinnability proof.
// Returns ErrDivisorNil for nil input, ErrOptionViolation for bad
// options, or a context error when cancelled mid-game.
func Solve(d *divisor.Divisor, opts ...Option) (*Result, bool, error) {
	if d == nil {
		return nil, false, ErrDivisorNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, false, o.err
	}

	s := newSolver(d, o)
	solved, err := s.run()
	if err != nil || !solved {
		return nil, false, err
	}

	return s.result(d)
}

// newSolver snapshots the board and derives the move budget.
func newSolver(d *divisor.Divisor, o Options) *solver {
	g := d.Graph()
	budget := o.MaxMoves
	if budget == 0 {
		budget = g.VertexCount() * defaultBudgetFactor
	}

	return &solver{
		g:      g,
		opts:   o,
		order:  g.Vertices(),
		vals:   d.ToMap(),
		fires:  make(map[string]int64, g.VertexCount()),
		budget: budget,
	}
}

// run loops until the board is effective, the budget is spent, or the
// context is cancelled.
func (s *solver) run() (bool, error) {
	for {
		// 1) Effective board ends the game.
		debtor, found := s.firstDebtor()
		if !found {
			return true, nil
		}
		// 2) Cancellation check (once per move).
		select {
		case <-s.opts.Ctx.Done():
			return false, s.opts.Ctx.Err()
		default:
		}
		// 3) Spend a move; past the budget the game is abandoned.
		s.moves++
		if s.moves > s.budget {
			return false, nil
		}
		// 4) The debtor borrows once, then the hook sees the move.
		if err := s.borrow(debtor); err != nil {
			return false, err
		}
		s.opts.OnMove(s.moves, debtor)
	}
}

// firstDebtor returns the earliest-declared vertex with negative chips.
func (s *solver) firstDebtor() (string, bool) {
	for _, v := range s.order {
		if s.vals[v] < 0 {
			return v, true
		}
	}

	return "", false
}

// borrow pulls one chip per shared edge from every neighbor of v and
// records the move in the script log.
func (s *solver) borrow(v string) error {
	neighbors, err := s.g.Neighbors(v)
	if err != nil {
		return fmt.Errorf("greedy: vertex %q: %w", v, err)
	}
	for _, u := range neighbors {
		count, err := s.g.EdgeCount(v, u)
		if err != nil {
			return fmt.Errorf("greedy: edge {%q,%q}: %w", v, u, err)
		}
		s.vals[u] -= count
		s.vals[v] += count
	}
	s.fires[v]--

	return nil
}

// result assembles the move log into a Script and replays it against the
// untouched input, so Final carries the ApplyScript provenance rather
// than the solver's scratch state.
func (s *solver) result(d *divisor.Divisor) (*Result, bool, error) {
	script, err := divisor.NewScriptFrom(s.g, s.fires)
	if err != nil {
		return nil, false, fmt.Errorf("greedy: assemble script: %w", err)
	}
	final, err := d.ApplyScript(script)
	if err != nil {
		return nil, false, fmt.Errorf("greedy: replay script: %w", err)
	}

	return &Result{Script: script, Final: final, Moves: s.moves}, true, nil
}
