// File: reduce.go
// Role: debt consolidation and full q-reduction.

package dhar

import (
	"fmt"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

// ReduceResult reports a full q-reduction.
type ReduceResult struct {
	// Reduced is the unique q-reduced divisor linearly equivalent to
	// the input.
	Reduced *divisor.Divisor

	// Script is the net firing script of the whole reduction,
	// normalized so that its minimum entry is zero. Applying it to the
	// input reproduces Reduced exactly.
	Script *divisor.Script

	// Q is the distinguished vertex the reduction ran against.
	Q string

	// DebtRounds counts phase-one rounds (legal set plus q fired).
	DebtRounds int

	// FireRounds counts phase-two rounds (legal set fired alone).
	FireRounds int
}

// reducer drives both phases over a working copy of the divisor.
type reducer struct {
	g      *core.Graph
	q      string
	opts   Options
	cur    *divisor.Divisor
	script *divisor.Script
	rounds int // 1-based round counter across both phases, for OnFire
}

// SendDebt fires legal sets together with q until every non-q vertex is
// out of debt, concentrating all debt at the distinguished vertex. The
// returned divisor is the consolidated position; the returned script is
// the raw accumulated firing record (not normalized). The input divisor
// is never modified.
//
// Complexity: O(rounds · (V + E)); the round count is bounded by the
// debt mass times the graph diameter, since chips migrate at most one
// hop per round.
// Errors: ErrDivisorNil, ErrEmptyGraph, ErrDisconnected,
// ErrOptionViolation; wraps core.ErrVertexNotFound for unknown q.
func SendDebt(d *divisor.Divisor, q string, opts ...Option) (*divisor.Divisor, *divisor.Script, error) {
	r, err := newReducer(d, q, opts)
	if err != nil {
		return nil, nil, err
	}
	if err := r.debtPhase(); err != nil {
		return nil, nil, err
	}

	return r.cur, r.script, nil
}

// Reduce computes the unique q-reduced divisor linearly equivalent to
// d: first SendDebt's phase, then repeated firing of the maximal legal
// set until none remains. The result carries the normalized net script
// and the per-phase round counts. The input divisor is never modified.
//
// Complexity: O(rounds · (V + E))
// Errors: same set as SendDebt.
func Reduce(d *divisor.Divisor, q string, opts ...Option) (*ReduceResult, error) {
	r, err := newReducer(d, q, opts)
	if err != nil {
		return nil, err
	}
	debtRounds, err := r.phase(r.debtPhase)
	if err != nil {
		return nil, err
	}
	fireRounds, err := r.phase(r.firePhase)
	if err != nil {
		return nil, err
	}

	return &ReduceResult{
		Reduced:    r.cur,
		Script:     r.script.Normalize(),
		Q:          q,
		DebtRounds: debtRounds,
		FireRounds: fireRounds,
	}, nil
}

// newReducer validates inputs and snapshots the working state.
func newReducer(d *divisor.Divisor, q string, opts []Option) (*reducer, error) {
	if d == nil {
		return nil, ErrDivisorNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	g, err := validate(d, q)
	if err != nil {
		return nil, err
	}
	script, err := divisor.NewScript(g)
	if err != nil {
		return nil, fmt.Errorf("dhar: reduce: %w", err)
	}

	return &reducer{g: g, q: q, opts: o, cur: d.Clone(), script: script}, nil
}

// phase runs fn and reports how many rounds it fired.
func (r *reducer) phase(fn func() error) (int, error) {
	before := r.rounds
	if err := fn(); err != nil {
		return 0, err
	}

	return r.rounds - before, nil
}

// debtPhase fires Legal ∪ {q} until no non-q vertex is in debt.
func (r *reducer) debtPhase() error {
	for {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}
		if !r.hasNonQDebt() {
			return nil
		}
		burn, err := r.burn()
		if err != nil {
			return err
		}
		// q fires along with the legal set; its chips flow outward and
		// the debt drains toward q.
		if err := r.fire(append(burn.Legal, r.q)); err != nil {
			return err
		}
	}
}

// firePhase fires the maximal legal set until it is empty.
func (r *reducer) firePhase() error {
	for {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}
		burn, err := r.burn()
		if err != nil {
			return err
		}
		if burn.Empty() {
			return nil
		}
		if err := r.fire(burn.Legal); err != nil {
			return err
		}
	}
}

// burn runs the burning walker against the current position. Hooks see
// every ignition of every round.
func (r *reducer) burn() (*BurnResult, error) {
	b := newBurner(r.g, r.cur, r.q, r.opts)
	if err := b.run(); err != nil {
		return nil, err
	}

	return b.res, nil
}

// fire applies the all-ones script on set to the current position and
// folds it into the accumulated script.
func (r *reducer) fire(set []string) error {
	round, err := divisor.NewScript(r.g)
	if err != nil {
		return fmt.Errorf("dhar: fire: %w", err)
	}
	if err := round.FireSet(set); err != nil {
		return fmt.Errorf("dhar: fire: %w", err)
	}
	next, err := r.cur.ApplyScript(round)
	if err != nil {
		return fmt.Errorf("dhar: fire: %w", err)
	}
	total, err := r.script.Add(round)
	if err != nil {
		return fmt.Errorf("dhar: fire: %w", err)
	}
	r.cur, r.script = next, total
	r.rounds++
	r.opts.OnFire(r.rounds, r.orderedSet(set))

	return nil
}

// orderedSet reports the fired set in declaration order for hooks.
func (r *reducer) orderedSet(set []string) []string {
	member := NewVertexSet(set...)
	out := make([]string, 0, len(set))
	for _, v := range r.g.Vertices() {
		if member.Has(v) {
			out = append(out, v)
		}
	}

	return out
}

// hasNonQDebt reports whether any vertex other than q is negative.
func (r *reducer) hasNonQDebt() bool {
	for _, v := range r.g.Vertices() {
		if v == r.q {
			continue
		}
		if chips, err := r.cur.Get(v); err == nil && chips < 0 {
			return true
		}
	}

	return false
}
