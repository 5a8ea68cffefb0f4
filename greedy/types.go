// File: types.go
// Role: sentinel errors, functional options and the Result type for the
// bounded borrowing solver.

package greedy

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/chipfire/divisor"
)

// Sentinel errors for the greedy solver.
var (
	// ErrDivisorNil is returned when the input divisor pointer is nil.
	ErrDivisorNil = errors.New("greedy: divisor is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("greedy: invalid option supplied")
)

// Option configures the solver via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a Solve run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per move.
	Ctx context.Context

	// MaxMoves caps the number of borrowing moves. Zero means the
	// default budget of |V|·10, derived from the divisor's graph.
	MaxMoves int

	// OnMove is called after each borrowing move with the 1-based move
	// number and the vertex that borrowed.
	OnMove func(move int, vertex string)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, the derived
// default budget and a no-op move hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxMoves: 0,
		OnMove:   func(int, string) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxMoves overrides the move budget.
//
//	n >= 1: allow at most n borrowing moves
//	n < 1:  invalid option → ErrOptionViolation
func WithMaxMoves(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxMoves must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxMoves = n
	}
}

// WithOnMove registers a callback to run after every borrowing move.
func WithOnMove(fn func(move int, vertex string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMove = fn
		}
	}
}

// Result holds the outcome of a successful Solve run:
//   - Script: the raw move log as a firing script; every borrow is a -1,
//     so all entries are non-positive and nothing is normalized away.
//   - Final: the input divisor with Script applied, always effective.
//   - Moves: how many borrowing moves were played.
type Result struct {
	Script *divisor.Script
	Final  *divisor.Divisor
	Moves  int
}
