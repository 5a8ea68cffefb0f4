// File: options.go
// Role: functional options shared by every engine entry point.

package dhar

import (
	"context"
	"fmt"
)

// Option configures engine behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the operation runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing a reduction run.
type Options struct {
	// Ctx allows cancellation between rounds of long reductions.
	Ctx context.Context

	// Distinguished overrides the default q for the operations that do
	// not take an explicit one (IsWinnable, WinningStrategy, Principal,
	// LinearlyEquivalent). Empty means "first declared vertex".
	// Operations with an explicit q parameter ignore this field.
	Distinguished string

	// OnBurn is called once per ignition with the burning vertex and
	// the neighbor that tipped it (empty for q and for debt ignition).
	OnBurn func(v, source string)

	// OnFire is called after every firing round with a 1-based round
	// number and the fired set in declaration order.
	OnFire func(round int, fired []string)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - first declared vertex as the distinguished one
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnBurn: func(string, string) {},
		OnFire: func(int, []string) {},
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

// WithDistinguished fixes the distinguished vertex used by the
// operations without an explicit q parameter. The empty string is
// invalid; leave the option out to keep the first-declared default.
func WithDistinguished(q string) Option {
	return func(o *Options) {
		if q == "" {
			o.err = fmt.Errorf("%w: distinguished vertex must be non-empty", ErrOptionViolation)
			return
		}
		o.Distinguished = q
	}
}

// WithOnBurn registers a callback observing each ignition.
func WithOnBurn(fn func(v, source string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBurn = fn
		}
	}
}

// WithOnFire registers a callback observing each firing round.
func WithOnFire(fn func(round int, fired []string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFire = fn
		}
	}
}

// buildOptions folds opts over the defaults and surfaces any recorded
// violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
