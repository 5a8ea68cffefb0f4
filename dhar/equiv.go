// File: equiv.go
// Role: principality and linear equivalence via q-reduction.

package dhar

import (
	"fmt"

	"github.com/katalvlaran/chipfire/divisor"
)

// Principal reports whether d is the image of the Laplacian applied to
// some integer firing script, equivalently whether d has degree zero
// and reduces to the all-zero divisor. The zero divisor is its own
// q-reduced form, so the check is a single reduction.
//
// Complexity: that of Reduce.
// Errors: ErrDivisorNil, ErrEmptyGraph, ErrDisconnected,
// ErrOptionViolation.
func Principal(d *divisor.Divisor, opts ...Option) (bool, error) {
	if d == nil {
		return false, ErrDivisorNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	q, err := pickQ(d, o)
	if err != nil {
		return false, err
	}
	if _, err := validate(d, q); err != nil {
		return false, err
	}
	// Moves conserve degree, so degree ≠ 0 can never reach zero.
	if d.Degree() != 0 {
		return false, nil
	}
	res, err := Reduce(d, q, opts...)
	if err != nil {
		return false, err
	}
	for _, v := range d.Graph().Vertices() {
		chips, err := res.Reduced.Get(v)
		if err != nil {
			return false, fmt.Errorf("dhar: principal: %w", err)
		}
		if chips != 0 {
			return false, nil
		}
	}

	return true, nil
}

// LinearlyEquivalent reports whether a and b differ by a principal
// divisor, that is whether some firing script turns one into the
// other. Divisors over different graph instances are an error, not a
// "false": the comparison is undefined across graphs.
//
// Complexity: that of Reduce.
// Errors: ErrDivisorNil; wraps divisor.ErrGraphMismatch; plus the
// Principal error set.
func LinearlyEquivalent(a, b *divisor.Divisor, opts ...Option) (bool, error) {
	if a == nil || b == nil {
		return false, ErrDivisorNil
	}
	if a.Graph() != b.Graph() {
		return false, fmt.Errorf("dhar: equivalence: %w", divisor.ErrGraphMismatch)
	}
	diff, err := a.Sub(b)
	if err != nil {
		return false, fmt.Errorf("dhar: equivalence: %w", err)
	}

	return Principal(diff, opts...)
}
