// File: winnable.go
// Role: winnability decision and strategy extraction.

package dhar

import (
	"fmt"

	"github.com/katalvlaran/chipfire/divisor"
)

// Strategy is a winning play: a pure firing script whose application
// clears every debt on the board.
type Strategy struct {
	// Script is normalized (minimum entry zero), so winning never needs
	// an explicit borrow.
	Script *divisor.Script

	// Q is the distinguished vertex the reduction ran against.
	Q string

	// Effective is the resulting debt-free divisor, equal to applying
	// Script to the input.
	Effective *divisor.Divisor
}

// IsWinnable reports whether some divisor linearly equivalent to d is
// effective. It reduces at the distinguished vertex (first declared
// unless WithDistinguished overrides) and checks the chips left at q;
// the verdict does not depend on that choice.
//
// Complexity: that of Reduce.
// Errors: ErrDivisorNil, ErrEmptyGraph, ErrDisconnected,
// ErrOptionViolation; wraps core.ErrVertexNotFound for an unknown
// distinguished vertex.
func IsWinnable(d *divisor.Divisor, opts ...Option) (bool, error) {
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
	res, err := Reduce(d, q, opts...)
	if err != nil {
		return false, err
	}
	chips, err := res.Reduced.Get(q)
	if err != nil {
		return false, fmt.Errorf("dhar: winnable: %w", err)
	}

	return chips >= 0, nil
}

// WinningStrategy returns a script that wins the game from d, or
// reports absence when the position is unwinnable. Soundness contract:
// whenever found is true, applying the script to d yields Effective,
// which is debt-free.
//
// Complexity: that of Reduce.
// Errors: same set as IsWinnable.
func WinningStrategy(d *divisor.Divisor, opts ...Option) (*Strategy, bool, error) {
	if d == nil {
		return nil, false, ErrDivisorNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, false, err
	}
	q, err := pickQ(d, o)
	if err != nil {
		return nil, false, err
	}
	res, err := Reduce(d, q, opts...)
	if err != nil {
		return nil, false, err
	}
	chips, err := res.Reduced.Get(q)
	if err != nil {
		return nil, false, fmt.Errorf("dhar: strategy: %w", err)
	}
	if chips < 0 {
		return nil, false, nil
	}

	return &Strategy{Script: res.Script, Q: q, Effective: res.Reduced}, true, nil
}

// pickQ resolves the distinguished vertex for the q-free operations.
func pickQ(d *divisor.Divisor, o Options) (string, error) {
	if d == nil {
		return "", ErrDivisorNil
	}
	if o.Distinguished != "" {
		return o.Distinguished, nil
	}
	g := d.Graph()
	if g.VertexCount() == 0 {
		return "", ErrEmptyGraph
	}

	return g.Vertices()[0], nil
}
