// File: gonality/enumerate.go
// Role: deterministic enumeration of all effective divisors of a fixed
//       degree, the search space behind Rank and Gonality.

package gonality

import (
	"fmt"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

// EnumerateEffective calls yield once for every effective divisor of the
// given degree on g, in a fixed order: chips are placed on earlier declared
// vertices first, each position counting down from the largest share. For
// degree d on n vertices that is C(d+n-1, n-1) divisors.
//
// Each yielded divisor is freshly allocated; the callback may keep it.
// Returning false from yield stops the enumeration early. A degree of 0
// yields exactly the zero divisor, also on the empty graph.
//
// Errors: ErrGraphNil, ErrNegativeDegree, and ErrOptionViolation when
// yield is nil.
func EnumerateEffective(g *core.Graph, degree int64, yield func(*divisor.Divisor) bool) error {
	// 1) Preconditions.
	if g == nil {
		return ErrGraphNil
	}
	if degree < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDegree, degree)
	}
	if yield == nil {
		return fmt.Errorf("%w: yield must not be nil", ErrOptionViolation)
	}

	// 2) No vertices: only the zero divisor of degree 0 exists.
	order := g.Vertices()
	if len(order) == 0 {
		if degree == 0 {
			zero, err := divisor.NewDivisor(g, nil)
			if err != nil {
				return fmt.Errorf("gonality: enumerate: %w", err)
			}
			yield(zero)
		}
		return nil
	}

	// 3) Distribute the degree position by position. NewDivisor copies the
	//    working map, so vals is safely reused across emissions.
	vals := make(map[string]int64, len(order))
	var emitErr error
	var place func(i int, left int64) bool
	place = func(i int, left int64) bool {
		if i == len(order)-1 {
			vals[order[i]] = left
			d, err := divisor.NewDivisor(g, vals)
			if err != nil {
				emitErr = fmt.Errorf("gonality: enumerate: %w", err)
				return false
			}
			return yield(d)
		}
		for c := left; c >= 0; c-- {
			vals[order[i]] = c
			if !place(i+1, left-c) {
				return false
			}
		}
		return true
	}
	place(0, degree)
	return emitErr
}
