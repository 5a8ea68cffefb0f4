// File: gonality/gonality.go
// Role: exhaustive gonality search plus the closed form for complete
//       multipartite graphs.

package gonality

import (
	"fmt"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

// Gonality returns the least degree of a positive-rank divisor on g, the
// smallest chip budget that wins no matter where a single dollar of debt
// lands.
//
// The search scans degrees upward. At each degree every effective divisor
// is enumerated and tested for positive rank, which costs V winnability
// checks per candidate. The default degree cap is Bounds(g).Upper, which
// is guaranteed to contain the answer; WithMaxDegree replaces the cap
// entirely, and a cap below the true gonality fails with
// ErrBudgetExceeded.
//
// Complexity: O(Σ_d C(d+V-1, V-1) · V) Dhar reductions up to the answer.
// Exponential; intended for small boards. Bounds is the cheap fallback.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrDisconnected, ErrBudgetExceeded,
// ErrOptionViolation, and context cancellation via WithContext.
func Gonality(g *core.Graph, opts ...Option) (int, error) {
	// 1) Options and preconditions.
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return 0, ErrEmptyGraph
	}
	if !g.IsConnected() {
		return 0, ErrDisconnected
	}

	// 2) Degree cap: the explicit option or the proven upper bound.
	limit := o.MaxDegree
	if limit == 0 {
		r, err := Bounds(g)
		if err != nil {
			return 0, err
		}
		limit = r.Upper
	}

	// 3) Scan degrees upward; the first positive-rank hit is the answer.
	for deg := 1; deg <= limit; deg++ {
		found := false
		var checkErr error
		enumErr := EnumerateEffective(g, int64(deg), func(d *divisor.Divisor) bool {
			select {
			case <-o.Ctx.Done():
				checkErr = o.Ctx.Err()
				return false
			default:
			}
			ok, rankErr := positiveRank(d)
			if rankErr != nil {
				checkErr = rankErr
				return false
			}
			if ok {
				found = true
				return false
			}
			return true
		})
		if enumErr != nil {
			return 0, enumErr
		}
		if checkErr != nil {
			return 0, checkErr
		}
		if found {
			return deg, nil
		}
	}
	return 0, fmt.Errorf("%w: no positive-rank divisor up to degree %d", ErrBudgetExceeded, limit)
}

// CompleteMultipartiteGonality returns the gonality of the complete
// multipartite graph K_{p1,...,pk} in closed form, without building it.
//
// For k >= 2 the answer is n minus the largest part: one chip on every
// vertex outside a biggest class has positive rank (any debtor inside the
// class borrows once from its full neighborhood), and the treewidth, which
// equals the same quantity, matches it from below. A single part follows
// the complete-graph convention gon(K_n) = n-1, clamped to 1 so that the
// one-vertex board agrees with the search.
//
// Errors: ErrBadPartition for an empty partition or non-positive parts.
func CompleteMultipartiteGonality(parts []int) (int, error) {
	if len(parts) == 0 {
		return 0, fmt.Errorf("%w: no parts", ErrBadPartition)
	}
	n, max := 0, 0
	for i, p := range parts {
		if p < 1 {
			return 0, fmt.Errorf("%w: part %d is %d", ErrBadPartition, i, p)
		}
		n += p
		if p > max {
			max = p
		}
	}
	if len(parts) == 1 {
		if n == 1 {
			return 1, nil
		}
		return n - 1, nil
	}
	return n - max, nil
}
