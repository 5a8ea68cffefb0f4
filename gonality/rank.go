// File: gonality/rank.go
// Role: the Baker-Norine rank of a divisor by exhaustive adversary search.

package gonality

import (
	"fmt"

	"github.com/katalvlaran/chipfire/dhar"
	"github.com/katalvlaran/chipfire/divisor"
)

// Rank computes the Baker-Norine rank of d.
//
// The rank is -1 when d is unwinnable. Otherwise it is the largest k such
// that d minus EVERY effective divisor of degree k stays winnable: an
// adversary may place k extra dollars of debt anywhere on the board and
// the game is still won. A winnable divisor has rank at least 0, and the
// rank never exceeds deg(d), because removing more than the total degree
// leaves a negative-degree board, which always loses.
//
// Complexity: C(k+V-1, V-1) winnability checks per level k, each one a
// full Dhar reduction. Exact and exponential; meant for small boards.
//
// Errors: ErrDivisorNil, plus anything the winnability oracle reports.
func Rank(d *divisor.Divisor) (int, error) {
	// 1) Preconditions.
	if d == nil {
		return 0, ErrDivisorNil
	}

	// 2) Unwinnable boards have rank -1 by convention.
	win, err := dhar.IsWinnable(d)
	if err != nil {
		return 0, fmt.Errorf("gonality: rank: %w", err)
	}
	if !win {
		return -1, nil
	}

	// 3) Raise the level while every adversarial placement keeps the board
	//    winnable. The first level with a losing placement ends the scan.
	g := d.Graph()
	rank := 0
	for k := int64(1); k <= d.Degree(); k++ {
		all := true
		var checkErr error
		enumErr := EnumerateEffective(g, k, func(e *divisor.Divisor) bool {
			diff, subErr := d.Sub(e)
			if subErr != nil {
				checkErr = fmt.Errorf("gonality: rank: %w", subErr)
				return false
			}
			ok, winErr := dhar.IsWinnable(diff)
			if winErr != nil {
				checkErr = fmt.Errorf("gonality: rank: %w", winErr)
				return false
			}
			if !ok {
				all = false
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
		if !all {
			break
		}
		rank = int(k)
	}
	return rank, nil
}

// positiveRank reports whether d has rank at least 1, which needs only the
// degree-1 adversaries: d minus a single chip at v must stay winnable for
// every vertex v.
func positiveRank(d *divisor.Divisor) (bool, error) {
	g := d.Graph()
	for _, v := range g.Vertices() {
		e, err := divisor.NewDivisor(g, map[string]int64{v: 1})
		if err != nil {
			return false, fmt.Errorf("gonality: rank: %w", err)
		}
		diff, err := d.Sub(e)
		if err != nil {
			return false, fmt.Errorf("gonality: rank: %w", err)
		}
		win, err := dhar.IsWinnable(diff)
		if err != nil {
			return false, fmt.Errorf("gonality: rank: %w", err)
		}
		if !win {
			return false, nil
		}
	}
	return true, nil
}
