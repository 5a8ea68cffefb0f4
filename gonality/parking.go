// File: gonality/parking.go
// Role: parking functions, the combinatorial face of superstable
//       configurations on complete graphs.

package gonality

import (
	"fmt"
	"sort"
)

// IsParkingFunction reports whether seq is a parking function: n cars with
// 1-based spot preferences all park when each takes the first free spot at
// or after its preference. Equivalently, the sorted sequence satisfies
// b_i <= i at every 1-based position, with every entry at least 1.
//
// The empty sequence is a parking function. Sorted parking functions of
// length n biject with the superstable chip configurations on the
// complete graph K_{n+1}, which ties them to the game on that board.
func IsParkingFunction(seq []int) bool {
	sorted := append([]int(nil), seq...)
	sort.Ints(sorted)
	for i, b := range sorted {
		if b < 1 || b > i+1 {
			return false
		}
	}
	return true
}

// ParkingFunctions generates every parking function of length n in
// lexicographic order, nil for n <= 0. The count is (n+1)^(n-1), so this
// is for small n only; the candidate space is n^n.
func ParkingFunctions(n int) [][]int {
	if n <= 0 {
		return nil
	}
	var out [][]int
	seq := make([]int, n)
	var build func(i int)
	build = func(i int) {
		if i == n {
			if IsParkingFunction(seq) {
				out = append(out, append([]int(nil), seq...))
			}
			return
		}
		for v := 1; v <= n; v++ {
			seq[i] = v
			build(i + 1)
		}
	}
	build(0)
	return out
}

// ParkingCount returns (n+1)^(n-1), the number of parking functions of
// length n, and 0 for n <= 0. The value exceeds int64 beyond n = 16, which
// is reported as ErrOverflow.
func ParkingCount(n int) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	if n > 16 {
		return 0, fmt.Errorf("%w: n=%d", ErrOverflow, n)
	}
	count := int64(1)
	for i := 0; i < n-1; i++ {
		count *= int64(n + 1)
	}
	return count, nil
}
