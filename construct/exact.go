package construct

import (
	"github.com/flighttsp/flighttsp/costtable"
	"github.com/flighttsp/flighttsp/tour"
)

// Exact enumerates every permutation of the non-start cities (spec
// §4.11) and returns the cheapest feasible closed tour. Intended only
// for n <= 10 (worst case 9! = 362,880 permutations).
func Exact(table *costtable.Table, start costtable.City, n int) (tour.Tour, int, bool) {
	perm := make([]costtable.City, 0, n-1)
	for c := costtable.City(0); int(c) < n; c++ {
		if c != start {
			perm = append(perm, c)
		}
	}

	candidate := make(tour.Tour, n+1)
	candidate[0] = start
	candidate[n] = start

	var best tour.Tour
	bestCost := costMax

	for {
		copy(candidate[1:n], perm)
		if cost, ok := tour.Eval(table, candidate); ok && cost < bestCost {
			bestCost = cost
			best = candidate.Clone()
		}
		if !nextPermutation(perm) {
			break
		}
	}

	if best == nil {
		return nil, 0, false
	}
	return best, bestCost, true
}

// nextPermutation rearranges a into its next lexicographic permutation
// (by city index) and reports whether one existed, mirroring the
// classic std::next_permutation algorithm.
func nextPermutation(a []costtable.City) bool {
	n := len(a)
	if n < 2 {
		return false
	}
	i := n - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		reverseCities(a, 0, n-1)
		return false
	}
	j := n - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	reverseCities(a, i+1, n-1)
	return true
}

func reverseCities(a []costtable.City, lo, hi int) {
	for lo < hi {
		a[lo], a[hi] = a[hi], a[lo]
		lo++
		hi--
	}
}
