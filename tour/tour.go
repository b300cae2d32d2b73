// Package tour defines the Tour type and its evaluator, per spec §3 and
// §4.1: a closed sequence of N+1 city visits, pinned to start at both
// ends, evaluated as the sum of its leg costs.
package tour

import "github.com/flighttsp/flighttsp/costtable"

// Tour is a sequence of N+1 city indexes: Tour[0] == Tour[N] == start,
// and Tour[1:N] is a permutation of the non-start cities.
type Tour []costtable.City

// Clone returns an independent copy. Local search always mutates a
// clone rather than the tour that produced it, per the copy-semantics
// design note in spec.md §9.
func (t Tour) Clone() Tour {
	c := make(Tour, len(t))
	copy(c, t)
	return c
}

// Eval sums the leg costs of t under table, returning ok=false as soon
// as a leg has no flight. Pure, O(len(t)), no allocation.
func Eval(table *costtable.Table, t Tour) (cost int, ok bool) {
	for day := 0; day < len(t)-1; day++ {
		p := table.At(day, t[day], t[day+1])
		if !p.OK {
			return 0, false
		}
		cost += p.Value
	}
	return cost, true
}

// IsValidPermutation reports whether t satisfies the universal tour
// invariants of spec.md §8: length n+1, pinned endpoints, and every
// non-start city visited exactly once.
func IsValidPermutation(t Tour, start costtable.City, n int) bool {
	if len(t) != n+1 || t[0] != start || t[n] != start {
		return false
	}
	seen := make([]bool, n)
	for _, c := range t[1:n] {
		if c == start || c < 0 || int(c) >= n || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}
