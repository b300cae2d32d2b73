// Package ils implements the Iterated Local Search driver of spec §4.8
// and §4.9: a restricted double-bridge perturbation and the deadline-
// checked loop that alternates perturbation with DLB 2-opt re-
// optimization, tracking both a working tour and the running global
// best in a search.Context.
package ils

import (
	"math/rand"

	"github.com/flighttsp/flighttsp/costtable"
	"github.com/flighttsp/flighttsp/tour"
)

// DoubleBridge tries up to maxTries random 4-cut tuples and returns the
// first rearrangement that is feasible and costs less than
// maxRatio*originalCost (spec §4.8). Returns ok=false if no such
// rearrangement is found.
func DoubleBridge(rng *rand.Rand, table *costtable.Table, t tour.Tour, originalCost int, maxRatio float64, maxTries int) (tour.Tour, int, bool) {
	n := len(t) - 1
	if n < 8 {
		// Four cuts with gaps of at least 2 require N >= 8, i.e. at least
		// 7 interior slots (1 <= d1 < d2 < d3 < d4 < N with gaps >= 2).
		return nil, 0, false
	}
	ceiling := maxRatio * float64(originalCost)

	for try := 0; try < maxTries; try++ {
		d1, d2, d3, d4, ok := pick4Cuts(rng, n)
		if !ok {
			continue
		}
		candidate := bridge(t, d1, d2, d3, d4)
		cost, ok := tour.Eval(table, candidate)
		if !ok {
			continue
		}
		if float64(cost) < ceiling {
			return candidate, cost, true
		}
	}
	return nil, 0, false
}

// pick4Cuts draws four increasing cut points 1 <= d1 < d2 < d3 < d4 < n
// with every gap (including the wrap-around gap back to d1 and forward
// from d4) at least 2, so every one of the four resulting segments is
// non-empty (spec §4.8).
func pick4Cuts(rng *rand.Rand, n int) (d1, d2, d3, d4 int, ok bool) {
	if n < 8 {
		return 0, 0, 0, 0, false
	}
	// Draw 4 values from [1, n) and sort them; the draw fails (and the
	// caller tries again) if any value repeats or any consecutive gap is
	// smaller than 2.
	picks := make([]int, 4)
	seen := make(map[int]bool, 4)
	for i := 0; i < 4; i++ {
		v := 1 + rng.Intn(n-1)
		if seen[v] {
			return 0, 0, 0, 0, false
		}
		seen[v] = true
		picks[i] = v
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if picks[j] < picks[i] {
				picks[i], picks[j] = picks[j], picks[i]
			}
		}
	}
	d1, d2, d3, d4 = picks[0], picks[1], picks[2], picks[3]
	if d2-d1 < 2 || d3-d2 < 2 || d4-d3 < 2 {
		return 0, 0, 0, 0, false
	}
	return d1, d2, d3, d4, true
}

// bridge rearranges t into tour[0..d1) ++ tour[d3..d4) ++ tour[d2..d3)
// ++ tour[d1..d2) ++ tour[d4..N+1), the classic double-bridge move
// (spec §4.8).
func bridge(t tour.Tour, d1, d2, d3, d4 int) tour.Tour {
	out := make(tour.Tour, 0, len(t))
	out = append(out, t[:d1]...)
	out = append(out, t[d3:d4]...)
	out = append(out, t[d2:d3]...)
	out = append(out, t[d1:d2]...)
	out = append(out, t[d4:]...)
	return out
}
