// Package localsearch implements the 2-opt engines of spec §4.6 and
// §4.7: adjacent swap, non-adjacent swap (O(1) delta), and segment flip
// moves, first-improvement, restart-from-scratch on each accepted move,
// with an optional don't-look-bits acceleration.
package localsearch

import (
	log "github.com/sirupsen/logrus"

	"github.com/flighttsp/flighttsp/costtable"
	"github.com/flighttsp/flighttsp/search"
	"github.com/flighttsp/flighttsp/tour"
)

// TwoOpt runs the plain 2-opt move set to a fixpoint: the first move at
// any (d1, d2) that yields a feasible, strictly cheaper tour is accepted
// and the outer scan restarts from day 1. Returns when a full outer scan
// accepts nothing, or the Deadline Guard fires.
func TwoOpt(ctx *search.Context, table *costtable.Table, initial tour.Tour) (tour.Tour, int) {
	current := initial.Clone()
	cost, ok := tour.Eval(table, current)
	if !ok {
		log.Warnf("[localsearch] 2-opt given an infeasible initial tour")
		return current, 0
	}

	n := len(current) - 1
	passes := 0

	for {
		if ctx.CheckDeadline() {
			return current, cost
		}
		passes++

		improved := false
	scan:
		for d1 := 1; d1 < n; d1++ {
			for d2 := d1 + 1; d2 < n; d2++ {
				if next, nextCost, moved := bestMoveAt(table, current, cost, d1, d2); moved {
					current, cost = next, nextCost
					improved = true
					break scan
				}
			}
		}

		if !improved {
			log.Debugf("[localsearch] 2-opt fixpoint after %d passes, cost %d", passes, cost)
			return current, cost
		}
	}
}

// bestMoveAt evaluates the swap move and, failing that, the flip move at
// a single (d1, d2), returning the first that strictly improves cost.
func bestMoveAt(table *costtable.Table, t tour.Tour, cost, d1, d2 int) (tour.Tour, int, bool) {
	if swapped, delta, ok := trySwap(table, t, d1, d2); ok {
		if newCost := cost + delta; newCost < cost {
			return swapped, newCost, true
		}
	}
	if flipped, newCost, ok := tryFlip(table, t, d1, d2); ok && newCost < cost {
		return flipped, newCost, true
	}
	return nil, 0, false
}

// trySwap exchanges t[d1] and t[d2] and computes the cost delta in O(1)
// from just the legs touching d1 and d2 (spec §4.6): the day indexes
// d1-1, d1, d2-1, d2, deduplicated since an adjacent swap (d2 = d1+1)
// shares day d1 between the "d1" and "d2-1" legs.
func trySwap(table *costtable.Table, t tour.Tour, d1, d2 int) (tour.Tour, int, bool) {
	days := uniqueDays(d1-1, d1, d2-1, d2)

	oldCost := 0
	for _, d := range days {
		p := table.At(d, t[d], t[d+1])
		if !p.OK {
			return nil, 0, false
		}
		oldCost += p.Value
	}

	swapped := t.Clone()
	swapped[d1], swapped[d2] = swapped[d2], swapped[d1]

	newCost := 0
	for _, d := range days {
		p := table.At(d, swapped[d], swapped[d+1])
		if !p.OK {
			return nil, 0, false
		}
		newCost += p.Value
	}

	return swapped, newCost - oldCost, true
}

// tryFlip reverses t[d1..d2] and re-evaluates the whole tour: the
// segment flip's delta is not local in a time-dependent graph, so spec
// §4.6 requires full re-evaluation rather than an O(1) formula.
func tryFlip(table *costtable.Table, t tour.Tour, d1, d2 int) (tour.Tour, int, bool) {
	flipped := t.Clone()
	reverseSegment(flipped, d1, d2)
	cost, ok := tour.Eval(table, flipped)
	if !ok {
		return nil, 0, false
	}
	return flipped, cost, true
}

func reverseSegment(t tour.Tour, lo, hi int) {
	for lo < hi {
		t[lo], t[hi] = t[hi], t[lo]
		lo++
		hi--
	}
}

// uniqueDays returns the distinct values among days, preserving order of
// first occurrence.
func uniqueDays(days ...int) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		dup := false
		for _, o := range out {
			if o == d {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, d)
		}
	}
	return out
}
