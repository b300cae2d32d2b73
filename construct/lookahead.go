// Package construct implements the construction heuristics of spec §4.3
// to §4.5 and §4.11: lookahead nearest-neighbour (primary), double-ended
// nearest-neighbour (fallback), random feasibility search (last resort),
// and exact enumeration for tiny instances. Every constructor returns an
// empty tour.Tour on failure so the caller can cascade to the next one.
package construct

import (
	log "github.com/sirupsen/logrus"

	"github.com/flighttsp/flighttsp/costtable"
	"github.com/flighttsp/flighttsp/flightindex"
	"github.com/flighttsp/flighttsp/tour"
)

// costMax stands in for "no feasible completion was found" while
// comparing candidate lookahead totals; it only ever needs to be larger
// than any real tour cost (which, per spec.md, is a sum of positive
// per-leg integer prices).
const costMax = 1 << 30

// LookaheadNN builds the primary construction tour. At each day, every
// feasible next city is scored by its own price plus the cost of a
// purely greedy nearest-neighbour completion back to start; the city
// minimizing that total is chosen. The final day's leg is forced to
// start.
func LookaheadNN(table *costtable.Table, idx *flightindex.Index, start costtable.City, n int) tour.Tour {
	visited := make([]bool, n)
	visited[start] = true

	t := make(tour.Tour, 1, n+1)
	t[0] = start
	current := start

	for day := 0; day < n; day++ {
		if day == n-1 {
			if p := table.At(day, current, start); p.OK {
				t = append(t, start)
				break
			}
			log.Debugf("[construct] lookahead-NN: no return flight to start on day %d", day)
			return nil
		}

		bestCity := costtable.City(-1)
		bestTotal := costMax
		for _, leg := range idx.Outbound(current, day) {
			if visited[leg.City] {
				continue
			}
			total := leg.Price
			if completion, ok := greedyCompletionCost(table, idx, day+1, n, leg.City, start, visited); ok {
				total += completion
			} else {
				total = costMax
			}
			if total < bestTotal {
				bestTotal = total
				bestCity = leg.City
			}
		}

		if bestCity < 0 {
			log.Debugf("[construct] lookahead-NN: stuck at city %d on day %d", current, day)
			return nil
		}
		visited[bestCity] = true
		t = append(t, bestCity)
		current = bestCity
	}

	return t
}

// greedyCompletionCost simulates a pure first-available greedy
// nearest-neighbour tour from `from` on `startDay`, back to `target` on
// the final day, skipping cities already visited. It never mutates the
// caller's visited slice.
func greedyCompletionCost(
	table *costtable.Table,
	idx *flightindex.Index,
	startDay, n int,
	from, target costtable.City,
	visited []bool,
) (int, bool) {
	local := append([]bool(nil), visited...)
	local[from] = true

	current := from
	total := 0
	for day := startDay; day < n; day++ {
		if day == n-1 {
			p := table.At(day, current, target)
			if !p.OK {
				return 0, false
			}
			return total + p.Value, true
		}

		found := false
		for _, leg := range idx.Outbound(current, day) {
			if !local[leg.City] {
				local[leg.City] = true
				total += leg.Price
				current = leg.City
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return total, true
}
