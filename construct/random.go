package construct

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/flighttsp/flighttsp/costtable"
	"github.com/flighttsp/flighttsp/tour"
)

// RandomFeasibility is the last-resort constructor of spec §4.5: each
// attempt picks uniformly among the currently-feasible unvisited
// destinations on every day, with the final day's return to start
// forced. It returns the first complete feasible tour found, or nil
// after `attempts` tries.
func RandomFeasibility(table *costtable.Table, start costtable.City, n int, rng *rand.Rand, attempts int) tour.Tour {
	for iter := 0; iter < attempts; iter++ {
		if t := randomFeasibilityAttempt(table, start, n, rng); t != nil {
			return t
		}
	}
	log.Debugf("[construct] random feasibility search: no feasible tour in %d attempts", attempts)
	return nil
}

func randomFeasibilityAttempt(table *costtable.Table, start costtable.City, n int, rng *rand.Rand) tour.Tour {
	toVisit := make([]costtable.City, 0, n-1)
	for c := costtable.City(0); int(c) < n; c++ {
		if c != start {
			toVisit = append(toVisit, c)
		}
	}

	t := make(tour.Tour, 1, n+1)
	t[0] = start
	current := start

	for day := 0; day < n; day++ {
		if day == n-1 {
			if !table.At(day, current, start).OK {
				return nil
			}
			return append(t, start)
		}

		var reachable []costtable.City
		for _, c := range toVisit {
			if table.At(day, current, c).OK {
				reachable = append(reachable, c)
			}
		}
		if len(reachable) == 0 {
			return nil
		}

		next := reachable[rng.Intn(len(reachable))]
		t = append(t, next)
		current = next
		for i, c := range toVisit {
			if c == next {
				toVisit = append(toVisit[:i], toVisit[i+1:]...)
				break
			}
		}
	}
	return nil
}
