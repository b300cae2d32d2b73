package localsearch

import (
	log "github.com/sirupsen/logrus"

	"github.com/flighttsp/flighttsp/costtable"
	"github.com/flighttsp/flighttsp/search"
	"github.com/flighttsp/flighttsp/tour"
)

// TwoOptDLB is TwoOpt accelerated with don't-look bits (spec §4.7): the
// d1 scan skips any day whose preceding city has its bit set; a day that
// completes without an accepted move sets that bit; an accepted move
// clears bits in a radius-DefaultDLBResetRadius window around every city
// whose neighbour changed. Bits start cleared at every call.
func TwoOptDLB(ctx *search.Context, table *costtable.Table, initial tour.Tour) (tour.Tour, int) {
	current := initial.Clone()
	cost, ok := tour.Eval(table, current)
	if !ok {
		log.Warnf("[localsearch] DLB 2-opt given an infeasible initial tour")
		return current, 0
	}

	n := len(current) - 1
	dlb := NewDLB(n)
	passes := 0

	for {
		if ctx.CheckDeadline() {
			return current, cost
		}
		passes++

		improved := false
	scan:
		for d1 := 1; d1 < n; d1++ {
			if dlb.IsSet(current[d1-1]) {
				continue
			}

			moved := false
			for d2 := d1 + 1; d2 < n; d2++ {
				if next, nextCost, ok := bestMoveAt(table, current, cost, d1, d2); ok {
					old := current
					current, cost = next, nextCost
					dlb.ClearWindow(old, current, DefaultDLBResetRadius)
					moved = true
					improved = true
					break scan
				}
			}
			if !moved {
				dlb.Set(current[d1-1])
			}
		}

		if !improved {
			log.Debugf("[localsearch] DLB 2-opt fixpoint after %d passes, cost %d", passes, cost)
			return current, cost
		}
	}
}
