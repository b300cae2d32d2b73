package ils

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/flighttsp/flighttsp/costtable"
	"github.com/flighttsp/flighttsp/localsearch"
	"github.com/flighttsp/flighttsp/search"
	"github.com/flighttsp/flighttsp/tour"
)

// Regime-selected acceptance ratios and perturbation try budgets, per
// spec §4.9.
const (
	ratioSmall      = 1.35 // N < 100
	ratioHundred    = 1.1  // N == 100
	ratioLarge      = 1.075
	perturbTries    = 2000
	stagnationRatio = 1.15
	stagnationTries = 2000
	stagnationAfter = 4 * time.Second
)

// Driver owns the table a solve runs against and the search.Context it
// reports progress and its global best through.
type Driver struct {
	Table *costtable.Table
	Ctx   *search.Context
}

// Run implements the ILS loop of spec §4.9. initial must already be
// locally 2-opt optimal (the caller runs localsearch.TwoOpt on the
// constructed tour and registers it as the global best before calling
// Run). Returns the final working tour and its cost; the context's
// BestTour/BestCost track the best ever seen, which may differ from the
// returned working tour if a later perturbation worsened it.
func (d *Driver) Run(initial tour.Tour, initialCost int) (tour.Tour, int) {
	n := len(initial) - 1
	ratio := regimeRatio(n)

	working := initial.Clone()
	cost := initialCost
	lastImprovement := d.Ctx.Now()

	iterations := 0
	for {
		if d.Ctx.CheckDeadline() {
			return working, cost
		}
		iterations++

		if n < 100 && d.Ctx.Since(lastImprovement) > stagnationAfter {
			if candidate, candCost, ok := DoubleBridge(d.Ctx.Rng, d.Table, d.Ctx.BestTour(), d.Ctx.BestCost(), stagnationRatio, stagnationTries); ok {
				working, cost = candidate, candCost
				lastImprovement = d.Ctx.Now()
				log.Debugf("[ils] stagnation restart from global best at iteration %d", iterations)
			}
		}

		perturbed, _, ok := DoubleBridge(d.Ctx.Rng, d.Table, working, cost, ratio, perturbTries)
		if !ok {
			d.Ctx.UpdateBest(working, cost)
			continue
		}

		optimized, optimizedCost := localsearch.TwoOptDLB(d.Ctx, d.Table, perturbed)

		if optimizedCost < cost {
			working = optimized
			cost = optimizedCost
			lastImprovement = d.Ctx.Now()
			log.Debugf("[ils] iteration %d accepted working tour, cost %d", iterations, cost)
		}

		// Unconditional global-best check using the current working
		// tour/cost, regardless of whether this iteration's kick was
		// accepted into working: a prior iteration's working tour may
		// already be the best ever seen even when this kick failed.
		d.Ctx.UpdateBest(working, cost)
	}
}

func regimeRatio(n int) float64 {
	switch {
	case n < 100:
		return ratioSmall
	case n == 100:
		return ratioHundred
	default:
		return ratioLarge
	}
}
