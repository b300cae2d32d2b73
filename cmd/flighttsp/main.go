// Command flighttsp reads a flight-cost instance on stdin and prints the
// cheapest closed tour it can find within the deadline on stdout, per
// spec §6.
package main

import (
	"flag"
	"math/rand"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/flighttsp/flighttsp/construct"
	"github.com/flighttsp/flighttsp/costtable"
	"github.com/flighttsp/flighttsp/flightindex"
	"github.com/flighttsp/flighttsp/ils"
	"github.com/flighttsp/flighttsp/ioformat"
	"github.com/flighttsp/flighttsp/localsearch"
	"github.com/flighttsp/flighttsp/search"
	"github.com/flighttsp/flighttsp/tour"
)

const (
	exactThreshold       = 10
	doubleEndedAttempts  = 1000
	randomAttempts       = 10000
	defaultSeed    int64 = 1
)

func main() {
	var verbose bool
	var seed int64
	flag.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	flag.Int64Var(&seed, "seed", defaultSeed, "PRNG seed, for reproducible runs")
	flag.Parse()

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	table, names, start, err := ioformat.Parse(os.Stdin)
	if err != nil {
		log.Fatalf("[main] %v", err)
	}
	n := table.NumCities()
	log.Infof("[main] parsed %d cities, start %s", n, names[start])

	if n <= exactThreshold {
		runExact(table, names, start, n)
		return
	}

	onDeadline := func(best tour.Tour, cost int) {
		emit(names, best, cost, table)
		os.Exit(0)
	}
	ctx := search.NewContext(seed, search.DefaultDeadline, onDeadline)

	idx := flightindex.Build(table)
	if stats := idx.Stats(); stats.TotalLegs > 0 {
		log.Debugf("[main] flight index: %d legs, mean outbound price %.1f (stddev %.1f)",
			stats.TotalLegs, stats.MeanOutboundPrice, stats.StdDevOutboundPrice)
	}

	initial := constructTour(ctx.Rng, table, idx, start, n)
	if initial == nil {
		log.Warnf("[main] no constructor produced a feasible tour, exiting without output")
		os.Exit(0)
	}

	cost, ok := tour.Eval(table, initial)
	if !ok {
		log.Fatalf("[main] constructor returned an infeasible tour")
	}
	ctx.UpdateBest(initial, cost)

	optimized, optimizedCost := localsearch.TwoOpt(ctx, table, initial)
	ctx.UpdateBest(optimized, optimizedCost)

	if ctx.CheckDeadline() {
		return
	}

	driver := &ils.Driver{Table: table, Ctx: ctx}
	driver.Run(optimized, optimizedCost)

	if ctx.HasBest() {
		emit(names, ctx.BestTour(), ctx.BestCost(), table)
	}
}

// constructTour cascades through the construction heuristics of spec
// §4.3-§4.5, returning the first feasible tour found.
func constructTour(rng *rand.Rand, table *costtable.Table, idx *flightindex.Index, start costtable.City, n int) tour.Tour {
	if t := construct.LookaheadNN(table, idx, start, n); t != nil {
		log.Debugf("[main] lookahead-NN succeeded")
		return t
	}
	if t := construct.DoubleEndedNN(table, idx, start, n, rng, doubleEndedAttempts); t != nil {
		log.Debugf("[main] double-ended NN succeeded")
		return t
	}
	if t := construct.RandomFeasibility(table, start, n, rng, randomAttempts); t != nil {
		log.Debugf("[main] random feasibility search succeeded")
		return t
	}
	return nil
}

// runExact handles spec §4.11: instances small enough for exhaustive
// enumeration skip the heuristic pipeline entirely.
func runExact(table *costtable.Table, names []string, start costtable.City, n int) {
	t, cost, ok := construct.Exact(table, start, n)
	if !ok {
		log.Warnf("[main] exact solver found no feasible tour, exiting without output")
		return
	}
	emit(names, t, cost, table)
}

func emit(names []string, t tour.Tour, cost int, table *costtable.Table) {
	if err := ioformat.Format(os.Stdout, names, t, cost, table); err != nil {
		log.Errorf("[main] writing output: %v", err)
	}
}
