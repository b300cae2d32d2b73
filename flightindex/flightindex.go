// Package flightindex builds the per-(city, day) sorted outbound and
// inbound flight lists used by the construction heuristics (spec §4.2)
// for fast best-first iteration over a city's flights.
package flightindex

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/flighttsp/flighttsp/costtable"
)

// Leg is one entry of a sorted flight list: a reachable city and its
// price.
type Leg struct {
	City  costtable.City
	Price int
}

// Index holds the immutable outbound and inbound flight indexes built
// from a Table.
type Index struct {
	n        int
	outbound [][]Leg
	inbound  [][]Leg
}

// Build constructs both indexes from table. Ties within a sorted list
// are broken by destination/origin index, per spec §4.2, so that
// iteration order is reproducible across runs of the same input.
func Build(table *costtable.Table) *Index {
	n := table.NumCities()
	idx := &Index{
		n:        n,
		outbound: make([][]Leg, n*n),
		inbound:  make([][]Leg, n*n),
	}

	for day := 0; day < n; day++ {
		for from := costtable.City(0); int(from) < n; from++ {
			idx.outbound[idx.slot(from, day)] = sortedLegs(table, day, from, n, true)
		}
		for to := costtable.City(0); int(to) < n; to++ {
			idx.inbound[idx.slot(to, day)] = sortedLegs(table, day, to, n, false)
		}
	}

	s := idx.Stats()
	log.Debugf(
		"[flightindex] built index over %d cities: %d legs, mean outbound price %.1f (stddev %.1f)",
		n, s.TotalLegs, s.MeanOutboundPrice, s.StdDevOutboundPrice,
	)
	return idx
}

// sortedLegs collects, for a fixed city and day, every reachable
// counterpart with a finite price and sorts it ascending by price, then
// by city index. outbound=true walks `city`'s outbound flights;
// outbound=false walks its inbound flights.
func sortedLegs(table *costtable.Table, day int, city costtable.City, n int, outbound bool) []Leg {
	var legs []Leg
	for other := costtable.City(0); int(other) < n; other++ {
		var p costtable.Price
		if outbound {
			p = table.At(day, city, other)
		} else {
			p = table.At(day, other, city)
		}
		if p.OK {
			legs = append(legs, Leg{City: other, Price: p.Value})
		}
	}
	sort.Slice(legs, func(i, j int) bool {
		if legs[i].Price != legs[j].Price {
			return legs[i].Price < legs[j].Price
		}
		return legs[i].City < legs[j].City
	})
	return legs
}

func (idx *Index) slot(city costtable.City, day int) int {
	return int(city)*idx.n + day
}

// Outbound returns city's outbound flights on day, sorted ascending by
// price.
func (idx *Index) Outbound(city costtable.City, day int) []Leg {
	return idx.outbound[idx.slot(city, day)]
}

// Inbound returns city's inbound flights on day, sorted ascending by
// price.
func (idx *Index) Inbound(city costtable.City, day int) []Leg {
	return idx.inbound[idx.slot(city, day)]
}

// Stats summarizes the sparsity of the built index.
type Stats struct {
	TotalLegs           int
	MeanOutboundPrice   float64
	StdDevOutboundPrice float64
}

// Stats computes summary statistics over every outbound leg price in
// the index, used only for diagnostic logging.
func (idx *Index) Stats() Stats {
	var prices []float64
	for _, legs := range idx.outbound {
		for _, l := range legs {
			prices = append(prices, float64(l.Price))
		}
	}
	if len(prices) == 0 {
		return Stats{}
	}
	mean, std := stat.MeanStdDev(prices, nil)
	return Stats{TotalLegs: len(prices), MeanOutboundPrice: mean, StdDevOutboundPrice: std}
}
