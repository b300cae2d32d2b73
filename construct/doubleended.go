package construct

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/flighttsp/flighttsp/costtable"
	"github.com/flighttsp/flighttsp/flightindex"
	"github.com/flighttsp/flighttsp/tour"
)

// DoubleEndedNN is the fallback constructor of spec §4.4: it tries up
// to `attempts` random (anchor city, anchor day) seeds, grows a tour
// from both ends toward the middle, and keeps the cheapest feasible
// result. Day 0 and day n are always start, since city index 0 is
// always the start city (spec §6: "start city therefore receives index
// 0"), so the random anchor city is drawn from [1, n).
func DoubleEndedNN(table *costtable.Table, idx *flightindex.Index, start costtable.City, n int, rng *rand.Rand, attempts int) tour.Tour {
	if n < 2 {
		return nil
	}

	var best tour.Tour
	bestCost := costMax

	for i := 0; i < attempts; i++ {
		anchorCity := costtable.City(1 + rng.Intn(n-1))
		anchorDay := 1 + rng.Intn(n-1)

		candidate := doubleEndedAttempt(table, idx, anchorCity, anchorDay, start, n)
		if candidate == nil {
			continue
		}
		if cost, ok := tour.Eval(table, candidate); ok && cost < bestCost {
			bestCost = cost
			best = candidate
		}
	}

	if best == nil {
		log.Debugf("[construct] double-ended NN: no feasible tour in %d attempts", attempts)
	}
	return best
}

// doubleEndedAttempt grows one candidate tour from the anchor outward.
// A forward frontier extends from (anchorDay, anchorCity) toward day
// n-1; a backward frontier extends from anchorDay-1 toward day 0. At
// each step the cheapest feasible extension on each side is found by
// walking the sorted flight indexes past already-visited cities; ties
// are broken in favor of the backward frontier.
func doubleEndedAttempt(table *costtable.Table, idx *flightindex.Index, anchorCity costtable.City, anchorDay int, start costtable.City, n int) tour.Tour {
	visited := make([]bool, n)
	visited[start] = true
	visited[anchorCity] = true

	t := make(tour.Tour, n+1)
	t[0] = start
	t[n] = start
	t[anchorDay] = anchorCity

	endDay, endCity := anchorDay, anchorCity
	startDay, frontCity := anchorDay-1, anchorCity

	for {
		nextCity := costtable.City(-1)
		nextCost := costMax
		if endDay == n-1 {
			if !table.At(endDay, endCity, start).OK {
				return nil
			}
		} else {
			for _, leg := range idx.Outbound(endCity, endDay) {
				if !visited[leg.City] {
					nextCity, nextCost = leg.City, leg.Price
					break
				}
			}
		}

		prevCity := costtable.City(-1)
		prevCost := costMax
		if startDay == 0 {
			if !table.At(0, start, frontCity).OK {
				return nil
			}
		} else {
			for _, leg := range idx.Inbound(frontCity, startDay) {
				if !visited[leg.City] {
					prevCity, prevCost = leg.City, leg.Price
					break
				}
			}
		}

		if endDay == n-1 && startDay == 0 {
			return t
		}
		if nextCity < 0 && prevCity < 0 {
			return nil
		}

		if nextCost < prevCost {
			endDay++
			endCity = nextCity
			visited[endCity] = true
			t[endDay] = endCity
		} else {
			frontCity = prevCity
			visited[frontCity] = true
			t[startDay] = frontCity
			startDay--
		}
	}
}
