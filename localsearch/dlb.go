package localsearch

import "github.com/flighttsp/flighttsp/costtable"

// DefaultDLBResetRadius is the window radius cleared around a changed
// position after an accepted move. It is a magic constant in the
// original solver with no obvious derivation (spec.md §9's open
// question); exposed here as a tunable with 3 as the default.
const DefaultDLBResetRadius = 3

// DLB is the don't-look-bits vector of spec §3 and §4.7: one bit per
// city, set to mean "skip this city as a move anchor until its
// neighbourhood changes". All bits start cleared.
type DLB struct {
	set []bool
}

// NewDLB allocates a DLB vector over n cities, all bits cleared.
func NewDLB(n int) *DLB {
	return &DLB{set: make([]bool, n)}
}

// IsSet reports whether city's bit is set.
func (d *DLB) IsSet(city costtable.City) bool {
	return d.set[city]
}

// Set marks city as uninteresting as a move anchor.
func (d *DLB) Set(city costtable.City) {
	d.set[city] = true
}

// ClearWindow compares oldTour and newTour city-by-city: for every city
// whose left or right neighbour changed between the two tours, it
// clears the bits of every city within `radius` positions of that
// city's slot in oldTour (spec §4.7).
func (d *DLB) ClearWindow(oldTour, newTour []costtable.City, radius int) {
	oldPos := slotsOf(oldTour)
	newPos := slotsOf(newTour)

	for city := range d.set {
		c := costtable.City(city)
		oldSlot, okOld := oldPos[c]
		newSlot, okNew := newPos[c]
		if !okOld || !okNew {
			continue
		}

		changed := (oldSlot > 0 && newSlot > 0 && oldTour[oldSlot-1] != newTour[newSlot-1]) ||
			(oldSlot < len(oldTour)-1 && newSlot < len(newTour)-1 && oldTour[oldSlot+1] != newTour[newSlot+1])
		if !changed {
			continue
		}

		for offset := -radius; offset <= radius; offset++ {
			target := oldSlot + offset
			if target >= 0 && target < len(newTour) {
				d.set[oldTour[target]] = false
			}
		}
	}
}

// slotsOf maps each city to the first slot it occupies in t.
func slotsOf(t []costtable.City) map[costtable.City]int {
	pos := make(map[costtable.City]int, len(t))
	for i, c := range t {
		if _, ok := pos[c]; !ok {
			pos[c] = i
		}
	}
	return pos
}
