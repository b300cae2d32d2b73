// Package search holds the global mutable state of a solve in one
// explicit value, per the design note in spec.md §9: the global best
// tour, the deadline clock, and the PRNG are promoted out of package
// globals into a Context threaded through the construction heuristics,
// the local-search engines, and the ILS driver.
package search

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/flighttsp/flighttsp/tour"
)

// DefaultDeadline is the compiled wall-clock budget of spec.md §6: no
// configuration file or environment variable controls it.
const DefaultDeadline = 29900 * time.Millisecond

// OnDeadline is invoked at most once, the first time the deadline fires,
// with the context's current global best. It never sees a tour if the
// deadline fires before any feasible tour has ever been recorded.
type OnDeadline func(best tour.Tour, cost int)

// Context carries the single solve's mutable state: the PRNG, the
// deadline clock, and the running global best.
type Context struct {
	Rng *rand.Rand

	start      time.Time
	deadline   time.Duration
	onDeadline OnDeadline
	fired      bool

	bestTour tour.Tour
	bestCost int
	haveBest bool
}

// NewContext creates a Context seeded for reproducibility, with the
// wall clock starting now and the given deadline budget.
func NewContext(seed int64, deadline time.Duration, onDeadline OnDeadline) *Context {
	return &Context{
		Rng:        rand.New(rand.NewSource(seed)),
		start:      time.Now(),
		deadline:   deadline,
		onDeadline: onDeadline,
	}
}

// Now returns the current wall-clock time. Exposed as a method so
// callers thread all timing through the Context rather than calling
// time.Now() directly, keeping a solve's notion of "now" in one place.
func (c *Context) Now() time.Time {
	return time.Now()
}

// Since is a convenience wrapper around time.Since.
func (c *Context) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// UpdateBest records t as the global best if it improves on (or
// establishes) the running best. The tour is cloned so later mutation
// by the caller cannot corrupt the recorded best.
func (c *Context) UpdateBest(t tour.Tour, cost int) {
	if !c.haveBest || cost < c.bestCost {
		c.bestTour = t.Clone()
		c.bestCost = cost
		c.haveBest = true
		log.Debugf("[search] new global best: cost %d", cost)
	}
}

// BestTour and BestCost report the context's running global best.
// HasBest reports whether any feasible tour has ever been recorded.
func (c *Context) BestTour() tour.Tour { return c.bestTour }
func (c *Context) BestCost() int       { return c.bestCost }
func (c *Context) HasBest() bool       { return c.haveBest }

// CheckDeadline is the Deadline Guard (spec.md §4.10): it reports
// whether the wall-clock budget has been exhausted. The first time it
// fires, it invokes the installed OnDeadline callback with the
// context's current global best -- emitting and terminating is the
// callback's responsibility, not this package's, so that tests can
// observe the emitted answer instead of the process exiting. Every
// call after the first also reports true, so a caller that keeps
// looping (because its installed callback does not itself terminate
// the process) still unwinds promptly.
func (c *Context) CheckDeadline() bool {
	if c.fired {
		return true
	}
	if time.Since(c.start) < c.deadline {
		return false
	}
	c.fired = true
	log.Warnf("[search] deadline reached after %s", time.Since(c.start).Round(time.Millisecond))
	if c.onDeadline != nil && c.haveBest {
		c.onDeadline(c.bestTour, c.bestCost)
	}
	return true
}
