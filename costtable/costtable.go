// Package costtable implements the dense (day, from, to) -> price lookup
// that backs the whole solver. It is built once from parsed input and is
// read-only thereafter.
package costtable

import "fmt"

// City identifies an airport by its zero-based index, assigned in order
// of first appearance while parsing input (see the ioformat package).
type City int

// Price is an optional flight price. The zero value is Absent, matching
// the "sentinel-valued absent flight" design note: callers never see the
// underlying non-positive sentinel used internally.
type Price struct {
	Value int
	OK    bool
}

// Absent is the optional price denoting "no flight on this day/route".
var Absent = Price{}

func price(raw int32) Price {
	if raw <= 0 {
		return Absent
	}
	return Price{Value: int(raw), OK: true}
}

// Builder accumulates flight records for a known number of cities before
// producing an immutable Table.
type Builder struct {
	n      int
	prices []int32
}

// NewBuilder allocates a builder for a table over n cities. Every
// (day, from, to) triple starts out Absent.
func NewBuilder(n int) *Builder {
	return &Builder{n: n, prices: make([]int32, n*n*n)}
}

// Set records a flight's price on the given day. It returns an error if
// day, from, or to fall outside [0, n), or if cost is not positive --
// the only defensive checks this package performs, per the ambient
// error-handling contract: malformed
// input that references cities or days outside the declared range is a
// programmer/input-contract violation, not a modelled domain absence.
func (b *Builder) Set(day int, from, to City, cost int) error {
	if day < 0 || day >= b.n {
		return fmt.Errorf("costtable: day %d out of range [0, %d)", day, b.n)
	}
	if from < 0 || int(from) >= b.n {
		return fmt.Errorf("costtable: from-city %d out of range [0, %d)", from, b.n)
	}
	if to < 0 || int(to) >= b.n {
		return fmt.Errorf("costtable: to-city %d out of range [0, %d)", to, b.n)
	}
	if cost <= 0 {
		return fmt.Errorf("costtable: flight cost %d must be positive", cost)
	}
	b.prices[b.index(day, from, to)] = int32(cost)
	return nil
}

func (b *Builder) index(day int, from, to City) int {
	return day*b.n*b.n + int(from)*b.n + int(to)
}

// Build freezes the builder into a Table. The builder must not be reused
// afterwards.
func (b *Builder) Build() *Table {
	return &Table{n: b.n, prices: b.prices}
}

// Table is an immutable dense cost(day, from, to) -> Price lookup.
type Table struct {
	n      int
	prices []int32
}

// NumCities returns N, the number of distinct cities in the table.
func (t *Table) NumCities() int {
	return t.n
}

// At returns the price of the flight departing `from` on `day` and
// arriving at `to`. It is Absent if no such flight exists.
func (t *Table) At(day int, from, to City) Price {
	return price(t.prices[day*t.n*t.n+int(from)*t.n+int(to)])
}
