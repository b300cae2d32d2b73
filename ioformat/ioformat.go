// Package ioformat implements the two external collaborators spec.md
// §1 places outside the solver core: a parser for the fixed stdin
// format of §6, and a formatter for its stdout format. Neither carries
// algorithmic weight; both are fully specified so the repository is
// runnable end to end.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flighttsp/flighttsp/costtable"
	"github.com/flighttsp/flighttsp/tour"
)

// Parse reads the line-based input format of spec §6: line 1 is the
// start city's code (trailing characters on that line are ignored);
// every following non-blank line is "from to day cost". City indices
// are assigned in order of first appearance, so the start city always
// receives index 0. Returns the built Cost Table, the index-ordered
// city codes, the start city, and an error for malformed input -- the
// contract requires well-formed input (spec §7), so this only guards
// against genuinely broken lines rather than modelling any domain
// absence.
func Parse(r io.Reader) (*costtable.Table, []string, costtable.City, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, nil, 0, fmt.Errorf("ioformat: empty input, expected a start city on line 1")
	}
	startFields := strings.Fields(scanner.Text())
	if len(startFields) == 0 {
		return nil, nil, 0, fmt.Errorf("ioformat: line 1 is blank, expected a start city code")
	}
	startCode := codeOf(startFields[0])

	names := []string{startCode}
	index := map[string]costtable.City{startCode: 0}

	type record struct {
		from, to  costtable.City
		day, cost int
	}
	var records []record

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, nil, 0, fmt.Errorf("ioformat: line %d: want 4 fields (from to day cost), got %d", lineNo, len(fields))
		}

		day, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, nil, 0, fmt.Errorf("ioformat: line %d: bad day %q: %w", lineNo, fields[2], err)
		}
		cost, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, nil, 0, fmt.Errorf("ioformat: line %d: bad cost %q: %w", lineNo, fields[3], err)
		}

		from := internCity(codeOf(fields[0]), &names, index)
		to := internCity(codeOf(fields[1]), &names, index)
		records = append(records, record{from, to, day, cost})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, 0, fmt.Errorf("ioformat: reading input: %w", err)
	}

	b := costtable.NewBuilder(len(names))
	for _, rec := range records {
		if err := b.Set(rec.day, rec.from, rec.to, rec.cost); err != nil {
			return nil, nil, 0, fmt.Errorf("ioformat: line for day %d: %w", rec.day, err)
		}
	}

	return b.Build(), names, 0, nil
}

// codeOf extracts a three-character airport code from a token,
// tolerating trailing characters stuck to it without a space.
func codeOf(token string) string {
	if len(token) >= 3 {
		return token[:3]
	}
	return token
}

func internCity(code string, names *[]string, index map[string]costtable.City) costtable.City {
	if c, ok := index[code]; ok {
		return c
	}
	c := costtable.City(len(*names))
	*names = append(*names, code)
	index[code] = c
	return c
}

// Format writes the two-section output of spec §6: the total cost on
// line 1, then one "from to day cost" line per leg of t. Called exactly
// once, when a final answer is known.
func Format(w io.Writer, names []string, t tour.Tour, cost int, table *costtable.Table) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, cost); err != nil {
		return err
	}
	for day := 0; day < len(t)-1; day++ {
		from, to := t[day], t[day+1]
		price := table.At(day, from, to)
		if !price.OK {
			return fmt.Errorf("ioformat: leg on day %d (%s -> %s) has no recorded price", day, names[from], names[to])
		}
		if _, err := fmt.Fprintf(bw, "%s %s %d %d\n", names[from], names[to], day, price.Value); err != nil {
			return err
		}
	}
	return bw.Flush()
}
