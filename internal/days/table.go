// Package days holds the puzzle implementations and the dispatch table that
// maps each day of the calendar to a harness run of its solver.
package days

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/advent/internal/harness"
	"github.com/mesh-intelligence/advent/internal/paths"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// ErrIncompleteTable is returned when a table does not cover every day
// exactly once.
var ErrIncompleteTable = errors.New("dispatch table must cover every day")

// Entry binds a day to the end-to-end run of its puzzle.
type Entry struct {
	Day puzzle.Day
	Run func() error
}

// Table dispatches days to their entries. It is built once and never
// mutated afterwards.
type Table struct {
	entries  [puzzle.MaxDay]Entry
	reporter harness.Reporter
}

// NewTable binds every registered solver to its input file in inputDir.
// Reports for every day go to reporter.
func NewTable(inputDir string, reporter harness.Reporter, opts ...harness.Option) *Table {
	opts = append([]harness.Option{harness.WithReporter(reporter)}, opts...)
	runners := make(map[puzzle.Day]func() error, puzzle.MaxDay)
	for _, d := range puzzle.AllDays() {
		runners[d] = registry[d-1](paths.InputFile(inputDir, d), opts)
	}
	t, err := NewTableFrom(reporter, runners)
	if err != nil {
		// The registry is static; a gap is a programming error.
		panic(err)
	}
	return t
}

// NewTableFrom builds a table from explicit runners, one per day.
func NewTableFrom(reporter harness.Reporter, runners map[puzzle.Day]func() error) (*Table, error) {
	if len(runners) != int(puzzle.MaxDay) {
		return nil, fmt.Errorf("%w: got %d entries", ErrIncompleteTable, len(runners))
	}
	t := &Table{reporter: reporter}
	for _, d := range puzzle.AllDays() {
		run, ok := runners[d]
		if !ok || run == nil {
			return nil, fmt.Errorf("%w: day %s missing", ErrIncompleteTable, d)
		}
		t.entries[d-1] = Entry{Day: d, Run: run}
	}
	return t, nil
}

// RunOne announces day and runs its puzzle. Errors are returned unchanged.
// The day must already be validated; an out-of-range day panics.
func (t *Table) RunOne(day puzzle.Day) error {
	if !day.Valid() {
		panic(fmt.Sprintf("days: unsupported day %d", int(day)))
	}
	t.reporter.Header(day)
	return t.entries[day-1].Run()
}

// RunAll runs every day in ascending order and stops at the first failure.
func (t *Table) RunAll() error {
	for _, d := range puzzle.AllDays() {
		if err := t.RunOne(d); err != nil {
			return err
		}
	}
	return nil
}

// Entries returns the table's entries in day order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries[:])
	return out
}
