package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Bounds of the puzzle calendar.
const (
	MinDay Day = 1
	MaxDay Day = 25
)

// Day validation errors.
var (
	ErrDayOutOfRange = errors.New("day out of range")
	ErrDayNotNumber  = errors.New("day is not a number")
	ErrNotPuzzleDay  = errors.New("today is not a puzzle day")
)

// releaseZone is the zone puzzles unlock in (midnight UTC-5).
var releaseZone = time.FixedZone("UTC-5", -5*60*60)

// Day identifies one puzzle of the calendar. A Day obtained from NewDay,
// ParseDay or Today is always within MinDay..MaxDay.
type Day int

// NewDay validates n against the calendar bounds. Out-of-range values are
// rejected, never clamped.
func NewDay(n int) (Day, error) {
	d := Day(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d (only days %d-%d are allowed)", ErrDayOutOfRange, n, MinDay, MaxDay)
	}
	return d, nil
}

// ParseDay parses a command-line day argument.
func ParseDay(s string) (Day, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDayNotNumber, s)
	}
	return NewDay(n)
}

// Today returns the puzzle day for now, evaluated in the release zone. Only
// December 1 through 25 are puzzle days.
func Today(now time.Time) (Day, error) {
	local := now.In(releaseZone)
	if local.Month() != time.December {
		return 0, fmt.Errorf("%w: %s", ErrNotPuzzleDay, local.Format(time.DateOnly))
	}
	d := Day(local.Day())
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrNotPuzzleDay, local.Format(time.DateOnly))
	}
	return d, nil
}

// AllDays returns every day of the calendar in ascending order.
func AllDays() []Day {
	days := make([]Day, 0, MaxDay)
	for d := MinDay; d <= MaxDay; d++ {
		days = append(days, d)
	}
	return days
}

// Valid reports whether d is within the calendar bounds.
func (d Day) Valid() bool {
	return d >= MinDay && d <= MaxDay
}

func (d Day) String() string {
	return strconv.Itoa(int(d))
}

// Padded returns the two-digit zero-padded form used in input file names.
func (d Day) Padded() string {
	return fmt.Sprintf("%02d", int(d))
}
