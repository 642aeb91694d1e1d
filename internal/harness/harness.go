// Package harness drives a puzzle.Solver through its lifecycle: read the
// input file, parse it, then solve and time both parts.
//
// The harness reports through a Reporter and never logs. Failures before
// solving are returned as *puzzle.Error; solving is assumed total.
package harness

import (
	"errors"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// ErrNotText is wrapped in a file access failure when the input is not
// valid UTF-8.
var ErrNotText = errors.New("input is not valid UTF-8 text")

// options holds the collaborators of a run.
type options struct {
	reporter Reporter
	now      func() time.Time
}

// Option configures Run.
type Option func(*options)

// WithReporter sets the reporting sink. The default writes text to stdout.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithClock replaces time.Now for measuring part durations.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.reporter == nil {
		o.reporter = NewTextReporter(os.Stdout)
	}
	return o
}

// Run loads the input at path, parses it with s and reports both answers
// with their elapsed time. Read and parse failures abort before any solving.
func Run[I, A1, A2 any](s puzzle.Solver[I, A1, A2], path string, opts ...Option) error {
	o := buildOptions(opts)

	raw, err := readInput(path)
	if err != nil {
		return err
	}

	in, err := s.Parse(raw)
	if err != nil {
		return puzzle.ParseFailure(path, err)
	}

	start := o.now()
	a1 := s.Part1(in)
	o.reporter.Part(1, puzzle.Render(a1), elapsed(start, o.now()))

	start = o.now()
	a2 := s.Part2(in)
	o.reporter.Part(2, puzzle.Render(a2), elapsed(start, o.now()))

	return nil
}

// readInput reads the whole file as text.
func readInput(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", puzzle.FileAccessError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", puzzle.FileAccessError(path, err)
	}
	if !utf8.Valid(data) {
		return "", puzzle.FileAccessError(path, ErrNotText)
	}
	return string(data), nil
}

func elapsed(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
