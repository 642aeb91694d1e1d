package harness

import (
	"fmt"
	"io"
	"time"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// Reporter receives the human-readable progress of a run.
type Reporter interface {
	// Header announces the day about to run.
	Header(day puzzle.Day)

	// Part reports one part's rendered answer and how long it took.
	Part(part int, answer string, elapsed time.Duration)
}

// TextReporter writes reports as plain text lines.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a Reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) Header(day puzzle.Day) {
	fmt.Fprintf(r.w, "======== DAY %s ========\n", day)
}

func (r *TextReporter) Part(part int, answer string, elapsed time.Duration) {
	fmt.Fprintf(r.w, "Part %d: %s\n", part, answer)
	fmt.Fprintf(r.w, "Part %d took %.6fs\n", part, elapsed.Round(time.Microsecond).Seconds())
}
