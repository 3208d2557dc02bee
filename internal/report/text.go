package report

import (
	"fmt"
	"io"

	"primecount/internal/domain"
)

// Text prints the console report one stage at a time. The first write error
// is kept and later writes are skipped.
type Text struct {
	w   io.Writer
	err error
}

// NewText returns a Text printer writing to w.
func NewText(w io.Writer) *Text { return &Text{w: w} }

// Err returns the first write error, if any.
func (t *Text) Err() error { return t.err }

func (t *Text) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// InputLoaded prints the input header.
func (t *Text) InputLoaded(path string, numbers int) {
	t.printf("Input file: %s\n", path)
	t.printf("Total numbers parsed: %d\n", numbers)
}

// RunFinished prints the block for one counting mode.
func (t *Text) RunFinished(run domain.RunResult) {
	switch run.Mode {
	case domain.ModeSequential:
		t.printf("\nSingle-thread:\n")
	case domain.ModeParallel:
		t.printf("\nMulti-thread (%d threads):\n", run.Workers)
	default:
		return
	}
	t.printf("  Prime count: %d\n", run.Count)
	t.printf("  Elapsed time: %.3f ms\n", run.Milliseconds())
}

// Finish prints the mismatch warning when the two counts differ.
func (t *Text) Finish(cmp domain.Comparison) {
	if !cmp.Match {
		t.printf("\nWarning: counts do not match between modes.\n")
	}
}
