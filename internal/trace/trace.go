// Package trace implements the colored per-instruction trace formatter:
// an external collaborator to the interpreter core (see spec.md §1),
// consuming program.Trace payloads and writing a human-readable line
// per executed command to a writer, typically stderr.
package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"mycon/internal/program"
)

const (
	colorReset = "\x1b[0m"
	colorID    = "\x1b[36m"
	colorCmd   = "\x1b[33m"
	colorPos   = "\x1b[90m"
)

// Formatter writes a line per Trace it receives, colored with ANSI
// escapes when its output looks like a terminal. Each Formatter stamps
// its output with a run ID so traces from multiple concurrent
// invocations (e.g. piped through a shared log) can be told apart.
type Formatter struct {
	out   io.Writer
	color bool
	runID string
}

// New creates a Formatter writing to w. Color is enabled only when w is
// an *os.File that isatty reports as a terminal; any other writer (a
// regular file, a pipe feeding a log aggregator, an in-memory buffer)
// gets plain text.
func New(w io.Writer) *Formatter {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &Formatter{
		out:   w,
		color: color,
		runID: uuid.NewString()[:8],
	}
}

// Hook returns a function suitable for program.Engine.OnTrace.
func (f *Formatter) Hook() func(program.Trace) {
	return f.Write
}

// Write formats and emits a single Trace line.
func (f *Formatter) Write(tr program.Trace) {
	if !f.color {
		fmt.Fprintf(f.out, "[%s] ip=%d cmd=%q pos=(%d,%d) stacks=%s\n",
			f.runID, tr.Id, tr.Command, tr.Position.X, tr.Position.Y, tr.Stacks)
		return
	}

	fmt.Fprintf(f.out, "[%s%s%s] ip=%s%d%s cmd=%s%q%s pos=%s(%d,%d)%s stacks=%s\n",
		colorID, f.runID, colorReset,
		colorID, tr.Id, colorReset,
		colorCmd, tr.Command, colorReset,
		colorPos, tr.Position.X, tr.Position.Y, colorReset,
		tr.Stacks)
}
