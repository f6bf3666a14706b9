// Package diag prints pipeline progress and warnings for the CLI.
// Output goes to a plain io.Writer so tests can capture it.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed)
	traceColor = color.New(color.FgHiBlack)
)

// Reporter writes human-readable progress lines.
// A nil *Reporter discards everything.
type Reporter struct {
	out     io.Writer
	verbose bool
}

// New creates a Reporter writing to out. Trace lines are only emitted when
// verbose is true.
func New(out io.Writer, verbose bool) *Reporter {
	return &Reporter{out: out, verbose: verbose}
}

// Verbose reports whether trace output is enabled.
func (r *Reporter) Verbose() bool {
	return r != nil && r.verbose
}

// Step prints an uncoloured progress line.
func (r *Reporter) Step(format string, args ...any) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}

// OK prints a success line prefixed with a check mark.
func (r *Reporter) OK(format string, args ...any) {
	if r == nil {
		return
	}
	okColor.Fprintf(r.out, "✓ "+format+"\n", args...)
}

// Warn prints a non-fatal problem. The pipeline keeps going after a warning.
func (r *Reporter) Warn(format string, args ...any) {
	if r == nil {
		return
	}
	warnColor.Fprintf(r.out, "! Warning: "+format+"\n", args...)
}

// Fail prints an error line prefixed with a cross.
func (r *Reporter) Fail(format string, args ...any) {
	if r == nil {
		return
	}
	errColor.Fprintf(r.out, "✗ "+format+"\n", args...)
}

// Trace prints intermediate values in verbose mode.
func (r *Reporter) Trace(format string, args ...any) {
	if !r.Verbose() {
		return
	}
	traceColor.Fprintf(r.out, "  "+format+"\n", args...)
}
