// Package output provides terminal output formatting for run progress.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer handles user-facing progress messages. Diagnostics go through slog;
// everything a person is meant to read in the terminal goes through here.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer writing to stdout/stderr, with colors resolved
// from the environment.
func NewPrinter() *Printer {
	return &Printer{
		out:       os.Stdout,
		err:       os.Stderr,
		useColors: resolveColors(),
	}
}

// NewPrinterTo creates a colorless printer writing to the given writers.
func NewPrinterTo(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// resolveColors disables color for NO_COLOR and dumb terminals.
func resolveColors() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// Step prints a pipeline stage announcement.
func (p *Printer) Step(format string, args ...any) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
}

// Warning prints a warning message.
func (p *Printer) Warning(format string, args ...any) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
}

// Failure prints a terminal failure message. The run still exits zero —
// "nothing found" is an outcome, not a program error.
func (p *Printer) Failure(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.out, "✗ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, "[FAIL] "+format+"\n", args...)
}
