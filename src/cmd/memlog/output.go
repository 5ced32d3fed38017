// FILE: memlog/src/cmd/memlog/output.go
package main

import (
	"fmt"
	"io"
	"os"

	"memlog/src/internal/sink"
)

// OutputHandler writes memlog's own messages and the dumped log to the
// process streams. Quiet mode silences messages, never dumped data.
type OutputHandler struct {
	quiet  bool
	stdout io.Writer
	stderr io.Writer
}

// Global output handler instance, only touched from the main goroutine
var output *OutputHandler

// Initializes the global output handler on the process streams
func InitOutputHandler(quiet bool) {
	output = newOutputHandler(os.Stdout, os.Stderr, quiet)
}

func newOutputHandler(stdout, stderr io.Writer, quiet bool) *OutputHandler {
	return &OutputHandler{
		quiet:  quiet,
		stdout: stdout,
		stderr: stderr,
	}
}

// Updates quiet mode once configuration is known
func (o *OutputHandler) SetQuiet(quiet bool) {
	o.quiet = quiet
}

// Writes to stdout if not in quiet mode
func (o *OutputHandler) Print(format string, args ...any) {
	if !o.quiet {
		fmt.Fprintf(o.stdout, format, args...)
	}
}

// Writes to stderr if not in quiet mode
func (o *OutputHandler) Error(format string, args ...any) {
	if !o.quiet {
		fmt.Fprintf(o.stderr, format, args...)
	}
}

// Writes to stderr and exits (respects quiet mode)
func (o *OutputHandler) FatalError(code int, format string, args ...any) {
	o.Error(format, args...)
	os.Exit(code)
}

// WriteData writes the rendered log to stdout
func (o *OutputHandler) WriteData(data string) error {
	if _, err := io.WriteString(o.stdout, data); err != nil {
		return fmt.Errorf("failed to write log to stdout: %w", err)
	}
	return nil
}

// runSummary describes one finished run
type runSummary struct {
	Lines   int
	Entries int
	Timer   string
	Elapsed float64
	Timed   bool
	Stats   []sink.SinkStats
}

// Summary reports the run on stderr so stdout stays free for dumped data
func (o *OutputHandler) Summary(s runSummary) {
	o.Error("memlog: %d lines read, %d entries stored\n", s.Lines, s.Entries)
	if s.Timed {
		o.Error("memlog: timer '%s' took %g seconds\n", s.Timer, s.Elapsed)
	}
	for _, st := range s.Stats {
		o.Error("memlog: %s sink processed %d lines\n", st.Type, st.TotalProcessed)
	}
}

// Helper functions for global output handler
func Print(format string, args ...any) {
	if output != nil {
		output.Print(format, args...)
	}
}

func Error(format string, args ...any) {
	if output != nil {
		output.Error(format, args...)
	}
}

func FatalError(code int, format string, args ...any) {
	if output != nil {
		output.FatalError(code, format, args...)
	} else {
		// Fallback if handler not initialized
		fmt.Fprintf(os.Stderr, format, args...)
		os.Exit(code)
	}
}
