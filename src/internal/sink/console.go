// FILE: memlog/src/internal/sink/console.go
package sink

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/log"
)

// ConsoleSink prints formatted lines to stdout or stderr, one per line
type ConsoleSink struct {
	target    string
	output    io.Writer
	startTime time.Time
	logger    *log.Logger

	// Statistics
	totalProcessed atomic.Uint64
	lastProcessed  atomic.Value // time.Time
}

// NewConsoleSink creates a console sink for target "stdout" or "stderr"
func NewConsoleSink(target string, logger *log.Logger) (*ConsoleSink, error) {
	var output io.Writer
	switch target {
	case "", "stdout":
		target = "stdout"
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		return nil, fmt.Errorf("unknown console target: %s", target)
	}

	return newConsoleSink(target, output, logger), nil
}

// NewWriterSink creates a console-style sink over an arbitrary writer
func NewWriterSink(w io.Writer, logger *log.Logger) *ConsoleSink {
	return newConsoleSink("writer", w, logger)
}

func newConsoleSink(target string, output io.Writer, logger *log.Logger) *ConsoleSink {
	if logger == nil {
		logger = log.NewLogger()
	}
	s := &ConsoleSink{
		target:    target,
		output:    output,
		startTime: time.Now(),
		logger:    logger,
	}
	s.lastProcessed.Store(time.Time{})

	s.logger.Debug("msg", "Console sink created",
		"component", "console_sink",
		"target", target)
	return s
}

// Print writes line followed by a newline. Usable as a PrintFunc.
func (s *ConsoleSink) Print(line string) error {
	s.totalProcessed.Add(1)
	s.lastProcessed.Store(time.Now())

	if _, err := fmt.Fprintln(s.output, line); err != nil {
		return fmt.Errorf("failed to write to %s: %w", s.target, err)
	}
	return nil
}

func (s *ConsoleSink) GetStats() SinkStats {
	lastProc, _ := s.lastProcessed.Load().(time.Time)

	return SinkStats{
		Type:           "console",
		TotalProcessed: s.totalProcessed.Load(),
		StartTime:      s.startTime,
		LastProcessed:  lastProc,
		Details: map[string]any{
			"target": s.target,
		},
	}
}
