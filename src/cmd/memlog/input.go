// FILE: memlog/src/cmd/memlog/input.go
package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"memlog/src/internal/core"
	"memlog/src/internal/store"
)

const (
	lineBufferSize = 1000

	// Longest accepted input line; the scanner starts at 64 KiB and grows to this
	maxLineSize = 16 * 1024 * 1024
)

// readLines scans r on its own goroutine. The lines channel closes at EOF,
// after which errc holds the scanner error (nil on clean EOF).
func readLines(r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string, lineBufferSize)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			lines <- line
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// ingest records every line into st until lines closes or ctx is done.
// Only this goroutine touches st. It returns the number of lines recorded and
// the first sink error encountered.
func ingest(ctx context.Context, st *store.Store, lines <-chan string, defaultLevel core.Level) (int, error) {
	count := 0
	var firstErr error

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return count, firstErr
			}

			level := extractLogLevel(line)
			if level == "" {
				level = defaultLevel
			}

			if _, err := st.Add(line, level); err != nil {
				logger.Error("msg", "Failed to emit log entry",
					"component", "ingest",
					"error", err)
				if firstErr == nil {
					firstErr = err
				}
			}
			count++

		case <-ctx.Done():
			return count, firstErr
		}
	}
}

// extractLogLevel maps common level markers in a line to a store level
func extractLogLevel(line string) core.Level {
	patterns := []struct {
		patterns []string
		level    core.Level
	}{
		{[]string{"[ERROR]", "ERROR:", " ERROR ", "ERR:", "[ERR]", "FATAL:", "[FATAL]"}, core.LevelError},
		{[]string{"[WARN]", "WARN:", " WARN ", "WARNING:", "[WARNING]"}, core.LevelWarning},
		{[]string{"[INFO]", "INFO:", " INFO ", "[INF]", "INF:"}, core.LevelInfo},
		{[]string{"[DEBUG]", "DEBUG:", " DEBUG ", "[DBG]", "DBG:", "[TRACE]", "TRACE:", " TRACE "}, core.LevelDebug},
	}

	upperLine := strings.ToUpper(line)
	for _, group := range patterns {
		for _, pattern := range group.patterns {
			if strings.Contains(upperLine, pattern) {
				return group.level
			}
		}
	}

	return ""
}
