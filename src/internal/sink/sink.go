// FILE: memlog/src/internal/sink/sink.go
package sink

import "time"

// PrintFunc receives one fully formatted line. It is called synchronously
// from the logging call; a returned error is propagated to that caller.
type PrintFunc func(line string) error

// FileWriter is the file output hook: per-entry real-time append and an
// on-demand dump of the whole log.
type FileWriter interface {
	// Append writes one formatted line
	Append(line string) error

	// Dump writes content to path, replacing any existing file
	Dump(path, content string) error

	// Close releases any open file
	Close() error
}

// SinkStats contains statistics about a sink
type SinkStats struct {
	Type           string
	TotalProcessed uint64
	StartTime      time.Time
	LastProcessed  time.Time
	Details        map[string]any
}

// NoopFileWriter discards everything
type NoopFileWriter struct{}

func (NoopFileWriter) Append(string) error       { return nil }
func (NoopFileWriter) Dump(string, string) error { return nil }
func (NoopFileWriter) Close() error              { return nil }
