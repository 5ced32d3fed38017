// FILE: memlog/src/internal/core/entry.go
package core

import "time"

// Represents a single recorded logging event. Entries are created by the
// store and never modified afterwards.
type LogEntry struct {
	Time    time.Time
	Level   Level
	Message Message
}

// NewLogEntry stamps a new entry with t truncated to millisecond precision
func NewLogEntry(t time.Time, level Level, message any) LogEntry {
	return LogEntry{
		Time:    t.Truncate(time.Millisecond),
		Level:   level,
		Message: NewMessage(message),
	}
}

// Complete reports whether all three required attributes are present
func (e *LogEntry) Complete() bool {
	return e != nil && !e.Time.IsZero() && e.Level != "" && !e.Message.IsZero()
}
