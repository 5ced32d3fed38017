// FILE: memlog/src/internal/core/const.go
package core

// Recognized levels. Level is an open string; these are the values the
// store's convenience methods use.
const (
	LevelInfo    Level = "info"
	LevelDebug   Level = "debug"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// DefaultLevel is applied when an entry is added without a level
const DefaultLevel = LevelDebug

// DefaultLogFileExt is appended to the timestamp-derived default log file path
const DefaultLogFileExt = ".log"
