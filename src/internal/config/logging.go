// FILE: memlog/src/internal/config/logging.go
package config

// LogConfig represents diagnostic logging configuration for memlog
type LogConfig struct {
	// Output mode: "file", "stdout", "stderr", "both", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	// File output settings (when Output includes "file" or "both")
	File *LogFileConfig `toml:"file"`

	// Console output settings
	Console *LogConsoleConfig `toml:"console"`
}

type LogFileConfig struct {
	// Directory for log files
	Directory string `toml:"directory"`

	// Base name for log files
	Name string `toml:"name"`
}

type LogConsoleConfig struct {
	// Target for console output: "stdout", "stderr", "split"
	Target string `toml:"target"`

	// Format: "txt" or "json"
	Format string `toml:"format"`
}

// DefaultLogConfig keeps diagnostics quiet unless asked for
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Output: "none",
		Level:  "info",
		File: &LogFileConfig{
			Directory: "./log",
			Name:      "memlog",
		},
		Console: &LogConsoleConfig{
			Target: "stderr",
			Format: "txt",
		},
	}
}
