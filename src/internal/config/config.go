// FILE: memlog/src/internal/config/config.go
package config

import (
	"memlog/src/internal/core"
	"memlog/src/internal/format"
)

// Config is the full configuration of the memlog command
type Config struct {
	// In-memory logger under test
	Logger LoggerConfig `toml:"logger"`

	// Diagnostic logging of memlog itself
	Logging *LogConfig `toml:"logging"`

	// Level for input lines without a recognizable level marker
	Level string `toml:"level"`

	// Timer wrapped around the whole run, empty disables it
	Timer string `toml:"timer"`

	// Dump destination at end of input: a file path, "-" for stdout, empty for none
	Dump string `toml:"dump"`

	// Write the effective configuration to this path and exit
	SaveConfig string `toml:"save_config"`

	Quiet       bool `toml:"quiet"`
	ShowVersion bool `toml:"version"`
}

// LoggerConfig configures one in-memory log store
type LoggerConfig struct {
	// Pass each new entry to the print function
	PrintToConsole bool `toml:"print_to_console"`

	// Append each new entry to LogFilePath
	WriteToFile bool `toml:"write_to_file"`

	// Real-time append target and default dump destination
	LogFilePath string `toml:"log_file_path"`

	// Writer for the default print function: "stdout" or "stderr"
	ConsoleTarget string `toml:"console_target"`
}

// DefaultLoggerConfig prints to stdout, does not write files and derives the
// log file path from the current local time.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		PrintToConsole: true,
		WriteToFile:    false,
		LogFilePath:    DefaultLogFilePath(),
		ConsoleTarget:  "stdout",
	}
}

// DefaultLogFilePath returns `<local timestamp>.log`
func DefaultLogFilePath() string {
	return format.Now() + core.DefaultLogFileExt
}

func defaults() *Config {
	return &Config{
		Logger:  DefaultLoggerConfig(),
		Logging: DefaultLogConfig(),
		Level:   string(core.LevelInfo),
		Timer:   "run",
	}
}
