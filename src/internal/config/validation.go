// FILE: memlog/src/internal/config/validation.go
package config

import (
	"fmt"
	"strings"
)

// validateConfig is the centralized validator for the entire configuration
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("logger config: %w", err)
	}

	if cfg.Logging != nil {
		if err := validateLogConfig(cfg.Logging); err != nil {
			return fmt.Errorf("logging config: %w", err)
		}
	}

	if strings.TrimSpace(cfg.Level) == "" {
		return fmt.Errorf("level must not be empty")
	}

	return nil
}

// ValidateLoggerConfig checks a store configuration
func ValidateLoggerConfig(cfg *LoggerConfig) error {
	validTargets := map[string]bool{
		"stdout": true, "stderr": true, "": true,
	}
	if !validTargets[cfg.ConsoleTarget] {
		return fmt.Errorf("invalid console target: %s", cfg.ConsoleTarget)
	}

	if cfg.WriteToFile && cfg.LogFilePath == "" {
		return fmt.Errorf("write_to_file requires log_file_path")
	}

	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"file": true, "stdout": true, "stderr": true,
		"both": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	if cfg.Console != nil {
		validTargets := map[string]bool{
			"stdout": true, "stderr": true, "split": true,
		}
		if !validTargets[cfg.Console.Target] {
			return fmt.Errorf("invalid console target: %s", cfg.Console.Target)
		}

		validFormats := map[string]bool{
			"txt": true, "json": true, "": true,
		}
		if !validFormats[cfg.Console.Format] {
			return fmt.Errorf("invalid console format: %s", cfg.Console.Format)
		}
	}

	if (cfg.Output == "file" || cfg.Output == "both") && cfg.File == nil {
		return fmt.Errorf("file output requires [logging.file] settings")
	}

	return nil
}
