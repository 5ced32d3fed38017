// FILE: memlog/src/cmd/memlog/bootstrap.go
package main

import (
	"fmt"
	"os"
	"strings"

	"memlog/src/internal/config"
	"memlog/src/internal/store"

	"github.com/lixenwraith/log"
)

// bootstrapStore creates the in-memory log store for this run
func bootstrapStore(cfg *config.Config) (*store.Store, error) {
	opts := []store.Option{store.WithLogger(logger)}

	// Quiet mode keeps entries in memory only
	if cfg.Quiet {
		opts = append(opts, store.WithPrintFunction(func(string) error { return nil }))
	}

	st, err := store.New(cfg.Logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create log store: %w", err)
	}
	return st, nil
}

// initializeLogger sets up the global diagnostic logger based on configuration
func initializeLogger(cfg *config.Config) error {
	l, err := newDiagnosticLogger(cfg)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// newDiagnosticLogger configures and starts a lixenwraith/log logger
func newDiagnosticLogger(cfg *config.Config) (*log.Logger, error) {
	configArgs, err := loggerConfigArgs(cfg)
	if err != nil {
		return nil, err
	}

	l := log.NewLogger()
	if err := l.ApplyConfigString(configArgs...); err != nil {
		return nil, fmt.Errorf("failed to configure logger: %w", err)
	}
	if err := l.Start(); err != nil {
		return nil, fmt.Errorf("failed to start logger: %w", err)
	}
	return l, nil
}

// loggerConfigArgs maps the [logging] section to logger overrides
func loggerConfigArgs(cfg *config.Config) ([]string, error) {
	if cfg.Quiet || cfg.Logging == nil {
		return consoleOnlyArgs(false, "stderr"), nil
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var configArgs []string

	switch cfg.Logging.Output {
	case "none":
		configArgs = consoleOnlyArgs(false, "stderr")

	case "stdout", "stderr":
		configArgs = consoleOnlyArgs(true, cfg.Logging.Output)

	case "file":
		configArgs = append(configArgs, "disable_file=false", "enable_console=false")
		configureFileLogging(&configArgs, cfg)

	case "both":
		configArgs = append(configArgs, "disable_file=false", "enable_console=true")
		configureFileLogging(&configArgs, cfg)
		configureConsoleTarget(&configArgs, cfg)

	default:
		return nil, fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	if cfg.Logging.Console != nil && cfg.Logging.Console.Format != "" {
		configArgs = append(configArgs, fmt.Sprintf("format=%s", cfg.Logging.Console.Format))
	}

	return configArgs, nil
}

// consoleOnlyArgs disables file output. The logger creates its directory
// even then, so it is pointed at the system temp dir instead of ./log.
func consoleOnlyArgs(enableConsole bool, target string) []string {
	return []string{
		"disable_file=true",
		fmt.Sprintf("directory=%s", os.TempDir()),
		fmt.Sprintf("enable_console=%t", enableConsole),
		fmt.Sprintf("console_target=%s", target),
	}
}

// configureFileLogging sets up file-based logging parameters
func configureFileLogging(configArgs *[]string, cfg *config.Config) {
	if cfg.Logging.File != nil {
		*configArgs = append(*configArgs,
			fmt.Sprintf("directory=%s", cfg.Logging.File.Directory),
			fmt.Sprintf("name=%s", cfg.Logging.File.Name))
	}
}

// configureConsoleTarget selects stdout, stderr or split (errors and warnings to stderr)
func configureConsoleTarget(configArgs *[]string, cfg *config.Config) {
	target := "stderr"

	if cfg.Logging.Console != nil && cfg.Logging.Console.Target != "" {
		target = cfg.Logging.Console.Target
	}

	*configArgs = append(*configArgs, fmt.Sprintf("console_target=%s", target))
}

// parseLogLevel accepts "warning" besides the logger's own level names
func parseLogLevel(level string) (int64, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
