// FILE: memlog/src/cmd/memlog/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"memlog/src/internal/config"
	"memlog/src/internal/core"
	"memlog/src/internal/store"
	"memlog/src/internal/version"

	"github.com/lixenwraith/log"
	"golang.org/x/term"
)

var logger *log.Logger

func main() {
	InitOutputHandler(false)

	// An explicitly named config file must exist
	if configFile := os.Getenv("MEMLOG_CONFIG_FILE"); configFile != "" {
		if _, err := os.Stat(config.GetConfigPath()); err != nil {
			FatalError(2, "Config file not found: %s\n", configFile)
		}
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		FatalError(1, "Failed to load config: %v\n", err)
	}
	output.SetQuiet(cfg.Quiet)

	if cfg.ShowVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if cfg.SaveConfig != "" {
		path := cfg.SaveConfig
		cfg.SaveConfig = ""
		if err := cfg.SaveToFile(path); err != nil {
			FatalError(1, "Failed to save config: %v\n", err)
		}
		Print("Configuration written to %s\n", path)
		os.Exit(0)
	}

	if err := initializeLogger(cfg); err != nil {
		FatalError(1, "Failed to initialize logger: %v\n", err)
	}
	defer shutdownLogger()

	logger.Info("msg", "memlog starting",
		"version", version.Short(),
		"config_file", config.GetConfigPath(),
		"print_to_console", cfg.Logger.PrintToConsole,
		"write_to_file", cfg.Logger.WriteToFile)

	st, err := bootstrapStore(cfg)
	if err != nil {
		logger.Error("msg", "Failed to bootstrap store", "error", err)
		Error("%v\n", err)
		shutdownLogger()
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("msg", "Failed to close log store", "error", err)
		}
	}()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		Error("Reading log lines from terminal, end input with Ctrl-D\n")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Timer != "" {
		st.Time(cfg.Timer)
	}

	lines, errc := readLines(os.Stdin)
	count, ingestErr := ingest(ctx, st, lines, core.Level(cfg.Level))

	exitCode := 0
	if ctx.Err() != nil {
		logger.Info("msg", "Interrupted, finishing with entries read so far")
	} else if err := <-errc; err != nil {
		logger.Error("msg", "Failed reading input", "error", err)
		Error("Failed reading input after %d lines: %v\n", count, err)
		exitCode = 1
	}

	summary := runSummary{Lines: count, Timer: cfg.Timer}
	if cfg.Timer != "" {
		if elapsed, ok, err := st.TimeEnd(cfg.Timer); ok {
			summary.Elapsed, summary.Timed = elapsed, true
			logger.Info("msg", "Run timed", "timer", cfg.Timer, "seconds", elapsed)
			if err != nil && ingestErr == nil {
				ingestErr = err
			}
		}
	}

	if err := dump(st, cfg.Dump, output); err != nil {
		logger.Error("msg", "Failed to dump log", "error", err)
		Error("Failed to dump log: %v\n", err)
		exitCode = 1
	}

	summary.Entries = st.Len()
	summary.Stats = st.Stats()
	for _, stats := range summary.Stats {
		logger.Info("msg", "Sink statistics",
			"component", "main",
			"sink", stats.Type,
			"total_processed", stats.TotalProcessed,
			"last_processed", stats.LastProcessed,
			"details", stats.Details)
	}
	logger.Info("msg", "memlog finished",
		"lines", summary.Lines,
		"entries", summary.Entries)
	output.Summary(summary)

	if ingestErr != nil {
		Error("Output error: %v\n", ingestErr)
		exitCode = 1
	}

	if exitCode != 0 {
		if err := st.Close(); err != nil {
			logger.Error("msg", "Failed to close log store", "error", err)
		}
		shutdownLogger()
		os.Exit(exitCode)
	}
}

// dump writes the rendered log to stdout for "-", to the file at path otherwise
func dump(st *store.Store, path string, out *OutputHandler) error {
	switch path {
	case "":
		return nil
	case "-":
		return out.WriteData(st.DumpToString())
	default:
		return st.DumpToFile(path)
	}
}
func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			// Best effort - can't log the shutdown error
			Error("Logger shutdown error: %v\n", err)
		}
	}
}
