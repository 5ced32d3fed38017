// FILE: memlog/src/internal/store/store.go
package store

import (
	"fmt"
	"time"

	"memlog/src/internal/config"
	"memlog/src/internal/core"
	"memlog/src/internal/format"
	"memlog/src/internal/sink"

	"github.com/lixenwraith/log"
)

// Store records log entries in memory and tracks named timers.
//
// A Store has a single owner: it does no locking, so callers sharing one
// across goroutines must synchronize access themselves. Print and file sinks
// run inline on the logging call and their errors are returned to it.
type Store struct {
	config     config.LoggerConfig
	entries    []core.LogEntry
	timers     map[string]time.Time
	print      sink.PrintFunc
	fileWriter sink.FileWriter
	logger     *log.Logger

	// Default sinks, nil when replaced by an option
	console  *sink.ConsoleSink
	fileSink *sink.FileSink

	now        func() time.Time
}

// Option customizes a Store at construction
type Option func(*Store)

// WithPrintFunction replaces the default console print function
func WithPrintFunction(fn sink.PrintFunc) Option {
	return func(s *Store) {
		s.print = fn
	}
}

// WithFileWriter replaces the file hook used for real-time append and dumps
func WithFileWriter(w sink.FileWriter) Option {
	return func(s *Store) {
		s.fileWriter = w
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store. Without WithPrintFunction the print function writes
// to the configured console target; without WithFileWriter a file sink on
// LogFilePath is used.
func New(cfg config.LoggerConfig, opts ...Option) (*Store, error) {
	if cfg.LogFilePath == "" {
		cfg.LogFilePath = config.DefaultLogFilePath()
	}
	if err := config.ValidateLoggerConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	s := &Store{
		config:  cfg,
		entries: make([]core.LogEntry, 0),
		timers:  make(map[string]time.Time),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = log.NewLogger()
	}

	if s.print == nil {
		console, err := sink.NewConsoleSink(cfg.ConsoleTarget, s.logger)
		if err != nil {
			return nil, err
		}
		s.console = console
		s.print = console.Print
	}

	if s.fileWriter == nil {
		fileSink, err := sink.NewFileSink(cfg.LogFilePath, s.logger)
		if err != nil {
			return nil, err
		}
		s.fileSink = fileSink
		s.fileWriter = fileSink
	}

	s.logger.Debug("msg", "Log store created",
		"component", "store",
		"print_to_console", cfg.PrintToConsole,
		"write_to_file", cfg.WriteToFile,
		"log_file_path", cfg.LogFilePath)

	return s, nil
}

// Config returns the store configuration
func (s *Store) Config() config.LoggerConfig {
	return s.config
}

// SetPrintFunction redirects console output. A nil function disables printing
// without changing PrintToConsole.
func (s *Store) SetPrintFunction(fn sink.PrintFunc) {
	s.print = fn
}

// Add appends an entry stamped with the current time and returns a copy of
// it; changing the copy does not affect the store. The entry is stored even
// when a sink fails; the sink error is returned.
func (s *Store) Add(message any, level core.Level) (*core.LogEntry, error) {
	if level == "" {
		level = core.DefaultLevel
	}

	stored := core.NewLogEntry(s.now(), level, message)
	s.entries = append(s.entries, stored)
	entry := &stored

	if !s.config.PrintToConsole && !s.config.WriteToFile {
		return entry, nil
	}

	line := format.FormatEntry(entry)

	if s.config.PrintToConsole && s.print != nil {
		if err := s.print(line); err != nil {
			return entry, fmt.Errorf("print function failed: %w", err)
		}
	}

	if s.config.WriteToFile {
		if err := s.fileWriter.Append(line); err != nil {
			return entry, fmt.Errorf("file write failed: %w", err)
		}
	}

	return entry, nil
}

func (s *Store) Info(message any) (*core.LogEntry, error) {
	return s.Add(message, core.LevelInfo)
}

func (s *Store) Debug(message any) (*core.LogEntry, error) {
	return s.Add(message, core.LevelDebug)
}

func (s *Store) Warning(message any) (*core.LogEntry, error) {
	return s.Add(message, core.LevelWarning)
}

func (s *Store) Error(message any) (*core.LogEntry, error) {
	return s.Add(message, core.LevelError)
}

// Entries returns a copy of all entries in append order
func (s *Store) Entries() []core.LogEntry {
	entries := make([]core.LogEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len returns the number of stored entries
func (s *Store) Len() int {
	return len(s.entries)
}

// DumpToString renders all entries, one line each
func (s *Store) DumpToString() string {
	return format.Dump(s.entries)
}

// DumpToFile writes DumpToString to path, or to LogFilePath when path is empty
func (s *Store) DumpToFile(path string) error {
	if path == "" {
		path = s.config.LogFilePath
	}
	if err := s.fileWriter.Dump(path, s.DumpToString()); err != nil {
		return err
	}

	s.logger.Info("msg", "Log dumped",
		"component", "store",
		"path", path,
		"entries", len(s.entries))
	return nil
}

// Stats reports the default console and file sinks. Sinks supplied through
// options are not included.
func (s *Store) Stats() []sink.SinkStats {
	stats := make([]sink.SinkStats, 0, 2)
	if s.console != nil {
		stats = append(stats, s.console.GetStats())
	}
	if s.fileSink != nil {
		stats = append(stats, s.fileSink.GetStats())
	}
	return stats
}

// Close releases the file writer
func (s *Store) Close() error {
	return s.fileWriter.Close()
}
