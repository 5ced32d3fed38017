// FILE: memlog/src/internal/sink/file.go
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/log"
)

// FileSink appends formatted lines to a log file and writes full dumps.
// Every write completes before the call returns.
type FileSink struct {
	path      string
	file      *os.File
	startTime time.Time
	logger    *log.Logger

	// Statistics
	totalProcessed atomic.Uint64
	lastProcessed  atomic.Value // time.Time
}

// NewFileSink creates a file sink for path. The file is opened on first append.
func NewFileSink(path string, logger *log.Logger) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("file sink requires a path")
	}
	if logger == nil {
		logger = log.NewLogger()
	}

	fs := &FileSink{
		path:      path,
		startTime: time.Now(),
		logger:    logger,
	}
	fs.lastProcessed.Store(time.Time{})

	return fs, nil
}

func (fs *FileSink) Append(line string) error {
	if fs.file == nil {
		if err := ensureDir(fs.path); err != nil {
			return err
		}
		file, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		fs.file = file
		fs.logger.Info("msg", "Log file opened",
			"component", "file_sink",
			"path", fs.path)
	}

	if _, err := fs.file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to append to log file: %w", err)
	}

	fs.totalProcessed.Add(1)
	fs.lastProcessed.Store(time.Now())
	return nil
}

// Dump replaces the file at path with content; an empty path means the sink's own path
func (fs *FileSink) Dump(path, content string) error {
	if path == "" {
		path = fs.path
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to dump log: %w", err)
	}

	fs.logger.Debug("msg", "Log dumped to file",
		"component", "file_sink",
		"path", path,
		"bytes", len(content))
	return nil
}

func (fs *FileSink) Close() error {
	if fs.file == nil {
		return nil
	}
	err := fs.file.Close()
	fs.file = nil
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

func (fs *FileSink) GetStats() SinkStats {
	lastProc, _ := fs.lastProcessed.Load().(time.Time)

	return SinkStats{
		Type:           "file",
		TotalProcessed: fs.totalProcessed.Load(),
		StartTime:      fs.startTime,
		LastProcessed:  lastProc,
		Details: map[string]any{
			"path": fs.path,
			"open": fs.file != nil,
		},
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}
