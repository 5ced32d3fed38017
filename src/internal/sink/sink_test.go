package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func TestNewConsoleSink(t *testing.T) {
	logger := newTestLogger()

	testCases := []struct {
		name        string
		target      string
		expected    string
		expectError bool
	}{
		{name: "DefaultToStdout", target: "", expected: "stdout"},
		{name: "Stdout", target: "stdout", expected: "stdout"},
		{name: "Stderr", target: "stderr", expected: "stderr"},
		{name: "Unknown", target: "split", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewConsoleSink(tc.target, logger)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, s.GetStats().Details["target"])
		})
	}
}

func TestConsoleSink_Print(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf, newTestLogger())

	var printFn PrintFunc = s.Print
	require.NoError(t, printFn("first"))
	require.NoError(t, printFn("second"))

	assert.Equal(t, "first\nsecond\n", buf.String())

	stats := s.GetStats()
	assert.Equal(t, "console", stats.Type)
	assert.Equal(t, uint64(2), stats.TotalProcessed)
	assert.False(t, stats.LastProcessed.IsZero())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestConsoleSink_PrintError(t *testing.T) {
	s := NewWriterSink(failingWriter{}, nil)

	err := s.Print("line")
	require.Error(t, err)
	assert.ErrorIs(t, err, errWrite)
}

func TestFileSink(t *testing.T) {
	logger := newTestLogger()

	t.Run("RequiresPath", func(t *testing.T) {
		fs, err := NewFileSink("", logger)
		assert.Error(t, err)
		assert.Nil(t, fs)
	})

	t.Run("AppendCreatesFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "app.log")
		fs, err := NewFileSink(path, logger)
		require.NoError(t, err)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "file should open lazily")

		require.NoError(t, fs.Append("one"))
		require.NoError(t, fs.Append("two"))
		require.NoError(t, fs.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "one\ntwo\n", string(data))
		assert.Equal(t, uint64(2), fs.GetStats().TotalProcessed)
	})

	t.Run("AppendKeepsExistingContent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

		fs, err := NewFileSink(path, logger)
		require.NoError(t, err)
		require.NoError(t, fs.Append("new"))
		require.NoError(t, fs.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old\nnew\n", string(data))
	})

	t.Run("DumpToExplicitPath", func(t *testing.T) {
		dir := t.TempDir()
		fs, err := NewFileSink(filepath.Join(dir, "app.log"), logger)
		require.NoError(t, err)

		target := filepath.Join(dir, "dumps", "full.log")
		require.NoError(t, fs.Dump(target, "a\nb\n"))
		require.NoError(t, fs.Dump(target, "c\n"))

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "c\n", string(data), "dump should replace the file")
	})

	t.Run("DumpToDefaultPath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		fs, err := NewFileSink(path, logger)
		require.NoError(t, err)

		require.NoError(t, fs.Dump("", "content\n"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "content\n", string(data))
	})

	t.Run("CloseWithoutOpen", func(t *testing.T) {
		fs, err := NewFileSink(filepath.Join(t.TempDir(), "app.log"), logger)
		require.NoError(t, err)
		assert.NoError(t, fs.Close())
	})
}

func TestNoopFileWriter(t *testing.T) {
	var w FileWriter = NoopFileWriter{}
	assert.NoError(t, w.Append("x"))
	assert.NoError(t, w.Dump("/nonexistent/dir/file.log", "x"))
	assert.NoError(t, w.Close())
}
