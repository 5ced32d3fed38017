package store

import (
	"math"
	"testing"
	"time"

	"memlog/src/internal/config"
	"memlog/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Time(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: time.Second}
	s, _ := newTestStore(t, config.DefaultLoggerConfig(), WithClock(clock.Now))

	start, ok := s.Time("x")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)

	again, ok := s.Time("x")
	assert.False(t, ok, "duplicate start must be rejected")
	assert.True(t, again.IsZero())

	// Elapsed is measured from the original start
	elapsed, ok, err := s.TimeEnd("x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1.0, elapsed)
}

func TestStore_TimeEnd(t *testing.T) {
	t.Run("UnknownName", func(t *testing.T) {
		s, out := newTestStore(t, config.DefaultLoggerConfig())

		elapsed, ok, err := s.TimeEnd("never")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, elapsed)
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, out.lines)
	})

	t.Run("AlreadyEnded", func(t *testing.T) {
		s, _ := newTestStore(t, config.DefaultLoggerConfig())
		_, ok := s.Time("x")
		require.True(t, ok)

		_, ok, err := s.TimeEnd("x")
		require.NoError(t, err)
		require.True(t, ok)

		_, ok, err = s.TimeEnd("x")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("ImmediateEnd", func(t *testing.T) {
		s, _ := newTestStore(t, config.DefaultLoggerConfig())
		_, ok := s.Time("fast")
		require.True(t, ok)

		elapsed, ok, err := s.TimeEnd("fast")
		require.NoError(t, err)
		require.True(t, ok)
		assert.GreaterOrEqual(t, elapsed, 0.0)
		assert.Equal(t, elapsed, math.Round(elapsed*1000)/1000, "millisecond resolution")
	})

	t.Run("RecordsDebugEntry", func(t *testing.T) {
		clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: 1250 * time.Millisecond}
		s, out := newTestStore(t, config.DefaultLoggerConfig(), WithClock(clock.Now))

		_, ok := s.Time("load")
		require.True(t, ok)
		elapsed, ok, err := s.TimeEnd("load")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 1.25, elapsed)

		entries := s.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, core.LevelDebug, entries[0].Level)
		assert.Equal(t, "'load' took 1.25 seconds", entries[0].Message.String())
		require.Len(t, out.lines, 1)
		assert.Contains(t, out.lines[0], "[DEBUG] : 'load' took 1.25 seconds")
	})

	t.Run("SubMillisecondTruncated", func(t *testing.T) {
		clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: 2999 * time.Microsecond}
		s, _ := newTestStore(t, config.DefaultLoggerConfig(), WithClock(clock.Now))

		_, _ = s.Time("t")
		elapsed, ok, err := s.TimeEnd("t")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 0.002, elapsed)
		assert.Equal(t, "'t' took 0.002 seconds", s.Entries()[0].Message.String())
	})

	t.Run("WholeSeconds", func(t *testing.T) {
		clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: 2 * time.Second}
		s, _ := newTestStore(t, config.DefaultLoggerConfig(), WithClock(clock.Now))

		_, _ = s.Time("t")
		_, _, _ = s.TimeEnd("t")
		assert.Equal(t, "'t' took 2 seconds", s.Entries()[0].Message.String())
	})

	t.Run("SinkErrorReported", func(t *testing.T) {
		s, _ := newTestStore(t, config.DefaultLoggerConfig())
		s.SetPrintFunction(func(string) error { return errSink })

		_, _ = s.Time("x")
		_, ok, err := s.TimeEnd("x")
		assert.True(t, ok)
		assert.ErrorIs(t, err, errSink)
		assert.Empty(t, s.ActiveTimers())
	})
}

func TestStore_IndependentTimers(t *testing.T) {
	s, _ := newTestStore(t, config.DefaultLoggerConfig())

	for _, name := range []string{"b", "a", "c"} {
		_, ok := s.Time(name)
		require.True(t, ok)
	}
	assert.Equal(t, []string{"a", "b", "c"}, s.ActiveTimers())

	_, ok, err := s.TimeEnd("b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, s.ActiveTimers())

	_, ok = s.Time("b")
	assert.True(t, ok, "an ended name can be started again")
}
