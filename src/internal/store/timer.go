// FILE: memlog/src/internal/store/timer.go
package store

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Time starts the timer name and returns its start time. If name is already
// running, nothing changes and ok is false.
func (s *Store) Time(name string) (start time.Time, ok bool) {
	if _, exists := s.timers[name]; exists {
		s.logger.Debug("msg", "Timer already running",
			"component", "store",
			"timer", name)
		return time.Time{}, false
	}

	start = s.now()
	s.timers[name] = start
	return start, true
}

// TimeEnd stops the timer name, records a debug entry with the elapsed time
// and returns the elapsed seconds at millisecond resolution. An unknown name
// returns ok false and records nothing. err carries a sink failure from the
// recorded entry.
func (s *Store) TimeEnd(name string) (elapsed float64, ok bool, err error) {
	start, exists := s.timers[name]
	if !exists {
		s.logger.Debug("msg", "Timer not running",
			"component", "store",
			"timer", name)
		return 0, false, nil
	}

	elapsed = float64(s.now().Sub(start).Milliseconds()) / 1000
	delete(s.timers, name)

	message := fmt.Sprintf("'%s' took %s seconds", name, strconv.FormatFloat(elapsed, 'f', -1, 64))
	_, err = s.Debug(message)
	return elapsed, true, err
}

// ActiveTimers returns the names of running timers, sorted
func (s *Store) ActiveTimers() []string {
	names := make([]string, 0, len(s.timers))
	for name := range s.timers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
