// FILE: memlog/src/internal/format/date.go
package format

import "time"

// ISO-8601 style, millisecond precision, no zone designator
const TimestampLayout = "2006-01-02T15:04:05.000"

// DateToString renders a time.Time (or non-nil *time.Time) with TimestampLayout.
// With useLocalTimezone the local zone offset at that instant is added to the
// UTC value, so the fields read as local wall-clock time. Anything else,
// including the zero time, yields "".
func DateToString(date any, useLocalTimezone bool) string {
	var t time.Time
	switch d := date.(type) {
	case time.Time:
		t = d
	case *time.Time:
		if d == nil {
			return ""
		}
		t = *d
	default:
		return ""
	}

	if t.IsZero() {
		return ""
	}

	t = t.UTC()
	if useLocalTimezone {
		_, offset := t.In(time.Local).Zone()
		t = t.Add(time.Duration(offset) * time.Second)
	}
	return t.Format(TimestampLayout)
}

// Now renders the current local time
func Now() string {
	return DateToString(time.Now(), true)
}
