// FILE: memlog/src/internal/format/format.go
package format

import (
	"strings"

	"memlog/src/internal/core"
)

// FormatEntry renders one entry as `<timestamp> [<LEVEL>] : <message>`.
// An incomplete entry renders as the empty string.
func FormatEntry(entry *core.LogEntry) string {
	if !entry.Complete() {
		return ""
	}

	var b strings.Builder
	b.WriteString(DateToString(entry.Time, true))
	b.WriteString(" [")
	b.WriteString(entry.Level.Upper())
	b.WriteString("] : ")
	b.WriteString(renderMessage(entry.Message))
	return b.String()
}

// Dump renders every entry in order, each followed by a newline
func Dump(entries []core.LogEntry) string {
	var b strings.Builder
	for i := range entries {
		b.WriteString(FormatEntry(&entries[i]))
		b.WriteByte('\n')
	}
	return b.String()
}
