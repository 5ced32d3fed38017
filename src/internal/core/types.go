// FILE: memlog/src/internal/core/types.go
package core

import "strings"

// Level is the severity tag of a log entry. Any string is accepted.
type Level string

// Upper returns the level as printed in a formatted line
func (l Level) Upper() string {
	return strings.ToUpper(string(l))
}

type messageKind uint8

const (
	kindNone messageKind = iota
	kindText
	kindStructured
)

// Message is the payload of a log entry: either plain text or an arbitrary
// value rendered by a pretty-printer. The zero Message is absent.
type Message struct {
	kind  messageKind
	text  string
	value any
}

// Text wraps a string message
func Text(s string) Message {
	return Message{kind: kindText, text: s}
}

// Structured wraps an arbitrary value. A nil value yields an absent message.
func Structured(v any) Message {
	if v == nil {
		return Message{}
	}
	return Message{kind: kindStructured, value: v}
}

// NewMessage classifies v: strings become Text, Message values pass through,
// nil is absent and everything else is Structured.
func NewMessage(v any) Message {
	switch m := v.(type) {
	case nil:
		return Message{}
	case Message:
		return m
	case string:
		return Text(m)
	default:
		return Structured(m)
	}
}

// IsZero reports whether the message is absent
func (m Message) IsZero() bool {
	return m.kind == kindNone
}

// IsText reports whether the message is plain text
func (m Message) IsText() bool {
	return m.kind == kindText
}

// String returns the text of a Text message, empty otherwise
func (m Message) String() string {
	return m.text
}

// Value returns the wrapped value: the string for Text, the raw value for
// Structured and nil when absent.
func (m Message) Value() any {
	switch m.kind {
	case kindText:
		return m.text
	case kindStructured:
		return m.value
	default:
		return nil
	}
}
