// Package rlog is an append-only, concurrency-safe sink for diagnostics.
// The lexer, evaluator and tree builder never write to a Log — every
// recoverable condition there collapses to a default value instead. A Log
// exists only for the external boundary: file and config loading in the
// CLI.
package rlog

import "sync"

// Kind classifies a diagnostic.
type Kind uint8

const (
	Error Kind = iota
	Warning
	Note
)

func (k Kind) String() string {
	switch k {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "note"
	}
}

// Msg is one diagnostic, optionally anchored to a byte offset in a named
// source. Offset is -1 when the message isn't tied to a location (e.g. a
// config file parse failure reported by line/col from a third-party
// unmarshaler).
type Msg struct {
	Kind   Kind
	Text   string
	Source string
	Offset int32
}

// Log collects messages produced while crossing the external boundary. It
// is safe to share across goroutines.
type Log struct {
	mu   sync.Mutex
	msgs []Msg
}

// NewLog returns an empty Log ready to accumulate diagnostics.
func NewLog() *Log {
	return &Log{}
}

// Add appends a message without a source location.
func (l *Log) Add(kind Kind, text string) {
	l.AddWithOffset(kind, "", -1, text)
}

// AddWithOffset appends a message anchored to a byte offset in source.
func (l *Log) AddWithOffset(kind Kind, source string, offset int32, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, Msg{Kind: kind, Text: text, Source: source, Offset: offset})
}

// HasErrors reports whether any message of Kind Error was recorded.
func (l *Log) HasErrors() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.msgs {
		if m.Kind == Error {
			return true
		}
	}
	return false
}

// Done returns a snapshot of every message recorded so far, in order.
func (l *Log) Done() []Msg {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Msg, len(l.msgs))
	copy(out, l.msgs)
	return out
}
