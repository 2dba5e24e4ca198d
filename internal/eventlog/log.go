// Package eventlog holds a decoded event stream together with the replay
// cursor that tracks how much of it has been delivered to the host.
package eventlog

import (
	"iter"

	"github.com/appengine-ltd/tickreplay/internal/input"
)

// Log is an immutable event sequence plus a non-decreasing cursor. The
// cursor starts unset, which is distinct from "zero events delivered".
type Log struct {
	events []input.Event
	cursor int
	set    bool
}

func New(events []input.Event) *Log {
	return &Log{events: events}
}

// Len reports the number of events in the stream.
func (l *Log) Len() int {
	return len(l.events)
}

// Events exposes the underlying stream. Callers must not modify it.
func (l *Log) Events() []input.Event {
	return l.events
}

// Cursor returns the absolute position and whether it has been set.
func (l *Log) Cursor() (int, bool) {
	return l.cursor, l.set
}

// NextBatch yields the events after the cursor, paired with their index
// relative to the start of the batch. Each call starts a new iteration from
// the current cursor.
func (l *Log) NextBatch() iter.Seq2[int, input.Event] {
	start := 0
	if l.set {
		start = l.cursor
	}
	return func(yield func(int, input.Event) bool) {
		if start >= len(l.events) {
			return
		}
		for i, ev := range l.events[start:] {
			if !yield(i, ev) {
				return
			}
		}
	}
}

// Advance moves the cursor past a consumed batch. When found is true,
// boundary is the FrameBoundary index within the batch returned by the last
// NextBatch; otherwise the batch ran to the end of the stream.
func (l *Log) Advance(boundary int, found bool) {
	if !found {
		l.cursor = len(l.events)
		l.set = true
		return
	}
	prev := 0
	if l.set {
		prev = l.cursor
	}
	l.cursor = boundary + prev + 1
	l.set = true
}

// IsFinished reports whether every event has been consumed.
func (l *Log) IsFinished() bool {
	return l.set && l.cursor+1 > len(l.events)
}
