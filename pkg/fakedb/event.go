package fakedb

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventKind identifies what a connection or cursor did
type EventKind string

const (
	EventConnected EventKind = "connected"
	EventCommitted EventKind = "committed"
	EventExecuted  EventKind = "executed"
)

// Event is a single diagnostic notification
type Event struct {
	Kind EventKind
	// DSN of the connection that emitted the event, stored verbatim
	DSN string
	// Query is set for EventExecuted only
	Query    string
	CursorID uuid.UUID
	Time     time.Time
}

// Message renders the event as a human-readable line
func (e Event) Message() string {
	switch e.Kind {
	case EventConnected:
		return "Connected to real database"
	case EventCommitted:
		return "Saved changes"
	case EventExecuted:
		return fmt.Sprintf("Executed query=%s", e.Query)
	default:
		return string(e.Kind)
	}
}

// Notifier receives every event emitted by a Conn and its cursors
type Notifier func(Event)

// Recorder keeps events in memory so callers can assert on them.
// The zero value is ready to use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Notify appends e; pass it to WithNotifier
func (r *Recorder) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events in emission order
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Messages returns the rendered message of every recorded event
func (r *Recorder) Messages() []string {
	events := r.Events()
	msgs := make([]string, 0, len(events))
	for _, e := range events {
		msgs = append(msgs, e.Message())
	}
	return msgs
}

// Kinds returns the kind of every recorded event
func (r *Recorder) Kinds() []EventKind {
	events := r.Events()
	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// Reset drops all recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
