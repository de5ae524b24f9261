// Package fakedb provides a database connection stand-in that reports what
// it would have done instead of doing it.
package fakedb

import (
	"time"

	"github.com/google/uuid"
)

// Option configures a Conn
type Option func(*Conn)

// WithNotifier routes diagnostics to n instead of the default debug output
func WithNotifier(n Notifier) Option {
	return func(c *Conn) {
		c.notify = n
	}
}

// WithDebug routes diagnostics through a DebugContext
func WithDebug(d *DebugContext) Option {
	return func(c *Conn) {
		c.notify = d.Notify
	}
}

// WithClock overrides the timestamp source used for events
func WithClock(now func() time.Time) Option {
	return func(c *Conn) {
		c.now = now
	}
}

// Conn is a stand-in database connection.
//
// It holds the data-source name it was created with and never touches the
// network or disk. The only observable effect of using it is the stream of
// events handed to its Notifier.
type Conn struct {
	dsn    string
	notify Notifier
	now    func() time.Time
}

// Connect creates a connection for dsn. It always succeeds.
func Connect(dsn string, opts ...Option) *Conn {
	c := &Conn{
		dsn:    dsn,
		notify: DefaultDebugContext().Notify,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.emit(Event{Kind: EventConnected})
	return c
}

// DSN returns the data-source name exactly as passed to Connect
func (c *Conn) DSN() string {
	return c.dsn
}

// Cursor returns a new cursor bound to this connection
func (c *Conn) Cursor() *Cursor {
	return &Cursor{
		id:   uuid.New(),
		conn: c,
	}
}

// Commit reports that changes were saved. Nothing is persisted.
func (c *Conn) Commit() {
	c.emit(Event{Kind: EventCommitted})
}

func (c *Conn) emit(e Event) {
	if c.notify == nil {
		return
	}
	e.DSN = c.dsn
	e.Time = c.now()
	c.notify(e)
}
