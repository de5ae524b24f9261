package fakedb

import "github.com/google/uuid"

// Cursor executes queries on a Conn. It keeps no result state.
type Cursor struct {
	id   uuid.UUID
	conn *Conn
}

// ID identifies the cursor in diagnostics
func (cur *Cursor) ID() uuid.UUID {
	return cur.id
}

// Execute reports query without parsing or running it
func (cur *Cursor) Execute(query string) {
	cur.conn.emit(Event{
		Kind:     EventExecuted,
		Query:    query,
		CursorID: cur.id,
	})
}
