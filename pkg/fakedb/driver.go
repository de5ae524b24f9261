package fakedb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"sync/atomic"
)

// DriverName is the name the fake driver is registered under with database/sql
const DriverName = "stubdb"

func init() {
	sql.Register(DriverName, &Driver{})
}

// Driver adapts Conn to database/sql. Every statement is reported through
// the connection's Notifier; queries return no rows.
type Driver struct {
	opts []Option
}

// NewDriver returns a driver whose connections use opts
func NewDriver(opts ...Option) *Driver {
	return &Driver{opts: opts}
}

// Open implements driver.Driver
func (d *Driver) Open(name string) (driver.Conn, error) {
	return newDriverConn(Connect(name, d.opts...)), nil
}

// OpenConnector implements driver.DriverContext
func (d *Driver) OpenConnector(name string) (driver.Connector, error) {
	return &connector{dsn: name, driver: d}, nil
}

// NewConnector returns a connector for sql.OpenDB, so callers can inject a
// Notifier without registering a driver of their own
func NewConnector(dsn string, opts ...Option) driver.Connector {
	return &connector{dsn: dsn, driver: NewDriver(opts...)}
}

type connector struct {
	dsn    string
	driver *Driver
}

func (c *connector) Connect(context.Context) (driver.Conn, error) {
	return c.driver.Open(c.dsn)
}

func (c *connector) Driver() driver.Driver {
	return c.driver
}

// driverConn wraps Conn with the closed flag database/sql expects
type driverConn struct {
	conn   *Conn
	closed atomic.Bool
}

var (
	_ driver.Conn               = (*driverConn)(nil)
	_ driver.ConnBeginTx        = (*driverConn)(nil)
	_ driver.ExecerContext      = (*driverConn)(nil)
	_ driver.QueryerContext     = (*driverConn)(nil)
	_ driver.ConnPrepareContext = (*driverConn)(nil)
	_ driver.Pinger             = (*driverConn)(nil)
)

func newDriverConn(c *Conn) *driverConn {
	return &driverConn{conn: c}
}

// Conn returns the wrapped fake connection
func (dc *driverConn) Conn() *Conn {
	return dc.conn
}

func (dc *driverConn) Prepare(query string) (driver.Stmt, error) {
	return dc.PrepareContext(context.Background(), query)
}

func (dc *driverConn) PrepareContext(_ context.Context, query string) (driver.Stmt, error) {
	if dc.closed.Load() {
		return nil, driver.ErrBadConn
	}
	return &stmt{conn: dc, query: query}, nil
}

func (dc *driverConn) Close() error {
	dc.closed.Store(true)
	return nil
}

func (dc *driverConn) Begin() (driver.Tx, error) {
	return dc.BeginTx(context.Background(), driver.TxOptions{})
}

func (dc *driverConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	if dc.closed.Load() {
		return nil, driver.ErrBadConn
	}
	return &tx{conn: dc}, nil
}

func (dc *driverConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	if dc.closed.Load() {
		return nil, driver.ErrBadConn
	}
	dc.conn.Cursor().Execute(query)
	return driver.RowsAffected(0), nil
}

func (dc *driverConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	if dc.closed.Load() {
		return nil, driver.ErrBadConn
	}
	dc.conn.Cursor().Execute(query)
	return emptyRows{}, nil
}

func (dc *driverConn) Ping(context.Context) error {
	if dc.closed.Load() {
		return driver.ErrBadConn
	}
	return nil
}

type stmt struct {
	conn  *driverConn
	query string
}

func (s *stmt) Close() error { return nil }

// NumInput returns -1: placeholders are never counted because queries are not parsed
func (s *stmt) NumInput() int { return -1 }

func (s *stmt) Exec([]driver.Value) (driver.Result, error) {
	return s.conn.ExecContext(context.Background(), s.query, nil)
}

func (s *stmt) Query([]driver.Value) (driver.Rows, error) {
	return s.conn.QueryContext(context.Background(), s.query, nil)
}

type tx struct {
	conn *driverConn
}

func (t *tx) Commit() error {
	if t.conn.closed.Load() {
		return driver.ErrBadConn
	}
	t.conn.conn.Commit()
	return nil
}

// Rollback is a no-op; nothing was ever written
func (t *tx) Rollback() error { return nil }

type emptyRows struct{}

func (emptyRows) Columns() []string              { return []string{} }
func (emptyRows) Close() error                   { return nil }
func (emptyRows) Next(dest []driver.Value) error { return io.EOF }
