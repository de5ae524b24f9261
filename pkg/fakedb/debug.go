package fakedb

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// DebugLevel controls how much a DebugContext writes
type DebugLevel int

const (
	DebugOff DebugLevel = iota
	DebugInfo
	DebugTrace
)

func (l DebugLevel) String() string {
	switch l {
	case DebugOff:
		return "off"
	case DebugInfo:
		return "info"
	case DebugTrace:
		return "trace"
	default:
		return fmt.Sprintf("DebugLevel(%d)", int(l))
	}
}

// ParseDebugLevel accepts "off", "info" or "trace" (case-insensitive).
// An empty string means info.
func ParseDebugLevel(s string) (DebugLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none", "quiet":
		return DebugOff, nil
	case "", "info":
		return DebugInfo, nil
	case "trace", "debug":
		return DebugTrace, nil
	default:
		return DebugOff, fmt.Errorf("unknown debug level %q (want off, info or trace)", s)
	}
}

// DebugContext writes events as log lines
type DebugContext struct {
	Level       DebugLevel
	Writer      io.Writer
	ColorOutput bool

	mu sync.Mutex
}

// DefaultDebugContext writes info-level lines to stdout without color
func DefaultDebugContext() *DebugContext {
	return &DebugContext{
		Level:  DebugInfo,
		Writer: os.Stdout,
	}
}

// Notify renders e according to the context's level. It satisfies Notifier.
func (d *DebugContext) Notify(e Event) {
	if d == nil || d.Level == DebugOff || d.Writer == nil {
		return
	}

	line := d.format(e)

	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.Writer, line)
}

func (d *DebugContext) format(e Event) string {
	var b strings.Builder

	d.paint(color.FgCyan).Fprint(&b, "[stubdb]")
	b.WriteString(" ")

	if d.Level >= DebugTrace {
		fmt.Fprintf(&b, "%s ", e.Time.Format("15:04:05.000"))
		d.paint(kindColor(e.Kind), color.Bold).Fprintf(&b, "%-9s ", e.Kind)
	}

	b.WriteString(e.Message())

	if d.Level >= DebugTrace {
		switch e.Kind {
		case EventConnected:
			fmt.Fprintf(&b, " dsn=%q kind=%s", Redact(e.DSN), Kind(e.DSN))
			if target, ok := Describe(e.DSN); ok {
				fmt.Fprintf(&b, " target=%s", target)
			}
		case EventExecuted:
			fmt.Fprintf(&b, " cursor=%s", shortID(e.CursorID))
		}
	}

	return b.String()
}

// shortID returns the first group of id's canonical form. uuid.UUID.String
// always yields the 36-character 8-4-4-4-12 layout.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func (d *DebugContext) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if d.ColorOutput {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func kindColor(k EventKind) color.Attribute {
	switch k {
	case EventConnected:
		return color.FgGreen
	case EventCommitted:
		return color.FgYellow
	case EventExecuted:
		return color.FgBlue
	default:
		return color.FgWhite
	}
}
