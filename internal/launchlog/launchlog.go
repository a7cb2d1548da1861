// Package launchlog writes the append-only session-launch log.
// Lines use the fixed `<date-time>: <message>` format that the desktop
// autostart log has always used, so existing greps over old logs keep working.
// The file is opened once for append and stays open for the process lifetime.
package launchlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Log is an append-only timestamped line sink.
type Log struct {
	w   io.Writer
	c   io.Closer
	now func() time.Time
}

// Open opens (creating if needed) the log file at path for appending.
// Parent directories are created as required.
func Open(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open launch log: %w", err)
	}
	return &Log{w: f, c: f, now: time.Now}, nil
}

// New returns a Log writing to w. Used by tests and by callers that want
// the lines without a file.
func New(w io.Writer) *Log {
	return &Log{w: w, now: time.Now}
}

// Printf appends one timestamped line to the log. Write errors are
// swallowed: the log is a diagnostic sink and must never fail a launch.
func (l *Log) Printf(format string, args ...interface{}) {
	if l == nil || l.w == nil {
		return
	}
	fmt.Fprintf(l.w, "%s: %s\n", l.now().Format(timeLayout), fmt.Sprintf(format, args...))
}

// Close closes the underlying file, if any.
func (l *Log) Close() error {
	if l == nil || l.c == nil {
		return nil
	}
	return l.c.Close()
}
