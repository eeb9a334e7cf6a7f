// Package audit appends a human-readable block to a text log for every
// completed sign-out. The log is append-only.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/evcraddock/visitor-register/internal/visitor"
)

// TimeFormat is the timestamp layout at the head of each entry.
const TimeFormat = "2006-01-02 15:04:05"

const separator = "------------------------------"

// Logger writes sign-out entries to a file.
type Logger struct {
	path string
	now  func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock sets the time source used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// NewLogger creates a Logger that appends to path.
func NewLogger(path string, opts ...Option) *Logger {
	l := &Logger{path: path, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// LogSignOut appends an entry for rec. Errors wrap visitor.ErrLogging.
func (l *Logger) LogSignOut(rec visitor.Record) error {
	if err := l.append(FormatEntry(rec, l.now())); err != nil {
		return fmt.Errorf("%w: %w", visitor.ErrLogging, err)
	}
	return nil
}

func (l *Logger) append(entry string) (err error) {
	if dir := filepath.Dir(l.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing audit log: %w", cerr)
		}
	}()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}
	return nil
}

// FormatEntry renders the sign-out block for rec at time t.
func FormatEntry(rec visitor.Record, t time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - Visitor Signed Out\n", t.Format(TimeFormat))
	fmt.Fprintf(&b, "Name: %s\n", rec.FullName())
	fmt.Fprintf(&b, "Email: %s\n", rec.Email)
	fmt.Fprintf(&b, "Company: %s\n", rec.Company)
	fmt.Fprintf(&b, "Purpose: %s\n", rec.Purpose)
	b.WriteString(separator + "\n")
	return b.String()
}
