// Package logger provides logging functionality for run-snapshot.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes progress lines.
type defaultLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return NewDefaultLoggerWithWriter(os.Stdout)
}

// NewDefaultLoggerWithWriter creates a default logger writing to out.
func NewDefaultLoggerWithWriter(out io.Writer) Logger {
	return &defaultLogger{out: out}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, format+"\n", args...)
}

// verboseLogger writes structured debug entries.
type verboseLogger struct {
	entry *logrus.Entry
}

// NewVerboseLogger creates a logger for --verbose, writing to stderr so the
// snapshot tool's stdout stays untouched.
func NewVerboseLogger() Logger {
	return NewVerboseLoggerWithWriter(os.Stderr)
}

// NewVerboseLoggerWithWriter creates a verbose logger writing to out.
func NewVerboseLoggerWithWriter(out io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return &verboseLogger{entry: l.WithField("component", "run-snapshot")}
}

// Logf writes a debug entry.
func (v *verboseLogger) Logf(format string, args ...interface{}) {
	v.entry.Debugf(format, args...)
}
