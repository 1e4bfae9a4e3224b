// Package logger provides logging functionality for the adogh application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
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

// defaultLogger is a thread-safe logger that writes to an io.Writer.
type defaultLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return &defaultLogger{out: os.Stdout}
}

// NewVerboseLogger creates a logger writing prefixed messages to stderr.
// Stderr keeps stdout clean for command output and the native messaging channel.
func NewVerboseLogger() Logger {
	return &defaultLogger{out: os.Stderr, prefix: "[VERBOSE] "}
}

// NewWriterLogger creates a logger writing to the given writer.
func NewWriterLogger(w io.Writer) Logger {
	return &defaultLogger{out: w}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = fmt.Fprintf(d.out, d.prefix+format+"\n", args...)
}
