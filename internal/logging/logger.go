// Package logging configures the structured loggers used by the rulesync CLI.
//
// Library packages under pkg/ never log; they return errors and results and
// leave reporting to the commands in internal/cli.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // process-wide default, swapped by --debug and tests
var (
	defaultMu     sync.RWMutex
	defaultLogger = New("info")
)

// Option adjusts a logger built by NewWithWriter.
type Option func(*log.Options)

// WithPrefix labels every entry, e.g. "watch".
func WithPrefix(prefix string) Option {
	return func(o *log.Options) { o.Prefix = prefix }
}

// WithTimestamp enables timestamps, used by long-running watch sessions.
func WithTimestamp() Option {
	return func(o *log.Options) {
		o.ReportTimestamp = true
		o.TimeFormat = "15:04:05"
	}
}

// New creates a stderr logger at level.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w at level.
func NewWithWriter(w io.Writer, level string, opts ...Option) *log.Logger {
	options := log.Options{Level: ParseLevel(level)}
	for _, opt := range opts {
		opt(&options)
	}
	return log.NewWithOptions(w, options)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level,
// ignoring case. Anything else is info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the process-wide logger.
func Default() *log.Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
