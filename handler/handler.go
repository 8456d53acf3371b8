package handler

import (
	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log record. It returns the write error, if any.
	Handle(rec *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// Enabler is an optional interface for handlers that filter records. The
// logger consults it before building a record so filtered calls cost no
// formatting work.
type Enabler interface {
	Enabled(level core.Level, module string) bool
}

// StatsProvider is implemented by handlers that count their outcomes
type StatsProvider interface {
	Stats() Snapshot
}
