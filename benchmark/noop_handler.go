// Package benchmark compares the styled line logger with other Go
// loggers writing human-readable lines to the same discarded sink.
package benchmark

import (
	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler"
)

// noopHandler drops records after touching the message, for measuring
// the logger front end alone.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(rec *core.Record) error {
	_ = len(rec.Text())
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
