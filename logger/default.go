package logger

import (
	"sync"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler/consolehandler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Styled lines to stderr through the shared formatter; JustLog
	// replaces this with the environment-configured logger.
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		WithCaller(true).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. They pass
// one extra frame to log so call-site modules resolve to the caller.

func logDefault(level core.Level, msg string, args []interface{}, format bool, fields []core.Field) {
	l := Default()
	if level < l.level {
		return
	}
	l.log(1, level, msg, args, format, fields)
}

// Trace logs a trace message using the default logger
func Trace(msg string, fields ...core.Field) {
	logDefault(core.TraceLevel, msg, nil, false, fields)
}

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	logDefault(core.DebugLevel, msg, nil, false, fields)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	logDefault(core.InfoLevel, msg, nil, false, fields)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	logDefault(core.WarnLevel, msg, nil, false, fields)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	logDefault(core.ErrorLevel, msg, nil, false, fields)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	logDefault(core.TraceLevel, format, args, true, nil)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	logDefault(core.DebugLevel, format, args, true, nil)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	logDefault(core.InfoLevel, format, args, true, nil)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	logDefault(core.WarnLevel, format, args, true, nil)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	logDefault(core.ErrorLevel, format, args, true, nil)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}

// Named creates a new logger with a fixed module
func Named(module string) *Logger {
	return Default().Named(module)
}
