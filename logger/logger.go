package logger

import (
	"fmt"
	"time"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler"
)

// levelOff is above every real level, so a logger gated on it emits nothing
const levelOff = core.Level(core.NumLevels)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	enabler       handler.Enabler
	level         core.Level
	module        string
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	module        string
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 2,              // Frames between CallerModule and the call site
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the least severe level the logger passes to its handler
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithModule fixes the module shown for every record. It takes
// precedence over the call-site module.
func (b *Builder) WithModule(module string) *Builder {
	b.module = module
	return b
}

// WithFields adds default fields to all records
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller derives the module of each record from the package of the
// calling function when no module is fixed.
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		handler:       b.handler,
		level:         b.level,
		module:        b.module,
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
	l.enabler, _ = b.handler.(handler.Enabler)
	return l
}

func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	c := l.clone()
	c.fields = newFields
	return c
}

// Named creates a new Logger whose records carry module
func (l *Logger) Named(module string) *Logger {
	c := l.clone()
	c.module = module
	return c
}

// Level returns the logger's threshold
func (l *Logger) Level() core.Level {
	return l.level
}

// Enabled reports whether a record at level from this logger's fixed
// module would be written. Call-site modules are not considered.
func (l *Logger) Enabled(level core.Level) bool {
	if level < l.level || l.handler == nil {
		return false
	}
	return l.enabler == nil || l.enabler.Enabled(level, l.module)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if level < l.level {
		return
	}
	l.log(0, level, msg, nil, false, fields)
}

// Logf logs a formatted message at the specified level. Arguments are
// formatted only when a handler asks for the message text, so records
// dropped by a handler filter never format them.
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.log(0, level, format, args, true, nil)
}

// log is the internal logging method. When format is set msg is a format
// string for args. skip counts extra frames above the public method.
func (l *Logger) log(skip int, level core.Level, msg string, args []interface{}, format bool, fields []core.Field) {
	if l.handler == nil {
		return
	}

	module := l.module
	if module == "" && l.includeCaller {
		module = core.CallerModule(l.callerSkip + skip)
	}
	if l.enabler != nil && !l.enabler.Enabled(level, module) {
		return
	}

	rec := core.GetRecord()
	rec.Time = time.Now()
	rec.Level = level
	rec.Module = module
	if format {
		rec.MessageFunc = func() string { return fmt.Sprintf(msg, args...) }
	} else {
		rec.Message = msg
	}

	if len(l.fields) > 0 {
		rec.Fields = append(rec.Fields, l.fields...)
	}
	if len(fields) > 0 {
		rec.Fields = append(rec.Fields, fields...)
	}

	// Write errors are counted by the handler; the call site has no use
	// for them.
	_ = l.handler.Handle(rec)
	core.PutRecord(rec)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(0, core.TraceLevel, msg, nil, false, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(0, core.DebugLevel, msg, nil, false, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(0, core.InfoLevel, msg, nil, false, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(0, core.WarnLevel, msg, nil, false, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(0, core.ErrorLevel, msg, nil, false, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(0, core.TraceLevel, format, args, true, nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(0, core.DebugLevel, format, args, true, nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(0, core.InfoLevel, format, args, true, nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(0, core.WarnLevel, format, args, true, nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(0, core.ErrorLevel, format, args, true, nil)
}

// Handler returns the handler records are written to
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
