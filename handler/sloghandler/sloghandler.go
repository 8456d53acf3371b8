package sloghandler

import (
	"context"
	"log/slog"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler"
)

// LevelTrace is the slog level mapped to core.TraceLevel. Any level below
// slog.LevelDebug is treated as trace.
const LevelTrace = slog.LevelDebug - 4

// Options configures a Handler
type Options struct {
	// Level is the minimum slog level passed on (default: LevelTrace)
	Level slog.Leveler
	// Module overrides the module derived from the call site
	Module string
}

// Handler implements slog.Handler on top of a handler.Handler
type Handler struct {
	handler handler.Handler
	level   slog.Leveler
	module  string
	attrs   []core.Field
	group   string
}

// New creates a slog.Handler that forwards records to h.
func New(h handler.Handler, opts *Options) *Handler {
	s := &Handler{handler: h, level: LevelTrace}
	if opts != nil {
		if opts.Level != nil {
			s.level = opts.Level
		}
		s.module = opts.Module
	}
	return s
}

// Enabled reports whether the handler handles records at the given level.
// Module directives are checked later in Handle, once the call site is known.
func (s *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

// Handle converts record to a core.Record and passes it to the wrapped
// handler.
func (s *Handler) Handle(_ context.Context, record slog.Record) error {
	level := LevelFromSlog(record.Level)
	module := s.module
	if module == "" {
		module = core.ModuleForPC(record.PC)
	}
	if en, ok := s.handler.(handler.Enabler); ok && !en.Enabled(level, module) {
		return nil
	}

	rec := core.GetRecord()
	defer core.PutRecord(rec)
	if !record.Time.IsZero() {
		rec.Time = record.Time
	}
	rec.Level = level
	rec.Module = module
	rec.Message = record.Message

	rec.Fields = append(rec.Fields, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		rec.Fields = appendAttr(rec.Fields, s.group, a)
		return true
	})

	return s.handler.Handle(rec)
}

// WithAttrs returns a new Handler with additional attributes.
func (s *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	clone := s.clone()
	for _, a := range attrs {
		clone.attrs = appendAttr(clone.attrs, s.group, a)
	}
	return clone
}

// WithGroup returns a new Handler whose attribute keys are prefixed with
// name.
func (s *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := s.clone()
	clone.group = joinKey(s.group, name)
	return clone
}

func (s *Handler) clone() *Handler {
	attrs := make([]core.Field, len(s.attrs))
	copy(attrs, s.attrs)
	return &Handler{
		handler: s.handler,
		level:   s.level,
		module:  s.module,
		attrs:   attrs,
		group:   s.group,
	}
}

// LevelFromSlog maps a slog level onto the five core levels.
func LevelFromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// LevelToSlog is the inverse of LevelFromSlog.
func LevelToSlog(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return LevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// appendAttr flattens a into dst, prefixing keys of nested groups.
func appendAttr(dst []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	key := joinKey(group, a.Key)

	switch a.Value.Kind() {
	case slog.KindString:
		return append(dst, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(dst, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(dst, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Uint64()})
	case slog.KindFloat64:
		return append(dst, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		var v int64
		if a.Value.Bool() {
			v = 1
		}
		return append(dst, core.Field{Key: key, Type: core.BoolType, Int64: v})
	case slog.KindTime:
		return append(dst, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(dst, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		// an inline group (empty key) keeps the enclosing prefix
		prefix := group
		if a.Key != "" {
			prefix = key
		}
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, prefix, ga)
		}
		return dst
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(dst, core.Field{Key: key, Type: core.ErrorType, Str: err.Error()})
		}
		return append(dst, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
