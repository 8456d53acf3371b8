package zaphandler

import (
	"sort"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler"
)

// TraceLevel is the zap level mapped to core.TraceLevel
const TraceLevel = zapcore.DebugLevel - 1

// Core implements zapcore.Core on top of a handler.Handler
type Core struct {
	zapcore.LevelEnabler

	handler handler.Handler
	fields  []core.Field
}

// NewCore creates a zapcore.Core that forwards enabled entries to h.
func NewCore(h handler.Handler, enab zapcore.LevelEnabler) *Core {
	return &Core{LevelEnabler: enab, handler: h}
}

// With adds structured context to a copy of the core.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := &Core{
		LevelEnabler: c.LevelEnabler,
		handler:      c.handler,
		fields:       make([]core.Field, len(c.fields), len(c.fields)+len(fields)),
	}
	copy(clone.fields, c.fields)
	clone.fields = appendZapFields(clone.fields, fields)
	return clone
}

// Check adds c to ce when the entry passes both the level enabler and the
// wrapped handler's module filter.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}
	if en, ok := c.handler.(handler.Enabler); ok && !en.Enabled(LevelFromZap(ent.Level), entryModule(ent)) {
		return ce
	}
	return ce.AddCore(ent, c)
}

// Write renders the entry through the wrapped handler.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rec := core.GetRecord()
	defer core.PutRecord(rec)

	if !ent.Time.IsZero() {
		rec.Time = ent.Time
	}
	rec.Level = LevelFromZap(ent.Level)
	rec.Module = entryModule(ent)
	rec.Message = ent.Message
	rec.Fields = append(rec.Fields, c.fields...)
	rec.Fields = appendZapFields(rec.Fields, fields)

	return c.handler.Handle(rec)
}

type syncer interface {
	Sync() error
}

// Sync flushes the wrapped handler when it supports flushing.
func (c *Core) Sync() error {
	if s, ok := c.handler.(syncer); ok {
		return s.Sync()
	}
	return nil
}

// entryModule prefers the logger name and falls back to the caller's
// package when caller annotation is on.
func entryModule(ent zapcore.Entry) string {
	if ent.LoggerName != "" {
		return ent.LoggerName
	}
	if ent.Caller.Defined && ent.Caller.Function != "" {
		return core.PackagePath(ent.Caller.Function)
	}
	return ""
}

// LevelFromZap maps a zap level onto the five core levels. Levels above
// error (dpanic, panic, fatal) render as errors.
func LevelFromZap(l zapcore.Level) core.Level {
	switch {
	case l >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case l == zapcore.WarnLevel:
		return core.WarnLevel
	case l == zapcore.InfoLevel:
		return core.InfoLevel
	case l == zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// LevelToZap is the inverse of LevelFromZap.
func LevelToZap(l core.Level) zapcore.Level {
	switch l {
	case core.TraceLevel:
		return TraceLevel
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// appendZapFields encodes each zap field on its own so field order is
// kept. Fields that expand to several keys (namespaces, inline objects)
// are emitted in key order.
func appendZapFields(dst []core.Field, fields []zapcore.Field) []core.Field {
	for _, zf := range fields {
		enc := zapcore.NewMapObjectEncoder()
		zf.AddTo(enc)
		dst = appendEncoded(dst, "", enc.Fields)
	}
	return dst
}

func appendEncoded(dst []core.Field, prefix string, m map[string]interface{}) []core.Field {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := m[k].(type) {
		case string:
			dst = append(dst, core.Field{Key: key, Type: core.StringType, Str: v})
		case int64:
			dst = append(dst, core.Field{Key: key, Type: core.Int64Type, Int64: v})
		case float64:
			dst = append(dst, core.Field{Key: key, Type: core.Float64Type, Float64: v})
		case bool:
			var b int64
			if v {
				b = 1
			}
			dst = append(dst, core.Field{Key: key, Type: core.BoolType, Int64: b})
		case time.Time:
			dst = append(dst, core.Field{Key: key, Type: core.TimeType, Int64: v.UnixNano()})
		case time.Duration:
			dst = append(dst, core.Field{Key: key, Type: core.DurationType, Int64: int64(v)})
		case map[string]interface{}:
			dst = appendEncoded(dst, key, v)
		default:
			dst = append(dst, core.Field{Key: key, Type: core.AnyType, Any: v})
		}
	}
	return dst
}
