package filter

import (
	"strings"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

// LevelFilter is the most verbose level a directive lets through. Off
// lets nothing through.
type LevelFilter int8

const (
	Off LevelFilter = iota
	Error
	Warn
	Info
	Debug
	Trace
)

var levelFilterNames = [...]string{
	Off:   "off",
	Error: "error",
	Warn:  "warn",
	Info:  "info",
	Debug: "debug",
	Trace: "trace",
}

// String returns the lower-case name of the filter
func (lf LevelFilter) String() string {
	if lf >= Off && lf <= Trace {
		return levelFilterNames[lf]
	}
	return "unknown"
}

// Allows reports whether records of level l pass the filter
func (lf LevelFilter) Allows(l core.Level) bool {
	if lf <= Off {
		return false
	}
	return l >= minLevel(lf)
}

// MinLevel returns the least severe level lf lets through. The second
// return value is false for Off.
func (lf LevelFilter) MinLevel() (core.Level, bool) {
	if lf <= Off {
		return core.ErrorLevel, false
	}
	return minLevel(lf), true
}

func minLevel(lf LevelFilter) core.Level {
	switch lf {
	case Error:
		return core.ErrorLevel
	case Warn:
		return core.WarnLevel
	case Info:
		return core.InfoLevel
	case Debug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// FromLevel returns the filter that lets l and everything above through
func FromLevel(l core.Level) LevelFilter {
	switch l {
	case core.TraceLevel:
		return Trace
	case core.DebugLevel:
		return Debug
	case core.InfoLevel:
		return Info
	case core.WarnLevel:
		return Warn
	default:
		return Error
	}
}

// ParseLevelFilter converts a name such as "debug" or "off" to a LevelFilter
func ParseLevelFilter(s string) (LevelFilter, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "off" {
		return Off, true
	}
	l, ok := core.ParseLevel(s)
	if !ok {
		return Off, false
	}
	return FromLevel(l), true
}

// UnmarshalText implements encoding.TextUnmarshaler
func (lf *LevelFilter) UnmarshalText(text []byte) error {
	v, ok := ParseLevelFilter(string(text))
	if !ok {
		return &core.ParseError{Kind: "level filter", Value: string(text)}
	}
	*lf = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (lf LevelFilter) MarshalText() ([]byte, error) {
	return []byte(lf.String()), nil
}
