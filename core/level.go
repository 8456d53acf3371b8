package core

import "strings"

// Level represents the severity level of a log record
type Level int8

const (
	// TraceLevel for very verbose diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// NumLevels is the number of defined levels. Tables indexed by Level use it
// as their length.
const NumLevels = int(ErrorLevel) + 1

var levelNames = [NumLevels]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= ErrorLevel
}

// ParseLevel converts a case-insensitive level name to a Level.
// The second return value is false for unknown names.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	default:
		return InfoLevel, false
	}
}
