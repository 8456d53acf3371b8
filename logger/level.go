package logger

import (
	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a string to a Level. Unknown names yield InfoLevel.
func ParseLevel(s string) Level {
	if l, ok := core.ParseLevel(s); ok {
		return l
	}
	return InfoLevel
}
