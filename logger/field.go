package logger

import (
	"fmt"
	"time"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

// Field constructors. Fields render after the message as key=value.

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

// Stringer creates a string field from val.String(), evaluated now
func Stringer(key string, val fmt.Stringer) core.Field {
	if val == nil {
		return String(key, "<nil>")
	}
	return String(key, val.String())
}

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

// Float64 creates a float64 field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool creates a bool field
func Bool(key string, val bool) core.Field {
	f := core.Field{Key: key, Type: core.BoolType}
	if val {
		f.Int64 = 1
	}
	return f
}

// Time creates a time field, rendered in UTC
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err creates an "error" field. A nil error renders as <nil>.
func Err(err error) core.Field {
	return NamedErr("error", err)
}

// NamedErr creates an error field under key
func NamedErr(key string, err error) core.Field {
	msg := "<nil>"
	if err != nil {
		msg = err.Error()
	}
	return core.Field{Key: key, Type: core.ErrorType, Str: msg}
}

// Any creates a field rendered with fmt's %v
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}
