package core

import "strings"

// Precision selects how timestamps are rendered. Disabled suppresses the
// timestamp entirely.
type Precision uint8

const (
	// Disabled renders no timestamp
	Disabled Precision = iota
	// Seconds renders whole seconds (default)
	Seconds
	// Millis renders three fractional digits
	Millis
	// Micros renders six fractional digits
	Micros
	// Nanos renders nine fractional digits
	Nanos
)

// String returns the lower-case name of the precision
func (p Precision) String() string {
	switch p {
	case Disabled:
		return "disabled"
	case Seconds:
		return "seconds"
	case Millis:
		return "millis"
	case Micros:
		return "micros"
	case Nanos:
		return "nanos"
	default:
		return "unknown"
	}
}

// Layout returns the RFC3339 layout matching the precision. Disabled and
// unknown values return an empty layout.
func (p Precision) Layout() string {
	switch p {
	case Seconds:
		return "2006-01-02T15:04:05Z07:00"
	case Millis:
		return "2006-01-02T15:04:05.000Z07:00"
	case Micros:
		return "2006-01-02T15:04:05.000000Z07:00"
	case Nanos:
		return "2006-01-02T15:04:05.000000000Z07:00"
	default:
		return ""
	}
}

// ParsePrecision converts a name such as "millis" or "off" to a Precision.
func ParsePrecision(s string) (Precision, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "disable", "off", "none":
		return Disabled, true
	case "seconds", "secs", "s":
		return Seconds, true
	case "millis", "ms":
		return Millis, true
	case "micros", "us":
		return Micros, true
	case "nanos", "ns":
		return Nanos, true
	default:
		return Seconds, false
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so precisions can be
// read from YAML and flags.
func (p *Precision) UnmarshalText(text []byte) error {
	v, ok := ParsePrecision(string(text))
	if !ok {
		return &ParseError{Kind: "timestamp precision", Value: string(text)}
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (p Precision) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
