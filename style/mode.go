package style

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

// ColorMode controls whether style annotations produce escape codes
type ColorMode uint8

const (
	// Auto emits escapes only when the output is a terminal
	Auto ColorMode = iota
	// Always emits escapes regardless of the output
	Always
	// Never emits plain text
	Never
)

// String returns the lower-case name of the mode
func (m ColorMode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts "auto", "always" or "never" to a ColorMode.
// Unknown values map to Auto with ok == false.
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, true
	case "always":
		return Always, true
	case "never":
		return Never, true
	default:
		return Auto, false
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *ColorMode) UnmarshalText(text []byte) error {
	v, ok := ParseColorMode(string(text))
	if !ok {
		return &core.ParseError{Kind: "color mode", Value: string(text)}
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Profile resolves the mode against the writer that will receive output.
func (m ColorMode) Profile(w io.Writer) termenv.Profile {
	switch m {
	case Always:
		return termenv.ANSI
	case Never:
		return termenv.Ascii
	default:
		if isTerminal(w) {
			return termenv.ANSI
		}
		return termenv.Ascii
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
