package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

// level colors follow the usual terminal logger palette
var levelColors = [core.NumLevels]lipgloss.ANSIColor{
	core.TraceLevel: 6, // cyan
	core.DebugLevel: 4, // blue
	core.InfoLevel:  2, // green
	core.WarnLevel:  3, // yellow
	core.ErrorLevel: 1, // red
}

// Styler renders style annotations for one output. It is immutable after
// construction and safe for concurrent use.
type Styler struct {
	plain  bool
	bold   lipgloss.Style
	dimmed lipgloss.Style
	levels [core.NumLevels]lipgloss.Style
}

// NewStyler creates a Styler for w. The mode decides whether escapes are
// emitted; Auto checks whether w is a terminal.
func NewStyler(w io.Writer, mode ColorMode) *Styler {
	profile := mode.Profile(w)
	if profile == termenv.Ascii {
		return Plain()
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	s := &Styler{
		bold:   r.NewStyle().Bold(true),
		dimmed: r.NewStyle().Faint(true),
	}
	for l, c := range levelColors {
		st := r.NewStyle().Foreground(c)
		if core.Level(l) == core.ErrorLevel {
			st = st.Bold(true)
		}
		s.levels[l] = st
	}
	return s
}

// Plain returns a Styler that never emits escapes
func Plain() *Styler {
	return &Styler{plain: true}
}

// IsPlain reports whether the styler emits plain text only
func (s *Styler) IsPlain() bool {
	return s == nil || s.plain
}

// Bold wraps str in a bold/high-emphasis annotation
func (s *Styler) Bold(str string) string {
	if s.IsPlain() || str == "" {
		return str
	}
	return s.bold.Render(str)
}

// Dimmed wraps str in a dimmed/low-emphasis annotation
func (s *Styler) Dimmed(str string) string {
	if s.IsPlain() || str == "" {
		return str
	}
	return s.dimmed.Render(str)
}

// Level wraps str in the color of level l
func (s *Styler) Level(l core.Level, str string) string {
	if s.IsPlain() || str == "" || !l.Valid() {
		return str
	}
	return s.levels[l].Render(str)
}
