package formatter

import (
	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/style"
)

// 💥 and 🔬 take two terminal cells; the others are padded with a leading
// space so the level names line up.
var levelGlyphs = [core.NumLevels]string{
	core.TraceLevel: "🔬",
	core.DebugLevel: " ⚙️",
	core.InfoLevel:  " ℹ",
	core.WarnLevel:  " ⚠",
	core.ErrorLevel: "💥",
}

// level names padded to five columns
var levelLabels = [core.NumLevels]string{
	core.TraceLevel: "TRACE",
	core.DebugLevel: "DEBUG",
	core.InfoLevel:  "INFO ",
	core.WarnLevel:  "WARN ",
	core.ErrorLevel: "ERROR",
}

// levelGlyph returns the decorative glyph for l, or "" when emoji are off.
// l must be a valid level.
func levelGlyph(l core.Level, emoji bool) string {
	if !emoji {
		return ""
	}
	return levelGlyphs[l]
}

// writeLevel renders "{glyph} {LEVEL} " with the level name colored.
func writeLevel(buf *style.Buffer, l core.Level, emoji bool) error {
	if _, err := buf.WriteString(levelGlyph(l, emoji) + " "); err != nil {
		return err
	}
	if err := buf.WriteLevel(l, levelLabels[l]); err != nil {
		return err
	}
	_, err := buf.WriteString(" ")
	return err
}
