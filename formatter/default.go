package formatter

import (
	"sync"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/style"
)

var (
	defaultOnce      sync.Once
	defaultFormatter *LineFormatter
)

// Default returns the process-wide LineFormatter, creating it with
// default options on first use.
func Default() *LineFormatter {
	defaultOnce.Do(func() {
		defaultFormatter = New(Options{})
	})
	return defaultFormatter
}

// RenderLine renders rec into buf with the default formatter
func RenderLine(buf *style.Buffer, rec *core.Record) error {
	return Default().RenderLine(buf, rec)
}

// SetShowModule enables or disables the module segment of the default formatter
func SetShowModule(show bool) {
	Default().SetShowModule(show)
}

// SetShowEmoji enables or disables level glyphs of the default formatter
func SetShowEmoji(show bool) {
	Default().SetShowEmoji(show)
}

// SetTimestampPrecision sets the timestamp precision of the default formatter
func SetTimestampPrecision(p core.Precision) error {
	return Default().SetTimestampPrecision(p)
}

// PeekAndGrowModuleWidth returns the module width of the default formatter
// and raises it to n if n is larger.
func PeekAndGrowModuleWidth(n int) int {
	return Default().PeekAndGrowModuleWidth(n)
}

// InstallArgFormatter installs af on the default formatter. It can only
// succeed once per process.
func InstallArgFormatter(af ArgFormatter) error {
	return Default().InstallArgFormatter(af)
}
