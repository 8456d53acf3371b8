package formatter

import (
	"io"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/style"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log record and writes it directly to the writer
	FormatTo(rec *core.Record, w io.Writer) error
}

// StyledFormatter is an optional interface for formatters that accept a
// styler resolved by the caller against its own output.
type StyledFormatter interface {
	FormatStyledTo(rec *core.Record, w io.Writer, styler *style.Styler) error
}

// Don't keep very large buffers
const maxPooledBuffer = 64 * 1024

var (
	_ Formatter       = (*LineFormatter)(nil)
	_ WriterFormatter = (*LineFormatter)(nil)
	_ StyledFormatter = (*LineFormatter)(nil)
)
