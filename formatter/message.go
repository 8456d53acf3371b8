package formatter

import (
	"sync/atomic"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/style"
)

// ArgFormatter renders the message part of a line, line terminator
// included. It replaces the default rendering once installed, which lets
// callers redact or rewrite message text without changing the rest of
// the line. Implementations must be safe for concurrent use.
type ArgFormatter interface {
	FormatArgs(buf *style.Buffer, rec *core.Record) error
}

// ArgFormatterFunc adapts a function to the ArgFormatter interface
type ArgFormatterFunc func(buf *style.Buffer, rec *core.Record) error

// FormatArgs calls f(buf, rec)
func (f ArgFormatterFunc) FormatArgs(buf *style.Buffer, rec *core.Record) error {
	return f(buf, rec)
}

type argHolder struct {
	f ArgFormatter
}

// argSlot holds at most one ArgFormatter for its whole lifetime
type argSlot struct {
	p atomic.Pointer[argHolder]
}

func (s *argSlot) install(f ArgFormatter) error {
	if f == nil {
		return ErrNilArgFormatter
	}
	if !s.p.CompareAndSwap(nil, &argHolder{f: f}) {
		return ErrAlreadyInstalled
	}
	return nil
}

func (s *argSlot) load() ArgFormatter {
	if h := s.p.Load(); h != nil {
		return h.f
	}
	return nil
}

// writeMessage renders the default message segment: text, trailing
// fields and a newline.
func writeMessage(buf *style.Buffer, rec *core.Record) error {
	if _, err := buf.WriteString(rec.Text()); err != nil {
		return err
	}
	if len(rec.Fields) > 0 {
		var scratch [128]byte
		if _, err := buf.Write(core.AppendFields(scratch[:0], rec.Fields)); err != nil {
			return err
		}
	}
	_, err := buf.WriteString("\n")
	return err
}
