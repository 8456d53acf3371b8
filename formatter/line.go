package formatter

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/style"
)

// Options configures a LineFormatter
type Options struct {
	// DisableTimestamps removes the timestamp stage. SetTimestampPrecision
	// then fails with ErrTimestampsDisabled.
	DisableTimestamps bool
	// DisableArgFormatter makes InstallArgFormatter fail with
	// ErrArgFormatterDisabled.
	DisableArgFormatter bool
	// Styler used by Format and FormatTo (default: plain text)
	Styler *style.Styler
	// Clock supplies the time for records without one (default: time.Now)
	Clock func() time.Time
}

// LineFormatter renders one styled line per record:
//
//	[timestamp ]{glyph} {LEVEL} [{module} > ]{message}
//
// Its presentation State is shared by every caller and may be changed at
// any time. A LineFormatter must not be copied after first use.
type LineFormatter struct {
	State

	args      argSlot
	allowArgs bool
	styler    *style.Styler
	clock     func() time.Time
	bufPool   sync.Pool
}

// New creates a LineFormatter with default presentation settings: module
// and emoji shown, seconds precision timestamps, module width 0.
func New(opts Options) *LineFormatter {
	f := &LineFormatter{
		allowArgs: !opts.DisableArgFormatter,
		styler:    opts.Styler,
		clock:     opts.Clock,
	}
	if f.styler == nil {
		f.styler = style.Plain()
	}
	if f.clock == nil {
		f.clock = time.Now
	}
	f.State.init(!opts.DisableTimestamps)
	f.bufPool.New = func() interface{} {
		lb := &lineBuf{}
		lb.buf.Grow(256)
		return lb
	}
	return f
}

// InstallArgFormatter sets the formatter used for the message segment.
// Only the first call succeeds; later calls return ErrAlreadyInstalled
// and leave the installed formatter in place.
func (f *LineFormatter) InstallArgFormatter(af ArgFormatter) error {
	if !f.allowArgs {
		return ErrArgFormatterDisabled
	}
	return f.args.install(af)
}

// ArgFormatter returns the installed argument formatter, if any
func (f *LineFormatter) ArgFormatter() ArgFormatter {
	return f.args.load()
}

// RenderLine writes the line for rec to buf. It stops at the first write
// error and returns it; segments already written are not rolled back.
func (f *LineFormatter) RenderLine(buf *style.Buffer, rec *core.Record) error {
	if f.timestamps {
		if err := f.writeTimestamp(buf, rec, f.TimestampPrecision()); err != nil {
			return err
		}
	}

	if err := writeLevel(buf, rec.Level, f.ShowEmoji()); err != nil {
		return err
	}

	if f.ShowModule() {
		if err := f.writeModule(buf, rec.Module); err != nil {
			return err
		}
	}

	if af := f.args.load(); af != nil {
		return af.FormatArgs(buf, rec)
	}
	return writeMessage(buf, rec)
}

// writeModule renders "{module padded to the tracked width} > ".
func (f *LineFormatter) writeModule(buf *style.Buffer, module string) error {
	n := utf8.RuneCountInString(module)
	width := f.width.GetAndGrow(n)
	if err := buf.WriteDimmed(module); err != nil {
		return err
	}
	pad := 1
	if width > n {
		pad += width - n
	}
	if _, err := buf.WriteString(spaces(pad)); err != nil {
		return err
	}
	if err := buf.WriteBold(">"); err != nil {
		return err
	}
	_, err := buf.WriteString(" ")
	return err
}

const spaceRun = "                                                                "

func spaces(n int) string {
	if n <= len(spaceRun) {
		return spaceRun[:n]
	}
	return strings.Repeat(" ", n)
}

// lineBuf pairs a byte buffer with a style.Buffer writing into it
type lineBuf struct {
	buf bytes.Buffer
	sb  style.Buffer
}

func (f *LineFormatter) getLineBuf(styler *style.Styler) *lineBuf {
	lb := f.bufPool.Get().(*lineBuf)
	lb.buf.Reset()
	lb.sb.Reset(&lb.buf, styler)
	return lb
}

func (f *LineFormatter) putLineBuf(lb *lineBuf) {
	if lb.buf.Cap() > maxPooledBuffer {
		return
	}
	f.bufPool.Put(lb)
}

// Format renders rec with the formatter's own styler and returns the bytes
func (f *LineFormatter) Format(rec *core.Record) ([]byte, error) {
	lb := f.getLineBuf(f.styler)
	defer f.putLineBuf(lb)

	if err := f.RenderLine(&lb.sb, rec); err != nil {
		return nil, err
	}
	result := make([]byte, lb.buf.Len())
	copy(result, lb.buf.Bytes())
	return result, nil
}

// FormatTo renders rec into a pooled buffer and writes it to w with a
// single Write call.
func (f *LineFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	return f.FormatStyledTo(rec, w, f.styler)
}

// FormatStyledTo is FormatTo with an explicit styler, typically one
// resolved against w.
func (f *LineFormatter) FormatStyledTo(rec *core.Record, w io.Writer, styler *style.Styler) error {
	lb := f.getLineBuf(styler)
	err := f.RenderLine(&lb.sb, rec)
	if err == nil {
		_, err = w.Write(lb.buf.Bytes())
	}
	f.putLineBuf(lb)
	return err
}
