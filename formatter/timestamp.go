package formatter

import (
	"time"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/style"
)

// appendTimestamp appends t as an RFC3339 UTC timestamp with the number of
// fractional digits p asks for. Disabled appends nothing.
func appendTimestamp(dst []byte, t time.Time, p core.Precision) []byte {
	layout := p.Layout()
	if layout == "" {
		return dst
	}
	return t.UTC().AppendFormat(dst, layout)
}

// writeTimestamp renders the dimmed timestamp token and its trailing space.
func (f *LineFormatter) writeTimestamp(buf *style.Buffer, rec *core.Record, p core.Precision) error {
	if p == core.Disabled {
		return nil
	}
	t := rec.Time
	if t.IsZero() {
		t = f.clock()
	}
	var scratch [40]byte
	ts := appendTimestamp(scratch[:0], t, p)
	if err := buf.WriteDimmed(string(ts)); err != nil {
		return err
	}
	_, err := buf.WriteString(" ")
	return err
}
