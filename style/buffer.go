package style

import (
	"io"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

// Buffer is the writable sink formatters render into. Every write goes
// straight to the underlying writer and returns its error.
type Buffer struct {
	w      io.Writer
	sw     io.StringWriter
	styler *Styler
}

// NewBuffer wraps w. A nil styler behaves like Plain().
func NewBuffer(w io.Writer, styler *Styler) *Buffer {
	b := &Buffer{}
	b.Reset(w, styler)
	return b
}

// Reset points the buffer at a new writer and styler so it can be reused.
func (b *Buffer) Reset(w io.Writer, styler *Styler) {
	if styler == nil {
		styler = Plain()
	}
	b.w = w
	b.sw, _ = w.(io.StringWriter)
	b.styler = styler
}

// Styler returns the styler used by the buffer
func (b *Buffer) Styler() *Styler {
	return b.styler
}

// Write implements io.Writer
func (b *Buffer) Write(p []byte) (int, error) {
	return b.w.Write(p)
}

// WriteString implements io.StringWriter
func (b *Buffer) WriteString(s string) (int, error) {
	if b.sw != nil {
		return b.sw.WriteString(s)
	}
	return b.w.Write([]byte(s))
}

// WriteBold writes s with a bold annotation
func (b *Buffer) WriteBold(s string) error {
	_, err := b.WriteString(b.styler.Bold(s))
	return err
}

// WriteDimmed writes s with a dimmed annotation
func (b *Buffer) WriteDimmed(s string) error {
	_, err := b.WriteString(b.styler.Dimmed(s))
	return err
}

// WriteLevel writes s in the color of level l
func (b *Buffer) WriteLevel(l core.Level, s string) error {
	_, err := b.WriteString(b.styler.Level(l, s))
	return err
}
