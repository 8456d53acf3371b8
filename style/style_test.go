package style

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   ColorMode
		wantOK bool
	}{
		{"", Auto, true},
		{"auto", Auto, true},
		{"ALWAYS", Always, true},
		{"never", Never, true},
		{"sometimes", Auto, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseColorMode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestColorMode_Profile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, termenv.ANSI, Always.Profile(&buf))
	assert.Equal(t, termenv.Ascii, Never.Profile(&buf))
	// A bytes.Buffer is never a terminal.
	assert.Equal(t, termenv.Ascii, Auto.Profile(&buf))
}

func TestStyler_PlainLeavesTextUntouched(t *testing.T) {
	t.Parallel()

	s := NewStyler(&bytes.Buffer{}, Never)
	require.True(t, s.IsPlain())
	assert.Equal(t, "x", s.Bold("x"))
	assert.Equal(t, "x", s.Dimmed("x"))
	assert.Equal(t, "x", s.Level(core.ErrorLevel, "x"))
}

func TestStyler_AlwaysEmitsEscapes(t *testing.T) {
	t.Parallel()

	s := NewStyler(&bytes.Buffer{}, Always)
	require.False(t, s.IsPlain())

	for _, out := range []string{
		s.Bold(">"),
		s.Dimmed("db::pool"),
		s.Level(core.WarnLevel, "WARN "),
	} {
		assert.Contains(t, out, "\x1b[")
	}
	assert.Contains(t, s.Level(core.InfoLevel, "INFO "), "INFO ")
	assert.Empty(t, s.Bold(""))
}

func TestBuffer_Writes(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	b := NewBuffer(&out, nil)

	require.NoError(t, b.WriteDimmed("ts"))
	_, err := b.WriteString(" ")
	require.NoError(t, err)
	require.NoError(t, b.WriteLevel(core.InfoLevel, "INFO"))
	require.NoError(t, b.WriteBold(">"))
	_, err = b.Write([]byte("!\n"))
	require.NoError(t, err)

	assert.Equal(t, "ts INFO>!\n", out.String())
}

type failingWriter struct{}

var errBroken = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestBuffer_PropagatesWriteErrors(t *testing.T) {
	t.Parallel()

	b := NewBuffer(failingWriter{}, Plain())
	err := b.WriteBold(">")
	assert.ErrorIs(t, err, errBroken)

	_, err = b.WriteString(strings.Repeat("x", 3))
	assert.ErrorIs(t, err, errBroken)
}
