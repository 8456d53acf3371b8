package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/filter"
	"github.com/LuckyTurtleDev/my-env-logger-style/formatter"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler/consolehandler"
	"github.com/LuckyTurtleDev/my-env-logger-style/style"
)

const thisModule = "github.com/LuckyTurtleDev/my-env-logger-style/logger"

func newTestHandler(buf *bytes.Buffer, flt *filter.Filter) *consolehandler.ConsoleHandler {
	f := formatter.New(formatter.Options{DisableTimestamps: true})
	return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    buf,
		Formatter: f,
		ColorMode: style.Never,
		Filter:    flt,
	})
}

func TestLogger_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithHandler(newTestHandler(&buf, nil)).
		WithLevel(InfoLevel).
		WithModule("app").
		Build()

	logger.Trace("trace message")
	logger.Debug("debug message")
	assert.Zero(t, buf.Len(), "records below Info were written")

	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	assert.Equal(t,
		" ℹ INFO  app > info message\n"+
			" ⚠ WARN  app > warn message\n"+
			"💥 ERROR app > error message\n",
		buf.String())
}

func TestLogger_TraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithHandler(newTestHandler(&buf, nil)).
		WithLevel(TraceLevel).
		WithModule("m").
		Build()

	logger.Tracef("step %d", 1)
	assert.Equal(t, "🔬 TRACE m > step 1\n", buf.String())
}

func TestLogger_CallerModule(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithHandler(newTestHandler(&buf, nil)).
		WithCaller(true).
		Build()

	logger.Info("from test")
	assert.Contains(t, buf.String(), thisModule+" > from test\n")

	buf.Reset()
	logger.Infof("from %s", "infof")
	assert.Contains(t, buf.String(), thisModule+" > from infof\n")

	buf.Reset()
	logger.Log(WarnLevel, "from log")
	assert.Contains(t, buf.String(), thisModule+" > from log\n")
}

func TestLogger_ModuleFilter(t *testing.T) {
	flt, err := filter.Parse("warn,chatty=debug")
	require.NoError(t, err)

	var buf bytes.Buffer
	base := NewBuilder().
		WithHandler(newTestHandler(&buf, flt)).
		WithLevel(TraceLevel).
		Build()

	base.Named("quiet").Info("hidden")
	base.Named("chatty").Debug("shown")
	base.Named("chatty").Trace("too deep")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "too deep")

	assert.True(t, base.Named("chatty").Enabled(DebugLevel))
	assert.False(t, base.Named("quiet").Enabled(InfoLevel))
}

func TestLogger_NoHandler(t *testing.T) {
	logger := NewBuilder().Build()
	assert.NotPanics(t, func() { logger.Error("nowhere") })
	assert.False(t, logger.Enabled(ErrorLevel))
	assert.NoError(t, logger.Close())
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithHandler(newTestHandler(&buf, nil)).
		WithModule("m").
		Build()

	logger.Info("test",
		String("str", "value"),
		Int("int", 42),
		Bool("bool", true),
		Float64("float", 3.14),
		String("spaced", "a b"),
	)

	assert.Equal(t, ` ℹ INFO  m > test str=value int=42 bool=true float=3.14 spaced="a b"`+"\n", buf.String())
}

func TestLogger_FormattedLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithHandler(newTestHandler(&buf, nil)).
		Build()

	logger.Infof("User %s logged in with ID %d", "alice", 123)
	logger.Warnf("100%%")

	assert.Contains(t, buf.String(), "User alice logged in with ID 123\n")
	assert.Contains(t, buf.String(), "> 100%\n")
}

type countingStringer struct{ calls int }

func (c *countingStringer) String() string {
	c.calls++
	return "expensive"
}

// levelCounter keeps records by level and never reads their text
type levelCounter struct{ seen map[core.Level]int }

func (h *levelCounter) Handle(rec *core.Record) error {
	h.seen[rec.Level]++
	return nil
}

func (h *levelCounter) Close() error { return nil }

func TestLogger_FormatArgsResolvedOnDemand(t *testing.T) {
	arg := &countingStringer{}

	counter := &levelCounter{seen: map[core.Level]int{}}
	logger := NewBuilder().WithHandler(counter).WithModule("m").Build()
	logger.Infof("value %s", arg)
	logger.Logf(WarnLevel, "value %v", arg)
	assert.Equal(t, 1, counter.seen[core.InfoLevel])
	assert.Equal(t, 1, counter.seen[core.WarnLevel])
	assert.Zero(t, arg.calls, "arguments formatted for records nobody rendered")

	var buf bytes.Buffer
	closed := newTestHandler(&buf, nil)
	require.NoError(t, closed.Close())
	NewBuilder().WithHandler(closed).WithModule("m").Build().Infof("value %s", arg)
	assert.Zero(t, arg.calls)
	assert.Zero(t, buf.Len())

	NewBuilder().WithHandler(newTestHandler(&buf, nil)).WithModule("m").Build().Infof("value %s", arg)
	assert.Equal(t, 1, arg.calls)
	assert.Equal(t, " ℹ INFO  m > value expensive\n", buf.String())
}

func TestLogger_ImmutableWith(t *testing.T) {
	var buf bytes.Buffer
	parent := NewBuilder().
		WithHandler(newTestHandler(&buf, nil)).
		WithFields(String("parent", "value")).
		Build()

	child := parent.With(String("child", "value"))

	parent.Info("parent message")
	assert.Contains(t, buf.String(), "parent=value")
	assert.NotContains(t, buf.String(), "child=value")

	buf.Reset()
	child.Info("child message")
	assert.Contains(t, buf.String(), "parent=value child=value")
}

func TestLogger_Named(t *testing.T) {
	var buf bytes.Buffer
	parent := NewBuilder().
		WithHandler(newTestHandler(&buf, nil)).
		WithModule("parent").
		Build()

	parent.Named("child").Info("x")
	parent.Info("y")

	assert.Equal(t, " ℹ INFO  child > x\n ℹ INFO  parent > y\n", buf.String())
}

func TestLogger_OffGate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithHandler(newTestHandler(&buf, nil)).
		WithLevel(gateLevel(filter.Off)).
		Build()

	logger.Error("silenced")
	assert.Empty(t, buf.String())
	assert.False(t, logger.Enabled(ErrorLevel))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"trace":   TraceLevel,
		"DEBUG":   DebugLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestDefault_PackageFunctions(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	SetDefault(NewBuilder().
		WithHandler(newTestHandler(&buf, nil)).
		WithLevel(DebugLevel).
		WithCaller(true).
		Build())
	defer SetDefault(prev)

	Trace("hidden")
	Debug("dbg")
	Infof("n=%d", 1)
	Named("fixed").Warn("named")
	With(Int("k", 2)).Error("with")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, thisModule+" > dbg\n")
	assert.Contains(t, out, thisModule+" > n=1\n")
	assert.Contains(t, out, "fixed")
	assert.Contains(t, out, "> with k=2\n")
}

func BenchmarkLogger_LevelCheck(b *testing.B) {
	logger := NewBuilder().
		WithHandler(newTestHandler(&bytes.Buffer{}, nil)).
		WithLevel(InfoLevel).
		Build()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("debug message", String("key", "value"))
	}
}

func TestFieldHelpers(t *testing.T) {
	ts := time.Date(2024, 3, 4, 5, 6, 7, 0, time.FixedZone("CET", 3600))
	tests := []struct {
		field core.Field
		want  string
	}{
		{String("k", "v"), "v"},
		{Stringer("k", time.Second), "1s"},
		{Stringer("k", nil), "<nil>"},
		{Int64("k", -3), "-3"},
		{Bool("k", false), "false"},
		{Time("k", ts), "2024-03-04T04:06:07Z"},
		{Duration("k", 1500*time.Millisecond), "1.5s"},
		{Err(nil), "<nil>"},
		{NamedErr("cause", errors.New("boom")), "boom"},
		{Any("k", []int{1, 2}), "[1 2]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.field.StringValue(), tt.field.Key)
	}
	assert.Equal(t, "error", Err(nil).Key)
}
