package logger

import (
	"io"
	"testing"

	"github.com/LuckyTurtleDev/my-env-logger-style/filter"
	"github.com/LuckyTurtleDev/my-env-logger-style/formatter"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler/consolehandler"
)

func newBenchLogger(b *testing.B, flt *filter.Filter) *Logger {
	b.Helper()
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.New(formatter.Options{}),
		Filter:    flt,
	})
	b.Cleanup(func() { _ = h.Close() })

	return NewBuilder().
		WithHandler(h).
		WithLevel(InfoLevel).
		WithModule("bench::module").
		Build()
}

// BenchmarkInfoNoFields benchmarks Info() with no fields using a discard writer.
func BenchmarkInfoNoFields(b *testing.B) {
	logger := newBenchLogger(b, nil)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message")
	}
}

// BenchmarkInfoWith2Fields benchmarks Info() with 2 string fields.
func BenchmarkInfoWith2Fields(b *testing.B) {
	logger := newBenchLogger(b, nil)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message", String("key1", "value1"), String("key2", "value2"))
	}
}

// BenchmarkFilteredDebug benchmarks Debug() when level is Info (should be filtered).
func BenchmarkFilteredDebug(b *testing.B) {
	logger := newBenchLogger(b, nil)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Debug("debug message", String("key", "value"))
	}
}

// BenchmarkModuleFiltered benchmarks a record dropped by a module directive.
func BenchmarkModuleFiltered(b *testing.B) {
	flt, _ := filter.Parse("info,bench=off")
	logger := newBenchLogger(b, flt)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("dropped")
	}
}

// BenchmarkCallerModule benchmarks module lookup from the call site.
func BenchmarkCallerModule(b *testing.B) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.New(formatter.Options{}),
	})
	logger := NewBuilder().WithHandler(h).WithCaller(true).Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message")
	}
}
