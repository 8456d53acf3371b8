package consolehandler

import (
	"io"
	"os"
	"sync"
	"syscall"

	"github.com/cockroachdb/errors"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/filter"
	"github.com/LuckyTurtleDev/my-env-logger-style/formatter"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler"
	"github.com/LuckyTurtleDev/my-env-logger-style/style"
)

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("consolehandler: handler closed")

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. The formatter renders into its own pooled buffer and
// calls Write once per line, so the lock is held only during the I/O.
type lockedWriter struct {
	mu *sync.Mutex // points to handler's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: formatter.Default())
	Formatter *formatter.LineFormatter
	// ColorMode decides whether styles become escape codes (default: Auto)
	ColorMode style.ColorMode
	// Filter drops records before formatting (default: everything passes)
	Filter *filter.Filter
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// When true, the handler skips write-level locking. Automatically
	// detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.Default()
	}
}

// ConsoleHandler renders records synchronously on the caller's goroutine
// and writes each line with a single Write call.
type ConsoleHandler struct {
	writer    io.Writer
	out       io.Writer // writer, or lw when writes need serializing
	formatter *formatter.LineFormatter
	render    formatter.StyledFormatter
	styler    *style.Styler
	filter    *filter.Filter
	stats     *handler.Stats
	mu        sync.Mutex
	lw        lockedWriter
	closeOnce sync.Once
	closed    chan struct{}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		render:    cfg.Formatter,
		styler:    style.NewStyler(cfg.Writer, cfg.ColorMode),
		filter:    cfg.Filter,
		stats:     handler.NewStats(),
		closed:    make(chan struct{}),
	}
	h.lw = lockedWriter{mu: &h.mu, w: h.writer}
	if cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer) {
		h.out = h.writer
	} else {
		h.out = &h.lw
	}
	return h
}

// Enabled reports whether the filter lets records of level from module
// through. Without a filter everything is enabled.
func (h *ConsoleHandler) Enabled(level core.Level, module string) bool {
	return h.filter == nil || h.filter.Enabled(level, module)
}

// Handle filters, renders and writes rec. Write errors are returned as is.
func (h *ConsoleHandler) Handle(rec *core.Record) error {
	select {
	case <-h.closed:
		return ErrClosed
	default:
	}

	if h.filter != nil && !h.filter.Matches(rec) {
		h.stats.IncrementFiltered(rec.Level)
		return nil
	}

	if err := h.render.FormatStyledTo(rec, h.out, h.styler); err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementWritten(rec.Level)
	return nil
}

// Formatter returns the line formatter used by the handler
func (h *ConsoleHandler) Formatter() *formatter.LineFormatter {
	return h.formatter
}

// Filter returns the handler's filter, or nil
func (h *ConsoleHandler) Filter() *filter.Filter {
	return h.filter
}

// Sync flushes the writer if it supports it, as *os.File does.
func (h *ConsoleHandler) Sync() error {
	s, ok := h.writer.(interface{ Sync() error })
	if !ok {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := s.Sync(); err != nil && !isUnsupportedSync(err) {
		return err
	}
	return nil
}

// isUnsupportedSync reports errors returned by fsync on terminals and
// pipes, which are expected for stdout/stderr.
func isUnsupportedSync(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTSUP)
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Collector returns a Prometheus collector over the handler's statistics
func (h *ConsoleHandler) Collector(name string) *handler.StatsCollector {
	return handler.NewStatsCollector(name, h.stats)
}

// Close marks the handler closed. The writer is not closed.
func (h *ConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
	})
	return nil
}

var (
	_ handler.Handler       = (*ConsoleHandler)(nil)
	_ handler.Enabler       = (*ConsoleHandler)(nil)
	_ handler.StatsProvider = (*ConsoleHandler)(nil)
)
