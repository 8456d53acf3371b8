package logger

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LuckyTurtleDev/my-env-logger-style/config"
	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/env"
	"github.com/LuckyTurtleDev/my-env-logger-style/filter"
	"github.com/LuckyTurtleDev/my-env-logger-style/formatter"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler/consolehandler"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler/sloghandler"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler/zaphandler"
)

// ErrAlreadyInitialized is returned by JustLog after its first call
var ErrAlreadyInitialized = errors.New("logger: already initialized")

var initialized atomic.Bool

// Setup describes how the default builder is assembled. The zero value
// reads the process environment and the XDG config file and writes to
// stderr through the shared formatter.
type Setup struct {
	// Env supplies GO_LOG, GO_LOG_STYLE, GO_LOG_TIMESTAMP and NO_COLOR
	// (default: the process environment)
	Env env.Reader
	// ConfigFile is a YAML config path (default: searched in the XDG
	// config directories)
	ConfigFile string
	// SkipConfigFile disables the config file lookup
	SkipConfigFile bool
	// Writer receives the lines (default: os.Stderr)
	Writer io.Writer
	// Formatter renders the lines (default: formatter.Default())
	Formatter *formatter.LineFormatter
}

// Builder assembles a Builder from config file, environment and defaults.
// Invalid settings are skipped and reported in the error; the returned
// Builder is always usable.
func (s Setup) Builder() (*Builder, error) {
	var errs error

	cfg := config.Default()
	if !s.SkipConfigFile {
		path := s.ConfigFile
		if path == "" {
			path, _ = config.FindFile()
		}
		if path != "" {
			fileCfg, err := config.LoadFile(path)
			if err != nil {
				errs = multierr.Append(errs, err)
			} else {
				cfg = fileCfg
			}
		}
	}

	r := s.Env
	if r == nil {
		r = &env.OSReader{}
	}
	cfg, err := cfg.WithEnv(r)
	errs = multierr.Append(errs, err)

	f := s.Formatter
	if f == nil {
		f = formatter.Default()
	}
	errs = multierr.Append(errs, cfg.Apply(f))

	flt, err := cfg.BuildFilter()
	errs = multierr.Append(errs, err)

	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    s.Writer,
		Formatter: f,
		ColorMode: cfg.Style,
		Filter:    flt,
	})

	b := NewBuilder().
		WithHandler(h).
		WithLevel(gateLevel(flt.MaxLevel())).
		WithCaller(true)
	return b, errs
}

// NewDefaultBuilder returns a Builder for a logger that prints styled
// lines to stderr at Info and above, adjusted by the config file and the
// GO_LOG family of environment variables.
func NewDefaultBuilder() (*Builder, error) {
	return Setup{}.Builder()
}

// JustLog builds the default logger and registers it as the package
// default, the slog default and the zap globals. Only the first call has
// an effect; later calls return ErrAlreadyInitialized. A non-nil error
// from the first call reports skipped settings, the logger is installed
// regardless.
func JustLog() error {
	if !initialized.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}
	b, err := NewDefaultBuilder()
	Register(b.Build())
	return err
}

// Register makes l the package default logger and routes log/slog and zap
// global loggers through its handler.
func Register(l *Logger) {
	SetDefault(l)
	slog.SetDefault(l.Slog())
	zap.ReplaceGlobals(l.Zap())
}

// Slog returns a slog.Logger writing through l's handler at l's level.
func (l *Logger) Slog() *slog.Logger {
	level := slog.LevelError + 1
	if l.level != levelOff {
		level = sloghandler.LevelToSlog(l.level)
	}
	return slog.New(sloghandler.New(l.handler, &sloghandler.Options{
		Level:  level,
		Module: l.module,
	}))
}

// Zap returns a zap.Logger writing through l's handler at l's level.
func (l *Logger) Zap() *zap.Logger {
	level := zapcore.FatalLevel + 1
	if l.level != levelOff {
		level = zaphandler.LevelToZap(l.level)
	}
	var opts []zap.Option
	if l.includeCaller {
		opts = append(opts, zap.AddCaller())
	}
	z := zap.New(zaphandler.NewCore(l.handler, level), opts...)
	if l.module != "" {
		z = z.Named(l.module)
	}
	return z
}

// gateLevel converts a filter's most verbose level into a logger threshold
func gateLevel(lf filter.LevelFilter) core.Level {
	if l, ok := lf.MinLevel(); ok {
		return l
	}
	return levelOff
}
