// Package logger is the public API. Most programs call JustLog once and
// then use the package-level functions, log/slog or zap:
//
//	func main() {
//	    _ = logger.JustLog()
//	    logger.Info("ready", logger.Int("port", 8080))
//	}
//
// JustLog reads GO_LOG (filter directives such as
// "info,db::pool=debug"), GO_LOG_STYLE, GO_LOG_TIMESTAMP, NO_COLOR and
// an optional YAML file in the XDG config directory, then prints styled
// lines to stderr.
//
// A Logger is immutable after construction; the level, module, fields
// and handler are set once via the Builder. Child loggers are created
// with With and Named:
//
//	reqLog := log.Named("http").With(logger.String("request_id", id))
//
// Without a fixed module and with WithCaller(true) each record carries
// the Go package path of its call site as module.
//
// Level checks happen before any allocation, so records below the
// threshold cost a single integer comparison.
package logger
