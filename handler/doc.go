// Package handler provides the Handler interface that loggers dispatch
// records to, plus the statistics shared by the built-in handlers.
//
// Built-in handlers live in sub-packages:
//
//   - consolehandler renders records with the line formatter and writes
//     them to any io.Writer (default: stderr).
//   - sloghandler adapts a Handler to log/slog.Handler.
//   - zaphandler adapts a Handler to zapcore.Core so zap loggers print
//     styled lines.
//
// Handlers count written, filtered and failed records in Stats, which can
// be exported to Prometheus with NewStatsCollector.
package handler
