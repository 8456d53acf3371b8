// Package zaphandler adapts a handler.Handler to zapcore.Core so that zap
// loggers print styled lines. The zap logger name becomes the module
// segment; fields are rendered as trailing key=value pairs.
package zaphandler
