// Package consolehandler provides a synchronous handler that renders
// records with a formatter.LineFormatter and writes them to an io.Writer.
//
// Each line is rendered into a pooled buffer and written with one Write
// call. Writers other than *os.File and io.Discard are guarded by a mutex
// so concurrent log calls never interleave bytes within a line.
//
// Colors are resolved once at construction: ColorMode Auto emits escape
// codes only when the writer is a terminal.
package consolehandler
