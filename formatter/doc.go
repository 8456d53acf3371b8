// Package formatter renders log records as single styled lines.
//
// A LineFormatter composes four segments in a fixed order: an optional
// dimmed RFC3339 timestamp, the level glyph and name, the module path
// padded to the widest module seen so far followed by a bold ">", and the
// message. The presentation toggles live in State and are plain atomics,
// so they can be flipped while other goroutines are logging; each render
// reads every toggle once.
//
// The module width only grows. PeekAndGrowModuleWidth can be called up
// front with the longest expected module name to get aligned output from
// the first line. Lines racing with a width increase may be misaligned.
//
// The message segment can be replaced once per formatter with an
// ArgFormatter, for example to redact sensitive values:
//
//	err := f.InstallArgFormatter(formatter.ArgFormatterFunc(
//	    func(buf *style.Buffer, rec *core.Record) error {
//	        _, err := fmt.Fprintln(buf, redact(rec.Text()))
//	        return err
//	    }))
//
// The installed formatter writes the line terminator itself. A second
// install returns ErrAlreadyInstalled.
//
// Package-level functions operate on a lazily created default formatter.
// Tests and libraries that need isolation should construct their own with
// New.
package formatter
