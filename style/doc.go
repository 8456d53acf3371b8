// Package style resolves the presentation hints used by the line formatter
// (bold, dimmed, level-colored) to terminal escape codes or to nothing.
//
// A Styler is built once per output and decides, through its ColorMode,
// whether escapes are emitted at all. A Buffer couples an io.Writer with a
// Styler and is what formatters write into; styling never changes the
// visible text, only wraps it.
package style
