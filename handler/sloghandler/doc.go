// Package sloghandler provides an adapter from handler.Handler to
// log/slog.Handler, so records logged through the standard library are
// rendered as styled lines.
//
// The module segment of a line is taken from the package of the slog call
// site unless a fixed module is configured.
package sloghandler
