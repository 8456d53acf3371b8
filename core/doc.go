// Package core defines the shared types used across the module.
//
// It provides the Level type (Trace through Error), the Record type that
// represents a single log event, the Precision type that selects the
// timestamp resolution, and the Field type for trailing key-value pairs.
//
// Record objects are pooled via sync.Pool. Callers get a Record with
// GetRecord and must return it with PutRecord once the handler has
// consumed it.
//
// A record's Module is the Go package path of the call site when the
// logger resolves callers (see CallerModule), or any caller-chosen name
// such as "db::pool" or a zap logger name.
package core
