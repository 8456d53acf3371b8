// Package filter implements level filtering by module path using the
// directive syntax popularized by env_logger:
//
//	GO_LOG=info,app::db=debug,noisy=off
//
// The first bare level sets the default; "module=level" pairs override it
// for every module starting with that prefix, the longest prefix winning.
// Module names may be Go package paths containing slashes. An optional
// "/regex" after the last level additionally filters on the message text.
package filter
