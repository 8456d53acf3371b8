package core

import (
	"runtime"
	"strings"
	"sync"
	"time"
)

// Record represents a single log record with all its metadata.
//
// The message is either the pre-rendered Message or, when MessageFunc is
// set, produced lazily by MessageFunc the first time Text is called.
type Record struct {
	Time        time.Time
	Level       Level
	Module      string
	Message     string
	MessageFunc func() string
	Fields      []Field
}

// Text returns the message text, resolving MessageFunc if present.
func (r *Record) Text() string {
	if r.MessageFunc != nil {
		r.Message = r.MessageFunc()
		r.MessageFunc = nil
	}
	return r.Message
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Fields: make([]Field, 0, 8),
		}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Fields = r.Fields[:0]
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Fields = r.Fields[:0]
	r.Module = ""
	r.Message = ""
	r.MessageFunc = nil
	recordPool.Put(r)
}

// moduleCache maps program counters to package paths so FuncForPC runs
// once per call site.
var moduleCache sync.Map // map[uintptr]string

// CallerModule returns the Go package path of the function skip frames
// above the caller, the equivalent of a module path for a log call site.
// It returns an empty string when the frame cannot be resolved.
func CallerModule(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return ModuleForPC(pc)
}

// ModuleForPC returns the package path of the function containing pc.
func ModuleForPC(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	if m, ok := moduleCache.Load(pc); ok {
		return m.(string)
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	m := PackagePath(fn.Name())
	moduleCache.Store(pc, m)
	return m
}

// PackagePath strips the function and receiver parts from a fully
// qualified function name such as "github.com/a/b.(*T).Method". The
// runtime escapes dots in the last path element as %2e; they are restored.
func PackagePath(funcName string) string {
	slash := strings.LastIndexByte(funcName, '/')
	dot := strings.IndexByte(funcName[slash+1:], '.')
	if dot >= 0 {
		funcName = funcName[:slash+1+dot]
	}
	return strings.ReplaceAll(funcName, "%2e", ".")
}

// ParseError reports a value that could not be converted to a level,
// level filter, precision or color mode.
type ParseError struct {
	Kind  string
	Value string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Kind + " " + `"` + e.Value + `"`
}
