package formatter

import "sync/atomic"

// ModuleWidth tracks the widest module path rendered so far. The stored
// value only ever grows.
type ModuleWidth struct {
	v atomic.Int64
}

// GetAndGrow raises the stored width to n if n is larger and returns the
// width observed before this call's update. Concurrent callers never lose
// an update: after any burst the stored width is the largest n seen.
func (w *ModuleWidth) GetAndGrow(n int) int {
	cur := w.v.Load()
	for int64(n) > cur {
		if w.v.CompareAndSwap(cur, int64(n)) {
			return int(cur)
		}
		cur = w.v.Load()
	}
	return int(cur)
}

// Load returns the current width
func (w *ModuleWidth) Load() int {
	return int(w.v.Load())
}
