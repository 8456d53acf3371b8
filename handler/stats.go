package handler

import (
	"sync/atomic"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

// Stats tracks handler statistics
type Stats struct {
	// per-level counters, indexed by core.Level
	written  [core.NumLevels]atomic.Uint64
	filtered [core.NumLevels]atomic.Uint64
	// Failed counts records whose write returned an error
	failed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter for a level
func (s *Stats) IncrementWritten(level core.Level) {
	if level.Valid() {
		s.written[level].Add(1)
	}
}

// IncrementFiltered atomically increments the filtered counter for a level
func (s *Stats) IncrementFiltered(level core.Level) {
	if level.Valid() {
		s.filtered[level].Add(1)
	}
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetWritten returns the written count for a level
func (s *Stats) GetWritten(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.written[level].Load()
}

// GetFiltered returns the filtered count for a level
func (s *Stats) GetFiltered(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.filtered[level].Load()
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return s.failed.Load()
}

// GetTotalWritten returns the total written across all levels
func (s *Stats) GetTotalWritten() uint64 {
	var total uint64
	for i := range s.written {
		total += s.written[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.written {
		s.written[i].Store(0)
		s.filtered[i].Store(0)
	}
	s.failed.Store(0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Written  map[core.Level]uint64
	Filtered map[core.Level]uint64
	Failed   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Written:  make(map[core.Level]uint64, core.NumLevels),
		Filtered: make(map[core.Level]uint64, core.NumLevels),
		Failed:   s.GetFailed(),
	}
	for l := core.TraceLevel; l <= core.ErrorLevel; l++ {
		snap.Written[l] = s.GetWritten(l)
		snap.Filtered[l] = s.GetFiltered(l)
	}
	return snap
}
