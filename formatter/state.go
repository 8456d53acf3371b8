package formatter

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"github.com/LuckyTurtleDev/my-env-logger-style/core"
)

// State holds the presentation toggles read by every RenderLine call.
// All accessors are lock-free. A render call reads each field once, so a
// toggle racing with it may be seen for one field and not another.
type State struct {
	showModule atomic.Bool
	showEmoji  atomic.Bool
	precision  atomic.Uint32
	width      ModuleWidth

	timestamps bool
}

func (s *State) init(timestamps bool) {
	s.showModule.Store(true)
	s.showEmoji.Store(true)
	s.timestamps = timestamps
	if timestamps {
		s.precision.Store(uint32(core.Seconds))
	} else {
		s.precision.Store(uint32(core.Disabled))
	}
}

// SetShowModule enables or disables the module segment
func (s *State) SetShowModule(show bool) {
	s.showModule.Store(show)
}

// ShowModule reports whether the module segment is rendered
func (s *State) ShowModule() bool {
	return s.showModule.Load()
}

// SetShowEmoji enables or disables the glyph before the level name
func (s *State) SetShowEmoji(show bool) {
	s.showEmoji.Store(show)
}

// ShowEmoji reports whether level glyphs are rendered
func (s *State) ShowEmoji() bool {
	return s.showEmoji.Load()
}

// TimestampsEnabled reports whether the formatter has a timestamp stage
func (s *State) TimestampsEnabled() bool {
	return s.timestamps
}

// SetTimestampPrecision sets the timestamp precision, or disables
// timestamps with core.Disabled.
func (s *State) SetTimestampPrecision(p core.Precision) error {
	if !s.timestamps {
		return ErrTimestampsDisabled
	}
	if _, ok := decodePrecision(uint32(p)); !ok {
		return errors.Wrapf(&core.ParseError{Kind: "timestamp precision", Value: p.String()},
			"formatter: precision %d", uint8(p))
	}
	s.precision.Store(uint32(p))
	return nil
}

// TimestampPrecision returns the current precision. It is always
// core.Disabled when the formatter has no timestamp stage.
func (s *State) TimestampPrecision() core.Precision {
	if !s.timestamps {
		return core.Disabled
	}
	p, _ := decodePrecision(s.precision.Load())
	return p
}

// PeekAndGrowModuleWidth returns the tracked module width and raises it
// to n if n is larger. Calling it ahead of time with the longest known
// module name gives consistent alignment from the first line.
func (s *State) PeekAndGrowModuleWidth(n int) int {
	return s.width.GetAndGrow(n)
}

// ModuleWidth returns the tracked module width without changing it
func (s *State) ModuleWidth() int {
	return s.width.Load()
}

func decodePrecision(v uint32) (core.Precision, bool) {
	switch core.Precision(v) {
	case core.Disabled:
		return core.Disabled, true
	case core.Seconds:
		return core.Seconds, true
	case core.Millis:
		return core.Millis, true
	case core.Micros:
		return core.Micros, true
	case core.Nanos:
		return core.Nanos, true
	default:
		return core.Seconds, false
	}
}
