package logic

import (
	"strconv"
	"time"
)

// Due reports whether the sample interval has elapsed since the last actual
// sample. A state that has never been sampled is always due.
func (s *AnalogState) Due(now time.Time, cfg Config) bool {
	if s.LastSample.IsZero() {
		return true
	}
	return now.Sub(s.LastSample) >= cfg.SampleInterval
}

// Observe applies one actual sample. Readings at or below the noise floor
// count as zero, and the published value only moves when the reading differs
// from it by more than the hysteresis margin.
// Returns the published value and whether it changed.
func (s *AnalogState) Observe(raw int, now time.Time, cfg Config) (int, bool) {
	if raw <= cfg.NoiseFloor {
		raw = 0
	}
	s.Raw = raw
	s.LastSample = now

	if abs(raw-s.Published) > cfg.HysteresisMargin {
		s.Published = raw
		return raw, true
	}
	return s.Published, false
}

// Tick samples via read only when due; otherwise it is a no-op returning false.
func (s *AnalogState) Tick(now time.Time, cfg Config, read func() int) (int, bool) {
	if !s.Due(now, cfg) {
		return s.Published, false
	}
	return s.Observe(read(), now, cfg)
}

// AnalogText is the text shown in the analog region.
func AnalogText(v int) string {
	return strconv.Itoa(v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
