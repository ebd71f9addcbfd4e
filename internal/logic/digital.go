package logic

import "time"

// Observe feeds one raw digital reading into the debounce filter.
// It returns the new stable value and true when a change should be rendered.
//
// Any raw transition restarts the debounce timer, so a flicker that returns
// to the stable value before the interval expires produces nothing.
func (s *DigitalState) Observe(raw bool, now time.Time, cfg Config) (bool, bool) {
	if raw != s.Raw {
		s.LastChange = now
	}
	s.Raw = raw

	if now.Sub(s.LastChange) > cfg.DebounceInterval && raw != s.Stable {
		s.Stable = raw
		return raw, true
	}
	return s.Stable, false
}

// DigitalText is the text shown in the digital region.
func DigitalText(magnet bool) string {
	if magnet {
		return "MAGNET DETECTED"
	}
	return "NO MAGNET"
}
