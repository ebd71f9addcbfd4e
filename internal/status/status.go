// Package status formats a point-in-time view of the display daemon for
// logs and the -print-state mode.
package status

import (
	"time"

	"github.com/sweeney/hall-display/internal/logic"
)

// Config contains daemon configuration for display.
type Config struct {
	PollMs     int64
	DebounceMs int64
	SampleMs   int64
	NoiseFloor int
	Hysteresis int
	Display    string
}

// NewConfig builds a Config from the filter thresholds and loop settings.
func NewConfig(cfg logic.Config, poll time.Duration, display string) Config {
	return Config{
		PollMs:     poll.Milliseconds(),
		DebounceMs: cfg.DebounceInterval.Milliseconds(),
		SampleMs:   cfg.SampleInterval.Milliseconds(),
		NoiseFloor: cfg.NoiseFloor,
		Hysteresis: cfg.HysteresisMargin,
		Display:    display,
	}
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type; logic.State holds no pointers.
type Snapshot struct {
	State     logic.State
	StartTime time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}
