package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string      `json:"event,omitempty"`
	Digital       DigitalJSON `json:"digital"`
	Analog        AnalogJSON  `json:"analog"`
	UptimeSeconds int64       `json:"uptime_seconds"`
	StartTime     string      `json:"start_time"`
	Timestamp     string      `json:"timestamp"`
	Counts        CountsJSON  `json:"counts"`
	Config        ConfigJSON  `json:"config"`
}

// DigitalJSON reports the magnet channel.
type DigitalJSON struct {
	State string `json:"state"`
	Raw   string `json:"raw"`
}

// AnalogJSON reports the field strength channel.
type AnalogJSON struct {
	Value int `json:"value"`
	Raw   int `json:"raw"`
}

// CountsJSON is the JSON representation of change counts.
type CountsJSON struct {
	DigitalChanges int `json:"digital_changes"`
	AnalogChanges  int `json:"analog_changes"`
	AnalogSamples  int `json:"analog_samples"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs     int64  `json:"poll_ms"`
	DebounceMs int64  `json:"debounce_ms"`
	SampleMs   int64  `json:"sample_ms"`
	NoiseFloor int    `json:"noise_floor"`
	Hysteresis int    `json:"hysteresis"`
	Display    string `json:"display"`
}

func magnetState(on bool) string {
	if on {
		return "MAGNET"
	}
	return "NO_MAGNET"
}

func buildInner(snap Snapshot) StatusInner {
	s := snap.State
	return StatusInner{
		Digital: DigitalJSON{
			State: magnetState(s.Digital.Published),
			Raw:   magnetState(s.Digital.Raw),
		},
		Analog: AnalogJSON{
			Value: s.Analog.Published,
			Raw:   s.Analog.Raw,
		},
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		Counts: CountsJSON{
			DigitalChanges: s.Counts.DigitalChanges,
			AnalogChanges:  s.Counts.AnalogChanges,
			AnalogSamples:  s.Counts.AnalogSamples,
		},
		Config: ConfigJSON{
			PollMs:     snap.Config.PollMs,
			DebounceMs: snap.Config.DebounceMs,
			SampleMs:   snap.Config.SampleMs,
			NoiseFloor: snap.Config.NoiseFloor,
			Hysteresis: snap.Config.Hysteresis,
			Display:    snap.Config.Display,
		},
	}
}

// FormatJSON returns the indented JSON status for -print-state.
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}

// FormatEvent returns a single-line JSON status tagged with an event name,
// e.g. "SHUTDOWN", for the log.
func FormatEvent(snap Snapshot, event string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
