// Package logic contains the pure sampling, debounce and change-detection
// rules for the Hall sensor display.
// This package has NO external dependencies (no GPIO, I2C, display, OS, or time.Sleep).
// Time is always injectable via time.Time parameters.
package logic

import "time"

// Fixed thresholds, in the sensor's native 12-bit units where applicable.
const (
	DebounceInterval = 50 * time.Millisecond
	SampleInterval   = 100 * time.Millisecond
	NoiseFloor       = 50
	HysteresisMargin = 10
)

// Config holds the filter thresholds. Production code always uses
// DefaultConfig; tests may compress the time scale.
type Config struct {
	DebounceInterval time.Duration
	SampleInterval   time.Duration
	NoiseFloor       int
	HysteresisMargin int
}

// DefaultConfig returns the fixed production thresholds.
func DefaultConfig() Config {
	return Config{
		DebounceInterval: DebounceInterval,
		SampleInterval:   SampleInterval,
		NoiseFloor:       NoiseFloor,
		HysteresisMargin: HysteresisMargin,
	}
}

// DigitalState tracks debounce state for the magnet-present signal.
type DigitalState struct {
	// Most recent instantaneous reading
	Raw bool
	// Last reading that stayed constant for longer than the debounce interval
	Stable bool
	// Last value handed to the display
	Published bool
	// Time of the last observed raw transition
	LastChange time.Time
}

// AnalogState tracks cadence and hysteresis state for the field strength signal.
type AnalogState struct {
	// Most recent sample, after noise floor clamping
	Raw int
	// Last value handed to the display
	Published int
	// Time of the last actual sample; zero means never sampled
	LastSample time.Time
}

// Counts tracks how often each channel changed since startup.
type Counts struct {
	DigitalChanges int
	AnalogChanges  int
	AnalogSamples  int
}

// State is everything the control loop owns.
type State struct {
	Digital DigitalState
	Analog  AnalogState
	Counts  Counts
}

// Region identifies a fixed area of the display.
type Region int

const (
	RegionDigital Region = iota
	RegionAnalog
)

func (r Region) String() string {
	switch r {
	case RegionDigital:
		return "digital"
	case RegionAnalog:
		return "analog"
	}
	return "unknown"
}

// Command asks the display to overwrite one region with new text.
type Command struct {
	Region Region
	Text   string
}

// Input is one iteration's worth of raw readings.
type Input struct {
	Time    time.Time
	Digital bool // true = magnet present (already corrected for active-low wiring)
	// Analog is only meaningful when AnalogSampled is set. The caller reads
	// the ADC only when AnalogState.Due reports true.
	Analog        int
	AnalogSampled bool
}
