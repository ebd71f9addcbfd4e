// Package sensor reads the KY-024 Hall sensor module with hardware abstraction.
// The real implementation uses the Linux GPIO character device for the
// digital output and an ADS1115 ADC on I2C for the analog output.
// The fake implementation allows testing without hardware.
package sensor

// Reader samples the sensor's two outputs.
// Neither read reports an error: a failed read yields the neutral value
// (no magnet, zero field) and is logged by the implementation.
type Reader interface {
	// ReadDigital returns true when a magnet is detected.
	ReadDigital() bool

	// ReadAnalog returns the field strength in the 12-bit range 0-4095.
	ReadAnalog() int

	// Close releases hardware resources.
	Close() error
}

// Wiring defaults (BCM numbering).
const (
	DefaultChip       = "gpiochip0"
	DefaultPinDigital = 17 // KY-024 D0
	DefaultADCChannel = 0  // KY-024 A0 on ADS1115 A0
)

// Options describes how the module is wired to the host.
type Options struct {
	Chip       string // GPIO character device, e.g. "gpiochip0"
	PinDigital int    // line offset of D0
	ActiveLow  bool   // D0 pulls low when a magnet is present
	I2CBus     string // periph bus name; empty selects the first bus
	ADCChannel int    // ADS1115 single-ended input 0-3
}

// DefaultOptions returns the wiring used by the reference build.
func DefaultOptions() Options {
	return Options{
		Chip:       DefaultChip,
		PinDigital: DefaultPinDigital,
		ActiveLow:  true,
		ADCChannel: DefaultADCChannel,
	}
}

// MaxAnalog is the top of the native analog range.
const MaxAnalog = 4095

// scaleADS1115 maps a signed 16-bit single-ended conversion onto 0-MaxAnalog.
// Single-ended readings only use the positive half of the range.
func scaleADS1115(raw int32) int {
	if raw <= 0 {
		return 0
	}
	v := int(raw >> 3)
	if v > MaxAnalog {
		return MaxAnalog
	}
	return v
}
