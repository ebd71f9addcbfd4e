//go:build linux

package sensor

import (
	"fmt"
	"log"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"
)

var adsChannels = []ads1x15.Channel{
	ads1x15.Channel0,
	ads1x15.Channel1,
	ads1x15.Channel2,
	ads1x15.Channel3,
}

// RealReader reads the sensor from actual hardware.
type RealReader struct {
	chip   *gpiocdev.Chip
	dPin   *gpiocdev.Line
	bus    i2c.BusCloser
	aPin   ads1x15.PinADC
	dError bool
	aError bool
}

// NewRealReader opens the digital line and the ADC channel.
func NewRealReader(opts Options) (*RealReader, error) {
	if opts.ADCChannel < 0 || opts.ADCChannel >= len(adsChannels) {
		return nil, fmt.Errorf("adc channel %d out of range 0-%d", opts.ADCChannel, len(adsChannels)-1)
	}

	chip, err := gpiocdev.NewChip(opts.Chip)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	lineOpts := []gpiocdev.LineReqOption{gpiocdev.AsInput, gpiocdev.WithPullUp}
	if opts.ActiveLow {
		lineOpts = append(lineOpts, gpiocdev.AsActiveLow)
	}
	dLine, err := chip.RequestLine(opts.PinDigital, lineOpts...)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request digital pin %d: %w", opts.PinDigital, err)
	}

	if _, err := host.Init(); err != nil {
		dLine.Close()
		chip.Close()
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	bus, err := i2creg.Open(opts.I2CBus)
	if err != nil {
		dLine.Close()
		chip.Close()
		return nil, fmt.Errorf("open i2c bus %q: %w", opts.I2CBus, err)
	}

	adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		bus.Close()
		dLine.Close()
		chip.Close()
		return nil, fmt.Errorf("init ads1115: %w", err)
	}

	// 4.096V full scale covers the module's 3.3V supply.
	aPin, err := adc.PinForChannel(adsChannels[opts.ADCChannel], 4096*physic.MilliVolt, 860*physic.Hertz, ads1x15.BestQuality)
	if err != nil {
		bus.Close()
		dLine.Close()
		chip.Close()
		return nil, fmt.Errorf("open adc channel %d: %w", opts.ADCChannel, err)
	}

	return &RealReader{
		chip: chip,
		dPin: dLine,
		bus:  bus,
		aPin: aPin,
	}, nil
}

// ReadDigital returns true when a magnet is detected.
// The line is requested active-low when configured, so the logical value
// already means "magnet present".
func (r *RealReader) ReadDigital() bool {
	v, err := r.dPin.Value()
	if err != nil {
		if !r.dError {
			log.Printf("sensor: read digital pin: %v", err)
			r.dError = true
		}
		return false
	}
	if r.dError {
		log.Printf("sensor: digital pin recovered")
		r.dError = false
	}
	return v == 1
}

// ReadAnalog performs one ADC conversion and scales it to 0-4095.
func (r *RealReader) ReadAnalog() int {
	s, err := r.aPin.Read()
	if err != nil {
		if !r.aError {
			log.Printf("sensor: read adc: %v", err)
			r.aError = true
		}
		return 0
	}
	if r.aError {
		log.Printf("sensor: adc recovered")
		r.aError = false
	}
	return sampleToNative(s)
}

func sampleToNative(s analog.Sample) int {
	return scaleADS1115(s.Raw)
}

// Close releases GPIO and I2C resources.
// The digital line is left as a plain input so the pin is in a neutral
// state for whatever runs next.
func (r *RealReader) Close() error {
	var errs []error

	if r.aPin != nil {
		if err := r.aPin.Halt(); err != nil {
			errs = append(errs, fmt.Errorf("halt adc pin: %w", err))
		}
	}
	if r.bus != nil {
		if err := r.bus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close i2c bus: %w", err))
		}
	}
	if r.dPin != nil {
		if err := r.dPin.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure digital pin: %w", err))
		}
		if err := r.dPin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close digital pin: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
