// Command hall-display reads a KY-024 Hall sensor and shows the magnet state
// and field strength on a small display, redrawing only what changed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/hall-display/internal/logic"
	"github.com/sweeney/hall-display/internal/screen"
	"github.com/sweeney/hall-display/internal/sensor"
	"github.com/sweeney/hall-display/internal/status"
)

func main() {
	opts := sensor.DefaultOptions()

	poll := flag.Duration("poll", time.Millisecond, "Control loop polling interval")
	flag.StringVar(&opts.Chip, "chip", opts.Chip, "GPIO chip for the digital output")
	flag.IntVar(&opts.PinDigital, "pin", opts.PinDigital, "BCM pin number for the sensor's D0 output")
	flag.BoolVar(&opts.ActiveLow, "active-low", opts.ActiveLow, "D0 reads low when a magnet is present")
	flag.StringVar(&opts.I2CBus, "i2c", opts.I2CBus, "I2C bus shared by the ADC and OLED (empty for the first bus)")
	flag.IntVar(&opts.ADCChannel, "adc-channel", opts.ADCChannel, "ADS1115 input wired to the sensor's A0 output (0-3)")
	display := flag.String("display", "oled", `Display surface: "oled" (SSD1306 on I2C) or "term"`)
	printState := flag.Bool("print-state", false, "Print current readings and exit")

	flag.Parse()

	if err := run(opts, *poll, *display, *printState); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(opts sensor.Options, poll time.Duration, display string, printState bool) error {
	cfg := logic.DefaultConfig()
	statusCfg := status.NewConfig(cfg, poll, display)

	reader, err := sensor.NewRealReader(opts)
	if err != nil {
		return fmt.Errorf("init sensor: %w", err)
	}
	defer reader.Close()

	// Print state mode
	if printState {
		t := time.Now()
		fmt.Printf("%s\n", status.FormatJSON(readOnce(reader, cfg, statusCfg, t)))
		return nil
	}

	surface, err := openSurface(display, opts.I2CBus)
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer surface.Close()

	log.Printf("started: poll=%v debounce=%v sample=%v display=%s pin=%d adc=%d",
		poll, cfg.DebounceInterval, cfg.SampleInterval, display, opts.PinDigital, opts.ADCChannel)

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	_, err = runLoop(reader, surface, cfg, statusCfg, time.Now, ticker.C, sigCh)
	return err
}

// openSurface builds the display named by the -display flag.
func openSurface(kind, i2cBus string) (screen.Surface, error) {
	switch kind {
	case "oled":
		o, err := screen.OpenSSD1306(i2cBus)
		if err != nil {
			return nil, err
		}
		return o, nil
	case "term":
		return screen.NewTerminal(os.Stdout), nil
	}
	return nil, fmt.Errorf("unknown display %q", kind)
}

// readOnce takes a single undebounced reading of both channels.
func readOnce(reader sensor.Reader, cfg logic.Config, statusCfg status.Config, t time.Time) status.Snapshot {
	st := logic.NewState(t)
	magnet := reader.ReadDigital()
	st.Digital.Raw = magnet
	st.Digital.Stable = magnet
	st.Digital.Published = magnet
	st.Analog.Observe(reader.ReadAnalog(), t, cfg)

	return status.Snapshot{State: st, StartTime: t, Now: t, Config: statusCfg}
}

// runLoop draws the layout and initial values, then polls the sensor on
// every tick until a signal arrives. It returns the final state.
func runLoop(reader sensor.Reader, surface screen.Surface, cfg logic.Config, statusCfg status.Config, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) (logic.State, error) {
	startTime := now()
	state := logic.NewState(startTime)

	if err := surface.RenderStaticLayout(); err != nil {
		return state, fmt.Errorf("render layout: %w", err)
	}
	for _, cmd := range logic.InitialCommands(state) {
		if err := screen.Render(surface, cmd); err != nil {
			return state, fmt.Errorf("render initial %s: %w", cmd.Region, err)
		}
	}

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			snap := status.Snapshot{State: state, StartTime: startTime, Now: now(), Config: statusCfg}
			log.Printf("%s", status.FormatEvent(snap, "SHUTDOWN"))
			return state, nil

		case <-tick:
			t := now()
			in := logic.Input{Time: t, Digital: reader.ReadDigital()}
			if state.Analog.Due(t, cfg) {
				in.Analog = reader.ReadAnalog()
				in.AnalogSampled = true
			}

			var cmds []logic.Command
			state, cmds = logic.Step(cfg, state, in)

			for _, cmd := range cmds {
				if err := screen.Render(surface, cmd); err != nil {
					log.Printf("render %s: %v", cmd.Region, err)
					// Don't stop on a display fault
				}
			}
		}
	}
}
