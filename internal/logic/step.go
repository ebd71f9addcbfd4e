package logic

import "time"

// NewState returns the neutral startup state: no magnet, zero field, and the
// debounce timer anchored at start.
func NewState(start time.Time) State {
	return State{
		Digital: DigitalState{LastChange: start},
	}
}

// InitialCommands renders the current values of both channels. Used once at
// startup after the static layout is drawn.
func InitialCommands(s State) []Command {
	return []Command{
		{Region: RegionDigital, Text: DigitalText(s.Digital.Published)},
		{Region: RegionAnalog, Text: AnalogText(s.Analog.Published)},
	}
}

// Step is the body of the control loop. It takes the state by value and
// returns the next state plus the regions to redraw.
// The digital command, if any, always precedes the analog command.
func Step(cfg Config, s State, in Input) (State, []Command) {
	var cmds []Command

	if v, changed := s.Digital.Observe(in.Digital, in.Time, cfg); changed {
		s.Digital.Published = v
		s.Counts.DigitalChanges++
		cmds = append(cmds, Command{Region: RegionDigital, Text: DigitalText(v)})
	}

	if in.AnalogSampled {
		s.Counts.AnalogSamples++
		if v, changed := s.Analog.Observe(in.Analog, in.Time, cfg); changed {
			s.Counts.AnalogChanges++
			cmds = append(cmds, Command{Region: RegionAnalog, Text: AnalogText(v)})
		}
	}

	return s, cmds
}
