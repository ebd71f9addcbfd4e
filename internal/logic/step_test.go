package logic

import (
	"testing"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState(epoch)

	if s.Digital.Raw || s.Digital.Stable || s.Digital.Published {
		t.Error("digital should start as no magnet")
	}
	if !s.Digital.LastChange.Equal(epoch) {
		t.Errorf("LastChange: got %v, want %v", s.Digital.LastChange, epoch)
	}
	if s.Analog.Published != 0 || s.Analog.Raw != 0 {
		t.Error("analog should start at 0")
	}
	if !s.Analog.LastSample.IsZero() {
		t.Error("analog should start never sampled")
	}
}

func TestInitialCommands(t *testing.T) {
	cmds := InitialCommands(NewState(epoch))

	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if cmds[0] != (Command{Region: RegionDigital, Text: "NO MAGNET"}) {
		t.Errorf("cmd 0: got %+v", cmds[0])
	}
	if cmds[1] != (Command{Region: RegionAnalog, Text: "0"}) {
		t.Errorf("cmd 1: got %+v", cmds[1])
	}
}

func TestStepNoCommandsWhenNothingChanges(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch)

	s, cmds := Step(cfg, s, Input{Time: epoch, Digital: false, Analog: 30, AnalogSampled: true})
	if len(cmds) != 0 {
		t.Errorf("expected no commands, got %+v", cmds)
	}
	if s.Counts.AnalogSamples != 1 {
		t.Errorf("AnalogSamples: got %d, want 1", s.Counts.AnalogSamples)
	}
}

func TestStepSkipsAnalogWhenNotSampled(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch)

	next, cmds := Step(cfg, s, Input{Time: epoch, Analog: 3000})
	if len(cmds) != 0 {
		t.Errorf("expected no commands, got %+v", cmds)
	}
	if next.Analog.Published != 0 {
		t.Errorf("analog should not move without a sample, got %d", next.Analog.Published)
	}
	if next.Counts.AnalogSamples != 0 {
		t.Errorf("AnalogSamples: got %d, want 0", next.Counts.AnalogSamples)
	}
}

func TestStepDigitalBeforeAnalog(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch)

	s, _ = Step(cfg, s, Input{Time: epoch, Digital: true})
	s, cmds := Step(cfg, s, Input{Time: epoch.Add(ms(60)), Digital: true, Analog: 1234, AnalogSampled: true})

	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %+v", cmds)
	}
	if cmds[0].Region != RegionDigital || cmds[0].Text != "MAGNET DETECTED" {
		t.Errorf("cmd 0: got %+v", cmds[0])
	}
	if cmds[1].Region != RegionAnalog || cmds[1].Text != "1234" {
		t.Errorf("cmd 1: got %+v", cmds[1])
	}
	if !s.Digital.Published {
		t.Error("digital Published should be set")
	}
	if s.Analog.Published != 1234 {
		t.Errorf("analog Published: got %d", s.Analog.Published)
	}
	if s.Counts.DigitalChanges != 1 || s.Counts.AnalogChanges != 1 {
		t.Errorf("unexpected counts %+v", s.Counts)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch)

	next, _ := Step(cfg, s, Input{Time: epoch.Add(ms(10)), Digital: true, Analog: 900, AnalogSampled: true})

	if s.Digital.Raw || s.Analog.Published != 0 {
		t.Error("Step modified its input state")
	}
	if !next.Digital.Raw || next.Analog.Published != 900 {
		t.Error("Step did not return the updated state")
	}
}

func TestStepPublishedStableUnderFastFlicker(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch)

	raw := false
	for tm := 0; tm < 3000; tm++ {
		if tm%25 == 0 {
			raw = !raw
		}
		in := Input{Time: epoch.Add(ms(tm)), Digital: raw}
		var cmds []Command
		s, cmds = Step(cfg, s, in)
		for _, c := range cmds {
			if c.Region == RegionDigital {
				t.Fatalf("t=%d: digital redraw during flicker", tm)
			}
		}
	}
	if s.Counts.DigitalChanges != 0 {
		t.Errorf("DigitalChanges: got %d, want 0", s.Counts.DigitalChanges)
	}
}

func TestRegionString(t *testing.T) {
	if RegionDigital.String() != "digital" {
		t.Errorf("got %q", RegionDigital.String())
	}
	if RegionAnalog.String() != "analog" {
		t.Errorf("got %q", RegionAnalog.String())
	}
	if Region(9).String() != "unknown" {
		t.Errorf("got %q", Region(9).String())
	}
}
