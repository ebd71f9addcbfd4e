package logic

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestDigitalNoChangeForStableReading(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch).Digital

	for i := 0; i < 20; i++ {
		if _, changed := s.Observe(false, epoch.Add(ms(i*10)), cfg); changed {
			t.Fatalf("iteration %d: unexpected change for stable reading", i)
		}
	}
	if s.Stable {
		t.Error("expected stable value to remain no magnet")
	}
}

func TestDigitalScenarioTransitionAt20(t *testing.T) {
	// HIGH, HIGH, then LOW from t=20 onwards, sampled every 10ms.
	// Logical value: magnet present from t=20.
	cfg := DefaultConfig()
	s := NewState(epoch).Digital

	changedAt := -1
	for tm := 0; tm <= 120; tm += 10 {
		raw := tm >= 20
		v, changed := s.Observe(raw, epoch.Add(ms(tm)), cfg)
		if changed {
			if changedAt != -1 {
				t.Fatalf("second emission at t=%d (first at t=%d)", tm, changedAt)
			}
			if !v {
				t.Errorf("t=%d: expected magnet present, got %v", tm, v)
			}
			changedAt = tm
		}
	}

	if changedAt != 80 {
		t.Errorf("expected change at t=80, got t=%d", changedAt)
	}
}

func TestDigitalBoundaryIsStrict(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch).Digital

	s.Observe(true, epoch.Add(ms(20)), cfg)

	if _, changed := s.Observe(true, epoch.Add(ms(70)), cfg); changed {
		t.Error("exactly 50ms after transition should not emit")
	}
	if _, changed := s.Observe(true, epoch.Add(ms(71)), cfg); !changed {
		t.Error("51ms after transition should emit")
	}
}

func TestDigitalFlickerNeverEmits(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch).Digital

	// Transitions every 40ms, always inside the debounce window
	raw := false
	for tm := 0; tm <= 2000; tm += 10 {
		if tm%40 == 0 {
			raw = !raw
		}
		if _, changed := s.Observe(raw, epoch.Add(ms(tm)), cfg); changed {
			t.Fatalf("t=%d: flicker should never emit", tm)
		}
	}
}

func TestDigitalFlickerBackToStableProducesNothing(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch).Digital

	// Brief pulse then back to the original value
	s.Observe(true, epoch.Add(ms(100)), cfg)
	s.Observe(true, epoch.Add(ms(130)), cfg)
	s.Observe(false, epoch.Add(ms(140)), cfg)

	for tm := 150; tm <= 500; tm += 10 {
		if _, changed := s.Observe(false, epoch.Add(ms(tm)), cfg); changed {
			t.Fatalf("t=%d: return to stable value should not emit", tm)
		}
	}
	if s.Stable {
		t.Error("stable value should still be no magnet")
	}
}

func TestDigitalTimerRestartsOnFlicker(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch).Digital

	s.Observe(true, epoch.Add(ms(0)), cfg)
	s.Observe(false, epoch.Add(ms(30)), cfg)
	s.Observe(true, epoch.Add(ms(40)), cfg)

	// 60ms after the first transition but only 20ms after the last one
	if _, changed := s.Observe(true, epoch.Add(ms(60)), cfg); changed {
		t.Error("timer should restart on every raw transition")
	}
	if _, changed := s.Observe(true, epoch.Add(ms(91)), cfg); !changed {
		t.Error("expected emission 51ms after the last transition")
	}
}

func TestDigitalSingleEmissionWhileHeld(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch).Digital

	emissions := 0
	s.Observe(true, epoch, cfg)
	for tm := 1; tm <= 1000; tm++ {
		if _, changed := s.Observe(true, epoch.Add(ms(tm)), cfg); changed {
			emissions++
		}
	}
	if emissions != 1 {
		t.Errorf("expected exactly 1 emission, got %d", emissions)
	}
}

func TestDigitalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(epoch).Digital

	s.Observe(true, epoch, cfg)
	if v, changed := s.Observe(true, epoch.Add(ms(60)), cfg); !changed || !v {
		t.Fatalf("expected magnet present, got (%v, %v)", v, changed)
	}

	s.Observe(false, epoch.Add(ms(100)), cfg)
	if _, changed := s.Observe(false, epoch.Add(ms(140)), cfg); changed {
		t.Error("removal should still be debounced")
	}
	if v, changed := s.Observe(false, epoch.Add(ms(151)), cfg); !changed || v {
		t.Errorf("expected no magnet, got (%v, %v)", v, changed)
	}
}

func TestDigitalCompressedTimeScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DebounceInterval = 5 * time.Microsecond
	s := NewState(epoch).Digital

	s.Observe(true, epoch, cfg)
	if _, changed := s.Observe(true, epoch.Add(6*time.Microsecond), cfg); !changed {
		t.Error("expected emission with compressed debounce interval")
	}
}

func TestDigitalText(t *testing.T) {
	if got := DigitalText(true); got != "MAGNET DETECTED" {
		t.Errorf("DigitalText(true) = %q", got)
	}
	if got := DigitalText(false); got != "NO MAGNET" {
		t.Errorf("DigitalText(false) = %q", got)
	}
}
