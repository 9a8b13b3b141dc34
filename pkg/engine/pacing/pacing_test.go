package pacing

import (
	"testing"
	"time"
)

func TestNew_Disabled(t *testing.T) {
	if _, ok := New(false, 1).(None); !ok {
		t.Error("New(false, 1) is not None")
	}
}

func TestNew_DefaultsScale(t *testing.T) {
	p, ok := New(true, 0).(*Sleeper)
	if !ok {
		t.Fatal("New(true, 0) is not *Sleeper")
	}
	if p.Scale != 1 {
		t.Errorf("Scale = %v, want 1", p.Scale)
	}
}

func TestSleeper_Delay(t *testing.T) {
	s := &Sleeper{Scale: 0.5}
	start := time.Now()
	s.Delay(40)
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("Delay(40) at scale 0.5 took %v, want about 20ms", elapsed)
	}
}

func TestSleeper_ZeroScaleSkips(t *testing.T) {
	s := &Sleeper{}
	start := time.Now()
	s.Delay(5000)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Delay with zero scale took %v", elapsed)
	}
}
