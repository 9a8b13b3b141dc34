// Package pacing provides the narrative pauses between game messages.
package pacing

import "time"

// Pacer waits between messages. It never touches game state.
type Pacer interface {
	Delay(ms int)
}

// Sleeper pauses the calling goroutine. Scale multiplies every delay.
type Sleeper struct {
	Scale float64
}

// NewSleeper creates a pacer that sleeps for the requested time
func NewSleeper() *Sleeper {
	return &Sleeper{Scale: 1}
}

func (s *Sleeper) Delay(ms int) {
	if ms <= 0 || s.Scale <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(ms)*s.Scale) * time.Millisecond)
}

// None skips every pause; used for tests and -no-delay.
type None struct{}

func (None) Delay(int) {}

// New returns a Sleeper when enabled and None otherwise
func New(enabled bool, scale float64) Pacer {
	if !enabled {
		return None{}
	}
	if scale <= 0 {
		scale = 1
	}
	return &Sleeper{Scale: scale}
}
