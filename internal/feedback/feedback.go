// Package feedback emits short tactile-style pulses for navigation actions.
// Terminals have no vibration motor, so the closest equivalent is the bell.
package feedback

import (
	"io"
	"time"

	"github.com/atyab/atyab-menu/internal/logging/events"
)

// Pulse patterns.
const (
	JumpPulse   = 15 * time.Millisecond
	PagePulse   = 5 * time.Millisecond
	HeaderPulse = 10 * time.Millisecond
)

// MinInterval is the shortest gap between two emitted pulses.
const MinInterval = 50 * time.Millisecond

// Pulser emits a feedback pulse. Implementations never block and never fail.
type Pulser interface {
	Pulse(pattern time.Duration)
}

// Nop discards every pulse.
type Nop struct{}

func (Nop) Pulse(time.Duration) {}

// Bell rings the terminal bell for each pulse that passes the throttle.
type Bell struct {
	out      io.Writer
	throttle *throttle
}

// NewBell writes BEL to out, dropping pulses closer together than interval.
func NewBell(out io.Writer, interval time.Duration) *Bell {
	return newBell(out, interval, time.Now)
}

func newBell(out io.Writer, interval time.Duration, now func() time.Time) *Bell {
	return &Bell{out: out, throttle: newThrottle(interval, now)}
}

// Pulse rings the bell. Write errors are ignored.
func (b *Bell) Pulse(pattern time.Duration) {
	if b == nil || b.out == nil {
		return
	}
	if !b.throttle.allow() {
		events.Feedback.Dropped(pattern.Milliseconds())
		return
	}
	events.Feedback.Pulse(pattern.Milliseconds())
	_, _ = b.out.Write([]byte{'\a'})
}

// New returns a Bell on out when enabled and Nop otherwise.
func New(enabled bool, out io.Writer) Pulser {
	if !enabled || out == nil {
		return Nop{}
	}
	return NewBell(out, MinInterval)
}

// Recorder keeps every pulse it receives, for tests of code that emits them.
type Recorder struct {
	Patterns []time.Duration
}

func (r *Recorder) Pulse(pattern time.Duration) {
	r.Patterns = append(r.Patterns, pattern)
}
