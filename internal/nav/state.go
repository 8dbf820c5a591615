// Package nav owns the navigation state shared by the viewport observer and
// user-initiated jumps. Both sources feed tagged events through a single
// reducer, so every mutation of State is serialized and the suppression
// window is the only thing deciding whose update wins.
package nav

import "time"

// Phase names the two states of the jump state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseJumping
)

func (p Phase) String() string {
	switch p {
	case PhaseJumping:
		return "jumping"
	default:
		return "idle"
	}
}

// State is the navigation state. ActiveSectionID is empty or a registered
// section id. SuppressObserver is true only during and briefly after a
// user-initiated jump; SuppressUntil is the deadline of the latest window.
type State struct {
	ActiveSectionID  string
	SuppressObserver bool
	SuppressUntil    time.Time
}

// Phase derives the state machine phase from the suppression flag.
func (s State) Phase() Phase {
	if s.SuppressObserver {
		return PhaseJumping
	}
	return PhaseIdle
}

// suppressedAt reports whether observer updates arriving at t are dropped.
func (s State) suppressedAt(t time.Time) bool {
	return s.SuppressObserver && t.Before(s.SuppressUntil)
}

// Options holds the timing and geometry constants of the dispatcher.
type Options struct {
	// StickyOffset is subtracted from a section top when jumping so the
	// section title lands below the sticky nav bar.
	StickyOffset int
	// SuppressFor is the fixed suppression window after a jump.
	SuppressFor time.Duration
	// JumpPulse is the feedback pattern emitted for a jump.
	JumpPulse time.Duration
}

// DefaultOptions returns the canonical constants: an 80 unit sticky offset,
// a 1000 ms suppression window and a 15 ms pulse.
func DefaultOptions() Options {
	return Options{
		StickyOffset: 80,
		SuppressFor:  1000 * time.Millisecond,
		JumpPulse:    15 * time.Millisecond,
	}
}
