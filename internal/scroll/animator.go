// Package scroll animates integer scroll offsets toward a target.
package scroll

import "time"

const (
	// DefaultDuration is the length of a smooth scroll.
	DefaultDuration = 300 * time.Millisecond
	// FrameInterval is the delay between animation frames.
	FrameInterval = 16 * time.Millisecond
)

// Animator eases an offset from one value to another over a fixed duration.
// The zero value is idle at offset 0.
type Animator struct {
	duration time.Duration
	from     int
	to       int
	start    time.Time
	pos      int
	active   bool
}

// NewAnimator returns an idle animator; non-positive durations make every
// scroll jump instantly.
func NewAnimator(duration time.Duration) *Animator {
	return &Animator{duration: duration}
}

// Start begins a scroll from the current position to target. Retargeting
// while active starts from wherever the previous scroll had reached.
func (a *Animator) Start(target int, now time.Time) {
	if target == a.pos {
		a.to = target
		a.active = false
		return
	}
	a.from = a.pos
	a.to = target
	a.start = now
	a.active = a.duration > 0
	if !a.active {
		a.pos = target
	}
}

// Jump moves to offset immediately and cancels any running scroll.
func (a *Animator) Jump(offset int) {
	a.pos = offset
	a.to = offset
	a.active = false
}

// Advance updates the position for time now and reports whether the
// animation is still running.
func (a *Animator) Advance(now time.Time) bool {
	if !a.active {
		return false
	}
	elapsed := now.Sub(a.start)
	if elapsed >= a.duration {
		a.pos = a.to
		a.active = false
		return false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(a.duration)
	a.pos = a.from + int(float64(a.to-a.from)*easeInOutCubic(t)+0.5*sign(a.to-a.from))
	return true
}

// Position is the current offset.
func (a *Animator) Position() int {
	return a.pos
}

// Target is the offset the animator is heading to.
func (a *Animator) Target() int {
	return a.to
}

// Active reports whether a scroll is in flight.
func (a *Animator) Active() bool {
	return a.active
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 0.5*f*f*f + 1
}

func sign(v int) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
