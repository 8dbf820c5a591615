package feedback

import (
	"sync"
	"time"
)

// throttle enforces a minimum interval between pulses. Unlike a blocking
// limiter it never sleeps: a pulse that arrives too early is dropped.
type throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration, now func() time.Time) *throttle {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		return &throttle{now: now}
	}
	return &throttle{interval: interval, now: now}
}

func (t *throttle) allow() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}
