package feedback

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func TestBellThrottlesPulses(t *testing.T) {
	c := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var buf bytes.Buffer
	b := newBell(&buf, MinInterval, c.Now)

	b.Pulse(JumpPulse)
	b.Pulse(PagePulse)
	if buf.String() != "\a" {
		t.Fatalf("expected one bell, got %q", buf.String())
	}
	c.now = c.now.Add(49 * time.Millisecond)
	b.Pulse(PagePulse)
	if buf.Len() != 1 {
		t.Fatalf("expected pulse inside interval to drop, got %q", buf.String())
	}
	c.now = c.now.Add(time.Millisecond)
	b.Pulse(PagePulse)
	if buf.Len() != 2 {
		t.Fatalf("expected pulse at interval boundary, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBellSwallowsWriteErrors(t *testing.T) {
	b := NewBell(failingWriter{}, 0)
	b.Pulse(JumpPulse)
	var nilBell *Bell
	nilBell.Pulse(JumpPulse)
}

func TestNewDisabledReturnsNop(t *testing.T) {
	if _, ok := New(false, &bytes.Buffer{}).(Nop); !ok {
		t.Fatalf("expected Nop when disabled")
	}
	if _, ok := New(true, nil).(Nop); !ok {
		t.Fatalf("expected Nop without output")
	}
	if _, ok := New(true, &bytes.Buffer{}).(*Bell); !ok {
		t.Fatalf("expected Bell when enabled")
	}
}

func TestRecorderKeepsOrder(t *testing.T) {
	var r Recorder
	r.Pulse(JumpPulse)
	r.Pulse(HeaderPulse)
	if len(r.Patterns) != 2 || r.Patterns[0] != JumpPulse || r.Patterns[1] != HeaderPulse {
		t.Fatalf("unexpected patterns %v", r.Patterns)
	}
}
