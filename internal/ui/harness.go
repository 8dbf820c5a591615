package ui

import (
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests. Timers
// scheduled through the model's clock fire only when Advance moves time past
// them.
type Harness struct {
	model *Model
	clock *ManualClock
	quit  bool
}

// NewHarness creates a harness for the provided model and replaces its clock
// with a manual one starting at start.
func NewHarness(model *Model, start time.Time) *Harness {
	clock := NewManualClock(start)
	if model != nil {
		model.clock = clock
		model.filterCursor.SetMode(cursor.CursorStatic)
	}
	return &Harness{model: model, clock: clock}
}

// Init runs the model's initial command.
func (h *Harness) Init() {
	if h.model == nil {
		return
	}
	h.processCmd(h.model.Init())
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Advance moves the clock forward by d, delivering every timer that falls
// due in order. Each delivery sees the clock at the timer's due time.
func (h *Harness) Advance(d time.Duration) {
	end := h.clock.Now().Add(d)
	for {
		msg, ok := h.clock.popDue(end)
		if !ok {
			break
		}
		h.Send(msg)
	}
	h.clock.set(end)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
	case tea.QuitMsg:
		h.quit = true
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	default:
		h.Send(msg)
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// Clock exposes the manual clock.
func (h *Harness) Clock() *ManualClock {
	return h.clock
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

type timer struct {
	due time.Time
	seq int
	msg tea.Msg
}

// ManualClock is a Clock whose time moves only when told to.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []timer
}

// NewManualClock returns a clock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After records a timer and returns a nil command; the timer is delivered by
// Harness.Advance.
func (c *ManualClock) After(d time.Duration, msg tea.Msg) tea.Cmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.timers = append(c.timers, timer{due: c.now.Add(d), seq: c.seq, msg: msg})
	return nil
}

// Pending is the number of timers not yet delivered.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *ManualClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.After(c.now) {
		c.now = t
	}
}

func (c *ManualClock) popDue(end time.Time) (tea.Msg, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return nil, false
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].due.Equal(c.timers[j].due) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].due.Before(c.timers[j].due)
	})
	next := c.timers[0]
	if next.due.After(end) {
		return nil, false
	}
	c.timers = c.timers[1:]
	if next.due.After(c.now) {
		c.now = next.due
	}
	return next.msg, true
}
