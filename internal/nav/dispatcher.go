package nav

import (
	"github.com/atyab/atyab-menu/internal/logging/events"
	"github.com/atyab/atyab-menu/internal/menu"
)

// Locator resolves the document offset of a rendered section.
type Locator interface {
	SectionTop(id string) (int, bool)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(id string) (int, bool)

func (f LocatorFunc) SectionTop(id string) (int, bool) {
	return f(id)
}

// Result reports what a dispatched event did.
type Result struct {
	Changed bool
	Effects []Effect
}

// Dispatcher serializes every navigation state update.
type Dispatcher struct {
	registry *menu.Registry
	locator  Locator
	opts     Options
	state    State
}

// New creates a dispatcher with an empty active section.
func New(registry *menu.Registry, locator Locator, opts Options) *Dispatcher {
	return &Dispatcher{registry: registry, locator: locator, opts: opts}
}

// State returns a copy of the current state.
func (d *Dispatcher) State() State {
	return d.state
}

// Dispatch applies evt and returns the effects the host must run, in order.
func (d *Dispatcher) Dispatch(evt Event) Result {
	next, effects := Reduce(d.state, evt, Env{Registry: d.registry, Locator: d.locator, Options: d.opts})
	changed := next != d.state
	d.state = next
	return Result{Changed: changed, Effects: effects}
}

// Env carries the read-only collaborators of Reduce.
type Env struct {
	Registry *menu.Registry
	Locator  Locator
	Options  Options
}

// Reduce is the pure transition function behind Dispatcher.
func Reduce(s State, evt Event, env Env) (State, []Effect) {
	switch e := evt.(type) {
	case SectionBecameVisible:
		return reduceVisible(s, e, env)
	case UserJumpedTo:
		return reduceJump(s, e, env)
	case SuppressionExpired:
		return reduceExpired(s, e)
	}
	return s, nil
}

func reduceVisible(s State, e SectionBecameVisible, env Env) (State, []Effect) {
	if s.SuppressObserver && !s.suppressedAt(e.At) {
		// the timer has not been delivered yet but the window is over
		s = expire(s)
	}
	if s.SuppressObserver {
		events.Nav.VisibleIgnored(e.ID, s.SuppressUntil)
		return s, nil
	}
	if env.Registry == nil || !env.Registry.Contains(e.ID) {
		return s, nil
	}
	events.Nav.Visible(e.ID)
	s.ActiveSectionID = e.ID
	return s, []Effect{CenterNavItem{ID: e.ID}}
}

func reduceJump(s State, e UserJumpedTo, env Env) (State, []Effect) {
	if env.Registry == nil || !env.Registry.Contains(e.ID) {
		events.Nav.JumpRejected(e.ID)
		return s, nil
	}
	// (a) optimistic, before the target is even looked up
	s.ActiveSectionID = e.ID

	var top int
	found := false
	if env.Locator != nil {
		top, found = env.Locator.SectionTop(e.ID)
	}
	if !found {
		events.Nav.JumpTargetMissing(e.ID, e.Origin.String())
		return s, nil
	}

	offset := top - env.Options.StickyOffset
	if offset < 0 {
		offset = 0
	}
	effects := make([]Effect, 0, 4)
	// (b)
	effects = append(effects, ScrollPage{Offset: offset})
	// (c)
	s.SuppressObserver = true
	s.SuppressUntil = e.At.Add(env.Options.SuppressFor)
	effects = append(effects, ArmSuppression{Until: s.SuppressUntil})
	// (d)
	if e.Origin == OriginPicker {
		effects = append(effects, ClosePicker{})
	}
	// (e)
	if env.Options.JumpPulse > 0 {
		effects = append(effects, Pulse{Pattern: env.Options.JumpPulse})
	}
	events.Nav.Jump(e.ID, e.Origin.String(), offset)
	return s, effects
}

func reduceExpired(s State, e SuppressionExpired) (State, []Effect) {
	if !s.SuppressObserver {
		return s, nil
	}
	if e.At.Before(s.SuppressUntil) {
		events.Nav.SuppressionStale(e.At, s.SuppressUntil)
		return s, nil
	}
	events.Nav.SuppressionExpired(e.At)
	return expire(s), nil
}

func expire(s State) State {
	s.SuppressObserver = false
	return s
}
