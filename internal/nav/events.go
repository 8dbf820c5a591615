package nav

import "time"

// Origin identifies which control started a jump.
type Origin int

const (
	OriginStrip Origin = iota
	OriginPicker
	OriginKeyboard
)

func (o Origin) String() string {
	switch o {
	case OriginPicker:
		return "picker"
	case OriginKeyboard:
		return "keyboard"
	default:
		return "strip"
	}
}

// Event is an input to the reducer.
type Event interface {
	isEvent()
}

// SectionBecameVisible is reported by the viewport observer when a section
// enters the trigger band.
type SectionBecameVisible struct {
	ID string
	At time.Time
}

// UserJumpedTo is a tap on a nav chip, a picker entry or a jump key.
type UserJumpedTo struct {
	ID     string
	At     time.Time
	Origin Origin
}

// SuppressionExpired is delivered by the one-shot timer armed for a jump. At
// is the deadline the timer was armed for.
type SuppressionExpired struct {
	At time.Time
}

func (SectionBecameVisible) isEvent() {}
func (UserJumpedTo) isEvent()         {}
func (SuppressionExpired) isEvent()   {}

// Effect is a side effect requested by the reducer. The host applies effects
// synchronously, in the order they are returned.
type Effect interface {
	isEffect()
}

// ScrollPage asks for a smooth page scroll to Offset.
type ScrollPage struct {
	Offset int
}

// CenterNavItem asks the nav strip to bring ID to its horizontal centre.
type CenterNavItem struct {
	ID string
}

// ArmSuppression asks the host to deliver SuppressionExpired{At: Until}.
type ArmSuppression struct {
	Until time.Time
}

// ClosePicker closes the category picker after a jump started from it.
type ClosePicker struct{}

// Pulse requests a short feedback pulse.
type Pulse struct {
	Pattern time.Duration
}

func (ScrollPage) isEffect()     {}
func (CenterNavItem) isEffect()  {}
func (ArmSuppression) isEffect() {}
func (ClosePicker) isEffect()    {}
func (Pulse) isEffect()          {}
