// Package navstrip controls the horizontally scrolling strip of section chips.
//
// Positions are logical: 0 is the leading edge of the strip and offsets grow
// toward later sections. In a right-to-left layout the leading edge is on the
// right, so revealing later sections means scrolling left.
package navstrip

import (
	"time"

	"github.com/atyab/atyab-menu/internal/logging/events"
	"github.com/atyab/atyab-menu/internal/scroll"
)

// Item is one chip on the strip.
type Item struct {
	ID    string
	Width int
}

// Options holds the strip geometry constants.
type Options struct {
	Gap      int
	Padding  int
	Step     int
	Epsilon  int
	Duration time.Duration
}

// DefaultOptions returns the canonical constants: a 200 unit page step and a
// 15 unit affordance tolerance.
func DefaultOptions() Options {
	return Options{
		Gap:      8,
		Padding:  16,
		Step:     200,
		Epsilon:  15,
		Duration: scroll.DefaultDuration,
	}
}

// Span is the logical range [Start, End) of an item.
type Span struct {
	Start int
	End   int
}

// Width of the span.
func (s Span) Width() int {
	return s.End - s.Start
}

// Strip tracks the layout, scroll offset and scroll affordances of the chips.
type Strip struct {
	opts     Options
	items    []Item
	spans    []Span
	content  int
	visible  int
	anim     *scroll.Animator
	canLeft  bool
	canRight bool
}

// New lays out items and computes the initial affordances.
func New(items []Item, opts Options) *Strip {
	s := &Strip{opts: opts, anim: scroll.NewAnimator(opts.Duration)}
	s.SetItems(items)
	return s
}

// SetItems replaces the chips, for example after their labels changed width.
func (s *Strip) SetItems(items []Item) {
	s.items = append([]Item(nil), items...)
	s.spans = make([]Span, len(items))
	pos := s.opts.Padding
	for i, item := range s.items {
		if i > 0 {
			pos += s.opts.Gap
		}
		w := item.Width
		if w < 0 {
			w = 0
		}
		s.spans[i] = Span{Start: pos, End: pos + w}
		pos += w
	}
	s.content = pos + s.opts.Padding
	if len(items) == 0 {
		s.content = 0
	}
	s.clamp()
	s.RecomputeAffordances()
}

// Items returns a copy of the chips in strip order.
func (s *Strip) Items() []Item {
	return append([]Item(nil), s.items...)
}

// SetVisibleWidth sets the width of the strip viewport and re-clamps.
func (s *Strip) SetVisibleWidth(width int) {
	if width < 0 {
		width = 0
	}
	s.visible = width
	s.clamp()
	s.RecomputeAffordances()
}

// VisibleWidth is the width of the strip viewport.
func (s *Strip) VisibleWidth() int {
	return s.visible
}

// ContentWidth is the full width of the laid out chips including padding.
func (s *Strip) ContentWidth() int {
	return s.content
}

// MaxOffset is the largest reachable offset.
func (s *Strip) MaxOffset() int {
	if s.content <= s.visible {
		return 0
	}
	return s.content - s.visible
}

// Offset is the current scroll distance from the leading edge.
func (s *Strip) Offset() int {
	return s.anim.Position()
}

// Target is the offset the strip is scrolling toward.
func (s *Strip) Target() int {
	return s.anim.Target()
}

// SetOffset moves to offset without animation.
func (s *Strip) SetOffset(offset int) {
	s.anim.Jump(s.clampOffset(offset))
	s.RecomputeAffordances()
}

// ItemSpan returns the logical range of id.
func (s *Strip) ItemSpan(id string) (Span, bool) {
	for i, item := range s.items {
		if item.ID == id {
			return s.spans[i], true
		}
	}
	return Span{}, false
}

// CenterItem smoothly scrolls so id sits in the middle of the viewport. It
// returns false when id is not on the strip.
func (s *Strip) CenterItem(id string, now time.Time) bool {
	span, ok := s.ItemSpan(id)
	if !ok {
		events.Strip.CenterMissing(id)
		return false
	}
	target := s.clampOffset(span.Start - s.visible/2 + span.Width()/2)
	events.Strip.Center(id, target)
	s.scrollTo(target, now)
	return true
}

// PageLeft scrolls one step toward later sections.
func (s *Strip) PageLeft(now time.Time) {
	target := s.clampOffset(s.anim.Target() + s.opts.Step)
	events.Strip.Page("left", target)
	s.scrollTo(target, now)
}

// PageRight scrolls one step back toward the first section.
func (s *Strip) PageRight(now time.Time) {
	target := s.clampOffset(s.anim.Target() - s.opts.Step)
	events.Strip.Page("right", target)
	s.scrollTo(target, now)
}

// Advance steps a running animation and reports whether it continues.
func (s *Strip) Advance(now time.Time) bool {
	running := s.anim.Advance(now)
	s.RecomputeAffordances()
	return running
}

// Animating reports whether a smooth scroll is in flight.
func (s *Strip) Animating() bool {
	return s.anim.Active()
}

// RecomputeAffordances derives both arrows from the current geometry.
func (s *Strip) RecomputeAffordances() {
	left, right := Affordances(s.Offset(), s.visible, s.content, s.opts.Epsilon)
	if left != s.canLeft || right != s.canRight {
		events.Strip.Affordances(left, right)
	}
	s.canLeft, s.canRight = left, right
}

// Affordances reports whether scrolling left and right is possible.
func (s *Strip) Affordances() (canScrollLeft, canScrollRight bool) {
	return s.canLeft, s.canRight
}

// Affordances computes the arrows for a strip: right when the offset is at
// least epsilon away from the leading edge, left when content remains beyond
// the viewport by more than epsilon.
func Affordances(offset, visible, content, epsilon int) (canScrollLeft, canScrollRight bool) {
	if offset < 0 {
		offset = -offset
	}
	canScrollRight = offset >= epsilon
	canScrollLeft = offset+visible < content-epsilon
	return canScrollLeft, canScrollRight
}

// Window returns the visible logical range.
func (s *Strip) Window() Span {
	off := s.Offset()
	return Span{Start: off, End: off + s.visible}
}

// ItemAt returns the item under a viewport column measured from the leading
// edge, or false for padding, gaps and columns outside the viewport.
func (s *Strip) ItemAt(column int) (Item, bool) {
	if column < 0 || column >= s.visible {
		return Item{}, false
	}
	pos := s.Offset() + column
	for i, span := range s.spans {
		if pos >= span.Start && pos < span.End {
			return s.items[i], true
		}
	}
	return Item{}, false
}

func (s *Strip) scrollTo(target int, now time.Time) {
	s.anim.Start(target, now)
	s.RecomputeAffordances()
}

func (s *Strip) clamp() {
	pos := s.anim.Position()
	if clamped := s.clampOffset(pos); clamped != pos || s.anim.Target() != s.clampOffset(s.anim.Target()) {
		s.anim.Jump(clamped)
	}
}

func (s *Strip) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if limit := s.MaxOffset(); offset > limit {
		return limit
	}
	return offset
}
