// Package observer reports when menu sections enter or leave the trigger band
// near the top of the page viewport.
package observer

import "math"

// Rect is a section box in document coordinates.
type Rect struct {
	Top    int
	Height int
}

// Bottom returns the first offset below the box.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Margins shrink the viewport into the trigger band: Top is subtracted from
// the top edge, BottomFraction of the viewport height from the bottom edge.
type Margins struct {
	Top            int
	BottomFraction float64
}

// DefaultMargins mirrors a root margin of "-80px 0px -40% 0px".
func DefaultMargins() Margins {
	return Margins{Top: 80, BottomFraction: 0.4}
}

// Geometry is the host view of the page.
type Geometry interface {
	// Viewport returns the page scroll offset and the visible height.
	Viewport() (offset, height int)
	// Bounds returns the box of a section, or false when it is not rendered.
	Bounds(id string) (Rect, bool)
}

// Entry is a visibility transition for one section.
type Entry struct {
	ID           string
	Intersecting bool
}

// Source delivers visibility transitions for observed sections.
type Source interface {
	Observe(ids []string)
	Poll() []Entry
	Disconnect()
}

// Poller implements Source by comparing section boxes with the trigger band
// whenever it is polled.
type Poller struct {
	geom      Geometry
	margins   Margins
	targets   []string
	last      map[string]bool
	connected bool
}

// NewPoller creates a poller over geom. Nothing is observed until Observe.
func NewPoller(geom Geometry, margins Margins) *Poller {
	return &Poller{geom: geom, margins: margins, last: make(map[string]bool)}
}

// Observe adds ids to the observed set. Ids already observed are ignored.
func (p *Poller) Observe(ids []string) {
	p.connected = true
	for _, id := range ids {
		if _, seen := p.indexOf(id); seen {
			continue
		}
		p.targets = append(p.targets, id)
	}
}

// Disconnect cancels every observation.
func (p *Poller) Disconnect() {
	p.connected = false
	p.targets = nil
	p.last = make(map[string]bool)
}

// Connected reports whether any observation is active.
func (p *Poller) Connected() bool {
	return p.connected && len(p.targets) > 0
}

// Band returns the trigger band [top, bottom) in document coordinates.
func (p *Poller) Band() (top, bottom int) {
	if p.geom == nil {
		return 0, 0
	}
	offset, height := p.geom.Viewport()
	return Band(offset, height, p.margins)
}

// Band computes the trigger band for a viewport.
func Band(offset, height int, m Margins) (top, bottom int) {
	top = offset + m.Top
	bottom = offset + height - int(math.Round(float64(height)*m.BottomFraction))
	if bottom < top {
		bottom = top
	}
	return top, bottom
}

// Intersects reports whether r overlaps the band [top, bottom).
func Intersects(r Rect, top, bottom int) bool {
	if r.Height <= 0 || bottom <= top {
		return false
	}
	return r.Top < bottom && r.Bottom() > top
}

// Poll returns the sections whose intersection state changed since the last
// poll, in observation order. The first poll of a target reports its state
// whichever it is. Targets without bounds are skipped and retried later.
func (p *Poller) Poll() []Entry {
	if !p.Connected() || p.geom == nil {
		return nil
	}
	top, bottom := p.Band()
	var out []Entry
	for _, id := range p.targets {
		rect, ok := p.geom.Bounds(id)
		if !ok {
			continue
		}
		now := Intersects(rect, top, bottom)
		prev, seen := p.last[id]
		if seen && prev == now {
			continue
		}
		p.last[id] = now
		out = append(out, Entry{ID: id, Intersecting: now})
	}
	return out
}

func (p *Poller) indexOf(id string) (int, bool) {
	for i, target := range p.targets {
		if target == id {
			return i, true
		}
	}
	return -1, false
}
