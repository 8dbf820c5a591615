package state

import "slices"

// Level holds the picker list state: cursor position, filter and viewport.
type Level struct {
	ID             string
	Title          string
	Items          []Entry
	Full           []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level over entries with the cursor on the first one.
func NewLevel(id, title string, entries []Entry) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(entries)
	return l
}

// IndexOf returns the visible index of an entry id, or -1.
func (l *Level) IndexOf(id string) int {
	return slices.IndexFunc(l.Items, func(e Entry) bool {
		return id != "" && e.ID == id
	})
}

// Current returns the entry under the cursor.
func (l *Level) Current() (Entry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Entry{}, false
	}
	return l.Items[l.Cursor], true
}

// SelectID moves the cursor to id when it is visible.
func (l *Level) SelectID(id string) bool {
	idx := l.IndexOf(id)
	if idx >= 0 {
		l.Cursor = idx
	}
	return idx >= 0
}

// UpdateItems replaces the entries. The list window stays put unless it
// would start past the new last entry.
func (l *Level) UpdateItems(entries []Entry) {
	top := l.ViewportOffset
	l.Full = CloneEntries(entries)
	l.applyFilter()
	if top < 0 || top >= len(l.Items) {
		top = 0
	}
	l.ViewportOffset = top
}

// Reset clears the filter and moves the cursor to id, or the first entry.
func (l *Level) Reset(id string) {
	*l = Level{ID: l.ID, Title: l.Title, Full: l.Full, LastCursor: -1}
	l.applyFilter()
	l.SelectID(id)
}
