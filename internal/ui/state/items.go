package state

import "github.com/atyab/atyab-menu/internal/menu"

// Entry is one row of the category picker.
type Entry struct {
	ID    string
	Label string
	Glyph string
}

// EntriesFromRegistry mirrors the registry order.
func EntriesFromRegistry(reg *menu.Registry) []Entry {
	if reg == nil {
		return nil
	}
	sections := reg.Sections()
	out := make([]Entry, len(sections))
	for i, s := range sections {
		out[i] = Entry{ID: s.ID, Label: s.Title, Glyph: s.Glyph()}
	}
	return out
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
