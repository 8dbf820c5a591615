package menu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCatalog       = errors.New("menu has no sections")
	ErrMissingSectionID   = errors.New("section id is empty")
	ErrDuplicateSection   = errors.New("duplicate section id")
	additionInsertOffsets = [2]int{4, 8}
)

// Registry is the ordered list of navigable sections. The order defines both
// the page order and the nav strip order.
type Registry struct {
	sections []Section
	index    map[string]int
}

// NewRegistry validates and indexes the supplied sections.
func NewRegistry(sections []Section) (*Registry, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyCatalog
	}
	r := &Registry{
		sections: make([]Section, len(sections)),
		index:    make(map[string]int, len(sections)),
	}
	for i, sec := range sections {
		id := strings.TrimSpace(sec.ID)
		if id == "" {
			return nil, fmt.Errorf("section %d (%q): %w", i, sec.Title, ErrMissingSectionID)
		}
		if _, dup := r.index[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSection, id)
		}
		sec.ID = id
		r.sections[i] = sec
		r.index[id] = i
	}
	return r, nil
}

// BuildRegistry derives the navigable sections from a catalog: the first four
// regular sections, the pizza/feteer additions, the next four, the crepe
// additions and then anything left over.
func BuildRegistry(c *Catalog) (*Registry, error) {
	if c == nil {
		return nil, ErrEmptyCatalog
	}
	regular := c.Sections
	ordered := make([]Section, 0, len(regular)+2)
	cut := func(n int) int {
		if n > len(regular) {
			return len(regular)
		}
		return n
	}
	first, second := cut(additionInsertOffsets[0]), cut(additionInsertOffsets[1])
	ordered = append(ordered, regular[:first]...)
	if add, ok := c.pizzaAdditions(); ok {
		ordered = append(ordered, add)
	}
	ordered = append(ordered, regular[first:second]...)
	if add, ok := c.crepeAdditions(); ok {
		ordered = append(ordered, add)
	}
	ordered = append(ordered, regular[second:]...)
	return NewRegistry(ordered)
}

// Sections returns a copy of the ordered sections.
func (r *Registry) Sections() []Section {
	dup := make([]Section, len(r.sections))
	copy(dup, r.sections)
	return dup
}

// IDs returns the ordered section identifiers.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.sections))
	for i, sec := range r.sections {
		ids[i] = sec.ID
	}
	return ids
}

func (r *Registry) Len() int {
	return len(r.sections)
}

func (r *Registry) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// IndexOf returns the position of id or -1.
func (r *Registry) IndexOf(id string) int {
	if idx, ok := r.index[id]; ok {
		return idx
	}
	return -1
}

// Find locates a section by id.
func (r *Registry) Find(id string) (Section, bool) {
	idx, ok := r.index[id]
	if !ok {
		return Section{}, false
	}
	return r.sections[idx], true
}

// At returns the section at position i.
func (r *Registry) At(i int) (Section, bool) {
	if i < 0 || i >= len(r.sections) {
		return Section{}, false
	}
	return r.sections[i], true
}

// Next returns the section after id. An empty or unknown id yields the first
// section; the last section has no successor.
func (r *Registry) Next(id string) (Section, bool) {
	idx := r.IndexOf(id)
	if idx < 0 {
		return r.At(0)
	}
	return r.At(idx + 1)
}

// Prev returns the section before id. An empty or unknown id yields the last
// section; the first section has no predecessor.
func (r *Registry) Prev(id string) (Section, bool) {
	idx := r.IndexOf(id)
	if idx < 0 {
		return r.At(len(r.sections) - 1)
	}
	return r.At(idx - 1)
}
