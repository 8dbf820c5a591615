package menu

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultEmoji is shown for sections that do not carry their own glyph.
const DefaultEmoji = "✨"

// Section is one navigable block of the menu page.
type Section struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Emoji    string `yaml:"emoji,omitempty"`
	Dishes   []Dish `yaml:"items"`
	Addition bool   `yaml:"-"`
}

// Dish is a priced entry inside a section. Labels, when present, name each
// price column (for example size names).
type Dish struct {
	Name   string   `yaml:"name"`
	Prices []string `yaml:"prices"`
	Labels []string `yaml:"labels,omitempty"`
	Note   string   `yaml:"note,omitempty"`
}

// Glyph returns the section emoji or the default glyph.
func (s Section) Glyph() string {
	if e := strings.TrimSpace(s.Emoji); e != "" {
		return e
	}
	return DefaultEmoji
}

// Label is the glyph followed by the title, as shown on nav chips.
func (s Section) Label() string {
	return s.Glyph() + " " + strings.TrimSpace(s.Title)
}

// ShortLabel returns Label truncated to at most width display cells.
func (s Section) ShortLabel(width int) string {
	label := s.Label()
	if width <= 0 || runewidth.StringWidth(label) <= width {
		return label
	}
	return runewidth.Truncate(label, width, "…")
}

// PriceLabel returns the column label for price i, if any.
func (d Dish) PriceLabel(i int) string {
	if i < 0 || i >= len(d.Labels) {
		return ""
	}
	return strings.TrimSpace(d.Labels[i])
}
