package ui

import (
	"strings"

	"github.com/atyab/atyab-menu/internal/format/table"
	"github.com/atyab/atyab-menu/internal/menu"
	"github.com/atyab/atyab-menu/internal/observer"
	"github.com/atyab/atyab-menu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const defaultDocumentWidth = 80

// document is the rendered page: styled lines plus the row range of every
// section, which is the geometry the observer and the jump locator read.
type document struct {
	lines []string
	boxes map[string]observer.Rect
}

func (d document) content() string {
	return strings.Join(d.lines, "\n")
}

// SectionTop returns the first row of a section.
func (d document) SectionTop(id string) (int, bool) {
	box, ok := d.boxes[id]
	if !ok {
		return 0, false
	}
	return box.Top, true
}

// Bounds returns the row range of a section.
func (d document) Bounds(id string) (observer.Rect, bool) {
	box, ok := d.boxes[id]
	return box, ok
}

type docBuilder struct {
	lines  []string
	width  int
	rtl    bool
	styles *theme.Styles
}

// buildDocument lays out the catalog for a page of the given width. The
// first navRows rows are left blank for the nav overlay, and blank rows are
// appended so the last section can still be scrolled under the sticky bar.
func buildDocument(cat *menu.Catalog, reg *menu.Registry, width, pageHeight int, rtl bool, styles *theme.Styles) document {
	if width <= 0 {
		width = defaultDocumentWidth
	}
	b := &docBuilder{width: width, rtl: rtl, styles: styles}
	doc := document{boxes: make(map[string]observer.Rect)}

	for i := 0; i < navRows; i++ {
		b.blank()
	}
	if cat != nil {
		b.hero(cat)
	}
	lastTop := 0
	if reg != nil {
		for _, sec := range reg.Sections() {
			b.blank()
			top := len(b.lines)
			if sec.Addition {
				b.addition(sec)
			} else {
				b.section(sec, width)
			}
			doc.boxes[sec.ID] = observer.Rect{Top: top, Height: len(b.lines) - top}
			lastTop = top
		}
	}
	if cat != nil && strings.TrimSpace(cat.Delivery) != "" {
		b.blank()
		b.centered(render(styles.Delivery, cat.Delivery))
	}
	b.blank()

	if pad := lastTop - stickyRows + pageHeight - len(b.lines); pad > 0 {
		for i := 0; i < pad; i++ {
			b.blank()
		}
	}
	doc.lines = b.lines
	return doc
}

func (b *docBuilder) blank() {
	b.lines = append(b.lines, "")
}

func (b *docBuilder) add(text string) {
	if lipgloss.Width(text) > b.width {
		text = truncate.StringWithTail(text, uint(b.width), "…")
	}
	if b.rtl {
		text = lipgloss.PlaceHorizontal(b.width, lipgloss.Right, text)
	}
	b.lines = append(b.lines, text)
}

func (b *docBuilder) block(rendered string) {
	for _, line := range strings.Split(rendered, "\n") {
		b.add(line)
	}
}

func (b *docBuilder) centered(rendered string) {
	placed := lipgloss.PlaceHorizontal(b.width, lipgloss.Center, rendered)
	for _, line := range strings.Split(placed, "\n") {
		if lipgloss.Width(line) > b.width {
			line = truncate.StringWithTail(line, uint(b.width), "…")
		}
		b.lines = append(b.lines, line)
	}
}

func (b *docBuilder) hero(cat *menu.Catalog) {
	parts := []string{render(b.styles.HeroTitle, cat.Name)}
	if cat.Tagline != "" {
		parts = append(parts, render(b.styles.HeroDetail, cat.Tagline))
	}
	for _, line := range cat.Address {
		parts = append(parts, render(b.styles.HeroDetail, line))
	}
	box := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if b.styles.Hero != nil {
		box = b.styles.Hero.Render(box)
	}
	b.centered(box)
}

func (b *docBuilder) section(sec menu.Section, width int) {
	b.add(render(b.styles.SectionTitle, sec.Label()))
	for _, line := range b.dishLines(sec.Dishes, width-2*dishIndent) {
		b.add(line)
	}
}

func (b *docBuilder) addition(sec menu.Section) {
	inner := b.width - 4
	if inner < 8 {
		inner = 8
	}
	lines := []string{render(b.styles.SectionTitle, sec.Label())}
	lines = append(lines, b.dishLines(sec.Dishes, inner-2*dishIndent)...)
	box := strings.Join(lines, "\n")
	if b.styles.Addition != nil {
		box = b.styles.Addition.Width(inner + 2).Render(box)
	}
	b.block(box)
}

const dishIndent = 2

// dishLines renders one aligned row per dish followed by its wrapped note.
func (b *docBuilder) dishLines(dishes []menu.Dish, width int) []string {
	if len(dishes) == 0 {
		return nil
	}
	if width < 10 {
		width = 10
	}
	cols := 1
	for _, d := range dishes {
		if n := len(d.Prices) + 1; n > cols {
			cols = n
		}
	}
	rows := make([][]string, len(dishes))
	align := make([]table.Alignment, cols)
	stretch := 0
	for i, d := range dishes {
		row := make([]string, cols)
		if b.rtl {
			row[cols-1] = d.Name
			for p := range d.Prices {
				row[cols-2-p] = priceCell(d, p)
			}
		} else {
			row[0] = d.Name
			for p := range d.Prices {
				row[1+p] = priceCell(d, p)
			}
		}
		rows[i] = row
	}
	if b.rtl {
		stretch = cols - 1
		align[cols-1] = table.AlignRight
	} else {
		for c := 1; c < cols; c++ {
			align[c] = table.AlignRight
		}
	}
	formatted := table.FormatWidthAt(rows, align, width, stretch)
	indent := strings.Repeat(" ", dishIndent)
	out := make([]string, 0, len(dishes))
	for i, d := range dishes {
		out = append(out, indent+b.styleDishRow(formatted[i], d))
		if note := strings.TrimSpace(d.Note); note != "" {
			for _, line := range strings.Split(wordwrap.String(note, width-dishIndent), "\n") {
				out = append(out, indent+indent+render(b.styles.Note, line))
			}
		}
	}
	return out
}

// styleDishRow colours the name and price segments of an aligned row.
func (b *docBuilder) styleDishRow(row string, d menu.Dish) string {
	idx := strings.Index(row, d.Name)
	if idx < 0 || d.Name == "" {
		return render(b.styles.Dish, row)
	}
	before, after := row[:idx], row[idx+len(d.Name):]
	return render(b.styles.Price, before) + render(b.styles.Dish, d.Name) + render(b.styles.Price, after)
}

func priceCell(d menu.Dish, i int) string {
	price := strings.TrimSpace(d.Prices[i])
	if label := d.PriceLabel(i); label != "" {
		return label + " " + price
	}
	return price
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
