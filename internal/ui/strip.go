package ui

import (
	"strings"
	"time"

	"github.com/atyab/atyab-menu/internal/feedback"
	"github.com/atyab/atyab-menu/internal/menu"
	"github.com/atyab/atyab-menu/internal/nav"
	"github.com/atyab/atyab-menu/internal/navstrip"
	"github.com/atyab/atyab-menu/internal/observer"
	"github.com/atyab/atyab-menu/internal/scroll"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// The page is measured in cells. Canonical geometry constants are given in
// units and scaled with a fixed cell metric.
const (
	unitsPerColumn = 10
	unitsPerRow    = 20

	// navRows is the height of the sticky nav overlay: border, chips,
	// border and the current section line.
	navRows = 4

	chipMaxWidth = 18
	arrowWidth   = 2
	arrowLeft    = "❮"
	arrowRight   = "❯"
)

var stickyRows = rowsFromUnits(nav.DefaultOptions().StickyOffset)

func rowsFromUnits(units int) int {
	return units / unitsPerRow
}

func columnsFromUnits(units int) int {
	cols := units / unitsPerColumn
	if cols < 1 {
		cols = 1
	}
	return cols
}

func navOptions() nav.Options {
	opts := nav.DefaultOptions()
	opts.StickyOffset = rowsFromUnits(opts.StickyOffset)
	opts.JumpPulse = feedback.JumpPulse
	return opts
}

func stripOptions() navstrip.Options {
	opts := navstrip.DefaultOptions()
	return navstrip.Options{
		Gap:      columnsFromUnits(opts.Gap),
		Padding:  columnsFromUnits(opts.Padding),
		Step:     columnsFromUnits(opts.Step),
		Epsilon:  columnsFromUnits(opts.Epsilon),
		Duration: scroll.DefaultDuration,
	}
}

func observerMargins() observer.Margins {
	m := observer.DefaultMargins()
	m.Top = rowsFromUnits(m.Top)
	return m
}

func chipText(sec menu.Section) string {
	return " " + sec.ShortLabel(chipMaxWidth) + " "
}

func stripItems(reg *menu.Registry) []navstrip.Item {
	if reg == nil {
		return nil
	}
	sections := reg.Sections()
	items := make([]navstrip.Item, len(sections))
	for i, sec := range sections {
		items[i] = navstrip.Item{ID: sec.ID, Width: lipgloss.Width(chipText(sec))}
	}
	return items
}

func (m *Model) stripVisibleWidth() int {
	w := m.viewWidth() - 2*arrowWidth
	if w < 0 {
		return 0
	}
	return w
}

// screenArrows maps the strip affordances onto the screen edges. In a
// right-to-left layout later sections sit to the left.
func (m *Model) screenArrows() (left, right bool) {
	canLeft, canRight := m.strip.Affordances()
	if m.rtl {
		return canLeft, canRight
	}
	return canRight, canLeft
}

func (m *Model) pageStripScreenLeft(now time.Time) {
	if m.rtl {
		m.strip.PageLeft(now)
		return
	}
	m.strip.PageRight(now)
}

func (m *Model) pageStripScreenRight(now time.Time) {
	if m.rtl {
		m.strip.PageRight(now)
		return
	}
	m.strip.PageLeft(now)
}

func (m *Model) pageStrip(toScreenLeft bool) tea.Cmd {
	now := m.clock.Now()
	if toScreenLeft {
		m.pageStripScreenLeft(now)
	} else {
		m.pageStripScreenRight(now)
	}
	m.pulser.Pulse(feedback.PagePulse)
	return m.ensureFrame()
}

// stripLine renders the chips in screen order, already cut to the visible
// window and padded to its width.
func (m *Model) stripLine() string {
	visible := m.strip.VisibleWidth()
	if visible <= 0 {
		return ""
	}
	sections := m.registry.Sections()
	opts := stripOptions()
	gap := strings.Repeat(" ", opts.Gap)
	pad := strings.Repeat(" ", opts.Padding)
	active := m.nav.State().ActiveSectionID

	chips := make([]string, len(sections))
	for i, sec := range sections {
		style := m.styles.Chip
		if sec.ID == active {
			style = m.styles.ActiveChip
		}
		chips[i] = render(style, chipText(sec))
	}
	if m.rtl {
		for i, j := 0, len(chips)-1; i < j; i, j = i+1, j-1 {
			chips[i], chips[j] = chips[j], chips[i]
		}
	}
	line := pad + strings.Join(chips, gap) + pad
	content := m.strip.ContentWidth()
	window := m.strip.Window()

	var cut string
	if m.rtl {
		// screen column of logical position p is content-1-p
		left := content - window.End
		if left < 0 {
			left = 0
		}
		cut = ansi.Cut(line, left, content-window.Start)
	} else {
		cut = ansi.Cut(line, window.Start, window.End)
	}
	if w := lipgloss.Width(cut); w < visible {
		fill := strings.Repeat(" ", visible-w)
		if m.rtl {
			cut = fill + cut
		} else {
			cut += fill
		}
	}
	return cut
}

// stripItemAtScreen hit-tests a screen column on the chip row.
func (m *Model) stripItemAtScreen(x int) (navstrip.Item, bool) {
	col := x - arrowWidth
	visible := m.strip.VisibleWidth()
	if col < 0 || col >= visible {
		return navstrip.Item{}, false
	}
	if m.rtl {
		col = visible - 1 - col
	}
	return m.strip.ItemAt(col)
}

func (m *Model) navOverlay(width int) []string {
	left, right := m.screenArrows()
	arrow := func(show bool, glyph string, leading bool) string {
		if !show {
			return strings.Repeat(" ", arrowWidth)
		}
		if leading {
			return render(m.styles.Arrow, glyph) + " "
		}
		return " " + render(m.styles.Arrow, glyph)
	}
	border := render(m.styles.NavBorder, strings.Repeat("─", width))
	chips := arrow(left, arrowLeft, true) + m.stripLine() + arrow(right, arrowRight, false)

	current := ""
	if sec, ok := m.registry.Find(m.nav.State().ActiveSectionID); ok {
		current = "▸ " + sec.Label()
	}
	if current != "" {
		current = truncateText(current, width)
		if m.rtl {
			current = lipgloss.PlaceHorizontal(width, lipgloss.Right, render(m.styles.CurrentSection, current))
		} else {
			current = render(m.styles.CurrentSection, current)
		}
	}
	return []string{border, chips, border, current}
}
