package ui

import (
	"fmt"
	"strings"

	"github.com/atyab/atyab-menu/internal/logging/events"
	"github.com/atyab/atyab-menu/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// openPicker shows the category picker with the active section selected.
func (m *Model) openPicker() tea.Cmd {
	active := m.nav.State().ActiveSectionID
	m.picker.Reset(active)
	m.pickerOpen = true
	m.syncViewport(m.picker)
	events.UI.PickerOpen(active)
	return m.filterCursor.Focus()
}

func (m *Model) closePicker(reason string) {
	if !m.pickerOpen {
		return
	}
	m.pickerOpen = false
	m.filterCursor.Blur()
	events.UI.PickerClose(reason)
}

func (m *Model) handlePickerKey(keyMsg tea.KeyMsg) tea.Cmd {
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		if m.picker.Filter != "" {
			before := m.picker.FilterCursorPos()
			m.picker.SetFilter("", 0)
			m.noteFilterCursorChange(m.picker, before)
			events.Filter.Cleared(m.picker.ID)
			m.syncViewport(m.picker)
			return nil
		}
		m.closePicker("dismiss")
		return nil
	case "enter":
		entry, ok := m.picker.Current()
		if !ok {
			return nil
		}
		return m.jumpTo(entry.ID, nav.OriginPicker)
	case "up", "ctrl+p":
		m.movePickerCursor(-1)
	case "down", "ctrl+n":
		m.movePickerCursor(1)
	case "pgup":
		if m.picker.MoveCursorPageUp(m.maxVisibleItems()) {
			events.UI.PickerCursor(m.picker.Cursor)
		}
		m.syncViewport(m.picker)
	case "pgdown":
		if m.picker.MoveCursorPageDown(m.maxVisibleItems()) {
			events.UI.PickerCursor(m.picker.Cursor)
		}
		m.syncViewport(m.picker)
	case "home":
		if m.picker.MoveCursorHome() {
			events.UI.PickerCursor(m.picker.Cursor)
		}
		m.syncViewport(m.picker)
	case "end":
		if m.picker.MoveCursorEnd() {
			events.UI.PickerCursor(m.picker.Cursor)
		}
		m.syncViewport(m.picker)
	}
	return nil
}

func (m *Model) movePickerCursor(delta int) {
	moved := false
	if delta < 0 {
		moved = m.picker.MoveCursorUp()
	} else {
		moved = m.picker.MoveCursorDown()
	}
	if moved {
		events.UI.PickerCursor(m.picker.Cursor)
	}
	m.syncViewport(m.picker)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

// maxVisibleItems is the number of picker rows that fit under the nav
// overlay, the picker title and the filter prompt.
func (m *Model) maxVisibleItems() int {
	remain := m.page.Height - navRows - 3
	if remain < 1 {
		return 1
	}
	return remain
}

// pickerLines renders the picker in place of the page body.
func (m *Model) pickerLines(width int) []styledLine {
	lines := make([]styledLine, 0, 8)
	title := fmt.Sprintf("%s (%d)", m.picker.Title, len(m.picker.Full))
	lines = append(lines, styledLine{text: title, style: m.styles.Header})
	prompt := m.filterPrompt()
	lines = append(lines, styledLine{text: prompt, ansi: true})
	lines = append(lines, styledLine{})

	l := m.picker
	m.syncViewport(l)
	if len(l.Items) == 0 {
		msg := "(no sections)"
		if strings.TrimSpace(l.Filter) != "" {
			msg = fmt.Sprintf("No matches for %q", l.Filter)
		}
		return append(lines, styledLine{text: msg, style: m.styles.Info})
	}
	start := l.ViewportOffset
	end := start + m.maxVisibleItems()
	if end > len(l.Items) {
		end = len(l.Items)
	}
	active := m.nav.State().ActiveSectionID
	for idx := start; idx < end; idx++ {
		entry := l.Items[idx]
		lines = append(lines, m.buildItemLine(entry.Glyph+" "+entry.Label, idx == l.Cursor, entry.ID == active, width))
	}
	return lines
}

// buildItemLine constructs a single picker row. The active section carries
// a marker so it stays recognisable when the cursor is elsewhere.
func (m *Model) buildItemLine(label string, selected, active bool, width int) styledLine {
	indicator := "▌"
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	if active {
		lineStyle = m.styles.ActiveItem
		label += " •"
	}
	if selected {
		indicatorStyle = m.styles.SelectedItemIndicator
		lineStyle = m.styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - displayWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:      fullText,
		style:     lineStyle,
		markStyle: indicatorStyle,
		markRunes: 1,
	}
}
