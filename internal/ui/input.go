package ui

import (
	"unicode"

	"github.com/atyab/atyab-menu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	if !m.pickerOpen {
		return nil
	}
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l != nil && before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// editFilter runs op against the picker level. Edits that change the query
// clear the info line, trace the new query and refit the list window; caret
// moves only trace the caret.
func (m *Model) editFilter(op func(*level) bool, trace func(id, query string)) bool {
	l := m.picker
	if l == nil {
		return false
	}
	before, query := l.FilterCursorPos(), l.Filter
	if !op(l) {
		return false
	}
	m.noteFilterCursorChange(l, before)
	if l.Filter == query {
		events.Filter.Cursor(l.ID, l.FilterCursor)
		return true
	}
	m.forceClearInfo()
	trace(l.ID, l.Filter)
	m.syncViewport(l)
	return true
}

func traceCleared(id, _ string) { events.Filter.Cleared(id) }

var filterKeyOps = map[string]func(*level) bool{
	"ctrl+w": (*level).DeleteFilterWordBackward,
	"ctrl+a": (*level).MoveFilterCursorStart,
	"ctrl+e": (*level).MoveFilterCursorEnd,
}

// handleTextInput edits the picker filter. It reports whether the key was
// consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if m.picker == nil {
		return false
	}
	key := msg.String()
	if key == "ctrl+u" {
		return m.editFilter(func(l *level) bool {
			if l.Filter == "" {
				return false
			}
			l.SetFilter("", 0)
			return true
		}, traceCleared)
	}
	if op, ok := filterKeyOps[key]; ok {
		return m.editFilter(op, events.Filter.WordBackspace)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || !printable(msg.Runes) {
			return false
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeyLeft, tea.KeyRight:
		// the prompt reads in text order, so the arrows swap in RTL
		back := (msg.Type == tea.KeyLeft) != m.rtl
		op := (*level).MoveFilterCursorRuneForward
		if back {
			op = (*level).MoveFilterCursorRuneBackward
		}
		return m.editFilter(op, nil)
	}
	return false
}

func printable(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func (m *Model) appendToFilter(text string) bool {
	return m.editFilter(func(l *level) bool {
		return l.InsertFilterText(text)
	}, events.Filter.Append)
}

func (m *Model) removeFilterRune() bool {
	return m.editFilter((*level).DeleteFilterRuneBackward, events.Filter.Backspace)
}

const filterPlaceholder = "(ابحث عن قسم)"

// filterPrompt renders the query with the caret over the rune at the caret
// position. An empty query shows the placeholder with the caret on its first
// rune.
func (m *Model) filterPrompt() string {
	st := m.styles
	prompt := render(st.FilterPrompt, "» ")
	if m.picker == nil {
		return prompt
	}
	m.filterCursor.Style = styleOrZero(st.Cursor)
	m.filterCursor.TextStyle = styleOrZero(st.Filter)

	textStyle := st.Filter
	runes := []rune(m.picker.Filter)
	pos := clampInt(m.picker.FilterCursorPos(), 0, len(runes))
	if len(runes) == 0 {
		runes, pos = []rune(filterPlaceholder), 0
		textStyle = st.FilterPlaceholder
		m.filterCursor.TextStyle = styleOrZero(textStyle)
	}
	caret, rest := " ", ""
	if pos < len(runes) {
		caret, rest = string(runes[pos]), string(runes[pos+1:])
	}
	return prompt + render(textStyle, string(runes[:pos])) + m.renderFilterCursor(caret) + render(textStyle, rest)
}

func styleOrZero(s *lipgloss.Style) lipgloss.Style {
	if s == nil {
		return lipgloss.Style{}
	}
	return s.Copy()
}

func (m *Model) renderFilterCursor(char string) string {
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	switch {
	case m.filterCursor.Blink:
		return base.Render(char)
	case m.styles.Cursor != nil:
		return base.Inherit(m.styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
