package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the query and places the caret at cursor. Starting a
// query remembers the cursor; clearing it brings that cursor back.
func (l *Level) SetFilter(query string, cursor int) {
	wasFiltering := strings.TrimSpace(l.Filter) != ""
	needle := strings.TrimSpace(query)
	l.Filter = query
	l.FilterCursor = min(max(cursor, 0), len([]rune(query)))

	switch {
	case needle != "":
		if !wasFiltering {
			l.LastCursor = l.Cursor
		}
		l.Cursor = 0
		l.applyFilter()
		if best := BestMatchIndex(l.Items, needle); best >= 0 {
			l.Cursor = best
		}
	case wasFiltering:
		saved := l.LastCursor
		l.applyFilter()
		if saved < 0 || saved >= len(l.Items) {
			saved = len(l.Items) - 1
		}
		l.moveTo(saved)
		l.LastCursor = -1
	default:
		l.applyFilter()
	}
}

// applyFilter recomputes the visible entries and keeps the cursor and the
// list window inside them.
func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	l.moveTo(l.Cursor)
	if len(l.Items) == 0 || l.ViewportOffset >= len(l.Items) {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *Level) FilterCursorPos() int {
	return min(max(l.FilterCursor, 0), len([]rune(l.Filter)))
}

// editFilter replaces the runes in [from, to) with insert and leaves the
// cursor after the inserted text.
func (l *Level) editFilter(from, to int, insert []rune) {
	runes := []rune(l.Filter)
	updated := make([]rune, 0, len(runes)-(to-from)+len(insert))
	updated = append(updated, runes[:from]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[to:]...)
	l.SetFilter(string(updated), from+len(insert))
}

// setFilterCursor moves the caret without editing and reports a change.
func (l *Level) setFilterCursor(pos int) bool {
	pos = min(max(pos, 0), len([]rune(l.Filter)))
	if pos == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = pos
	return true
}

// InsertFilterText inserts text at the caret.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	pos := l.FilterCursorPos()
	l.editFilter(pos, pos, insert)
	return true
}

// DeleteFilterRuneBackward removes the rune before the caret.
func (l *Level) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.editFilter(pos-1, pos, nil)
	return true
}

// DeleteFilterWordBackward removes the word before the caret along with any
// spaces between it and the caret.
func (l *Level) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	runes := []rune(l.Filter)
	from := pos
	for from > 0 && unicode.IsSpace(runes[from-1]) {
		from--
	}
	for from > 0 && !unicode.IsSpace(runes[from-1]) {
		from--
	}
	l.editFilter(from, pos, nil)
	return true
}

// MoveFilterCursorStart moves the caret to the start of the query.
func (l *Level) MoveFilterCursorStart() bool {
	return l.setFilterCursor(0)
}

// MoveFilterCursorEnd moves the caret to the end of the query.
func (l *Level) MoveFilterCursorEnd() bool {
	return l.setFilterCursor(len([]rune(l.Filter)))
}

// MoveFilterCursorRuneBackward moves the caret one rune back.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.setFilterCursor(l.FilterCursorPos() - 1)
}

// MoveFilterCursorRuneForward moves the caret one rune forward.
func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.setFilterCursor(l.FilterCursorPos() + 1)
}

// FilterItems returns entries whose label or id matches the query. Labels
// are ranked fuzzily; ids give a latin spelling for non-latin labels.
func FilterItems(items []Entry, query string) []Entry {
	needle := strings.TrimSpace(query)
	if needle == "" {
		return CloneEntries(items)
	}
	hit := make([]bool, len(items))
	for _, haystack := range [][]string{field(items, labelOf), field(items, idOf)} {
		for _, rank := range fuzzy.RankFindNormalizedFold(needle, haystack) {
			hit[rank.OriginalIndex] = true
		}
	}
	out := make([]Entry, 0, len(items))
	for i, item := range items {
		if hit[i] {
			out = append(out, item)
		}
	}
	return out
}

// BestMatchIndex picks the entry the cursor should land on for query: an
// exact label or id, then a label prefix, an id prefix, a substring of
// either, and finally the closest fuzzy label. It returns -1 only for an
// empty list.
func BestMatchIndex(items []Entry, query string) int {
	if len(items) == 0 {
		return -1
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return 0
	}
	tiers := []func(label, id string) bool{
		func(label, id string) bool { return label == needle || id == needle },
		func(label, _ string) bool { return strings.HasPrefix(label, needle) },
		func(_, id string) bool { return strings.HasPrefix(id, needle) },
		func(label, id string) bool { return strings.Contains(label, needle) || strings.Contains(id, needle) },
	}
	for _, match := range tiers {
		for i, item := range items {
			if match(strings.ToLower(item.Label), strings.ToLower(item.ID)) {
				return i
			}
		}
	}
	best := -1
	bestDistance := 0
	for _, rank := range fuzzy.RankFindNormalizedFold(needle, field(items, labelOf)) {
		if best < 0 || rank.Distance < bestDistance ||
			(rank.Distance == bestDistance && rank.OriginalIndex < best) {
			best, bestDistance = rank.OriginalIndex, rank.Distance
		}
	}
	if best < 0 || best >= len(items) {
		return 0
	}
	return best
}

func labelOf(e Entry) string { return e.Label }

func idOf(e Entry) string { return e.ID }

func field(items []Entry, get func(Entry) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = get(item)
	}
	return out
}
