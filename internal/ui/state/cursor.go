package state

// moveTo places the cursor on idx, clamped to the list, and reports whether
// it moved. An empty list parks the cursor at 0.
func (l *Level) moveTo(idx int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = min(max(idx, 0), n-1)
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first section.
func (l *Level) MoveCursorHome() bool {
	return l.moveTo(0)
}

// MoveCursorEnd moves the cursor to the last section.
func (l *Level) MoveCursorEnd() bool {
	return l.moveTo(len(l.Items) - 1)
}

// MoveCursorUp steps up, wrapping from the first section to the last.
func (l *Level) MoveCursorUp() bool {
	if l.Cursor <= 0 {
		return l.moveTo(len(l.Items) - 1)
	}
	return l.moveTo(l.Cursor - 1)
}

// MoveCursorDown steps down, wrapping from the last section to the first.
func (l *Level) MoveCursorDown() bool {
	if l.Cursor < 0 || l.Cursor >= len(l.Items)-1 {
		return l.moveTo(0)
	}
	return l.moveTo(l.Cursor + 1)
}

// MoveCursorPageUp moves up by one screen of rows without wrapping.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveTo(max(l.Cursor, 0) - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves down by one screen of rows without wrapping.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveTo(max(l.Cursor, 0) + l.pageSize(maxVisible))
}

func (l *Level) pageSize(maxVisible int) int {
	if maxVisible <= 0 || maxVisible > len(l.Items) {
		return max(len(l.Items), 1)
	}
	return maxVisible
}

// EnsureCursorVisible scrolls the list window the least amount needed to
// show the cursor.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 || maxVisible <= 0 {
		l.moveTo(l.Cursor)
		l.ViewportOffset = 0
		return
	}
	l.moveTo(l.Cursor)
	top := min(max(l.ViewportOffset, 0), max(n-maxVisible, 0))
	switch {
	case l.Cursor < top:
		top = l.Cursor
	case l.Cursor >= top+maxVisible:
		top = l.Cursor - maxVisible + 1
	}
	l.ViewportOffset = top
}
