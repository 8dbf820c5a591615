package state

import "testing"

func newTestLevel(ids ...string) *Level {
	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = Entry{ID: id, Label: id}
	}
	return NewLevel("picker", "Sections", entries)
}

func TestCursorMoves(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		start int
		move  func(*Level) bool
		want  int
		moved bool
	}{
		{"home", []string{"pizza", "crepe", "desserts"}, 2, (*Level).MoveCursorHome, 0, true},
		{"end", []string{"pizza", "crepe", "desserts"}, 0, (*Level).MoveCursorEnd, 2, true},
		{"home on empty", nil, 5, (*Level).MoveCursorHome, 0, false},
		{"end on empty", nil, 0, (*Level).MoveCursorEnd, 0, false},
		{"up wraps", []string{"a", "b", "c"}, 0, (*Level).MoveCursorUp, 2, true},
		{"down wraps", []string{"a", "b", "c"}, 2, (*Level).MoveCursorDown, 0, true},
		{"down from unset", []string{"a", "b"}, -1, (*Level).MoveCursorDown, 0, true},
		{"single entry", []string{"only"}, 0, (*Level).MoveCursorDown, 0, false},
		{"page down", []string{"a", "b", "c", "d", "e"}, 0, func(l *Level) bool { return l.MoveCursorPageDown(2) }, 2, true},
		{"page down clamps", []string{"a", "b", "c", "d", "e"}, 3, func(l *Level) bool { return l.MoveCursorPageDown(2) }, 4, true},
		{"page down at end", []string{"a", "b", "c", "d", "e"}, 4, func(l *Level) bool { return l.MoveCursorPageDown(2) }, 4, false},
		{"page up past start", []string{"a", "b", "c", "d", "e"}, 4, func(l *Level) bool { return l.MoveCursorPageUp(10) }, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLevel(tt.ids...)
			l.Cursor = tt.start
			if got := tt.move(l); got != tt.moved {
				t.Fatalf("moved = %v, want %v", got, tt.moved)
			}
			if l.Cursor != tt.want {
				t.Fatalf("cursor = %d, want %d", l.Cursor, tt.want)
			}
		})
	}
}

func TestEnsureCursorVisibleScrollsMinimally(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")

	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("cursor below window: offset = %d, want 3", l.ViewportOffset)
	}

	l.Cursor = 3
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("cursor inside window: offset = %d, want 3", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("cursor above window: offset = %d, want 1", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("negative cursor: got cursor %d offset %d", l.Cursor, l.ViewportOffset)
	}
}

func TestResetSelectsActiveSection(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.SetFilter("c", 1)
	l.Reset("b")
	if l.Filter != "" || len(l.Items) != 3 {
		t.Fatalf("filter not cleared: %q with %d items", l.Filter, len(l.Items))
	}
	if cur, ok := l.Current(); !ok || cur.ID != "b" {
		t.Fatalf("current = %#v, want b", cur)
	}
	l.Reset("missing")
	if l.Cursor != 0 {
		t.Fatalf("unknown id: cursor = %d, want 0", l.Cursor)
	}
}
