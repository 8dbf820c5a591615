package state

import (
	"testing"

	"github.com/atyab/atyab-menu/internal/menu"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if len(level.Items) != 1 || level.Items[0].ID != "two" || level.Cursor != 0 {
		t.Fatalf("expected only 'two' selected, got %#v cursor=%d", level.Items, level.Cursor)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestFilterEditing(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		caret      int
		edit       func(*Level) bool
		wantQuery  string
		wantCaret  int
		wantEdited bool
	}{
		{"insert at end", "", 0, func(l *Level) bool { return l.InsertFilterText("ab") }, "ab", 2, true},
		{"insert mid", "ab", 1, func(l *Level) bool { return l.InsertFilterText("z") }, "azb", 2, true},
		{"insert nothing", "ab", 1, func(l *Level) bool { return l.InsertFilterText("") }, "ab", 1, false},
		{"backspace", "azb", 2, (*Level).DeleteFilterRuneBackward, "ab", 1, true},
		{"backspace at start", "abc", 0, (*Level).DeleteFilterRuneBackward, "abc", 0, false},
		{"delete word", "فطير حلو", 8, (*Level).DeleteFilterWordBackward, "فطير ", 5, true},
		{"delete word with trailing space", "كريب حلو ", 9, (*Level).DeleteFilterWordBackward, "كريب ", 5, true},
		{"delete word at start", "pizza", 0, (*Level).DeleteFilterWordBackward, "pizza", 0, false},
		{"caret back", "pizza", 5, (*Level).MoveFilterCursorRuneBackward, "pizza", 4, true},
		{"caret forward at end", "pizza", 5, (*Level).MoveFilterCursorRuneForward, "pizza", 5, false},
		{"caret start", "pizza", 3, (*Level).MoveFilterCursorStart, "pizza", 0, true},
		{"caret end", "pizza", 0, (*Level).MoveFilterCursorEnd, "pizza", 5, true},
		{"caret end already", "pizza", 5, (*Level).MoveFilterCursorEnd, "pizza", 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLevel("alpha")
			l.SetFilter(tt.query, tt.caret)
			if got := tt.edit(l); got != tt.wantEdited {
				t.Fatalf("edited = %v, want %v", got, tt.wantEdited)
			}
			if l.Filter != tt.wantQuery || l.FilterCursorPos() != tt.wantCaret {
				t.Fatalf("got %q caret %d, want %q caret %d", l.Filter, l.FilterCursorPos(), tt.wantQuery, tt.wantCaret)
			}
		})
	}
}

func TestFilterItemsMatchesLabelOrID(t *testing.T) {
	items := []Entry{
		{ID: "pizza", Label: "البيتزا"},
		{ID: "crepe-sweet", Label: "كريب حلو"},
	}
	if got := FilterItems(items, "piz"); len(got) != 1 || got[0].ID != "pizza" {
		t.Fatalf("expected id match for pizza, got %#v", got)
	}
	if got := FilterItems(items, "حلو"); len(got) != 1 || got[0].ID != "crepe-sweet" {
		t.Fatalf("expected label match for crepe, got %#v", got)
	}
	if len(FilterItems(items, "sushi")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
	clone := FilterItems(items, "")
	clone[0].Label = "changed"
	if items[0].Label != "البيتزا" {
		t.Fatal("expected original slice to remain unchanged")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []Entry{
		{ID: "sandwiches", Label: "Sandwiches"},
		{ID: "desserts", Label: "Desserts"},
		{ID: "drinks", Label: "Drinks"},
	}
	if idx := BestMatchIndex(items, "desserts"); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "dr"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestEntriesFromRegistryMirrorsOrder(t *testing.T) {
	reg, err := menu.NewRegistry([]menu.Section{
		{ID: "a", Title: "Alpha", Emoji: "🥞"},
		{ID: "b", Title: "Beta"},
	})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	entries := EntriesFromRegistry(reg)
	if len(entries) != 2 || entries[0].ID != "a" || entries[1].Glyph != menu.DefaultEmoji {
		t.Fatalf("unexpected entries %#v", entries)
	}
	if EntriesFromRegistry(nil) != nil {
		t.Fatal("expected nil for nil registry")
	}
}
