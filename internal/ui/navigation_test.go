package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atyab/atyab-menu/internal/feedback"
	"github.com/atyab/atyab-menu/internal/logging"
	"github.com/atyab/atyab-menu/internal/preference"
	tea "github.com/charmbracelet/bubbletea"
)

func TestThemeTogglePersists(t *testing.T) {
	f := newFixture(t, 3, Options{})
	if !f.h.Model().theme.IsDark() {
		t.Fatalf("expected dark by default")
	}
	f.h.Send(runeKey("t"))
	if f.h.Model().theme.IsDark() {
		t.Fatalf("expected light after toggle")
	}
	got, ok, err := f.store.Get(preference.ThemeKey)
	if err != nil || !ok || got != "light" {
		t.Fatalf("expected light persisted, got %q ok=%v err=%v", got, ok, err)
	}
	if n := len(f.pulses.Patterns); n == 0 || f.pulses.Patterns[n-1] != feedback.HeaderPulse {
		t.Fatalf("expected a header pulse, got %v", f.pulses.Patterns)
	}

	f.h.Send(runeKey("t"))
	got, _, _ = f.store.Get(preference.ThemeKey)
	if got != "dark" {
		t.Fatalf("expected dark persisted after second toggle, got %q", got)
	}
	if reloaded := preference.LoadTheme(f.store); !reloaded.IsDark() {
		t.Fatalf("expected reload to see dark")
	}
}

func TestThemeToggleWriteFailureKeepsSessionTheme(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })

	f := newFixture(t, 3, Options{})
	f.store.SetErr = errors.New("disk full")
	f.h.Send(runeKey("t"))
	if f.h.Model().theme.IsDark() {
		t.Fatalf("expected the session to switch theme even when saving fails")
	}
	if !strings.Contains(f.h.View(), "disk full") {
		t.Fatalf("expected the save error in the status line, view =\n%s", f.h.View())
	}
}

func TestPageKeysScroll(t *testing.T) {
	f := newFixture(t, 10, Options{})
	m := f.h.Model()
	f.h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if m.PageOffset() != 1 {
		t.Fatalf("expected offset 1, got %d", m.PageOffset())
	}
	f.h.Send(tea.KeyMsg{Type: tea.KeySpace})
	if want := 1 + m.pageStep(); m.PageOffset() != want {
		t.Fatalf("expected offset %d, got %d", want, m.PageOffset())
	}
	f.h.Send(tea.KeyMsg{Type: tea.KeyPgUp})
	if m.PageOffset() != 1 {
		t.Fatalf("expected offset 1 after pgup, got %d", m.PageOffset())
	}
	f.h.Send(runeKey("k"))
	f.h.Send(runeKey("k"))
	if m.PageOffset() != 0 {
		t.Fatalf("expected offset clamped at 0, got %d", m.PageOffset())
	}

	f.h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	f.h.Advance(time.Second)
	if m.PageOffset() != m.maxPageOffset() {
		t.Fatalf("expected end to reach %d, got %d", m.maxPageOffset(), m.PageOffset())
	}
	f.h.Send(tea.KeyMsg{Type: tea.KeyHome})
	f.h.Advance(time.Second)
	if m.PageOffset() != 0 {
		t.Fatalf("expected home to reach the top, got %d", m.PageOffset())
	}
}

func TestManualScrollCancelsSmoothScroll(t *testing.T) {
	f := newFixture(t, 10, Options{})
	m := f.h.Model()
	f.h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	f.h.Advance(50 * time.Millisecond)
	mid := m.PageOffset()
	f.h.Send(tea.KeyMsg{Type: tea.KeyDown})
	f.h.Advance(time.Second)
	if got := m.PageOffset(); got != mid+1 {
		t.Fatalf("expected manual scroll to stop the animation at %d, got %d", mid+1, got)
	}
}
