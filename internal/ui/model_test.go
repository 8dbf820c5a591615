package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/atyab/atyab-menu/internal/feedback"
	"github.com/atyab/atyab-menu/internal/menu"
	"github.com/atyab/atyab-menu/internal/preference"
	tea "github.com/charmbracelet/bubbletea"
)

var testStart = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testCatalog(t *testing.T, sections int) (*menu.Catalog, *menu.Registry) {
	t.Helper()
	var b strings.Builder
	b.WriteString("name: Test Kitchen\nsections:\n")
	for i := 1; i <= sections; i++ {
		fmt.Fprintf(&b, "  - id: s%d\n    title: Section %d\n    items:\n", i, i)
		for d := 1; d <= 5; d++ {
			fmt.Fprintf(&b, "      - name: Dish %d.%d\n        prices: [\"%d\"]\n", i, d, 10*d)
		}
	}
	cat, err := menu.ParseCatalog([]byte(b.String()))
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	reg, err := menu.BuildRegistry(cat)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return cat, reg
}

type fixture struct {
	h      *Harness
	pulses *feedback.Recorder
	store  *preference.MemoryStore
}

func newFixture(t *testing.T, sections int, opts Options) fixture {
	t.Helper()
	cat, reg := testCatalog(t, sections)
	f := fixture{pulses: &feedback.Recorder{}, store: preference.NewMemoryStore()}
	if opts.Width == 0 {
		opts.Width = 60
	}
	if opts.Height == 0 {
		opts.Height = 24
	}
	opts.Pulser = f.pulses
	opts.Theme = preference.LoadTheme(f.store)
	f.h = NewHarness(NewModel(cat, reg, opts), testStart)
	f.h.Init()
	return f
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (f fixture) active() string {
	return f.h.Model().State().ActiveSectionID
}

func TestJumpActivatesSectionBeforeScrolling(t *testing.T) {
	f := newFixture(t, 10, Options{})
	f.h.Send(runeKey("2"))

	st := f.h.Model().State()
	if st.ActiveSectionID != "s2" {
		t.Fatalf("expected s2 active immediately, got %q", st.ActiveSectionID)
	}
	if !st.SuppressObserver {
		t.Fatalf("expected observer suppressed after jump")
	}
	if !st.SuppressUntil.Equal(testStart.Add(time.Second)) {
		t.Fatalf("expected window to end one second after the jump, got %v", st.SuppressUntil)
	}
	if f.h.Model().PageOffset() != 0 {
		t.Fatalf("expected the page to scroll smoothly, not jump")
	}
	if len(f.pulses.Patterns) == 0 || f.pulses.Patterns[len(f.pulses.Patterns)-1] != feedback.JumpPulse {
		t.Fatalf("expected a jump pulse, got %v", f.pulses.Patterns)
	}

	f.h.Advance(400 * time.Millisecond)
	top, ok := f.h.Model().doc.SectionTop("s2")
	if !ok {
		t.Fatalf("expected s2 to be laid out")
	}
	if got := f.h.Model().PageOffset(); got != top-stickyRows {
		t.Fatalf("expected offset %d, got %d", top-stickyRows, got)
	}
	if f.active() != "s2" {
		t.Fatalf("expected s2 to stay active while the page scrolls, got %q", f.active())
	}
}

func TestObserverIgnoredInsideSuppressionWindow(t *testing.T) {
	f := newFixture(t, 10, Options{})
	f.h.Send(runeKey("2"))
	f.h.Advance(400 * time.Millisecond)

	f.h.Send(tea.KeyMsg{Type: tea.KeyPgDown})
	if f.active() != "s2" {
		t.Fatalf("expected visibility changes inside the window to be ignored, got %q", f.active())
	}

	f.h.Advance(700 * time.Millisecond)
	st := f.h.Model().State()
	if st.SuppressObserver {
		t.Fatalf("expected suppression to end after the window")
	}
	if st.ActiveSectionID != "s2" {
		t.Fatalf("expected expiry alone not to change the active section, got %q", st.ActiveSectionID)
	}

	f.h.Send(tea.KeyMsg{Type: tea.KeyPgDown})
	active := f.active()
	reg := f.h.Model().registry
	if reg.IndexOf(active) <= reg.IndexOf("s2") {
		t.Fatalf("expected a later section to take over after the window, got %q", active)
	}
}

func TestSecondJumpExtendsSuppression(t *testing.T) {
	f := newFixture(t, 10, Options{})
	f.h.Send(runeKey("2"))
	f.h.Advance(600 * time.Millisecond)
	f.h.Send(runeKey("5"))

	// the first timer fires here but the second window is still open
	f.h.Advance(500 * time.Millisecond)
	st := f.h.Model().State()
	if !st.SuppressObserver {
		t.Fatalf("expected the stale timer to leave suppression on")
	}
	if st.ActiveSectionID != "s5" {
		t.Fatalf("expected s5 active, got %q", st.ActiveSectionID)
	}
	f.h.Advance(600 * time.Millisecond)
	if f.h.Model().State().SuppressObserver {
		t.Fatalf("expected suppression to end one second after the last jump")
	}
}

func TestDigitAndTabKeysJump(t *testing.T) {
	f := newFixture(t, 10, Options{})
	f.h.Send(runeKey("0"))
	if f.active() != "s10" {
		t.Fatalf("expected 0 to select the tenth section, got %q", f.active())
	}
	f.h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.active() != "s9" {
		t.Fatalf("expected shift+tab to move back, got %q", f.active())
	}
	f.h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if f.active() != "s10" {
		t.Fatalf("expected tab to move forward, got %q", f.active())
	}
	f.h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if f.active() != "s10" {
		t.Fatalf("expected tab on the last section to stay, got %q", f.active())
	}
}

func TestDigitBeyondRegistryShowsInfo(t *testing.T) {
	f := newFixture(t, 3, Options{})
	before := f.active()
	f.h.Send(runeKey("7"))
	if f.active() != before {
		t.Fatalf("expected no jump for a missing section")
	}
	if !strings.Contains(f.h.View(), "No section 7") {
		t.Fatalf("expected info message, view =\n%s", f.h.View())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		f := newFixture(t, 3, Options{})
		f.h.Send(key)
		if !f.h.Quit() {
			t.Fatalf("expected %q to quit", key.String())
		}
	}
}

func TestCloseStopsObservation(t *testing.T) {
	f := newFixture(t, 10, Options{})
	f.h.Send(runeKey("2"))
	f.h.Advance(1500 * time.Millisecond)
	f.h.Model().Close()

	f.h.Send(tea.KeyMsg{Type: tea.KeyPgDown})
	f.h.Send(tea.KeyMsg{Type: tea.KeyPgDown})
	if f.active() != "s2" {
		t.Fatalf("expected no visibility updates after Close, got %q", f.active())
	}
	f.h.Model().Close()
}

func TestResizeFollowsTerminal(t *testing.T) {
	cat, reg := testCatalog(t, 4)
	h := NewHarness(NewModel(cat, reg, Options{}), testStart)
	h.Send(tea.WindowSizeMsg{Width: 50, Height: 20})
	m := h.Model()
	if m.width != 50 || m.height != 20 {
		t.Fatalf("expected 50x20, got %dx%d", m.width, m.height)
	}
	if m.page.Height != 19 {
		t.Fatalf("expected page height 19, got %d", m.page.Height)
	}
	if got := m.strip.VisibleWidth(); got != 50-2*arrowWidth {
		t.Fatalf("expected strip width %d, got %d", 50-2*arrowWidth, got)
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	f := newFixture(t, 4, Options{Width: 70, Height: 30})
	f.h.Send(tea.WindowSizeMsg{Width: 40, Height: 10})
	m := f.h.Model()
	if m.width != 70 || m.height != 30 {
		t.Fatalf("expected fixed 70x30, got %dx%d", m.width, m.height)
	}
}

func TestEverySectionCanReachStickyPosition(t *testing.T) {
	f := newFixture(t, 6, Options{})
	m := f.h.Model()
	for _, id := range m.registry.IDs() {
		top, ok := m.doc.SectionTop(id)
		if !ok {
			t.Fatalf("expected %s to be laid out", id)
		}
		if top-stickyRows > m.maxPageOffset() {
			t.Fatalf("expected %s at %d to be reachable, max offset %d", id, top, m.maxPageOffset())
		}
	}
}
