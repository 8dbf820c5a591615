package preference

import (
	"sync"

	"github.com/atyab/atyab-menu/internal/logging"
	"github.com/atyab/atyab-menu/internal/logging/events"
)

// ThemeKey is the store key of the colour theme.
const ThemeKey = "theme"

const (
	valueDark  = "dark"
	valueLight = "light"
)

// Theme is the dark/light flag, persisted through a Store.
type Theme struct {
	store Store
	dark  bool
	gen   int

	mu    sync.Mutex
	saved int
}

// LoadTheme reads the stored theme. Missing, unrecognised and unreadable
// values all fall back to dark.
func LoadTheme(store Store) *Theme {
	t := &Theme{store: store, dark: true}
	if store == nil {
		events.Theme.Load(true, "")
		return t
	}
	value, ok, err := store.Get(ThemeKey)
	if err != nil {
		logging.Errorf("load theme", err)
	}
	if ok && err == nil && value == valueLight {
		t.dark = false
	}
	events.Theme.Load(t.dark, value)
	return t
}

// IsDark reports whether the dark palette is active.
func (t *Theme) IsDark() bool {
	return t.dark
}

// Name is "dark" or "light".
func (t *Theme) Name() string {
	if t.dark {
		return valueDark
	}
	return valueLight
}

// Toggle flips the flag and persists it. The flag flips even when the write
// fails; the error is returned for the caller to report.
func (t *Theme) Toggle() error {
	return t.Persist(t.Flip())
}

// Flip changes the flag in memory only. The returned generation orders
// concurrent Persist calls.
func (t *Theme) Flip() (name string, gen int) {
	t.dark = !t.dark
	t.gen++
	events.Theme.Toggle(t.dark)
	return t.Name(), t.gen
}

// Persist writes name for generation gen. Writes older than one already
// stored are skipped, so out of order completion never restores a stale
// value.
func (t *Theme) Persist(name string, gen int) error {
	if t.store == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen <= t.saved {
		return nil
	}
	if err := t.store.Set(ThemeKey, name); err != nil {
		return err
	}
	t.saved = gen
	return nil
}
