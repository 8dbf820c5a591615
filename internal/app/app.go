package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/atyab/atyab-menu/internal/feedback"
	"github.com/atyab/atyab-menu/internal/logging"
	"github.com/atyab/atyab-menu/internal/logging/events"
	"github.com/atyab/atyab-menu/internal/menu"
	"github.com/atyab/atyab-menu/internal/preference"
	"github.com/atyab/atyab-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Smallest fixed sizes the page layout supports.
const (
	MinWidth  = 24
	MinHeight = 8
)

// ErrInvalidMenu marks failures to load or validate the menu document.
var ErrInvalidMenu = errors.New("invalid menu")

// Config describes user-provided application options.
type Config struct {
	MenuPath   string
	PrefsPath  string
	Width      int
	Height     int
	ShowFooter bool
	RTL        bool
	Haptics    bool
}

// NewModel loads the menu and builds the page model over store.
func NewModel(cfg Config, store preference.Store) (*ui.Model, error) {
	cat, err := menu.LoadCatalog(cfg.MenuPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMenu, err)
	}
	reg, err := menu.BuildRegistry(cat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMenu, err)
	}
	return ui.NewModel(cat, reg, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		RTL:        cfg.RTL,
		Theme:      preference.LoadTheme(store),
		Pulser:     feedback.New(cfg.Haptics, os.Stderr),
	}), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	store, err := preference.Open(cfg.PrefsPath)
	if err != nil {
		// the theme still toggles for this session
		logging.Errorf("open preferences", err)
		store = preference.NewMemoryStore()
	}
	defer func() {
		if err := preference.Close(store); err != nil {
			logging.Errorf("close preferences", err)
		}
	}()

	model, err := NewModel(cfg, store)
	if err != nil {
		return err
	}
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		events.App.Stop("error")
		return err
	}
	events.App.Stop("quit")
	return nil
}
