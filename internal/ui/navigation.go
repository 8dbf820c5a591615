package ui

import (
	"fmt"

	"github.com/atyab/atyab-menu/internal/feedback"
	"github.com/atyab/atyab-menu/internal/logging"
	"github.com/atyab/atyab-menu/internal/logging/events"
	"github.com/atyab/atyab-menu/internal/nav"
	"github.com/atyab/atyab-menu/internal/theme"
	"github.com/atyab/atyab-menu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.pickerOpen {
		return m.handlePickerKey(keyMsg)
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return tea.Quit
	case "up", "k":
		return m.scrollPageBy(-1)
	case "down", "j":
		return m.scrollPageBy(1)
	case "pgup":
		return m.scrollPageBy(-m.pageStep())
	case "pgdown", " ":
		return m.scrollPageBy(m.pageStep())
	case "g", "home":
		m.pulser.Pulse(feedback.HeaderPulse)
		return m.smoothScrollPageTo(0)
	case "G", "end":
		return m.smoothScrollPageTo(m.maxPageOffset())
	case "left", "h":
		return m.pageStrip(true)
	case "right", "l":
		return m.pageStrip(false)
	case "tab":
		return m.jumpRelative(1)
	case "shift+tab":
		return m.jumpRelative(-1)
	case "m":
		m.pulser.Pulse(feedback.HeaderPulse)
		return m.openPicker()
	case "t":
		return m.toggleTheme()
	}
	if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 {
		if n, ok := digitIndex(keyMsg.Runes[0]); ok {
			return m.jumpToIndex(n)
		}
	}
	return nil
}

// digitIndex maps 1-9 to sections 0-8 and 0 to the tenth section.
func digitIndex(r rune) (int, bool) {
	switch {
	case r >= '1' && r <= '9':
		return int(r - '1'), true
	case r == '0':
		return 9, true
	}
	return 0, false
}

func (m *Model) jumpToIndex(i int) tea.Cmd {
	sec, ok := m.registry.At(i)
	if !ok {
		m.setInfo(fmt.Sprintf("No section %d", i+1))
		return nil
	}
	return m.jumpTo(sec.ID, nav.OriginKeyboard)
}

func (m *Model) jumpRelative(delta int) tea.Cmd {
	active := m.nav.State().ActiveSectionID
	next, ok := m.registry.Next(active)
	if delta < 0 {
		next, ok = m.registry.Prev(active)
	}
	if !ok {
		return nil
	}
	return m.jumpTo(next.ID, nav.OriginKeyboard)
}

// pageStep scrolls by the rows visible below the nav overlay.
func (m *Model) pageStep() int {
	step := m.page.Height - navRows
	if step < 1 {
		step = 1
	}
	return step
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if m.pickerOpen {
			m.movePickerCursor(-1)
			return nil
		}
		return m.scrollPageBy(-wheelStep)
	case tea.MouseButtonWheelDown:
		if m.pickerOpen {
			m.movePickerCursor(1)
			return nil
		}
		return m.scrollPageBy(wheelStep)
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
		return m.handleClick(ev.X, ev.Y)
	}
	return nil
}

// chipRow is the screen row of the chips inside the nav overlay.
const chipRow = 1

func (m *Model) handleClick(x, y int) tea.Cmd {
	if y != chipRow {
		return nil
	}
	width := m.viewWidth()
	left, right := m.screenArrows()
	switch {
	case x < arrowWidth:
		if !left {
			return nil
		}
		return m.pageStrip(true)
	case x >= width-arrowWidth:
		if !right {
			return nil
		}
		return m.pageStrip(false)
	}
	item, ok := m.stripItemAtScreen(x)
	if !ok {
		return nil
	}
	return m.jumpTo(item.ID, nav.OriginStrip)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.layout()
	m.syncViewport(m.picker)
	return m.pollObserver()
}

// toggleTheme flips the palette immediately and persists it in the
// background.
func (m *Model) toggleTheme() tea.Cmd {
	m.pulser.Pulse(feedback.HeaderPulse)
	name, gen := m.theme.Flip()
	m.styles = theme.ForMode(m.theme.IsDark())
	m.layout()
	m.filterCursorDirty = true
	t := m.theme
	return m.bus.Execute(command.Request{
		ID:    "theme",
		Label: name,
		Run: func() error {
			return t.Persist(name, gen)
		},
	})
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		logging.Errorf("save "+result.ID, result.Err)
		return nil
	}
	m.errMsg = ""
	return nil
}
