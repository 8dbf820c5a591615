package ui

import (
	"reflect"
	"time"

	"github.com/atyab/atyab-menu/internal/feedback"
	"github.com/atyab/atyab-menu/internal/logging/events"
	"github.com/atyab/atyab-menu/internal/menu"
	"github.com/atyab/atyab-menu/internal/nav"
	"github.com/atyab/atyab-menu/internal/navstrip"
	"github.com/atyab/atyab-menu/internal/observer"
	"github.com/atyab/atyab-menu/internal/preference"
	"github.com/atyab/atyab-menu/internal/scroll"
	"github.com/atyab/atyab-menu/internal/theme"
	"github.com/atyab/atyab-menu/internal/ui/command"
	uistate "github.com/atyab/atyab-menu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

type msgHandler func(tea.Msg) tea.Cmd

const pickerLevelID = "picker"

// Options configures a Model.
type Options struct {
	// Width and Height fix the layout; zero follows the terminal size.
	Width      int
	Height     int
	ShowFooter bool
	RTL        bool
	Theme      *preference.Theme
	Pulser     feedback.Pulser
	Clock      Clock
	// Observer replaces the polling observer built over the page geometry.
	Observer observer.Source
}

// Model implements the Bubble Tea model for the menu page.
type Model struct {
	catalog  *menu.Catalog
	registry *menu.Registry
	nav      *nav.Dispatcher
	observer observer.Source
	strip    *navstrip.Strip

	page     viewport.Model
	pageAnim *scroll.Animator
	doc      document

	picker     *level
	pickerOpen bool

	theme  *preference.Theme
	styles *theme.Styles
	pulser feedback.Pulser
	clock  Clock
	bus    *command.Bus

	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	rtl          bool
	framePending bool
	closed       bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the page for cat and wires the navigation core to it.
func NewModel(cat *menu.Catalog, reg *menu.Registry, opts Options) *Model {
	m := &Model{
		catalog:    cat,
		registry:   reg,
		theme:      opts.Theme,
		pulser:     opts.Pulser,
		clock:      opts.Clock,
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		rtl:        opts.RTL,
		pageAnim:   scroll.NewAnimator(scroll.DefaultDuration),
	}
	if m.theme == nil {
		m.theme = preference.LoadTheme(nil)
	}
	if m.pulser == nil {
		m.pulser = feedback.Nop{}
	}
	if m.clock == nil {
		m.clock = realClock{}
	}
	m.styles = theme.ForMode(m.theme.IsDark())
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	m.nav = nav.New(reg, nav.LocatorFunc(func(id string) (int, bool) {
		return m.doc.SectionTop(id)
	}), navOptions())
	m.strip = navstrip.New(stripItems(reg), stripOptions())
	m.picker = uistate.NewLevel(pickerLevelID, "الأقسام", uistate.EntriesFromRegistry(reg))
	m.page = viewport.New(m.viewWidth(), m.pageHeight())

	m.observer = opts.Observer
	if m.observer == nil {
		m.observer = observer.NewPoller(pageGeometry{m}, observerMargins())
	}
	if reg != nil {
		m.observer.Observe(reg.IDs())
	}

	c := cursor.New()
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	m.layout()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.pollObserver()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Close disconnects the viewport observer. Later visibility changes are not
// reported.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.observer.Disconnect()
}

// State exposes the navigation state.
func (m *Model) State() nav.State {
	return m.nav.State()
}

// PageOffset is the current page scroll offset in rows.
func (m *Model) PageOffset() int {
	return m.page.YOffset
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):            m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):          m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):     m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):              m.handleFrameMsg,
		reflect.TypeOf(suppressionExpiredMsg{}): m.handleSuppressionExpiredMsg,
		reflect.TypeOf(command.Result{}):        m.handleCommandResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return batch(cmds...)
}

func batch(cmds ...tea.Cmd) tea.Cmd {
	live := make([]tea.Cmd, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd != nil {
			live = append(live, cmd)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return tea.Batch(live...)
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultDocumentWidth
}

// pageHeight is the number of rows of the page viewport, which includes the
// rows covered by the nav overlay.
func (m *Model) pageHeight() int {
	h := m.height - m.bottomRows()
	if m.height <= 0 {
		h = 24 - m.bottomRows()
	}
	if h < navRows+1 {
		h = navRows + 1
	}
	return h
}

func (m *Model) bottomRows() int {
	rows := 1
	if m.showFooter {
		rows++
	}
	return rows
}

// layout rebuilds the document and resizes the viewport and strip after a
// size or theme change, keeping the current scroll offset.
func (m *Model) layout() {
	offset := m.page.YOffset
	m.page.Width = m.viewWidth()
	m.page.Height = m.pageHeight()
	m.doc = buildDocument(m.catalog, m.registry, m.viewWidth(), m.page.Height, m.rtl, m.styles)
	m.page.SetContent(m.doc.content())
	m.page.SetYOffset(offset)
	if !m.pageAnim.Active() {
		m.pageAnim.Jump(m.page.YOffset)
	}
	m.strip.SetVisibleWidth(m.stripVisibleWidth())
	m.strip.RecomputeAffordances()
}

func (m *Model) maxPageOffset() int {
	limit := m.page.TotalLineCount() - m.page.Height
	if limit < 0 {
		return 0
	}
	return limit
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// setPageOffset moves the viewport and reports visibility changes.
func (m *Model) setPageOffset(offset int) tea.Cmd {
	offset = clampInt(offset, 0, m.maxPageOffset())
	if offset == m.page.YOffset {
		return nil
	}
	events.UI.PageScroll(m.page.YOffset, offset, m.pageAnim.Active())
	m.page.SetYOffset(offset)
	return m.pollObserver()
}

// scrollPageBy scrolls immediately, cancelling any smooth scroll.
func (m *Model) scrollPageBy(delta int) tea.Cmd {
	target := clampInt(m.page.YOffset+delta, 0, m.maxPageOffset())
	m.pageAnim.Jump(target)
	return m.setPageOffset(target)
}

// smoothScrollPageTo starts an animated scroll to offset.
func (m *Model) smoothScrollPageTo(offset int) tea.Cmd {
	target := clampInt(offset, 0, m.maxPageOffset())
	m.pageAnim.Jump(m.page.YOffset)
	m.pageAnim.Start(target, m.clock.Now())
	if !m.pageAnim.Active() {
		return m.setPageOffset(target)
	}
	return m.ensureFrame()
}

// ensureFrame schedules the next animation frame unless one is pending.
func (m *Model) ensureFrame() tea.Cmd {
	if m.framePending || (!m.pageAnim.Active() && !m.strip.Animating()) {
		return nil
	}
	m.framePending = true
	return m.clock.After(scroll.FrameInterval, frameMsg{})
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(frameMsg); !ok {
		return nil
	}
	m.framePending = false
	now := m.clock.Now()
	var cmds []tea.Cmd
	if m.pageAnim.Active() {
		m.pageAnim.Advance(now)
		cmds = append(cmds, m.setPageOffset(m.pageAnim.Position()))
	}
	if m.strip.Animating() {
		m.strip.Advance(now)
	}
	cmds = append(cmds, m.ensureFrame())
	return batch(cmds...)
}

// pollObserver feeds visibility transitions into the dispatcher in the
// order they were reported.
func (m *Model) pollObserver() tea.Cmd {
	if m.closed {
		return nil
	}
	var cmds []tea.Cmd
	for _, entry := range m.observer.Poll() {
		if !entry.Intersecting {
			continue
		}
		res := m.nav.Dispatch(nav.SectionBecameVisible{ID: entry.ID, At: m.clock.Now()})
		cmds = append(cmds, m.applyEffects(res.Effects))
	}
	return batch(cmds...)
}

// jumpTo handles a user-initiated jump from any control.
func (m *Model) jumpTo(id string, origin nav.Origin) tea.Cmd {
	res := m.nav.Dispatch(nav.UserJumpedTo{ID: id, At: m.clock.Now(), Origin: origin})
	return m.applyEffects(res.Effects)
}

// applyEffects runs dispatcher effects synchronously and in order.
func (m *Model) applyEffects(effects []nav.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, effect := range effects {
		switch e := effect.(type) {
		case nav.ScrollPage:
			cmds = append(cmds, m.smoothScrollPageTo(e.Offset))
		case nav.ArmSuppression:
			delay := e.Until.Sub(m.clock.Now())
			if delay < 0 {
				delay = 0
			}
			cmds = append(cmds, m.clock.After(delay, suppressionExpiredMsg{until: e.Until}))
		case nav.ClosePicker:
			m.closePicker("jump")
		case nav.Pulse:
			m.pulser.Pulse(e.Pattern)
		case nav.CenterNavItem:
			m.strip.CenterItem(e.ID, m.clock.Now())
			cmds = append(cmds, m.ensureFrame())
		}
	}
	return batch(cmds...)
}

func (m *Model) handleSuppressionExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(suppressionExpiredMsg)
	if !ok {
		return nil
	}
	res := m.nav.Dispatch(nav.SuppressionExpired{At: expired.until})
	return m.applyEffects(res.Effects)
}

// pageGeometry exposes the page viewport to the observer.
type pageGeometry struct {
	m *Model
}

func (g pageGeometry) Viewport() (int, int) {
	return g.m.page.YOffset, g.m.page.Height
}

func (g pageGeometry) Bounds(id string) (observer.Rect, bool) {
	return g.m.doc.Bounds(id)
}
