package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Page       *lipgloss.Style
	Hero       *lipgloss.Style
	HeroTitle  *lipgloss.Style
	HeroDetail *lipgloss.Style

	SectionTitle *lipgloss.Style
	Addition     *lipgloss.Style
	Dish         *lipgloss.Style
	Price        *lipgloss.Style
	Label        *lipgloss.Style
	Note         *lipgloss.Style
	Delivery     *lipgloss.Style

	NavBorder      *lipgloss.Style
	Chip           *lipgloss.Style
	ActiveChip     *lipgloss.Style
	Arrow          *lipgloss.Style
	CurrentSection *lipgloss.Style

	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	ActiveItem            *lipgloss.Style

	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
}

type palette struct {
	fg, muted, faint, accent, accentFg, surface, price, err lipgloss.Color
}

var (
	darkPalette = palette{
		fg:       "252",
		muted:    "245",
		faint:    "238",
		accent:   "214",
		accentFg: "0",
		surface:  "236",
		price:    "179",
		err:      "196",
	}
	lightPalette = palette{
		fg:       "235",
		muted:    "242",
		faint:    "250",
		accent:   "130",
		accentFg: "231",
		surface:  "254",
		price:    "94",
		err:      "160",
	}

	darkStyles  = build(darkPalette)
	lightStyles = build(lightPalette)
)

func build(p palette) Styles {
	return Styles{
		Page: ptr(
			lipgloss.NewStyle().Foreground(p.fg),
		),
		Hero: ptr(
			lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(0, 2),
		),
		HeroTitle: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		),
		HeroDetail: ptr(
			lipgloss.NewStyle().Foreground(p.muted),
		),
		SectionTitle: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Bold(true).Underline(true),
		),
		Addition: ptr(
			lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.faint).Padding(0, 1),
		),
		Dish: ptr(
			lipgloss.NewStyle().Foreground(p.fg),
		),
		Price: ptr(
			lipgloss.NewStyle().Foreground(p.price).Bold(true),
		),
		Label: ptr(
			lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		),
		Note: ptr(
			lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		),
		Delivery: ptr(
			lipgloss.NewStyle().Foreground(p.accent),
		),
		NavBorder: ptr(
			lipgloss.NewStyle().Foreground(p.faint),
		),
		Chip: ptr(
			lipgloss.NewStyle().Foreground(p.muted),
		),
		ActiveChip: ptr(
			lipgloss.NewStyle().Foreground(p.accentFg).Background(p.accent).Bold(true),
		),
		Arrow: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		),
		CurrentSection: ptr(
			lipgloss.NewStyle().Foreground(p.muted),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(p.fg),
		),
		ItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(p.faint),
		),
		SelectedItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Background(p.surface),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(p.fg).Background(p.surface).Bold(true),
		),
		ActiveItem: ptr(
			lipgloss.NewStyle().Foreground(p.accent),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(p.err).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(p.muted),
		),
		Header: ptr(
			lipgloss.NewStyle().Foreground(p.muted).Bold(true),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(p.muted),
		),
		Filter: ptr(
			lipgloss.NewStyle().Foreground(p.fg),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		),
		FilterPlaceholder: ptr(
			lipgloss.NewStyle().Foreground(p.faint),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(p.accentFg).Background(p.accent).Blink(true),
		),
	}
}

// Default exposes the dark style set.
func Default() *Styles {
	return &darkStyles
}

// ForMode returns the dark or light style set.
func ForMode(dark bool) *Styles {
	if dark {
		return &darkStyles
	}
	return &lightStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
