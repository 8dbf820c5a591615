package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const infoTTL = 5 * time.Second

const footerHint = "↑/↓ scroll  ←/→ sections  1-9 jump  m menu  t theme  q quit"

// styledLine is one row of picker or status text. Rows marked ansi are
// already styled and are only cut to width. Otherwise the first markRunes
// runes use markStyle and the rest use style.
type styledLine struct {
	text      string
	style     *lipgloss.Style
	markStyle *lipgloss.Style
	markRunes int
	ansi      bool
}

func (l styledLine) fit(width int) styledLine {
	switch {
	case width <= 0:
	case !l.ansi:
		l.text = truncateText(l.text, width)
	case lipgloss.Width(l.text) > width:
		l.text = truncate.StringWithTail(l.text, uint(width-1), "…")
	}
	return l
}

func (l styledLine) String() string {
	if l.ansi {
		return l.text
	}
	runes := []rune(l.text)
	if l.markRunes <= 0 || l.markRunes >= len(runes) {
		return render(l.style, l.text)
	}
	return render(l.markStyle, string(runes[:l.markRunes])) + render(l.style, string(runes[l.markRunes:]))
}

// renderRows fits every line to width and renders it.
func renderRows(lines []styledLine, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.fit(width).String()
	}
	return out
}

// View implements tea.Model. The nav overlay is drawn over the first rows of
// the page so the page geometry does not shift when the bar changes.
func (m *Model) View() string {
	width := m.viewWidth()
	rows := strings.Split(m.page.View(), "\n")
	for len(rows) < m.page.Height {
		rows = append(rows, "")
	}
	rows = rows[:m.page.Height]

	overlay := m.navOverlay(width)
	copy(rows, overlay)

	if m.pickerOpen {
		rendered := renderRows(m.pickerLines(width), width)
		for i := navRows; i < len(rows); i++ {
			rows[i] = ""
			if idx := i - navRows; idx < len(rendered) {
				rows[i] = m.placeLine(rendered[idx], width)
			}
		}
	}

	rows = append(rows, m.statusLine().fit(width).String())
	if m.showFooter {
		rows = append(rows, styledLine{text: footerHint, style: m.styles.Footer}.fit(width).String())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) placeLine(line string, width int) string {
	if !m.rtl {
		return line
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, line)
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: m.styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: m.styles.Info}
	}
	return styledLine{}
}

// setInfo shows a transient status message for infoTTL.
func (m *Model) setInfo(message string) {
	m.infoMsg, m.infoExpire = message, m.clock.Now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg, m.infoExpire = "", time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoExpire.IsZero() || !m.clock.Now().After(m.infoExpire) {
		return m.infoMsg
	}
	m.forceClearInfo()
	return ""
}

func displayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// truncateText cuts plain text to width display columns.
func truncateText(text string, width int) string {
	if width <= 0 || displayWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
