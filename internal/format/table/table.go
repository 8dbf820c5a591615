// Package table aligns dish and price columns for the menu page.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const separator = "  "

// Format returns the rows padded according to the widest entry in each column.
// Rows may be ragged; missing cells are padded as empty.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = formatRow(row, widths, alignments)
	}
	return out
}

// FormatWidth is like Format but stretches or truncates the first column so
// every row is exactly total cells wide.
func FormatWidth(rows [][]string, alignments []Alignment, total int) []string {
	return FormatWidthAt(rows, alignments, total, 0)
}

// FormatWidthAt stretches or truncates column stretch instead of the first.
func FormatWidthAt(rows [][]string, alignments []Alignment, total, stretch int) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	if stretch < 0 || stretch >= len(widths) {
		stretch = 0
	}
	rest := 0
	for c := range widths {
		if c > 0 {
			rest += len(separator)
		}
		if c != stretch {
			rest += widths[c]
		}
	}
	fit := total - rest
	if fit < 1 {
		fit = 1
	}
	widths[stretch] = fit
	out := make([]string, len(rows))
	for i, row := range rows {
		if stretch < len(row) && cellWidth(row[stretch]) > fit {
			row = append([]string(nil), row...)
			row[stretch] = runewidth.Truncate(row[stretch], fit, "…")
		}
		out[i] = formatRow(row, widths, alignments)
	}
	return out
}

func columnWidths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			width := cellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	return widths
}

func formatRow(row []string, widths []int, alignments []Alignment) string {
	var b strings.Builder
	for c := range widths {
		cell := ""
		if c < len(row) {
			cell = row[c]
		}
		if c > 0 {
			b.WriteString(separator)
		}
		width := widths[c] - cellWidth(cell)
		if width < 0 {
			width = 0
		}
		if c < len(alignments) && alignments[c] == AlignRight {
			writeSpaces(&b, width)
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			writeSpaces(&b, width)
		}
	}
	return b.String()
}

func cellWidth(text string) int {
	return runewidth.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
