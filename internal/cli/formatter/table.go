package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows with left-aligned, padded columns. Styling is the
// caller's job; cells may already carry ANSI sequences.
func Table(header []string, rows [][]string) string {
	cols := len(header)
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(style(cell))
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
		}
		b.WriteByte('\n')
	}

	if len(header) > 0 {
		writeRow(header, Dim)
	}
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
