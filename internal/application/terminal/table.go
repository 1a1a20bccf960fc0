package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderTable draws rows in a rounded grid, padding cells by display width.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i := range headers {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}

	var b strings.Builder
	b.WriteString(border("╭", "┬", "╮", widths))
	b.WriteString(line(headers, widths))
	b.WriteString(border("├", "┼", "┤", widths))
	for i, row := range rows {
		if i > 0 {
			b.WriteString(border("├", "┼", "┤", widths))
		}
		b.WriteString(line(row, widths))
	}
	b.WriteString(border("╰", "┴", "╯", widths))
	return b.String()
}

func border(left, middle, right string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return left + strings.Join(parts, middle) + right + "\n"
}

func line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = " " + runewidth.FillRight(cell, w) + " "
	}
	return "│" + strings.Join(parts, "│") + "│\n"
}

// box frames lines centred inside a double border.
func box(lines []string) string {
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	width += 4

	var b strings.Builder
	b.WriteString("╔" + strings.Repeat("═", width) + "╗\n")
	for _, l := range lines {
		b.WriteString("║" + centerText(l, width) + "║\n")
	}
	b.WriteString("╚" + strings.Repeat("═", width) + "╝")
	return b.String()
}

func centerText(text string, width int) string {
	textWidth := runewidth.StringWidth(text)
	if textWidth >= width {
		return text
	}
	padding := width - textWidth
	left := padding / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
}
