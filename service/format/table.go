package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellPadding is the extra width added to each column beyond its widest cell.
const cellPadding = 2

// Table renders headers and rows as a box-drawing table with a separator row
// between each body row:
//
//	┌─────┬──────┐
//	│ a   │ bb   │
//	├─────┼──────┤
//	│ x   │ yy   │
//	└─────┴──────┘
func Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	widths := columnWidths(headers, rows)

	var b strings.Builder
	writeRule(&b, widths, "┌", "┬", "┐")
	writeRow(&b, widths, headers)
	for i, row := range rows {
		if i == 0 {
			writeRule(&b, widths, "├", "┼", "┤")
		}
		writeRow(&b, widths, row)
		if i < len(rows)-1 {
			writeRule(&b, widths, "├", "┼", "┤")
		}
	}
	writeRule(&b, widths, "└", "┴", "┘")
	return strings.TrimSuffix(b.String(), "\n")
}

// columnWidths computes per-column width as the widest of header and cells
// plus padding.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] += cellPadding
	}
	return widths
}

func writeRule(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(left)
	for i, width := range widths {
		if i > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat("─", width))
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, widths []int, cells []string) {
	b.WriteString("│")
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(" ")
		b.WriteString(runewidth.FillRight(cell, width-1))
		b.WriteString("│")
	}
	b.WriteString("\n")
}
