package app

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText soft-wraps text into rows of at most width terminal cells. Hard
// newlines always start a new row and tabs are expanded to TabWidth stops.
func wrapText(text string, width int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "")
	paragraphs := strings.Split(text, "\n")
	rows := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		rows = append(rows, wrapLine(expandTabs(paragraph), width)...)
	}
	return rows
}

// wrapLine breaks one paragraph after the last space that fits. A word wider
// than the row is split where it overflows. Spaces are never dropped, so the
// caret lands where the next typed character will.
func wrapLine(line string, width int) []string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	var rows []string
	var row []rune
	rowWidth := 0
	breakAt := -1
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if rowWidth+w > width && len(row) > 0 {
			if breakAt > 0 && breakAt < len(row) {
				rows = append(rows, string(row[:breakAt]))
				row = append([]rune(nil), row[breakAt:]...)
			} else {
				rows = append(rows, string(row))
				row = nil
			}
			rowWidth = runewidth.StringWidth(string(row))
			breakAt = -1
		}
		row = append(row, r)
		rowWidth += w
		if r == ' ' {
			breakAt = len(row)
		}
	}
	return append(rows, string(row))
}

func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := TabWidth - col%TabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
