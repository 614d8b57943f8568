package app

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// refreshPage redraws the page into the viewport and scrolls to the caret,
// which is always at the end.
func (m *Model) refreshPage() {
	layout := m.calculateLayout()
	lines := m.pageLines(layout.TextWidth)
	pad := strings.Repeat(" ", layout.LeftPad)
	for i, line := range lines {
		lines[i] = pad + line
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

// pageLines wraps the page text to width and appends the caret. An empty page
// shows the placeholder under the caret instead. Goldfish mode keeps only the
// last GoldfishLines rows.
func (m *Model) pageLines(width int) []string {
	caret := caretStyle.Render(" ")
	if m.sess.Len() == 0 {
		lines := []string{caret}
		if m.placeholder != "" {
			for _, row := range wrapText(m.placeholder, width) {
				lines = append(lines, mutedStyle.Render(row))
			}
		}
		return lines
	}

	rows := wrapText(m.sess.Text(), width)
	if runewidth.StringWidth(rows[len(rows)-1]) >= width {
		rows = append(rows, "")
	}
	if m.sess.Config().GoldfishMode && len(rows) > GoldfishLines {
		rows = rows[len(rows)-GoldfishLines:]
	}

	style := pageStyle(m.sess.Config())
	lines := make([]string, len(rows))
	for i, row := range rows {
		if row != "" {
			row = style.Render(row)
		}
		lines[i] = row
	}
	lines[len(lines)-1] += caret
	return lines
}
