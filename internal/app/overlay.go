package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// openOverlay shows one informational popup over the page.
func (m *Model) openOverlay(mode overlayMode) {
	m.overlay = mode
	m.status = "Press any key to close"
}

// closeOverlay dismisses the active popup.
func (m *Model) closeOverlay() {
	if m.overlay == overlayNone {
		return
	}
	m.overlay = overlayNone
	m.status = "Ready"
}

func (m *Model) isOverlay(mode overlayMode) bool {
	return m.overlay == mode
}

// wordCountText is the body of the word count popup.
func (m *Model) wordCountText() string {
	total, session := m.sess.WordCount()
	return fmt.Sprintf("Total word count: %d\nWords this session: %d", total, session)
}

func (m *Model) renderActiveOverlay(width, height int) string {
	switch m.overlay {
	case overlayAbout:
		return m.renderAboutOverlay(width, height)
	case overlayWordCount:
		return m.renderWordCountOverlay(width, height)
	}
	return ""
}

func (m *Model) renderAboutOverlay(width, height int) string {
	popupWidth := min(LineWidthLimit, max(20, width-4))
	popupHeight := max(3, height-2)
	innerWidth := max(0, popupWidth-popupStyle.GetHorizontalFrameSize())
	innerHeight := max(0, popupHeight-popupStyle.GetVerticalFrameSize())

	body := renderMarkdown(aboutText(), innerWidth)
	lines := strings.Split(body, "\n")
	if len(lines) > innerHeight-1 {
		lines = lines[:max(0, innerHeight-1)]
	}
	lines = append(lines, mutedStyle.Render("Any key: close"))

	content := padBlock(strings.Join(lines, "\n"), innerWidth, innerHeight)
	popup := popupStyle.Width(innerWidth + popupStyle.GetHorizontalPadding()).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

func (m *Model) renderWordCountOverlay(width, height int) string {
	lines := []string{
		titleStyle.Render("Word count"),
		"",
	}
	lines = append(lines, strings.Split(m.wordCountText(), "\n")...)
	lines = append(lines, "", mutedStyle.Render("Any key: close"))

	innerWidth := 0
	for _, line := range lines {
		innerWidth = max(innerWidth, lipgloss.Width(line))
	}
	innerWidth = min(innerWidth, max(0, width-popupStyle.GetHorizontalFrameSize()))
	content := padBlock(strings.Join(lines, "\n"), innerWidth, len(lines))
	popup := popupStyle.Width(innerWidth + popupStyle.GetHorizontalPadding()).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}
