package app

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View draws the title bar, the page (or a popup over it) and the footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	footerHeight := m.footerHeightForWidth(m.width)
	layout := m.calculateLayout()

	body := m.viewport.View()
	switch {
	case m.mode == modeOpenPrompt || m.mode == modeSaveAsPrompt:
		body = m.renderPromptOverlay(m.width, layout.PageHeight)
	case !m.isOverlay(overlayNone):
		body = m.renderActiveOverlay(m.width, layout.PageHeight)
	}

	parts := []string{m.renderTitle(m.width)}
	if layout.PageHeight > 0 {
		parts = append(parts, padBlock(body, m.width, layout.PageHeight))
	}
	parts = append(parts, m.renderStatus(m.width, footerHeight))
	return padBlock(strings.Join(parts, "\n"), m.width, m.height)
}

// windowTitle is "typewriter", plus the file name once the page has one.
func (m *Model) windowTitle() string {
	path := m.sess.ActivePath()
	if path == "" {
		return appTitle
	}
	return appTitle + " - " + filepath.Base(path)
}

func (m *Model) renderTitle(width int) string {
	title := truncateWithEllipsis(" "+m.windowTitle(), width)
	return titleBar.Width(width).Render(title)
}

// renderPromptOverlay draws the open/save-as path prompt.
func (m *Model) renderPromptOverlay(width, height int) string {
	popupWidth := min(PromptPopupWidth, max(20, width-4))
	innerWidth := max(0, popupWidth-popupStyle.GetHorizontalFrameSize())
	m.input.Width = max(1, innerWidth-lipgloss.Width(m.input.Prompt)-1)

	title := "Open"
	if m.mode == modeSaveAsPrompt {
		title = "Save as"
	}
	lines := []string{
		titleStyle.Render(title),
		m.input.View(),
		"",
		"File type: " + m.filter.String(),
		mutedStyle.Render("Enter: confirm  Tab: file type  Esc: cancel"),
	}

	content := padBlock(strings.Join(lines, "\n"), innerWidth, len(lines))
	popup := popupStyle.Width(innerWidth + popupStyle.GetHorizontalPadding()).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}
