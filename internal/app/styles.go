package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/typewriter/internal/config"
)

var (
	popupStyle  = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	titleBar    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	caretStyle  = lipgloss.NewStyle().Reverse(true)
)

// pageStyle maps the persisted font descriptor onto what a terminal can show:
// heavy weights become bold and the italic flag becomes italic.
func pageStyle(cfg *config.Config) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(cfg.FontWeight >= boldThreshold).
		Italic(cfg.FontItalic)
}
