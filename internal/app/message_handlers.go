package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/typewriter/internal/filter"
)

// handleWindowResize records the terminal size and reflows the page. The
// size is also kept in the options so it is written back on shutdown.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	cfg := m.sess.Config()
	if msg.Width > 0 && msg.Height > 0 {
		cfg.WindowWidth = msg.Width
		cfg.WindowHeight = msg.Height
	}
	m.updateLayout()
	return m, nil
}

// handleMouse runs mouse input through the filter. Every mouse intent is
// discarded, so clicks never move the caret and the wheel never scrolls.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := intentForMouse(msg)
	if decision := m.sess.Handle(ev); decision == filter.Apply {
		m.refreshPage()
	}
	return m, nil
}

// applyEvent hands a translated key event to the session and redraws the
// page when the event changed it.
func (m *Model) applyEvent(ev filter.Event) {
	decision := m.sess.Handle(ev)
	if decision != filter.Apply {
		if m.debugInput {
			m.status = "Discarded " + ev.Intent.String()
		}
		appLog.Debug("discarded input", "intent", ev.Intent.String(), "key", int(ev.Key))
		return
	}
	m.refreshPage()
}
