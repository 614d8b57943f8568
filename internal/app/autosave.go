package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/typewriter/internal/session"
)

// autosaveInterval is how often a page tied to a file is written back.
var autosaveInterval = session.AutosaveInterval

// autosaveTickMsg is emitted by the periodic autosave timer. It carries the
// timer generation it was scheduled for so ticks from a timer that has since
// been stopped or restarted are ignored.
type autosaveTickMsg struct {
	generation int
}

// scheduleAutosave returns a command that emits one tick for generation after
// autosaveInterval.
func scheduleAutosave(generation int) tea.Cmd {
	return tea.Tick(autosaveInterval, func(time.Time) tea.Msg {
		return autosaveTickMsg{generation: generation}
	})
}

// syncAutosave starts a tick loop for the session's current timer generation
// unless one is already in flight. It is called after every file operation.
func (m *Model) syncAutosave() tea.Cmd {
	running, generation := m.sess.AutosaveTimer()
	if !running || generation == m.scheduledGeneration {
		return nil
	}
	m.scheduledGeneration = generation
	return scheduleAutosave(generation)
}

// handleAutosaveTick writes the page if the tick is still live and schedules
// the next one. Errors are reported but never stop the loop.
func (m *Model) handleAutosaveTick(msg autosaveTickMsg) (tea.Model, tea.Cmd) {
	live, err := m.sess.Tick(msg.generation)
	if err != nil {
		m.setStatusError("Autosave failed", err, "path", m.sess.ActivePath())
	}
	if !live {
		return m, nil
	}
	return m, scheduleAutosave(msg.generation)
}
