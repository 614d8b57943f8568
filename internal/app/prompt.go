package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/typewriter/internal/config"
	"github.com/treykane/typewriter/internal/session"
)

var errNotTextFile = errors.New("not a text file")

// startPrompt opens the path prompt for opening or saving. The input starts
// in the session's start directory with the text-file filter selected.
func (m *Model) startPrompt(kind mode) {
	m.closeOverlay()
	m.mode = kind
	m.filter = session.FilterText

	start := m.sess.StartDir()
	if start != "" && !strings.HasSuffix(start, string(os.PathSeparator)) {
		start += string(os.PathSeparator)
	}
	m.input.SetValue(start)
	m.input.CursorEnd()
	m.input.Focus()

	if kind == modeOpenPrompt {
		m.status = "Open: Enter to confirm, Tab to change file type, Esc to cancel"
	} else {
		m.status = "Save as: Enter to confirm, Tab to change file type, Esc to cancel"
	}
}

// closePrompt returns keyboard focus to the page.
func (m *Model) closePrompt() {
	m.input.Blur()
	m.input.SetValue("")
	m.mode = modeType
}

// handlePromptKey edits the path, toggles the filter, or confirms.
func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == modeOpenPrompt {
			m.status = "Open cancelled"
		} else {
			m.status = "Save cancelled"
		}
		m.closePrompt()
		return m, nil
	case "tab":
		m.filter = m.filter.Toggle()
		return m, nil
	case "enter":
		return m.confirmPrompt()
	case "ctrl+q":
		return m.handleQuit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// confirmPrompt runs the open or save-as the prompt was started for.
func (m *Model) confirmPrompt() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		m.status = "Enter a file path"
		return m, nil
	}
	path, err := config.ExpandHome(raw)
	if err != nil {
		m.setStatusError("Error resolving path", err, "path", raw)
		return m, nil
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if m.mode == modeOpenPrompt {
		return m.openPath(path)
	}
	return m.saveAsPath(path)
}

func (m *Model) openPath(path string) (tea.Model, tea.Cmd) {
	if m.filter == session.FilterText && !strings.EqualFold(filepath.Ext(path), session.TextExtension) {
		m.setStatusError("Not a text file (Tab shows all files)", errNotTextFile, "path", path)
		return m, nil
	}
	if err := m.sess.Open(path); err != nil {
		m.setStatusError("Error opening file", err, "path", path)
		return m, nil
	}
	m.closePrompt()
	m.status = "Opened " + filepath.Base(path)
	m.refreshPage()
	return m, m.syncAutosave()
}

func (m *Model) saveAsPath(path string) (tea.Model, tea.Cmd) {
	saved, err := m.sess.SaveAs(path, m.filter)
	if err != nil {
		m.setStatusError("Error saving file", err, "path", saved)
		return m, nil
	}
	m.closePrompt()
	m.status = "Saved " + filepath.Base(saved)
	m.refreshPage()
	return m, m.syncAutosave()
}
