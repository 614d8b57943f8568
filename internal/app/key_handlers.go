package app

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/typewriter/internal/config"
	"github.com/treykane/typewriter/internal/session"
)

// handleKey runs command keys and sends everything else to the page.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !msg.Paste {
		if action := actionForKey(msg.String()); action != "" {
			return m.runAction(action)
		}
	}
	m.applyEvent(intentForKey(msg))
	return m, nil
}

// runAction dispatches a command action.
func (m *Model) runAction(action string) (tea.Model, tea.Cmd) {
	cfg := m.sess.Config()
	switch action {
	case actionNew:
		return m.handleNew()
	case actionOpen:
		m.startPrompt(modeOpenPrompt)
		return m, nil
	case actionSave:
		return m.handleSave()
	case actionSaveAs:
		m.startPrompt(modeSaveAsPrompt)
		return m, nil
	case actionQuit:
		return m.handleQuit()
	case actionAbout:
		m.openOverlay(overlayAbout)
		return m, nil
	case actionWordCount:
		m.openOverlay(overlayWordCount)
		return m, nil
	case actionToggleAutosave:
		cfg.Autosave = !cfg.Autosave
		m.status = "Autosave " + onOff(cfg.Autosave)
	case actionToggleCloseSave:
		cfg.AutosaveOnClose = !cfg.AutosaveOnClose
		m.status = "Autosave on close " + onOff(cfg.AutosaveOnClose)
	case actionCycleMargins:
		cfg.MarginSize = config.NextMargin(cfg.MarginSize)
		m.status = "Margins: " + marginLabel(cfg.MarginSize)
	case actionToggleLineLimit:
		cfg.LimitLineWidth = !cfg.LimitLineWidth
		m.status = "Limit line width " + onOff(cfg.LimitLineWidth)
	case actionToggleGoldfish:
		cfg.GoldfishMode = !cfg.GoldfishMode
		m.status = "Goldfish mode " + onOff(cfg.GoldfishMode)
	case actionToggleBold:
		if cfg.FontWeight >= boldThreshold {
			cfg.FontWeight = config.FontWeightNormal
		} else {
			cfg.FontWeight = config.FontWeightBold
		}
		m.status = "Bold " + onOff(cfg.FontWeight >= boldThreshold)
	case actionToggleItalic:
		cfg.FontItalic = !cfg.FontItalic
		m.status = "Italic " + onOff(cfg.FontItalic)
	default:
		return m, nil
	}
	m.updateLayout()
	return m, nil
}

// handleNew clears the page and cancels the autosave timer.
func (m *Model) handleNew() (tea.Model, tea.Cmd) {
	m.sess.NewFile()
	m.status = "New page"
	m.refreshPage()
	return m, m.syncAutosave()
}

// handleSave writes the page to its file. A page without one goes through the
// save-as prompt instead.
func (m *Model) handleSave() (tea.Model, tea.Cmd) {
	err := m.sess.Save()
	switch {
	case errors.Is(err, session.ErrNoActivePath):
		m.startPrompt(modeSaveAsPrompt)
		return m, nil
	case err != nil:
		m.setStatusError("Error saving file", err, "path", m.sess.ActivePath())
		return m, nil
	}
	m.status = "Saved " + filepath.Base(m.sess.ActivePath())
	return m, nil
}

// handleQuit runs the shutdown sequence and stops the program.
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	if err := m.sess.Shutdown(); err != nil {
		m.setStatusError("Error saving settings", err)
	}
	m.quitting = true
	return m, tea.Quit
}

// Finish runs the shutdown sequence when the program stopped without going
// through quit, as it does on SIGTERM or SIGHUP. After quit it does nothing.
func (m *Model) Finish() error {
	if m.quitting {
		return nil
	}
	m.quitting = true
	return m.sess.Shutdown()
}

// handleOverlayKey closes the open overlay. Quit still works from here.
func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if actionForKey(msg.String()) == actionQuit {
		return m.handleQuit()
	}
	m.closeOverlay()
	return m, nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func marginLabel(n int) string {
	switch n {
	case config.MarginSmall:
		return "small"
	case config.MarginMedium:
		return "medium"
	case config.MarginLarge:
		return "large"
	case config.MarginNone:
		return "none"
	}
	return fmt.Sprintf("%d", n)
}
