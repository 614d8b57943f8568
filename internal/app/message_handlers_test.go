package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTypingAndBackspaceEditPageEnd(t *testing.T) {
	m := newTestModel(t)
	typeString(m, "hi there\nnext")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlH})

	if got := m.sess.Text(); got != "hi there\nne" {
		t.Fatalf("expected %q, got %q", "hi there\nne", got)
	}
	if m.sess.Caret() != m.sess.Len() {
		t.Fatalf("caret %d not at end %d", m.sess.Caret(), m.sess.Len())
	}
}

func TestNavigationEditingAndMouseLeavePageUnchanged(t *testing.T) {
	m := newTestModel(t)
	typeString(m, "abc")

	msgs := []tea.Msg{
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyHome},
		tea.KeyMsg{Type: tea.KeyEnd},
		tea.KeyMsg{Type: tea.KeyPgUp},
		tea.KeyMsg{Type: tea.KeyDelete},
		tea.KeyMsg{Type: tea.KeyInsert},
		tea.KeyMsg{Type: tea.KeyShiftLeft},
		tea.KeyMsg{Type: tea.KeyCtrlZ},
		tea.KeyMsg{Type: tea.KeyCtrlV},
		tea.KeyMsg{Type: tea.KeyCtrlX},
		tea.KeyMsg{Type: tea.KeyCtrlC},
		tea.KeyMsg{Type: tea.KeyCtrlW},
		tea.KeyMsg{Type: tea.KeyCtrlU},
		tea.KeyMsg{Type: tea.KeyCtrlK},
		tea.KeyMsg{Type: tea.KeyCtrlA},
		altKey('b'),
		altKey('d'),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted text"), Paste: true},
		tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 1, Y: 1},
		tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	}
	for _, msg := range msgs {
		m.Update(msg)
		if got := m.sess.Text(); got != "abc" {
			t.Fatalf("after %#v expected page %q, got %q", msg, "abc", got)
		}
		if m.sess.Caret() != 3 {
			t.Fatalf("after %#v expected caret 3, got %d", msg, m.sess.Caret())
		}
	}

	typeString(m, "d")
	if got := m.sess.Text(); got != "abcd" {
		t.Fatalf("expected typing to continue at the end, got %q", got)
	}
}

func TestWindowResizeRecordsSizeInConfig(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 132, Height: 41})

	cfg := m.sess.Config()
	if cfg.WindowWidth != 132 || cfg.WindowHeight != 41 {
		t.Fatalf("expected 132x41 in config, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if m.viewport.Width != 132 {
		t.Fatalf("expected viewport width 132, got %d", m.viewport.Width)
	}
}

func TestViewShowsTitleAndPage(t *testing.T) {
	m := newTestModel(t)
	typeString(m, "hello page")

	view := m.View()
	if !strings.Contains(view, "typewriter") {
		t.Fatalf("expected title in view, got %q", view)
	}
	if !strings.Contains(view, "hello page") {
		t.Fatalf("expected page text in view, got %q", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 30 {
		t.Fatalf("expected view to fill 30 rows, got %d", lines)
	}
}
