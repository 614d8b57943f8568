package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/typewriter/internal/filter"
)

func TestIntentForKeyNamesEditingKeys(t *testing.T) {
	cases := []struct {
		name   string
		msg    tea.KeyMsg
		intent filter.Intent
		key    filter.Key
	}{
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, filter.DeletePreviousChar, filter.KeyBackspace},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, filter.DeletePreviousChar, filter.KeyBackspace},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, filter.DeleteNextChar, filter.KeyDelete},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, filter.MovePreviousChar, filter.KeyLeft},
		{"ctrl+right", tea.KeyMsg{Type: tea.KeyCtrlRight}, filter.MoveNextWord, filter.KeyRight},
		{"shift+up", tea.KeyMsg{Type: tea.KeyShiftUp}, filter.SelectPreviousLine, filter.KeyUp},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, filter.MoveToLineStart, filter.KeyHome},
		{"ctrl+end", tea.KeyMsg{Type: tea.KeyCtrlEnd}, filter.MoveToDocumentEnd, filter.KeyEnd},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, filter.MoveNextPage, filter.KeyPageDown},
		{"insert", tea.KeyMsg{Type: tea.KeyInsert}, filter.ToggleOverwrite, filter.KeyInsert},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, filter.Undo, filter.KeyOther},
		{"ctrl+v", tea.KeyMsg{Type: tea.KeyCtrlV}, filter.Paste, filter.KeyOther},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, filter.MoveToLineStart, filter.KeyOther},
		{"ctrl+k", tea.KeyMsg{Type: tea.KeyCtrlK}, filter.DeleteToLineEnd, filter.KeyOther},
		{"alt+b", altKey('b'), filter.MovePreviousWord, filter.KeyRune},
		{"alt+backspace", tea.KeyMsg{Type: tea.KeyBackspace, Alt: true}, filter.DeletePreviousWord, filter.KeyBackspace},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := intentForKey(tc.msg)
			if ev.Intent != tc.intent {
				t.Fatalf("intent = %s, want %s", ev.Intent, tc.intent)
			}
			if ev.Key != tc.key {
				t.Fatalf("raw key = %d, want %d", ev.Key, tc.key)
			}
		})
	}
}

func TestIntentForKeyTextInput(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		text string
	}{
		{"rune", keyForRune('q'), "q"},
		{"multi rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é!")}, "é!"},
		{"space", keyForRune(' '), " "},
		{"enter", keyForRune('\n'), "\n"},
		{"tab", keyForRune('\t'), "\t"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := intentForKey(tc.msg)
			if ev.Intent != filter.InsertText || ev.Text != tc.text {
				t.Fatalf("got %s %q, want InsertText %q", ev.Intent, ev.Text, tc.text)
			}
			if filter.Classify(ev) != filter.Apply {
				t.Fatal("expected typed text to be applied")
			}
		})
	}
}

func TestIntentForKeyPasteIsNamed(t *testing.T) {
	ev := intentForKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a b"), Paste: true})
	if ev.Intent != filter.Paste {
		t.Fatalf("expected paste, got %s", ev.Intent)
	}
	if filter.Classify(ev) != filter.Discard {
		t.Fatal("expected paste to be discarded")
	}
}

func TestIntentForKeyUnknownKeysCarryRawCode(t *testing.T) {
	ev := intentForKey(tea.KeyMsg{Type: tea.KeyF12})
	if ev.Intent != filter.None || ev.Key != filter.KeyOther {
		t.Fatalf("expected None/KeyOther, got %s/%d", ev.Intent, ev.Key)
	}
	if filter.Classify(ev) != filter.Apply {
		t.Fatal("expected unknown key to pass the filter as a no-op")
	}

	ev = intentForKey(altKey('z'))
	if ev.Intent != filter.None || ev.Text != "" {
		t.Fatalf("expected alt chord to carry no text, got %s %q", ev.Intent, ev.Text)
	}
}

func TestIntentForMouse(t *testing.T) {
	cases := []struct {
		name   string
		msg    tea.MouseMsg
		intent filter.Intent
	}{
		{"press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, filter.MousePress},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, filter.MouseRelease},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, filter.MouseMove},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, filter.MouseWheel},
		{"right click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, filter.ContextMenu},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := intentForMouse(tc.msg)
			if ev.Intent != tc.intent {
				t.Fatalf("intent = %s, want %s", ev.Intent, tc.intent)
			}
			if filter.Classify(ev) != filter.Discard {
				t.Fatal("expected mouse input to be discarded")
			}
		})
	}
}
