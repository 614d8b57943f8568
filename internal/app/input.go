// input.go turns Bubble Tea key and mouse messages into filter events.
//
// Named intents come from a keymap of the editing keys terminals commonly
// send: arrows and their shift/ctrl/alt variants, home/end and page keys,
// undo/redo and clipboard chords, and the emacs-style control keys most
// shells bind. A key the keymap does not know still carries a raw key code,
// so the filter's second list can catch navigation that arrives unnamed.
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/typewriter/internal/filter"
)

// intentBinding pairs a named intent with the keys that produce it.
type intentBinding struct {
	intent  filter.Intent
	binding key.Binding
}

func bind(intent filter.Intent, keys ...string) intentBinding {
	return intentBinding{intent: intent, binding: key.NewBinding(key.WithKeys(keys...))}
}

// intentKeyMap is checked in order; the first match names the event.
var intentKeyMap = []intentBinding{
	bind(filter.DeletePreviousChar, "backspace", "ctrl+h"),
	bind(filter.DeleteNextChar, "delete", "ctrl+d"),
	bind(filter.DeletePreviousWord, "alt+backspace", "ctrl+w", "alt+ctrl+h"),
	bind(filter.DeleteNextWord, "alt+delete", "alt+d"),
	bind(filter.DeleteToLineStart, "ctrl+u"),
	bind(filter.DeleteToLineEnd, "ctrl+k"),

	bind(filter.MovePreviousChar, "left", "ctrl+b"),
	bind(filter.MoveNextChar, "right", "ctrl+f"),
	bind(filter.MovePreviousWord, "alt+left", "ctrl+left", "alt+b"),
	bind(filter.MoveNextWord, "alt+right", "ctrl+right", "alt+f"),
	bind(filter.MovePreviousLine, "up", "ctrl+p"),
	bind(filter.MoveNextLine, "down"),
	bind(filter.MovePreviousPage, "pgup", "alt+v"),
	bind(filter.MoveNextPage, "pgdown"),
	bind(filter.MoveToLineStart, "home", "ctrl+a"),
	bind(filter.MoveToLineEnd, "end", "ctrl+e"),
	bind(filter.MoveToBlockStart, "ctrl+up", "alt+up"),
	bind(filter.MoveToBlockEnd, "ctrl+down", "alt+down"),
	bind(filter.MoveToDocumentStart, "ctrl+home", "alt+<"),
	bind(filter.MoveToDocumentEnd, "ctrl+end", "alt+>"),

	bind(filter.SelectPreviousChar, "shift+left"),
	bind(filter.SelectNextChar, "shift+right"),
	bind(filter.SelectPreviousWord, "ctrl+shift+left"),
	bind(filter.SelectNextWord, "ctrl+shift+right"),
	bind(filter.SelectPreviousLine, "shift+up"),
	bind(filter.SelectNextLine, "shift+down"),
	bind(filter.SelectToLineStart, "shift+home"),
	bind(filter.SelectToLineEnd, "shift+end"),
	bind(filter.SelectToBlockStart, "ctrl+shift+up"),
	bind(filter.SelectToBlockEnd, "ctrl+shift+down"),
	bind(filter.SelectToDocumentStart, "ctrl+shift+home"),
	bind(filter.SelectToDocumentEnd, "ctrl+shift+end"),
	bind(filter.SelectPreviousPage, "shift+pgup"),
	bind(filter.SelectNextPage, "shift+pgdown"),

	bind(filter.Copy, "ctrl+c", "alt+w"),
	bind(filter.Cut, "ctrl+x"),
	bind(filter.Paste, "ctrl+v", "ctrl+y"),
	bind(filter.Undo, "ctrl+z", "ctrl+_"),
	bind(filter.Redo, "ctrl+shift+z", "alt+_"),
	bind(filter.Replace, "ctrl+r"),
	bind(filter.ToggleOverwrite, "insert"),
	bind(filter.DeleteLine, "ctrl+shift+k"),
}

// rawKeys maps Bubble Tea key types onto the filter's raw key codes.
var rawKeys = map[tea.KeyType]filter.Key{
	tea.KeyRunes:          filter.KeyRune,
	tea.KeySpace:          filter.KeyRune,
	tea.KeyEnter:          filter.KeyEnter,
	tea.KeyTab:            filter.KeyTab,
	tea.KeyBackspace:      filter.KeyBackspace,
	tea.KeyCtrlH:          filter.KeyBackspace,
	tea.KeyInsert:         filter.KeyInsert,
	tea.KeyDelete:         filter.KeyDelete,
	tea.KeyHome:           filter.KeyHome,
	tea.KeyEnd:            filter.KeyEnd,
	tea.KeyLeft:           filter.KeyLeft,
	tea.KeyUp:             filter.KeyUp,
	tea.KeyRight:          filter.KeyRight,
	tea.KeyDown:           filter.KeyDown,
	tea.KeyPgUp:           filter.KeyPageUp,
	tea.KeyPgDown:         filter.KeyPageDown,
	tea.KeyShiftLeft:      filter.KeyLeft,
	tea.KeyShiftRight:     filter.KeyRight,
	tea.KeyShiftUp:        filter.KeyUp,
	tea.KeyShiftDown:      filter.KeyDown,
	tea.KeyCtrlLeft:       filter.KeyLeft,
	tea.KeyCtrlRight:      filter.KeyRight,
	tea.KeyCtrlUp:         filter.KeyUp,
	tea.KeyCtrlDown:       filter.KeyDown,
	tea.KeyCtrlShiftLeft:  filter.KeyLeft,
	tea.KeyCtrlShiftRight: filter.KeyRight,
	tea.KeyCtrlShiftUp:    filter.KeyUp,
	tea.KeyCtrlShiftDown:  filter.KeyDown,
	tea.KeyShiftHome:      filter.KeyHome,
	tea.KeyShiftEnd:       filter.KeyEnd,
	tea.KeyCtrlHome:       filter.KeyHome,
	tea.KeyCtrlEnd:        filter.KeyEnd,
	tea.KeyCtrlShiftHome:  filter.KeyHome,
	tea.KeyCtrlShiftEnd:   filter.KeyEnd,
	tea.KeyCtrlPgUp:       filter.KeyPageUp,
	tea.KeyCtrlPgDown:     filter.KeyPageDown,
}

// intentForKey names a key press for the filter.
func intentForKey(msg tea.KeyMsg) filter.Event {
	raw, ok := rawKeys[msg.Type]
	if !ok {
		raw = filter.KeyOther
	}

	if msg.Paste {
		return filter.Event{Intent: filter.Paste, Key: raw, Text: string(msg.Runes)}
	}

	for _, ib := range intentKeyMap {
		if key.Matches(msg, ib.binding) {
			return filter.Event{Intent: ib.intent, Key: raw}
		}
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return filter.Event{Intent: filter.None, Key: filter.KeyOther}
		}
		return filter.Event{Intent: filter.InsertText, Key: raw, Text: string(msg.Runes)}
	case tea.KeySpace:
		return filter.Event{Intent: filter.InsertText, Key: raw, Text: " "}
	case tea.KeyEnter:
		return filter.Event{Intent: filter.InsertText, Key: raw, Text: "\n"}
	case tea.KeyTab:
		return filter.Event{Intent: filter.InsertText, Key: raw, Text: "\t"}
	}
	return filter.Event{Intent: filter.None, Key: raw}
}

// intentForMouse names a mouse message. Every mouse intent is on the
// filter's denylist; translating them keeps the decision in one place.
func intentForMouse(msg tea.MouseMsg) filter.Event {
	ev := filter.Event{Key: filter.KeyOther}
	switch {
	case isWheel(msg.Button):
		ev.Intent = filter.MouseWheel
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		ev.Intent = filter.ContextMenu
	case msg.Action == tea.MouseActionPress:
		ev.Intent = filter.MousePress
	case msg.Action == tea.MouseActionRelease:
		ev.Intent = filter.MouseRelease
	default:
		ev.Intent = filter.MouseMove
	}
	return ev
}

func isWheel(b tea.MouseButton) bool {
	switch b {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}
