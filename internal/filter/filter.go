// Package filter decides which input events may touch the page.
//
// Only two things are allowed: inserting text at the caret and deleting the
// single character before it. Everything that could move the caret, select
// text, use the clipboard, or rewrite history is discarded. The caret itself
// is never stored anywhere; it is always the end of the buffer, and this
// package is what keeps that true.
//
// Classification runs two lookups in order: a denylist of named intents, then
// a denylist of raw key codes. Some hosts deliver navigation only as raw keys
// with no named intent, which is why both lists exist. Whatever neither list
// matches is applied.
package filter

// Decision is the outcome of classifying an event.
type Decision uint8

const (
	Discard Decision = iota
	Apply
)

func (d Decision) String() string {
	if d == Apply {
		return "apply"
	}
	return "discard"
}

// Intent names what an input event is trying to do.
type Intent uint8

const (
	// None means the host had no name for the input; only the raw key is known.
	None Intent = iota

	// Edit intents.
	InsertText
	DeletePreviousChar
	DeleteNextChar
	DeletePreviousWord
	DeleteNextWord
	DeleteToLineStart
	DeleteToLineEnd
	DeleteLine

	// Nav intents.
	MovePreviousChar
	MoveNextChar
	MovePreviousWord
	MoveNextWord
	MovePreviousLine
	MoveNextLine
	MovePreviousPage
	MoveNextPage
	MoveToLineStart
	MoveToLineEnd
	MoveToBlockStart
	MoveToBlockEnd
	MoveToDocumentStart
	MoveToDocumentEnd

	// Selection intents.
	SelectPreviousChar
	SelectNextChar
	SelectPreviousWord
	SelectNextWord
	SelectPreviousLine
	SelectNextLine
	SelectPreviousPage
	SelectNextPage
	SelectToLineStart
	SelectToLineEnd
	SelectToBlockStart
	SelectToBlockEnd
	SelectToDocumentStart
	SelectToDocumentEnd
	SelectAll

	// Clipboard and history.
	Copy
	Cut
	Paste
	Undo
	Redo
	Replace
	ToggleOverwrite

	// Mouse.
	MousePress
	MouseRelease
	MouseDoubleClick
	MouseMove
	MouseWheel
	ContextMenu

	intentCount
)

var intentNames = [...]string{
	None:                  "none",
	InsertText:            "insert-text",
	DeletePreviousChar:    "delete-previous-char",
	DeleteNextChar:        "delete-next-char",
	DeletePreviousWord:    "delete-previous-word",
	DeleteNextWord:        "delete-next-word",
	DeleteToLineStart:     "delete-to-line-start",
	DeleteToLineEnd:       "delete-to-line-end",
	DeleteLine:            "delete-line",
	MovePreviousChar:      "move-previous-char",
	MoveNextChar:          "move-next-char",
	MovePreviousWord:      "move-previous-word",
	MoveNextWord:          "move-next-word",
	MovePreviousLine:      "move-previous-line",
	MoveNextLine:          "move-next-line",
	MovePreviousPage:      "move-previous-page",
	MoveNextPage:          "move-next-page",
	MoveToLineStart:       "move-to-line-start",
	MoveToLineEnd:         "move-to-line-end",
	MoveToBlockStart:      "move-to-block-start",
	MoveToBlockEnd:        "move-to-block-end",
	MoveToDocumentStart:   "move-to-document-start",
	MoveToDocumentEnd:     "move-to-document-end",
	SelectPreviousChar:    "select-previous-char",
	SelectNextChar:        "select-next-char",
	SelectPreviousWord:    "select-previous-word",
	SelectNextWord:        "select-next-word",
	SelectPreviousLine:    "select-previous-line",
	SelectNextLine:        "select-next-line",
	SelectPreviousPage:    "select-previous-page",
	SelectNextPage:        "select-next-page",
	SelectToLineStart:     "select-to-line-start",
	SelectToLineEnd:       "select-to-line-end",
	SelectToBlockStart:    "select-to-block-start",
	SelectToBlockEnd:      "select-to-block-end",
	SelectToDocumentStart: "select-to-document-start",
	SelectToDocumentEnd:   "select-to-document-end",
	SelectAll:             "select-all",
	Copy:                  "copy",
	Cut:                   "cut",
	Paste:                 "paste",
	Undo:                  "undo",
	Redo:                  "redo",
	Replace:               "replace",
	ToggleOverwrite:       "toggle-overwrite",
	MousePress:            "mouse-press",
	MouseRelease:          "mouse-release",
	MouseDoubleClick:      "mouse-double-click",
	MouseMove:             "mouse-move",
	MouseWheel:            "mouse-wheel",
	ContextMenu:           "context-menu",
}

func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return "unknown"
}

// Key is a raw key code, independent of any terminal library.
type Key uint8

const (
	KeyOther Key = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyPageUp
	KeyPageDown
)

// Event is one classified input from the host.
type Event struct {
	Intent Intent
	Key    Key
	// Text is the inserted text for InsertText.
	Text string
}

// discardIntents holds every named intent except plain insertion and
// single-character backspace.
var discardIntents = [intentCount]bool{
	DeleteNextChar:     true,
	DeletePreviousWord: true,
	DeleteNextWord:     true,
	DeleteToLineStart:  true,
	DeleteToLineEnd:    true,
	DeleteLine:         true,

	MovePreviousChar:    true,
	MoveNextChar:        true,
	MovePreviousWord:    true,
	MoveNextWord:        true,
	MovePreviousLine:    true,
	MoveNextLine:        true,
	MovePreviousPage:    true,
	MoveNextPage:        true,
	MoveToLineStart:     true,
	MoveToLineEnd:       true,
	MoveToBlockStart:    true,
	MoveToBlockEnd:      true,
	MoveToDocumentStart: true,
	MoveToDocumentEnd:   true,

	SelectPreviousChar:    true,
	SelectNextChar:        true,
	SelectPreviousWord:    true,
	SelectNextWord:        true,
	SelectPreviousLine:    true,
	SelectNextLine:        true,
	SelectPreviousPage:    true,
	SelectNextPage:        true,
	SelectToLineStart:     true,
	SelectToLineEnd:       true,
	SelectToBlockStart:    true,
	SelectToBlockEnd:      true,
	SelectToDocumentStart: true,
	SelectToDocumentEnd:   true,
	SelectAll:             true,

	Copy:            true,
	Cut:             true,
	Paste:           true,
	Undo:            true,
	Redo:            true,
	Replace:         true,
	ToggleOverwrite: true,

	MousePress:       true,
	MouseRelease:     true,
	MouseDoubleClick: true,
	MouseMove:        true,
	MouseWheel:       true,
	ContextMenu:      true,
}

// discardKeys holds raw keys that move the caret or act after it.
// Backspace is not here: deleting one character before the caret is allowed.
var discardKeys = map[Key]bool{
	KeyInsert:   true,
	KeyDelete:   true,
	KeyHome:     true,
	KeyEnd:      true,
	KeyLeft:     true,
	KeyUp:       true,
	KeyRight:    true,
	KeyDown:     true,
	KeyPageUp:   true,
	KeyPageDown: true,
}

// Classify decides whether ev may be applied to the page.
func Classify(ev Event) Decision {
	if ev.Intent >= intentCount || discardIntents[ev.Intent] {
		return Discard
	}
	if discardKeys[ev.Key] {
		return Discard
	}
	return Apply
}

// Discards reports whether the named intent is on the denylist.
func Discards(i Intent) bool {
	return i >= intentCount || discardIntents[i]
}

// DiscardsKey reports whether the raw key is on the denylist.
func DiscardsKey(k Key) bool {
	return discardKeys[k]
}
