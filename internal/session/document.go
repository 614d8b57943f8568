package session

import (
	"strings"
	"unicode/utf8"
)

// Document is the page being typed. It only grows at the end or shrinks from
// the end; there is no caret field because the caret is always Len().
type Document struct {
	runes []rune
}

// Insert appends text at the caret.
func (d *Document) Insert(text string) {
	d.runes = append(d.runes, []rune(text)...)
}

// Backspace removes the character before the caret. A "\r\n" line break from
// an opened file counts as one character. It reports whether anything was
// removed; an empty document is left alone.
func (d *Document) Backspace() bool {
	n := len(d.runes)
	if n == 0 {
		return false
	}
	if n >= 2 && d.runes[n-1] == '\n' && d.runes[n-2] == '\r' {
		n--
	}
	d.runes = d.runes[:n-1]
	return true
}

// Len returns the number of characters in the document.
func (d *Document) Len() int { return len(d.runes) }

// Caret returns the insertion point, which is always the end.
func (d *Document) Caret() int { return len(d.runes) }

// Text returns the full contents.
func (d *Document) Text() string { return string(d.runes) }

// IsEmpty reports whether nothing has been typed.
func (d *Document) IsEmpty() bool { return len(d.runes) == 0 }

func (d *Document) set(text string) {
	d.runes = []rune(text)
}

func (d *Document) clear() {
	d.runes = nil
}

// Metrics summarises a text for the footer.
type Metrics struct {
	Words int
	Chars int
	Lines int
}

// CountWords returns the number of whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ComputeMetrics returns word, character and line counts for text.
func ComputeMetrics(text string) Metrics {
	if text == "" {
		return Metrics{}
	}
	lines := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		lines++
	}
	return Metrics{
		Words: CountWords(text),
		Chars: utf8.RuneCountInString(text),
		Lines: lines,
	}
}
