package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// shouldIgnoreInput drops rune messages that are terminal replies rather than
// typing: OSC colour responses and runs carrying control characters. Some
// terminals answer background-colour queries on stdin and Bubble Tea hands
// the reply over as runes.
func (m *Model) shouldIgnoreInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Paste {
		return false
	}
	sequence := string(msg.Runes)
	if isOSCColorResponse(sequence) || containsControlRunes(sequence) {
		if m.debugInput {
			m.status = fmt.Sprintf("Ignored input: %q", sequence)
		}
		appLog.Debug("ignored terminal input", "sequence", sequence)
		return true
	}
	return false
}

// isOSCColorResponse reports whether sequence looks like "11;rgb:RRRR/GGGG/BBBB".
func isOSCColorResponse(sequence string) bool {
	sequence = trimOSCTerminator(sequence)
	index := strings.Index(sequence, "rgb:")
	if index == -1 {
		return false
	}
	if !strings.Contains(sequence, "\x1b") && !strings.Contains(sequence[:index], ";") {
		return false
	}
	components := strings.SplitN(sequence[index+len("rgb:"):], "/", 3)
	if len(components) != 3 {
		return false
	}
	for _, component := range components {
		if len(component) < 4 || !isHex(component[:4]) {
			return false
		}
	}
	return true
}

func trimOSCTerminator(sequence string) string {
	for _, suffix := range []string{"\x1b\\", "\a", "\\", "\x1b"} {
		if strings.HasSuffix(sequence, suffix) {
			return strings.TrimSuffix(sequence, suffix)
		}
	}
	return sequence
}

// containsControlRunes reports C0 controls and DEL other than newline and tab.
func containsControlRunes(sequence string) bool {
	for _, r := range sequence {
		switch {
		case r == '\n' || r == '\t':
			continue
		case r < 32 || r == 127:
			return true
		}
	}
	return false
}

func isHex(value string) bool {
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
