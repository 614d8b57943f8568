// about.go renders the help overlay. The text is markdown and goes through
// Glamour so headings and key tables read well in the terminal.
package app

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Version is shown in the about overlay. The binary sets it at startup.
var Version = "dev"

const aboutMarkdown = `# typewriter

A text "editor" for bashing out rough drafts. Text only goes in at the end of
the page. Backspace is the only correction you get.

## Files

| Key | Action |
| --- | --- |
%s

## Writing

- Type to add text, Enter starts a new line, Tab indents.
- Backspace removes the last character.
- Arrows, mouse clicks, paste, undo and selection are switched off.

Version %s
`

var (
	rendererMu    sync.Mutex
	rendererCache = map[int]*glamour.TermRenderer{}
)

// aboutText builds the help markdown from the command table so the listed
// keys always match the bound ones.
func aboutText() string {
	rows := make([]string, 0, len(commandKeys))
	for _, ck := range commandKeys {
		rows = append(rows, fmt.Sprintf("| %s | %s |", humanizeKeyLabel(ck.key), ck.label))
	}
	return fmt.Sprintf(aboutMarkdown, strings.Join(rows, "\n"), Version)
}

// renderMarkdown converts markdown to ANSI output at the given width. When
// Glamour fails the raw markdown is returned so the user still sees the text.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = LineWidthLimit
	}
	renderer, err := getRenderer(width)
	if err != nil {
		appLog.Error("create markdown renderer", "width", width, "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Error("render markdown content", "width", width, "error", err)
		return content
	}
	return strings.Trim(out, "\n")
}

// getRenderer returns a cached Glamour renderer for width.
func getRenderer(width int) (*glamour.TermRenderer, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if renderer, ok := rendererCache[width]; ok {
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[width] = renderer
	return renderer, nil
}

// glamourStyleOption resolves the style from TYPEWRITER_GLAMOUR_STYLE, then
// GLAMOUR_STYLE, then "dark". "auto" asks the terminal for its background,
// which can leak an OSC reply into the input; the noise filter drops it.
func glamourStyleOption() glamour.TermRendererOption {
	style := strings.ToLower(strings.TrimSpace(os.Getenv("TYPEWRITER_GLAMOUR_STYLE")))
	if style == "" {
		style = strings.ToLower(strings.TrimSpace(os.Getenv("GLAMOUR_STYLE")))
	}
	switch style {
	case "auto":
		return glamour.WithAutoStyle()
	case "dark", "light", "notty":
		return glamour.WithStandardStyle(style)
	default:
		return glamour.WithStandardStyle("dark")
	}
}
