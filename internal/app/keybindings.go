package app

import (
	"strings"
)

// Command actions are the menu equivalents. They are looked up before a key
// is translated into an editing intent, so a command key never reaches the
// page.
const (
	actionNew             = "file.new"
	actionOpen            = "file.open"
	actionSave            = "file.save"
	actionSaveAs          = "file.save_as"
	actionQuit            = "app.quit"
	actionAbout           = "help.about"
	actionWordCount       = "help.word_count"
	actionToggleAutosave  = "options.autosave"
	actionToggleCloseSave = "options.autosave_on_close"
	actionCycleMargins    = "view.margins"
	actionToggleLineLimit = "view.limit_line_width"
	actionToggleGoldfish  = "view.goldfish"
	actionToggleBold      = "font.bold"
	actionToggleItalic    = "font.italic"
)

// commandKeys lists the default keys per action, in the order they are shown
// in the help text.
var commandKeys = []struct {
	action string
	key    string
	label  string
}{
	{actionNew, "ctrl+n", "new"},
	{actionOpen, "ctrl+o", "open"},
	{actionSave, "ctrl+s", "save"},
	{actionSaveAs, "alt+s", "save as"},
	{actionAbout, "f1", "help"},
	{actionWordCount, "f2", "words"},
	{actionToggleAutosave, "f3", "autosave"},
	{actionToggleCloseSave, "f4", "save on close"},
	{actionCycleMargins, "f5", "margins"},
	{actionToggleLineLimit, "f6", "line width"},
	{actionToggleGoldfish, "f7", "goldfish"},
	{actionToggleBold, "f8", "bold"},
	{actionToggleItalic, "f9", "italic"},
	{actionQuit, "ctrl+q", "quit"},
}

var keyToAction = func() map[string]string {
	out := make(map[string]string, len(commandKeys))
	for _, ck := range commandKeys {
		out[ck.key] = ck.action
	}
	return out
}()

// actionForKey returns the command bound to key, or "".
func actionForKey(key string) string {
	return keyToAction[strings.ToLower(strings.TrimSpace(key))]
}

// commandHelpSegments renders "Key label" pairs for the footer.
func commandHelpSegments() []string {
	out := make([]string, 0, len(commandKeys))
	for _, ck := range commandKeys {
		out = append(out, humanizeKeyLabel(ck.key)+" "+ck.label)
	}
	return out
}

// humanizeKeyLabel turns "ctrl+s" into "Ctrl+S" and "f1" into "F1".
func humanizeKeyLabel(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	parts := strings.Split(key, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		case "esc":
			parts[i] = "Esc"
		case "enter":
			parts[i] = "Enter"
		case "tab":
			parts[i] = "Tab"
		default:
			parts[i] = strings.ToUpper(part)
		}
	}
	return strings.Join(parts, "+")
}
