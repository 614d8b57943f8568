// Package session owns the page being typed and its life cycle on disk.
//
// A Session moves between three states:
//
//	Unsaved-Empty  → Editing-Untitled   (first character typed)
//	any            → Editing-Named      (Open or SaveAs succeeds)
//	any            → Unsaved-Empty      (NewFile)
//
// All methods run on the UI goroutine; a Session is not safe for concurrent
// use and does not need to be. The periodic autosave is driven from outside:
// the host schedules a tick tagged with the current timer generation and
// hands it back to Tick, which ignores ticks from a stopped or restarted
// timer.
package session

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/treykane/typewriter/internal/config"
	"github.com/treykane/typewriter/internal/filter"
	"github.com/treykane/typewriter/internal/logging"
)

// AutosaveInterval is how often an open file is written while autosave is on.
const AutosaveInterval = 180 * time.Second

// TextExtension is appended by SaveAs under the text-file filter.
const TextExtension = ".txt"

// DocumentPermission is the mode for newly written documents.
const DocumentPermission = 0o644

var errEmptyPath = errors.New("path is required")

// State is the session's position in its life cycle.
type State uint8

const (
	StateUnsavedEmpty State = iota
	StateEditingUntitled
	StateEditingNamed
)

func (s State) String() string {
	switch s {
	case StateEditingUntitled:
		return "editing-untitled"
	case StateEditingNamed:
		return "editing-named"
	default:
		return "unsaved-empty"
	}
}

// FileFilter is the file type chosen when saving or opening.
type FileFilter uint8

const (
	FilterText FileFilter = iota
	FilterAll
)

func (f FileFilter) String() string {
	if f == FilterAll {
		return "All files (*)"
	}
	return "Text files (*.txt)"
}

// Toggle switches between the two filters.
func (f FileFilter) Toggle() FileFilter {
	if f == FilterAll {
		return FilterText
	}
	return FilterAll
}

// Session is the open page, where it lives on disk, and the options that
// decide when it gets written.
type Session struct {
	doc             Document
	activePath      string
	wordCountOnOpen int

	cfg        config.Config
	configPath string

	timerRunning    bool
	timerGeneration int

	log *slog.Logger
}

// New starts an empty session from loaded options. configPath is where
// Shutdown writes them back; an empty path skips that write.
func New(cfg config.Config, configPath string) *Session {
	return &Session{
		cfg:        cfg,
		configPath: configPath,
		log:        logging.New("session"),
	}
}

// Handle classifies ev and, when it is allowed, applies it to the page.
func (s *Session) Handle(ev filter.Event) filter.Decision {
	decision := filter.Classify(ev)
	if decision != filter.Apply {
		return decision
	}
	switch ev.Intent {
	case filter.InsertText:
		s.doc.Insert(ev.Text)
	case filter.DeletePreviousChar:
		s.doc.Backspace()
	case filter.None:
		switch ev.Key {
		case filter.KeyBackspace:
			s.doc.Backspace()
		case filter.KeyRune, filter.KeyEnter, filter.KeyTab:
			s.doc.Insert(ev.Text)
		}
	}
	return decision
}

// NewFile clears the page. With autosave-on-close enabled the current file is
// written first; a failed write is logged and does not stop the reset.
func (s *Session) NewFile() {
	if s.cfg.AutosaveOnClose {
		s.bestEffortAutosave("new")
	}
	s.doc.clear()
	s.activePath = ""
	s.wordCountOnOpen = 0
	s.stopTimer()
}

// Open replaces the page with the contents of path. One trailing newline
// sequence is dropped so the caret does not start on an empty line the user
// could never backspace past. A file that is not valid UTF-8 is refused so a
// later save cannot rewrite it with replacement characters. On failure the
// session is unchanged.
func (s *Session) Open(path string) error {
	if s.cfg.AutosaveOnClose {
		s.bestEffortAutosave("open")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return &IOError{Op: "open", Path: path, Err: ErrNotText}
	}
	content := trimTrailingNewline(string(data))

	s.doc.set(content)
	s.activePath = path
	s.wordCountOnOpen = CountWords(content)
	s.cfg.LastOpenedDirectory = filepath.Dir(path)
	s.startTimer()
	s.log.Info("opened file", "path", path, "words", s.wordCountOnOpen)
	return nil
}

// Save writes the page to the active path. Without one it returns
// ErrNoActivePath and the caller should use SaveAs.
func (s *Session) Save() error {
	if s.activePath == "" {
		return ErrNoActivePath
	}
	return s.write("save", s.activePath)
}

// SaveAs writes the page to path and makes it the active path. Under the text
// filter a missing .txt extension is appended. It returns the path written.
func (s *Session) SaveAs(path string, ff FileFilter) (string, error) {
	if strings.TrimSpace(path) == "" {
		return path, &IOError{Op: "save as", Path: path, Err: errEmptyPath}
	}
	if ff == FilterText && !hasTextExtension(path) {
		path += TextExtension
	}
	if err := s.write("save as", path); err != nil {
		return path, err
	}
	s.activePath = path
	s.cfg.LastOpenedDirectory = filepath.Dir(path)
	s.startTimer()
	return path, nil
}

// Autosave writes the page if a path is active and does nothing otherwise.
func (s *Session) Autosave() error {
	if s.activePath == "" {
		return nil
	}
	return s.write("autosave", s.activePath)
}

// Tick handles a periodic autosave tick from the given timer generation.
// It reports whether the timer is still live and should be rescheduled; a
// stale tick returns false and writes nothing.
func (s *Session) Tick(generation int) (bool, error) {
	if !s.timerRunning || generation != s.timerGeneration {
		return false, nil
	}
	if !s.cfg.Autosave {
		return true, nil
	}
	return true, s.Autosave()
}

// AutosaveTimer reports whether the periodic timer is running and the
// generation ticks must carry.
func (s *Session) AutosaveTimer() (running bool, generation int) {
	return s.timerRunning, s.timerGeneration
}

// WordCount returns the words on the page and the words added since the file
// was opened. The second value can be negative after heavy backspacing.
func (s *Session) WordCount() (total, session int) {
	total = CountWords(s.doc.Text())
	return total, total - s.wordCountOnOpen
}

// Shutdown autosaves when configured to, then writes the options back to the
// config file.
func (s *Session) Shutdown() error {
	if s.cfg.AutosaveOnClose {
		s.bestEffortAutosave("close")
	}
	if s.activePath != "" {
		s.cfg.LastOpenedDirectory = filepath.Dir(s.activePath)
	}
	s.stopTimer()
	if s.configPath == "" {
		return nil
	}
	if err := config.Save(s.configPath, s.cfg); err != nil {
		return &IOError{Op: "save config", Path: s.configPath, Err: err}
	}
	return nil
}

// State reports where the session is in its life cycle.
func (s *Session) State() State {
	switch {
	case s.activePath != "":
		return StateEditingNamed
	case s.doc.IsEmpty():
		return StateUnsavedEmpty
	default:
		return StateEditingUntitled
	}
}

// ActivePath returns the file the page is tied to, or "".
func (s *Session) ActivePath() string { return s.activePath }

// WordCountOnOpen returns the baseline taken when the file was opened.
func (s *Session) WordCountOnOpen() int { return s.wordCountOnOpen }

// Text returns the page contents.
func (s *Session) Text() string { return s.doc.Text() }

// Len returns the number of characters on the page.
func (s *Session) Len() int { return s.doc.Len() }

// Caret returns the insertion point. It always equals Len.
func (s *Session) Caret() int { return s.doc.Caret() }

// Config exposes the options so the host can change display settings that
// Shutdown will persist.
func (s *Session) Config() *config.Config { return &s.cfg }

// StartDir is where open and save prompts begin: the active file's directory,
// or the last directory used.
func (s *Session) StartDir() string {
	if s.activePath != "" {
		return filepath.Dir(s.activePath)
	}
	return s.cfg.LastOpenedDirectory
}

func (s *Session) write(op, path string) error {
	if err := os.WriteFile(path, []byte(s.doc.Text()), DocumentPermission); err != nil {
		return &IOError{Op: op, Path: path, Err: err}
	}
	s.log.Debug("wrote file", "op", op, "path", path, "chars", s.doc.Len())
	return nil
}

func (s *Session) bestEffortAutosave(reason string) {
	if err := s.Autosave(); err != nil {
		s.log.Warn("autosave failed", "reason", reason, "path", s.activePath, "error", err)
	}
}

func (s *Session) startTimer() {
	s.timerRunning = true
	s.timerGeneration++
}

func (s *Session) stopTimer() {
	s.timerRunning = false
	s.timerGeneration++
}

func hasTextExtension(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), TextExtension)
}

func trimTrailingNewline(text string) string {
	if strings.HasSuffix(text, "\r\n") {
		return strings.TrimSuffix(text, "\r\n")
	}
	return strings.TrimSuffix(text, "\n")
}
