package app

import (
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/typewriter/internal/session"
)

// mode controls which widget receives key presses.
type mode int

const (
	modeType mode = iota
	modeOpenPrompt
	modeSaveAsPrompt
)

// overlayMode identifies the informational popup drawn over the page.
type overlayMode int

const (
	overlayNone overlayMode = iota
	overlayAbout
	overlayWordCount
)

// Model holds the Bubble Tea state for the whole UI. The page itself lives in
// the session; the model only decides what reaches it and how it is drawn.
type Model struct {
	sess *session.Session

	// UI widgets
	viewport viewport.Model
	input    textinput.Model
	mode     mode
	overlay  overlayMode
	status   string

	// statusIsError marks status as an error until the next key press.
	statusIsError bool

	// filter is the file-type filter of the open/save prompt.
	filter session.FileFilter

	// Layout sizing
	width  int
	height int

	// placeholder is shown on an empty page.
	placeholder string

	// scheduledGeneration is the autosave timer generation that already has
	// a tick in flight.
	scheduledGeneration int

	debugInput bool
	quitting   bool
}

// New prepares the UI model around an existing session.
func New(sess *session.Session) *Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false

	input := textinput.New()
	input.Placeholder = "Path"
	input.CharLimit = InputCharLimit
	input.Prompt = "> "

	placeholder := sess.Config().CustomStartMessage
	if placeholder == "" {
		placeholder = randomFortune()
	}

	m := &Model{
		sess:        sess,
		viewport:    vp,
		input:       input,
		mode:        modeType,
		filter:      session.FilterText,
		placeholder: placeholder,
		debugInput:  os.Getenv("TYPEWRITER_DEBUG_INPUT") != "",
	}
	m.status = "Ready"
	m.refreshPage()
	return m
}

// Init starts the autosave loop when the session already has a file open.
func (m *Model) Init() tea.Cmd {
	return m.syncAutosave()
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case autosaveTickMsg:
		return m.handleAutosaveTick(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		m.statusIsError = false
		if m.shouldIgnoreInput(msg) {
			return m, nil
		}
		switch m.mode {
		case modeOpenPrompt, modeSaveAsPrompt:
			return m.handlePromptKey(msg)
		}
		if m.overlay != overlayNone {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// Session exposes the editing session the model drives.
func (m *Model) Session() *session.Session {
	return m.sess
}
