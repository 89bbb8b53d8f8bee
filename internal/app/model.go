package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cipher-nexus/internal/config"
	"github.com/treykane/cipher-nexus/internal/dial"
	"github.com/treykane/cipher-nexus/internal/remix"
	"github.com/treykane/cipher-nexus/internal/wheel"
)

// tab selects the page shown below the header.
type tab int

const (
	tabCipher tab = iota
	tabLab
)

// focusTarget names the field receiving typed keys.
type focusTarget int

const (
	focusNone focusTarget = iota
	focusPlain
	focusCipher
	focusLetter
	focusNumber
	focusPrompt
)

// cipherFocusOrder is the tab order on the cipher page.
var cipherFocusOrder = []focusTarget{focusPlain, focusCipher, focusLetter, focusNumber}

// overlayMode identifies the popup drawn over the page, if any.
type overlayMode int

const (
	overlayNone overlayMode = iota
	overlayHelp
)

// Options configures a Model.
type Options struct {
	Config config.Config
	// Editor performs remixes. Nil leaves the lab usable but every remix
	// reports that no image service is configured.
	Editor remix.ImageEditor
}

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	cfg   config.Config
	state cipherState

	// Widgets
	wheel       *wheel.Widget
	preview     *wheel.Widget
	plainInput  textinput.Model
	cipherInput textinput.Model
	promptInput textinput.Model
	slider      progress.Model
	help        viewport.Model
	spinner     spinner.Model

	tab     tab
	focus   focusTarget
	overlay overlayMode
	status  string

	// Layout sizing
	width  int
	height int

	keyForAction map[string][]string
	keyToAction  map[string]string

	// Help rendering cache
	helpWidth int

	// Settings hot reload
	configPath            string
	loadConfig            func() (config.Config, error)
	settingsSnapshot      settingsSnapshot
	settingsWatchInterval time.Duration

	// Undo history of the canonical state
	undo        []cipherState
	redo        []cipherState
	burstActive bool
	burstLastAt time.Time

	// Remix lab
	lab           *remix.Lab
	capture       func(wheel.Props) ([]byte, error)
	now           func() time.Time
	remixSeq      int
	remixCancel   context.CancelFunc
	remixing      bool
	remixPrompt   string
	labErr        string
	artwork       []byte
	artworkThumb  string
	thumbSize     [2]int
	suggestions   []string
	suggestCursor int
	savedPath     string
}

// New prepares the initial UI model from the loaded configuration.
func New(opts Options) *Model {
	cfg := opts.Config
	letter := dial.DefaultReferenceLetter
	if l, ok := dial.LastLetter(cfg.ReferenceLetter); ok {
		letter = l
	}

	plain := textinput.New()
	plain.Prompt = "› "
	plain.Placeholder = "Type your secret..."
	plain.CharLimit = InputCharLimit
	plain.TextStyle = plainStyle

	cipherIn := textinput.New()
	cipherIn.Prompt = "› "
	cipherIn.Placeholder = "Uryyb Jbeyq..."
	cipherIn.CharLimit = InputCharLimit
	cipherIn.TextStyle = cipherStyle

	prompt := textinput.New()
	prompt.Prompt = "› "
	prompt.Placeholder = "Add a cosmic space background"
	prompt.CharLimit = PromptCharLimit

	spin := spinner.New()
	spin.Spinner = spinner.Line

	m := &Model{
		cfg:         cfg,
		state:       newCipherState(cfg.Shift, letter, cfg.PlainText),
		wheel:       wheel.New(wheel.Options{Interactive: true}),
		preview:     wheel.New(wheel.Options{}),
		plainInput:  plain,
		cipherInput: cipherIn,
		promptInput: prompt,
		slider:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:        viewport.New(0, 0),
		spinner:     spin,
		status:      "Ready",
		lab:         remix.NewLab(opts.Editor),
		capture:     wheel.Capture,
		now:         time.Now,
		suggestions: remix.Suggest(""),
		configPath:  defaultConfigPath(),
		loadConfig:  config.Load,
	}
	m.loadKeybindings(cfg)
	m.syncWidgets()
	if !m.lab.Ready() {
		appLog.Info("remix disabled", "reason", "no image editor")
	}
	return m
}

// Init starts the settings poller.
func (m *Model) Init() tea.Cmd {
	return m.scheduleSettingsWatchTick()
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case wheel.ShiftChangedMsg:
		return m.handleShiftChanged(msg)
	case wheel.ReferenceLetterChangedMsg:
		return m.handleReferenceLetterChanged(msg)
	case remixResultMsg:
		return m.handleRemixResult(msg)
	case settingsWatchTickMsg:
		return m.handleSettingsWatchTick(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// props is what both wheels render.
func (m *Model) props() wheel.Props {
	return m.state.props()
}

// syncWidgets copies the canonical state into every widget except the field
// the user is typing in.
func (m *Model) syncWidgets() {
	if m.focus != focusPlain && m.plainInput.Value() != m.state.plain {
		m.plainInput.SetValue(m.state.plain)
	}
	if m.focus != focusCipher && m.cipherInput.Value() != m.state.cipher {
		m.cipherInput.SetValue(m.state.cipher)
	}
	m.wheel.Sync(m.props(), m.wheelField())
}

// wheelField maps the focus to the wheel's hub field.
func (m *Model) wheelField() wheel.Field {
	switch m.focus {
	case focusLetter:
		return wheel.FieldLetter
	case focusNumber:
		return wheel.FieldNumber
	}
	return wheel.FieldNone
}

// editing reports whether typed keys belong to a text field.
func (m *Model) editing() bool {
	return m.focus != focusNone
}
