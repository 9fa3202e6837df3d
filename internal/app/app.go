// Package app is the Bubble Tea program behind the medsum TUI.
//
// The Model owns one form.State and wires terminal events to its pure
// transitions. Summarization and clipboard access run as tea.Cmds and report
// back through SummaryResultMsg and ClipboardResultMsg.
package app

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/medsum/medsum/internal/clipboard"
	"github.com/medsum/medsum/internal/config"
	"github.com/medsum/medsum/internal/form"
	"github.com/medsum/medsum/internal/logger"
	"github.com/medsum/medsum/internal/summarizer"
	"github.com/medsum/medsum/internal/ui"
)

// Options configures a Model.
type Options struct {
	// Client performs the summarization. Required.
	Client summarizer.Client
	// Source labels where summaries come from (endpoint URL or "local").
	Source string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
	Version string
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	client  summarizer.Client
	timeout time.Duration
	version string
	log     *slog.Logger

	header  *ui.Header
	footer  *ui.Footer
	spinner ui.Spinner
	input   textarea.Model
	result  viewport.Model

	state       form.State
	focus       ui.Focus
	cancel      context.CancelFunc
	generatedAt time.Time

	width         int
	height        int
	windowFocused bool
	flashTicking  bool

	// Swapped out in tests.
	newToken       func() string
	now            func() time.Time
	writeClipboard func(string) error
	readClipboard  func() (string, error)
}

// SummaryResultMsg reports the outcome of the request identified by Token.
type SummaryResultMsg struct {
	Token   string
	Summary string
	Err     error
}

// ClipboardResultMsg reports the outcome of a native clipboard write.
type ClipboardResultMsg struct {
	Err error
}

// ClipboardPasteMsg carries text read from the system clipboard.
type ClipboardPasteMsg struct {
	Text string
	Err  error
}

// New creates a new app model
func New(cfg *config.Config, opts Options) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	ta := textarea.New()
	ta.Placeholder = ui.InputPlaceholder
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.Focus()

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	header := ui.NewHeader()
	header.SetSource(opts.Source)

	return &Model{
		config:         cfg,
		client:         opts.Client,
		timeout:        opts.Timeout,
		version:        opts.Version,
		log:            logger.WithComponent("app"),
		header:         header,
		footer:         ui.NewFooter(),
		input:          ta,
		result:         vp,
		focus:          ui.FocusInput,
		windowFocused:  true,
		newToken:       uuid.NewString,
		now:            time.Now,
		writeClipboard: clipboard.WriteText,
		readClipboard:  clipboard.ReadText,
	}
}

// State returns the current form state.
func (m *Model) State() form.State {
	return m.state
}

// Focus returns the focused part of the form.
func (m *Model) Focus() ui.Focus {
	return m.focus
}

// Init shows the first-run hint once.
func (m *Model) Init() tea.Cmd {
	if m.config.HasSeenWelcome() {
		return nil
	}
	m.config.MarkWelcomeShown()
	m.footer.SetFlashWithDuration("Welcome! Paste your notes and press ctrl+s to summarize", ui.FlashInfo, 6*time.Second)
	return tea.Batch(m.startFlashTick(), m.saveConfigOrFlash())
}

// saveConfigOrFlash saves the config and shows a flash on failure.
func (m *Model) saveConfigOrFlash() tea.Cmd {
	if err := m.config.Save(); err != nil {
		m.log.Error("failed to save config", "error", err)
		return m.ShowFlashError("Failed to save settings")
	}
	return nil
}

// Shutdown cancels any in-flight request. Call after the program exits.
func (m *Model) Shutdown() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
