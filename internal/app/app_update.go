package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/medsum/medsum/internal/form"
	"github.com/medsum/medsum/internal/keys"
	"github.com/medsum/medsum/internal/notification"
	"github.com/medsum/medsum/internal/summarizer"
	"github.com/medsum/medsum/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.PasteMsg:
		m.log.Debug("paste received", "len", len(msg.Content))
		return m, m.insertText(msg.Content)

	case SummaryResultMsg:
		return m, m.handleSummaryResult(msg)

	case ClipboardResultMsg:
		if msg.Err != nil {
			m.log.Warn("clipboard write failed", "error", msg.Err)
			return m, m.ShowFlashError("Failed to copy to clipboard")
		}
		return m, m.ShowFlashSuccess("Copied summary")

	case ClipboardPasteMsg:
		if msg.Err != nil {
			m.log.Warn("clipboard read failed", "error", msg.Err)
			return m, m.ShowFlashError("Failed to read clipboard")
		}
		if msg.Text == "" {
			return m, m.ShowFlashInfo("Clipboard is empty")
		}
		return m, m.insertText(msg.Text)

	case ui.SpinnerTickMsg:
		return m, m.spinner.Update(msg)

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()
	}

	// Anything else (cursor blink and the like) goes to the focused component.
	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.CtrlC:
		m.Shutdown()
		return tea.Quit
	case keys.Escape:
		if m.state.Loading {
			return m.cancelSubmission()
		}
		return nil
	case keys.Tab:
		return m.setFocus((m.focus + 1) % 3)
	case keys.ShiftTab:
		return m.setFocus((m.focus + 2) % 3)
	case keys.CtrlS:
		return m.submit()
	case keys.CtrlY:
		return m.copyResult()
	case keys.CtrlV:
		return m.pasteFromClipboard()
	case keys.CtrlL:
		if !m.state.Loading && m.focus == ui.FocusInput {
			m.input.Reset()
			m.state = form.Edit(m.state, "")
		}
		return nil
	case keys.Enter:
		if m.focus == ui.FocusButton {
			return m.submit()
		}
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused component.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case ui.FocusInput:
		m.input, cmd = m.input.Update(msg)
		m.state = form.Edit(m.state, m.input.Value())
	case ui.FocusResult:
		m.result, cmd = m.result.Update(msg)
	}
	return cmd
}

func (m *Model) setFocus(f ui.Focus) tea.Cmd {
	m.focus = f
	if f == ui.FocusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// insertText adds pasted text at the cursor, moving focus to the input.
func (m *Model) insertText(text string) tea.Cmd {
	cmd := m.setFocus(ui.FocusInput)
	m.input.InsertString(text)
	m.state = form.Edit(m.state, m.input.Value())
	return cmd
}

func (m *Model) pasteFromClipboard() tea.Cmd {
	read := m.readClipboard
	return func() tea.Msg {
		text, err := read()
		return ClipboardPasteMsg{Text: text, Err: err}
	}
}

// submit starts a summarization if the form allows it. The form enters the
// loading phase before the request command is returned.
func (m *Model) submit() tea.Cmd {
	token := m.newToken()
	next, ok := form.Submit(m.state, token)
	if !ok {
		return nil
	}
	m.state = next
	m.result.SetContent("")
	m.header.SetBusy(true)

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if m.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), m.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	ctx = summarizer.WithRequestID(ctx, token)
	m.cancel = cancel

	text := next.Input
	client := m.client
	log := m.log.With("requestID", token)
	log.Info("submitting text for summary", "chars", form.CharCount(next))

	return tea.Batch(m.spinner.Start(m.now()), func() tea.Msg {
		defer cancel()
		summary, err := client.Summarize(ctx, text)
		return SummaryResultMsg{Token: token, Summary: summary, Err: err}
	})
}

func (m *Model) handleSummaryResult(msg SummaryResultMsg) tea.Cmd {
	log := m.log.With("requestID", msg.Token)
	if msg.Token != m.state.Pending || !m.state.Loading {
		log.Debug("dropping stale summary result")
		return nil
	}

	if msg.Err != nil {
		log.Error("summarization failed", "error", msg.Err)
		m.state = form.Fail(m.state, msg.Token, msg.Err)
	} else {
		log.Info("summary received", "chars", len(msg.Summary))
		m.state = form.Succeed(m.state, msg.Token, msg.Summary)
		m.generatedAt = m.now()
	}
	m.settle()
	m.refreshResult()

	if m.windowFocused || !m.config.GetNotificationsEnabled() {
		return nil
	}
	result := m.state.Result
	return func() tea.Msg {
		if result.Kind == form.ResultSuccess {
			_ = notification.SummaryReady(result.Text)
		} else {
			_ = notification.SummaryFailed()
		}
		return nil
	}
}

func (m *Model) cancelSubmission() tea.Cmd {
	token := m.state.Pending
	m.log.Info("canceling summary request", "requestID", token)
	if m.cancel != nil {
		m.cancel()
	}
	m.state = form.Cancel(m.state, token)
	m.settle()
	m.refreshResult()
	return m.ShowFlashInfo("Request canceled")
}

// settle clears the in-flight bookkeeping once the form is idle again.
func (m *Model) settle() {
	m.cancel = nil
	m.spinner.Stop()
	m.header.SetBusy(false)
}

// copyResult copies the displayed result. OSC 52 covers remote terminals;
// the native write reports back through ClipboardResultMsg.
func (m *Model) copyResult() tea.Cmd {
	text := m.state.Result.Display()
	if text == "" {
		return nil
	}
	write := m.writeClipboard
	return tea.Batch(
		tea.SetClipboard(text),
		func() tea.Msg {
			return ClipboardResultMsg{Err: write(text)}
		},
	)
}
