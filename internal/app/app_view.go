package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/medsum/medsum/internal/form"
	"github.com/medsum/medsum/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.WindowTitle = ui.AppTitle
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()
	ctx := ui.GetViewContext()

	spinner := ""
	if m.state.Loading {
		spinner = m.spinner.Frame()
	}

	inputPanel := ui.RenderInputPanel(ui.InputPanel{
		Width:     ctx.InputPanelWidth,
		Height:    ctx.InputPanelHeight,
		Textarea:  m.input.View(),
		CharCount: form.CharCount(m.state),
		Focus:     m.focus,
		CanSubmit: form.CanSubmit(m.state),
		Loading:   m.state.Loading,
		Spinner:   spinner,
	})
	resultPanel := ui.RenderResultPanel(ui.ResultPanel{
		Width:       ctx.ResultPanelWidth,
		Height:      ctx.ResultPanelHeight,
		Kind:        m.state.Result.Kind,
		Summary:     m.state.Result.Text,
		Body:        m.result.View(),
		GeneratedAt: m.generatedAt,
		Focused:     m.focus == ui.FocusResult,
		Loading:     m.state.Loading,
		Spinner:     spinner,
	})

	var panels string
	if ctx.Wide {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, inputPanel, strings.Repeat(" ", ui.ColumnGap), resultPanel)
	} else {
		panels = lipgloss.JoinVertical(lipgloss.Left, inputPanel, resultPanel)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		ui.RenderHero(ctx.TerminalWidth),
		panels,
		ui.RenderFeatures(ctx.TerminalWidth),
		m.footer.View(),
	)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(m.focus, m.state.Loading, m.state.Result.Display() != "")
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)

	w, h := ctx.TextareaSize()
	m.input.SetWidth(w)
	m.input.SetHeight(h)

	w, h = ctx.ResultViewportSize()
	m.result.SetWidth(w)
	m.result.SetHeight(h)
	m.refreshResult()
}

// refreshResult rewraps the summary into the viewport.
func (m *Model) refreshResult() {
	if m.state.Result.Kind != form.ResultSuccess {
		m.result.SetContent("")
		return
	}
	width := m.result.Width()
	if width <= 0 {
		width = ui.DefaultWrapWidth
	}
	m.result.SetContent(ui.ResultTextStyle.Width(width).Render(m.state.Result.Text))
	m.result.GotoTop()
}
