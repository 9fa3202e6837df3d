package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/medsum/medsum/internal/form"
)

// InputPanel is everything needed to draw the left (or upper) panel.
type InputPanel struct {
	Width, Height int

	// Textarea is the rendered textarea view.
	Textarea  string
	CharCount int
	Focus     Focus

	CanSubmit bool
	Loading   bool
	// Spinner is the current spinner frame, shown while loading.
	Spinner string
}

// ResultPanel is everything needed to draw the result panel.
type ResultPanel struct {
	Width, Height int

	Kind form.ResultKind
	// Summary is the raw result text. An empty summary shows the placeholder.
	Summary string
	// Body is the rendered viewport holding the result text.
	Body        string
	GeneratedAt time.Time
	Focused     bool

	Loading bool
	Spinner string
}

// RenderHero draws the centered title and tagline.
func RenderHero(width int) string {
	title := TitleStyle.Render(AppTitle)
	tagline := TaglineStyle.Render(AppTagline)
	block := lipgloss.JoinVertical(lipgloss.Center, title, tagline, "")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// RenderFeatures draws the feature highlight row.
func RenderFeatures(width int) string {
	features := []struct{ icon, label string }{
		{"⚡", "Fast Processing"},
		{"✓", "Accurate Results"},
		{"🔒", "Secure & Private"},
	}
	parts := make([]string, 0, len(features))
	for _, f := range features {
		parts = append(parts, FeatureIconStyle.Render(f.icon)+" "+FeatureStyle.Render(f.label))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "     "))
}

// RenderButton draws the submit control in its current state.
func RenderButton(canSubmit, loading, focused bool, spinner string) string {
	switch {
	case loading:
		return ButtonLoadingStyle.Render(strings.TrimSpace(spinner + " " + ButtonLoadingText))
	case !canSubmit:
		return ButtonDisabledStyle.Render("[ " + ButtonText + " ]")
	case focused:
		return ButtonFocusedStyle.Render("[ " + ButtonText + " ]")
	default:
		return ButtonStyle.Render("[ " + ButtonText + " ]")
	}
}

// FormatCharCount renders the counter under the textarea.
func FormatCharCount(n int) string {
	if n == 1 {
		return "1 character"
	}
	return fmt.Sprintf("%d characters", n)
}

// RenderInputPanel draws the notes textarea, its counter and the button.
func RenderInputPanel(p InputPanel) string {
	ctx := GetViewContext()
	inner := ctx.InnerWidth(p.Width)

	label := PanelTitleStyle.Render(InputLabel)
	count := CharCountStyle.Width(inner).Align(lipgloss.Right).Render(FormatCharCount(p.CharCount))
	button := RenderButton(p.CanSubmit, p.Loading, p.Focus == FocusButton, p.Spinner)

	content := lipgloss.JoinVertical(lipgloss.Left, label, p.Textarea, count, button)

	style := PanelStyle
	if p.Focus == FocusInput || p.Focus == FocusButton {
		style = PanelFocusedStyle
	}
	return style.Width(p.Width).Height(p.Height).Render(content)
}

// RenderResultPanel draws the summary, the failure notice or the placeholder.
func RenderResultPanel(p ResultPanel) string {
	ctx := GetViewContext()
	inner := ctx.InnerWidth(p.Width)
	innerHeight := ctx.InnerHeight(p.Height)

	var content string
	style := PanelStyle
	if p.Focused {
		style = PanelFocusedStyle
	}
	switch {
	case p.Loading:
		content = centered(inner, innerHeight,
			SpinnerStyle.Render(p.Spinner)+" "+PlaceholderTitleStyle.Render(ResultLoadingHint))
	case p.Kind == form.ResultSuccess && p.Summary != "":
		style = PanelSuccessStyle
		heading := ResultHeadingStyle.Render("✓ " + ResultHeading)
		meta := ResultMetaStyle.Render(fmt.Sprintf("Generated %s · %s", p.GeneratedAt.Format(time.Kitchen), ResultCopyHint))
		content = lipgloss.JoinVertical(lipgloss.Left, heading, p.Body, meta)
	case p.Kind == form.ResultFailure:
		style = PanelErrorStyle
		heading := ResultErrorStyle.Render("✕ " + form.ErrorMessage)
		meta := ResultMetaStyle.Render("Check the server and press ctrl+s to retry")
		content = lipgloss.JoinVertical(lipgloss.Left, heading, "", meta)
	default:
		content = centered(inner, innerHeight, lipgloss.JoinVertical(lipgloss.Center,
			PlaceholderTitleStyle.Render(ResultPlaceholderTitle),
			PlaceholderHintStyle.Render(ResultPlaceholderHint),
		))
	}

	return style.Width(p.Width).Height(p.Height).Render(content)
}

func centered(width, height int, s string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
