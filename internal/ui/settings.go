package ui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/help"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/medsum/medsum/internal/config"
)

// Settings holds the editable client settings bound to the settings form.
type Settings struct {
	Endpoint      string
	Timeout       string // seconds, kept as text for the input field
	Theme         string
	Notifications bool
}

// SettingsFromConfig snapshots the effective values of cfg.
func SettingsFromConfig(cfg *config.Config) *Settings {
	theme := cfg.GetTheme()
	if !IsValidTheme(theme) {
		theme = string(DefaultTheme)
	}
	return &Settings{
		Endpoint:      cfg.GetEndpoint(),
		Timeout:       strconv.Itoa(int(cfg.GetTimeout().Seconds())),
		Theme:         theme,
		Notifications: cfg.GetNotificationsEnabled(),
	}
}

// Apply copies the settings into cfg. The caller still has to Save.
func (s *Settings) Apply(cfg *config.Config) error {
	seconds, err := validateTimeout(s.Timeout)
	if err != nil {
		return err
	}
	cfg.SetEndpoint(strings.TrimSpace(s.Endpoint))
	cfg.SetTimeoutSeconds(seconds)
	cfg.SetTheme(s.Theme)
	cfg.SetNotificationsEnabled(s.Notifications)
	return nil
}

func validateTimeout(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("timeout must be a positive number of seconds")
	}
	return n, nil
}

// NewSettingsForm builds the huh form that edits s in place.
func NewSettingsForm(s *Settings) *huh.Form {
	themeOptions := make([]huh.Option[string], 0, len(BuiltinThemes))
	for _, name := range ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(GetTheme(name).Name, string(name)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Server endpoint").
				Description("Base URL of the summarization server").
				Value(&s.Endpoint).
				Validate(func(v string) error {
					return config.ValidateEndpoint(strings.TrimSpace(v))
				}),
			huh.NewInput().
				Title("Timeout (seconds)").
				Description("How long to wait for a summary").
				Value(&s.Timeout).
				Validate(func(v string) error {
					_, err := validateTimeout(v)
					return err
				}),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&s.Theme),
			huh.NewConfirm().
				Title("Desktop notifications").
				Description("Notify when a summary finishes while the terminal is in the background").
				Value(&s.Notifications),
		),
	).WithTheme(FormTheme())
}

// FormTheme returns a huh theme matching the current color palette.
func FormTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorError).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorError)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginLeft(1).SetString("→")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginRight(1).SetString("←")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)

		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextInverse).
			Background(ColorPrimary)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextMuted)

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ColorText)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().
			PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(ColorTextMuted)

		t.Help = help.New().Styles

		return t
	})
}
