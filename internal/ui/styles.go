package ui

import "charm.land/lipgloss/v2"

// Color palette, replaced by regenerateStyles when the theme changes.
var (
	ColorPrimary     = lipgloss.Color("#4F46E5") // Indigo
	ColorSecondary   = lipgloss.Color("#3B82F6") // Blue
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#4F46E5")
	ColorBg          = lipgloss.Color("#111827")
	ColorText        = lipgloss.Color("#F9FAFB")
	ColorTextMuted   = lipgloss.Color("#9CA3AF")
	ColorTextInverse = lipgloss.Color("#111827")
	ColorSuccess     = lipgloss.Color("#10B981") // Green for a finished summary
	ColorWarning     = lipgloss.Color("#F59E0B")
	ColorInfo        = lipgloss.Color("#60A5FA")
	ColorError       = lipgloss.Color("#EF4444")
)

// Hero styles
var (
	TitleStyle   lipgloss.Style
	TaglineStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style

	FlashErrorStyle   lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelSuccessStyle lipgloss.Style
	PanelErrorStyle   lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Form styles
var (
	CharCountStyle lipgloss.Style

	ButtonStyle         lipgloss.Style
	ButtonFocusedStyle  lipgloss.Style
	ButtonDisabledStyle lipgloss.Style
	ButtonLoadingStyle  lipgloss.Style

	SpinnerStyle lipgloss.Style
)

// Result styles
var (
	ResultHeadingStyle lipgloss.Style
	ResultTextStyle    lipgloss.Style
	ResultErrorStyle   lipgloss.Style
	ResultMetaStyle    lipgloss.Style

	PlaceholderTitleStyle lipgloss.Style
	PlaceholderHintStyle  lipgloss.Style

	FeatureIconStyle lipgloss.Style
	FeatureStyle     lipgloss.Style
)

func init() {
	buildStyles()
}

// buildStyles derives every style from the current color variables.
func buildStyles() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	TaglineStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FlashErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	FlashWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	FlashInfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	PanelFocusedStyle = PanelStyle.
		BorderForeground(ColorBorderFocus)

	PanelSuccessStyle = PanelStyle.
		BorderForeground(ColorSuccess)

	PanelErrorStyle = PanelStyle.
		BorderForeground(ColorError)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	CharCountStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 2)

	ButtonFocusedStyle = ButtonStyle.
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Underline(true)

	ButtonDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Background(ColorBorder).
		Padding(0, 2)

	ButtonLoadingStyle = ButtonStyle.
		Italic(true)

	SpinnerStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	ResultHeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSuccess)

	ResultTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ResultErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorError)

	ResultMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	PlaceholderTitleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true)

	PlaceholderHintStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	FeatureIconStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	FeatureStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
}
