package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Focus identifies which part of the form receives keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusButton
	FocusResult
)

// String returns a human-readable name for the focus target
func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusButton:
		return "button"
	case FocusResult:
		return "result"
	default:
		return "unknown"
	}
}

// FlashType determines the icon and color of a flash message.
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// DefaultFlashDuration is how long a flash stays visible.
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often expiry is checked.
const flashTickInterval = 500 * time.Millisecond

// FlashMessage is a transient notice shown in place of the key bindings.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) >= m.Duration
}

// FlashTickMsg drives flash expiry.
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check.
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width     int
	focus     Focus
	loading   bool
	hasResult bool

	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the state the bindings depend on.
func (f *Footer) SetContext(focus Focus, loading, hasResult bool) {
	f.focus = focus
	f.loading = loading
	f.hasResult = hasResult
}

// SetFlash shows text for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows text for d.
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes an expired flash and reports whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// Bindings returns the shortcuts for the current context.
func (f *Footer) Bindings() []KeyBinding {
	if f.loading {
		return []KeyBinding{
			{Key: "esc", Desc: "cancel"},
			{Key: "tab", Desc: "focus"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}

	var bindings []KeyBinding
	switch f.focus {
	case FocusButton:
		bindings = append(bindings, KeyBinding{Key: "enter", Desc: "summarize"})
	case FocusResult:
		bindings = append(bindings, KeyBinding{Key: "↑/↓", Desc: "scroll"})
	default:
		bindings = append(bindings,
			KeyBinding{Key: "ctrl+s", Desc: "summarize"},
			KeyBinding{Key: "ctrl+v", Desc: "paste"},
			KeyBinding{Key: "ctrl+l", Desc: "clear"},
		)
	}
	if f.hasResult {
		bindings = append(bindings, KeyBinding{Key: "ctrl+y", Desc: "copy"})
	}
	return append(bindings,
		KeyBinding{Key: "tab", Desc: "focus"},
		KeyBinding{Key: "ctrl+c", Desc: "quit"},
	)
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.truncate(f.renderFlash()))
	}

	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(f.truncate(content))
}

func (f *Footer) renderFlash() string {
	var icon string
	style := FlashInfoStyle
	switch f.flashMessage.Type {
	case FlashError:
		icon, style = "✕", FlashErrorStyle
	case FlashWarning:
		icon, style = "⚠", FlashWarningStyle
	case FlashSuccess:
		icon, style = "✓", FlashSuccessStyle
	default:
		icon = "ℹ"
	}
	return style.Render(icon + " " + f.flashMessage.Text)
}

// truncate keeps styled content on one line inside the footer padding.
func (f *Footer) truncate(content string) string {
	if f.width <= 0 {
		return content
	}
	return ansi.Truncate(content, max(f.width-2, 1), "…")
}
