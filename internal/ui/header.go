package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const headerTitle = " ✚ medsum"

// Header represents the top header bar
type Header struct {
	width  int
	source string
	busy   bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSource sets where summaries come from, shown on the right
// (an endpoint URL or "local").
func (h *Header) SetSource(source string) {
	h.source = source
}

// SetBusy marks a request as in flight.
func (h *Header) SetBusy(busy bool) {
	h.busy = busy
}

// View renders the header
func (h *Header) View() string {
	var rightText string
	if h.source != "" {
		rightText = h.source + " "
	}
	if h.busy {
		rightText = "● " + rightText
	}

	titleWidth := runewidth.StringWidth(headerTitle)
	rightWidth := runewidth.StringWidth(rightText)
	if titleWidth+rightWidth > h.width {
		rightText = runewidth.Truncate(rightText, max(h.width-titleWidth, 0), "…")
		rightWidth = runewidth.StringWidth(rightText)
	}
	paddingLen := max(h.width-titleWidth-rightWidth, 0)

	fullContent := headerTitle + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, titleWidth, runewidth.StringWidth(fullContent)-rightWidth)
}

// parseHexColor parses a hex color string (e.g., "#4F46E5") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient paints content over a Primary-to-Bg gradient. Cells before
// boldUntil are bold and cells from mutedFrom on use the muted text color.
func (h *Header) renderGradient(content string, boldUntil, mutedFrom int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	total := runewidth.StringWidth(content)
	var result strings.Builder
	col := 0
	for _, r := range content {
		t := float64(col) / float64(total)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(col < boldUntil)
		if col >= mutedFrom {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
		col += runewidth.RuneWidth(r)
	}

	return result.String()
}
