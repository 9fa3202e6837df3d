package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/medsum/medsum/internal/ui"
)

// ShowFlash displays a flash message in the footer. It returns the
// auto-dismiss tick only when no tick is already pending; one tick chain
// serves every flash.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return m.startFlashTick()
}

func (m *Model) startFlashTick() tea.Cmd {
	if m.flashTicking {
		return nil
	}
	m.flashTicking = true
	return ui.FlashTick()
}

// handleFlashTick drops an expired flash and keeps ticking while one is visible.
func (m *Model) handleFlashTick() tea.Cmd {
	m.footer.ClearIfExpired()
	if !m.footer.HasFlash() {
		m.flashTicking = false
		return nil
	}
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}
