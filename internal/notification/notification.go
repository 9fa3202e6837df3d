// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/medsum/medsum/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "medsum"

// previewRunes limits how much of a summary goes into the notification body.
const previewRunes = 80

// Notifier matches beeep.Notify.
type Notifier func(title, message string, icon any) error

var notify Notifier = beeep.Notify

// SetNotifier replaces the function that delivers notifications.
func SetNotifier(n Notifier) {
	notify = n
}

// ResetNotifier restores beeep as the delivery function.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title)
	// Empty icon: beeep picks the platform default
	err := notify(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// SummaryReady announces a finished summary, previewing its first line.
func SummaryReady(summary string) error {
	return Send(AppName, "Summary ready: "+preview(summary))
}

// SummaryFailed announces a failed summarization.
func SummaryFailed() error {
	return Send(AppName, "Summary failed")
}

func preview(s string) string {
	for i, r := range s {
		if r == '\n' {
			s = s[:i]
			break
		}
	}
	runes := []rune(s)
	if len(runes) > previewRunes {
		return string(runes[:previewRunes]) + "…"
	}
	return s
}
