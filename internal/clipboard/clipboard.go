// Package clipboard reads and writes text on the system clipboard.
//
// Terminals that understand OSC 52 also receive copies through Bubble Tea's
// tea.SetClipboard; this package is the native path used alongside it.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/medsum/medsum/internal/errors"
	"github.com/medsum/medsum/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. It is safe to call multiple times; the
// first result is remembered.
func Init() error {
	initOnce.Do(func() {
		log := logger.WithComponent("clipboard")
		if err := clipboard.Init(); err != nil {
			log.Warn("failed to initialize", "error", err)
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
			return
		}
		log.Debug("initialized")
	})
	return initErr
}

// ReadText reads text from the clipboard. An empty clipboard is not an error.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", errors.ClipboardFailed(err)
	}

	textBytes := clipboard.Read(clipboard.FmtText)
	if textBytes == nil {
		return "", nil
	}
	return string(textBytes), nil
}

// WriteText replaces the clipboard contents with text. Writing an empty
// string does nothing.
func WriteText(text string) error {
	if text == "" {
		return nil
	}
	if err := Init(); err != nil {
		return errors.ClipboardFailed(err)
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "chars", len(text))
	return nil
}
