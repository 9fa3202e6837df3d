package app

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/medsum/medsum/internal/config"
	"github.com/medsum/medsum/internal/keys"
	"github.com/medsum/medsum/internal/summarizer"
	"github.com/medsum/medsum/internal/ui"
)

// testConfig creates a config backed by a temp file with the welcome hint
// already seen.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"), map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg.MarkWelcomeShown()
	return cfg
}

// fakeClient records Summarize calls and answers with a canned reply.
type fakeClient struct {
	mu      sync.Mutex
	calls   []string
	ids     []string
	summary string
	err     error
	// block makes Summarize wait for ctx to end.
	block bool
}

func (f *fakeClient) Summarize(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.ids = append(f.ids, summarizer.RequestIDFromContext(ctx))
	block := f.block
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.summary, f.err
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// fakeClipboard stands in for the system clipboard.
type fakeClipboard struct {
	written  []string
	writeErr error
	content  string
	readErr  error
}

func (c *fakeClipboard) write(text string) error {
	c.written = append(c.written, text)
	return c.writeErr
}

func (c *fakeClipboard) read() (string, error) {
	return c.content, c.readErr
}

// testModel creates a sized Model with deterministic tokens, a fixed clock
// and a fake clipboard.
func testModel(t *testing.T, client summarizer.Client) (*Model, *fakeClipboard) {
	t.Helper()
	m := New(testConfig(t), Options{Client: client, Source: "test", Version: "0.0.0-test"})

	n := 0
	m.newToken = func() string {
		n++
		return "tok-" + string(rune('0'+n))
	}
	m.now = func() time.Time { return time.Date(2026, 3, 1, 15, 4, 0, 0, time.UTC) }

	clip := &fakeClipboard{}
	m.writeClipboard = clip.write
	m.readClipboard = clip.read

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, clip
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlV:
		return tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	default:
		// Regular character - set both Code and Text
		r := []rune(key)
		if len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the command it produced.
func sendKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) {
	for _, ch := range text {
		sendKey(m, string(ch))
	}
}

// paste delivers text as a bracketed paste.
func paste(m *Model, text string) {
	m.Update(tea.PasteMsg{Content: text})
}

// runCmd executes cmd and every command batched inside it, returning the
// messages they produce. Timer messages are dropped.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	var (
		mu   sync.Mutex
		msgs []tea.Msg
		wg   sync.WaitGroup
	)
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		defer wg.Done()
		msg := c()
		switch msg := msg.(type) {
		case nil, ui.SpinnerTickMsg, ui.FlashTickMsg:
		case tea.BatchMsg:
			for _, sub := range msg {
				if sub != nil {
					wg.Add(1)
					go run(sub)
				}
			}
		default:
			mu.Lock()
			msgs = append(msgs, msg)
			mu.Unlock()
		}
	}

	wg.Add(1)
	go run(cmd)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("command did not finish")
	}
	return msgs
}

// findMsg returns the first message of type T.
func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// deliver runs cmd and feeds every resulting message of type T back into m.
func deliver[T tea.Msg](t *testing.T, m *Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	msg, ok := findMsg[T](runCmd(t, cmd))
	if !ok {
		var zero T
		t.Fatalf("command produced no %T", zero)
	}
	_, next := m.Update(msg)
	return next
}
