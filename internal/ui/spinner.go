package ui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
)

// spinnerInterval is the delay between frames.
const spinnerInterval = 120 * time.Millisecond

// spinnerFrames are the characters cycled while a summary is being generated
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// SpinnerTickMsg advances the spinner with the matching ID.
type SpinnerTickMsg struct {
	ID   int
	Time time.Time
}

// Spinner is the busy indicator shown while a request is in flight.
type Spinner struct {
	id      int
	idx     int
	running bool
	started time.Time
}

// Start resets the animation and returns the first tick. Ticks from an
// earlier run carry a stale ID and are dropped by Update.
func (s *Spinner) Start(now time.Time) tea.Cmd {
	s.id++
	s.idx = 0
	s.running = true
	s.started = now
	return s.tick()
}

// Stop ends the animation; pending ticks are ignored.
func (s *Spinner) Stop() {
	s.running = false
}

// Running reports whether the spinner is animating.
func (s *Spinner) Running() bool {
	return s.running
}

// Update advances one frame and schedules the next tick.
func (s *Spinner) Update(msg SpinnerTickMsg) tea.Cmd {
	if !s.running || msg.ID != s.id {
		return nil
	}
	s.idx = (s.idx + 1) % len(spinnerFrames)
	return s.tick()
}

// Frame returns the current frame.
func (s *Spinner) Frame() string {
	return SpinnerStyle.Render(spinnerFrames[s.idx])
}

// Elapsed formats the time since Start, e.g. "4s".
func (s *Spinner) Elapsed(now time.Time) string {
	return fmt.Sprintf("%ds", int(now.Sub(s.started).Seconds()))
}

func (s *Spinner) tick() tea.Cmd {
	id := s.id
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return SpinnerTickMsg{ID: id, Time: t}
	})
}
