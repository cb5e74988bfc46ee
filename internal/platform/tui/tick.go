// Package tui provides the Bubble Tea front end for the snake game.
// It handles the terminal UI loop, input mapping, and session scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// schedule that produced it; ticks from a cancelled schedule are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that delivers one tick after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Scheduler implements snake.Scheduler on top of tea.Tick. Bubble Tea owns
// the timer loop, so Schedule only records the request; the model turns it
// into a command with Drain after each call into the session.
//
// A Scheduler is used from the Bubble Tea update loop only.
type Scheduler struct {
	gen      uint64
	interval time.Duration
	fn       func()
	armed    bool
	dirty    bool
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule replaces any previous schedule.
func (s *Scheduler) Schedule(interval time.Duration, fn func()) {
	s.gen++
	s.interval = interval
	s.fn = fn
	s.armed = true
	s.dirty = true
}

// Cancel stops the current schedule. Ticks already in flight become stale.
func (s *Scheduler) Cancel() {
	s.gen++
	s.fn = nil
	s.armed = false
	s.dirty = false
}

// Active reports whether a schedule is armed.
func (s *Scheduler) Active() bool {
	return s.armed
}

// Interval returns the interval of the current schedule.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Drain returns the first tick command of a schedule created since the last
// Drain, or nil.
func (s *Scheduler) Drain() tea.Cmd {
	if !s.dirty || !s.armed {
		return nil
	}
	s.dirty = false
	return tickCmd(s.gen, s.interval)
}

// Fire runs the scheduled function for msg and returns the command for the
// next tick. Stale ticks return nil without running anything.
func (s *Scheduler) Fire(msg TickMsg) tea.Cmd {
	if !s.armed || msg.Gen != s.gen {
		return nil
	}

	gen := s.gen
	s.fn()

	if s.armed && s.gen == gen {
		return tickCmd(gen, s.interval)
	}
	// fn rescheduled or cancelled.
	return s.Drain()
}
