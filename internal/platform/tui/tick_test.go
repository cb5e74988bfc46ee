package tui

import (
	"testing"
	"time"
)

func TestSchedulerDrainOnce(t *testing.T) {
	s := NewScheduler()
	if s.Drain() != nil {
		t.Error("idle scheduler should not produce a tick")
	}

	s.Schedule(150*time.Millisecond, func() {})
	if s.Drain() == nil {
		t.Fatal("Drain after Schedule should return a tick command")
	}
	if s.Drain() != nil {
		t.Error("second Drain should return nil")
	}
	if !s.Active() || s.Interval() != 150*time.Millisecond {
		t.Errorf("Active() = %v, Interval() = %v", s.Active(), s.Interval())
	}
}

func TestSchedulerDropsStaleTicks(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Schedule(time.Millisecond, func() { calls++ })
	stale := TickMsg{Gen: s.gen}

	s.Schedule(time.Millisecond, func() { calls++ })
	if cmd := s.Fire(stale); cmd != nil {
		t.Error("stale tick should not re-arm")
	}
	if calls != 0 {
		t.Errorf("stale tick ran the callback %d times", calls)
	}

	if cmd := s.Fire(TickMsg{Gen: s.gen}); cmd == nil {
		t.Error("current tick should re-arm")
	}
	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	s.Schedule(time.Millisecond, func() { t.Error("cancelled callback ran") })
	gen := s.gen
	s.Cancel()

	if s.Active() {
		t.Error("Active() should be false after Cancel")
	}
	if s.Drain() != nil {
		t.Error("Drain after Cancel should return nil")
	}
	if s.Fire(TickMsg{Gen: gen}) != nil {
		t.Error("tick of a cancelled schedule should be dropped")
	}
}

func TestSchedulerCallbackReschedules(t *testing.T) {
	s := NewScheduler()
	s.Schedule(150*time.Millisecond, func() {
		s.Schedule(148*time.Millisecond, func() {})
	})
	gen := s.gen

	if cmd := s.Fire(TickMsg{Gen: gen}); cmd == nil {
		t.Fatal("rescheduling callback should yield the new schedule's tick")
	}
	if s.gen == gen {
		t.Error("reschedule should bump the generation")
	}
	if s.Interval() != 148*time.Millisecond {
		t.Errorf("Interval() = %v, expected 148ms", s.Interval())
	}
	if s.Drain() != nil {
		t.Error("the new schedule was already drained by Fire")
	}
}

func TestSchedulerCallbackCancels(t *testing.T) {
	s := NewScheduler()
	s.Schedule(time.Millisecond, func() { s.Cancel() })
	if cmd := s.Fire(TickMsg{Gen: s.gen}); cmd != nil {
		t.Error("callback that cancels should stop the loop")
	}
}
