package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestRepeaterFiresRepeatedly(t *testing.T) {
	r := NewRepeater()
	var n atomic.Int32

	r.Schedule(2*time.Millisecond, func() { n.Add(1) })
	defer r.Cancel()

	waitFor(t, func() bool { return n.Load() >= 3 })
	if !r.Active() {
		t.Error("repeater should stay armed between firings")
	}
}

func TestRepeaterCancelStopsFiring(t *testing.T) {
	r := NewRepeater()
	var n atomic.Int32

	r.Schedule(2*time.Millisecond, func() { n.Add(1) })
	waitFor(t, func() bool { return n.Load() >= 1 })

	r.Cancel()
	if r.Active() {
		t.Error("Active() should be false after Cancel")
	}
	after := n.Load()
	time.Sleep(30 * time.Millisecond)
	// One in-flight firing may still land after Cancel returned.
	if got := n.Load(); got > after+1 {
		t.Errorf("fired %d times after Cancel", got-after)
	}
}

func TestRepeaterScheduleReplacesTimer(t *testing.T) {
	r := NewRepeater()
	var oldCalls, newCalls atomic.Int32

	r.Schedule(time.Hour, func() { oldCalls.Add(1) })
	r.Schedule(2*time.Millisecond, func() { newCalls.Add(1) })
	defer r.Cancel()

	waitFor(t, func() bool { return newCalls.Load() >= 2 })
	if oldCalls.Load() != 0 {
		t.Error("replaced timer must never fire")
	}
}

func TestRepeaterRescheduleFromCallback(t *testing.T) {
	r := NewRepeater()
	var slow, fast atomic.Int32

	fastFn := func() { fast.Add(1) }
	r.Schedule(2*time.Millisecond, func() {
		if slow.Add(1) == 1 {
			r.Schedule(2*time.Millisecond, fastFn)
		}
	})
	defer r.Cancel()

	waitFor(t, func() bool { return fast.Load() >= 2 })
	if got := slow.Load(); got != 1 {
		t.Errorf("original callback ran %d times, expected exactly 1 before being replaced", got)
	}
}

func TestRepeaterCancelFromCallback(t *testing.T) {
	r := NewRepeater()
	var n atomic.Int32

	r.Schedule(2*time.Millisecond, func() {
		n.Add(1)
		r.Cancel()
	})

	waitFor(t, func() bool { return n.Load() >= 1 })
	time.Sleep(20 * time.Millisecond)
	if got := n.Load(); got != 1 {
		t.Errorf("callback ran %d times, expected 1 after cancelling itself", got)
	}
	if r.Active() {
		t.Error("repeater should be idle")
	}
}
