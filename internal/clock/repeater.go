// Package clock provides the wall-clock tick scheduler used by headless
// front ends such as the HTTP server.
package clock

import (
	"sync"
	"time"
)

// Repeater calls a function repeatedly at a fixed interval. At most one timer
// is armed at a time: Schedule cancels the previous timer before arming a new
// one and Cancel disarms it. Every (re)arm bumps a generation number and a
// firing from an older generation is discarded, so a replaced timer never
// delivers a late tick. The next firing is armed only after fn returns, so
// calls never overlap.
type Repeater struct {
	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

// NewRepeater creates an idle repeater.
func NewRepeater() *Repeater {
	return &Repeater{}
}

// Schedule starts calling fn every interval, replacing any active timer.
func (r *Repeater) Schedule(interval time.Duration, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
	r.gen++
	r.armLocked(r.gen, interval, fn)
}

// Cancel stops the active timer, if any.
func (r *Repeater) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
	r.gen++
}

// Active reports whether a timer is armed.
func (r *Repeater) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer != nil
}

func (r *Repeater) stopLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Repeater) armLocked(gen uint64, interval time.Duration, fn func()) {
	r.timer = time.AfterFunc(interval, func() {
		r.fire(gen, interval, fn)
	})
}

func (r *Repeater) fire(gen uint64, interval time.Duration, fn func()) {
	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	// fn may call Schedule or Cancel, which bumps the generation.
	fn()

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return
	}
	r.armLocked(gen, interval, fn)
}
