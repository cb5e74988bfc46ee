package snake

import "time"

// Renderer receives a snapshot on every PLAYING tick and on every state
// transition. Implementations are called with the session lock held and must
// not call back into the Session.
type Renderer interface {
	Render(Snapshot)
}

// CueSink plays or forwards sound cues.
type CueSink interface {
	Cue(Cue)
}

// HighScoreStore persists the best score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// ScoreRecorder is implemented by stores that keep a history of finished
// games in addition to the best score.
type ScoreRecorder interface {
	RecordScore(score int) error
}

// Scheduler owns the repeating tick timer. Schedule replaces any active timer
// so that at most one is armed; Cancel disarms it. A timer must not deliver
// fn again after it was replaced or cancelled.
type Scheduler interface {
	Schedule(interval time.Duration, fn func())
	Cancel()
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) { f(s) }

// CueFunc adapts a function to the CueSink interface.
type CueFunc func(Cue)

// Cue calls f(c).
func (f CueFunc) Cue(c Cue) { f(c) }

// Renderers fans a snapshot out to several renderers.
type Renderers []Renderer

// Render forwards s to every renderer in order.
func (rs Renderers) Render(s Snapshot) {
	for _, r := range rs {
		r.Render(s)
	}
}

// CueSinks fans a cue out to several sinks.
type CueSinks []CueSink

// Cue forwards c to every sink in order.
func (cs CueSinks) Cue(c Cue) {
	for _, sink := range cs {
		sink.Cue(c)
	}
}

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot) {}

type nopCues struct{}

func (nopCues) Cue(Cue) {}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration, func()) {}
func (nopScheduler) Cancel()                        {}
