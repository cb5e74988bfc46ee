package snake

import (
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Session is one player's game: the MENU/PLAYING/PAUSED/GAME_OVER state
// machine around a snake, its food and the score. All methods are safe for
// concurrent use; a tick always completes before the next input or tick is
// processed.
type Session struct {
	mu sync.Mutex

	rules     Rules
	nextRules *Rules
	grid      core.Grid
	rng       *rand.Rand

	state     State
	snake     *Snake
	food      Food
	pending   core.Direction
	particles []Particle
	score     int
	highScore int
	newHigh   bool
	interval  time.Duration
	ticks     uint64
	reason    EndReason
	epoch     uint64

	renderer  Renderer
	cues      CueSink
	store     HighScoreStore
	scheduler Scheduler
	logger    *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer sets the snapshot consumer.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithCueSink sets the sound cue consumer.
func WithCueSink(c CueSink) Option {
	return func(s *Session) { s.cues = c }
}

// WithStore sets the high score store. The best score is loaded once when
// the session is created.
func WithStore(store HighScoreStore) Option {
	return func(s *Session) { s.store = store }
}

// WithScheduler sets the tick timer owner.
func WithScheduler(sched Scheduler) Option {
	return func(s *Session) { s.scheduler = sched }
}

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithSeed makes food placement and particles deterministic.
// Seed 0 means use the current time.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		if seed != 0 {
			s.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// NewSession creates a session in MENU with a fresh snake and food.
func NewSession(rules Rules, opts ...Option) *Session {
	s := &Session{
		rules:     rules,
		renderer:  nopRenderer{},
		cues:      nopCues{},
		scheduler: nopScheduler{},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if s.store != nil {
		best, err := s.store.LoadHighScore()
		if err != nil {
			s.logger.Warn("could not load high score", "error", err)
		} else {
			s.highScore = max(best, 0)
		}
	}

	s.state = StateMenu
	s.reset()
	return s
}

// reset restores the snake, food, score and speed of a fresh game.
// Caller must hold mu.
func (s *Session) reset() {
	if s.nextRules != nil {
		s.rules = *s.nextRules
		s.nextRules = nil
	}
	s.grid = s.rules.Grid()
	s.snake = NewSnake(s.rules.Start, s.rules.StartLength, core.DirRight)
	s.pending = core.DirNone
	s.particles = nil
	s.score = 0
	s.newHigh = false
	s.interval = s.rules.InitialInterval
	s.ticks = 0
	s.reason = EndNone
	if err := s.placeFood(); err != nil {
		s.logger.Warn("no room for food on a fresh board", "grid", s.grid)
	}
}

// placeFood moves the food to a free cell. Caller must hold mu.
func (s *Session) placeFood() error {
	return s.food.Relocate(s.grid, s.snake.Occupies, s.rng, s.rules.FoodRetryFactor)
}

// Start begins a game from MENU or GAME_OVER. It reports whether the event
// was legal in the current state.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked()
}

func (s *Session) startLocked() bool {
	if s.state != StateMenu && s.state != StateGameOver {
		return false
	}
	s.reset()
	s.transition(StatePlaying)
	s.scheduleTicks()
	s.emit()
	return true
}

// Pause freezes a running game.
func (s *Session) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pauseLocked()
}

func (s *Session) pauseLocked() bool {
	if s.state != StatePlaying {
		return false
	}
	s.cancelTicks()
	s.transition(StatePaused)
	s.emit()
	return true
}

// Resume continues a paused game at the interval it was paused with.
func (s *Session) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumeLocked()
}

func (s *Session) resumeLocked() bool {
	if s.state != StatePaused {
		return false
	}
	s.transition(StatePlaying)
	s.scheduleTicks()
	s.emit()
	return true
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StatePlaying:
		return s.pauseLocked()
	case StatePaused:
		return s.resumeLocked()
	}
	return false
}

// Restart abandons a running or paused game and starts a new one.
func (s *Session) Restart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying && s.state != StatePaused {
		return false
	}
	s.cancelTicks()
	s.transition(StateMenu)
	return s.startLocked()
}

// RequestDirection records a turn for the next tick. In MENU it starts the
// game first. Requests reversing the committed heading are dropped, as are
// requests while PAUSED or GAME_OVER. Between two ticks the last accepted
// request wins.
func (s *Session) RequestDirection(d core.Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d == core.DirNone {
		return false
	}

	switch s.state {
	case StateMenu:
		s.startLocked()
	case StatePlaying:
	default:
		return false
	}

	if d.IsOpposite(s.snake.Direction()) {
		return false
	}
	s.pending = d
	return true
}

// scheduleTicks arms the timer at the current interval. Caller must hold mu.
func (s *Session) scheduleTicks() {
	s.epoch++
	epoch := s.epoch
	s.scheduler.Schedule(s.interval, func() { s.tickEpoch(epoch) })
}

// cancelTicks disarms the timer. Caller must hold mu.
func (s *Session) cancelTicks() {
	s.epoch++
	s.scheduler.Cancel()
}

// tickEpoch runs a scheduled tick unless the schedule that produced it was
// replaced or cancelled while the firing waited for mu.
func (s *Session) tickEpoch(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return
	}
	s.tickLocked()
}

// Tick advances a running game by one step. It is a no-op outside PLAYING.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickLocked()
}

func (s *Session) tickLocked() {
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	if s.pending != core.DirNone {
		s.snake.RequestDirection(s.pending)
		s.pending = core.DirNone
	}

	food := s.food.Cell()
	if s.snake.Advance(food) {
		s.score += s.rules.FoodPoints
		x, y := core.PixelCenter(food, s.rules.CellSize)
		s.particles = spawnParticles(s.particles, s.rules.ParticleCount, x, y, s.rng)
		s.cues.Cue(CueEat)

		if err := s.placeFood(); errors.Is(err, ErrBoardFull) {
			s.end(EndBoardFull)
			return
		}

		if next := s.rules.NextInterval(s.interval); next != s.interval {
			s.interval = next
			s.scheduleTicks()
		}
	}

	switch {
	case s.snake.HitsWall(s.grid):
		s.end(EndWall)
		return
	case s.snake.HitsSelf():
		s.end(EndSelf)
		return
	}

	s.particles = updateParticles(s.particles)
	s.emit()
}

// end moves to GAME_OVER and persists a new best score. Caller must hold mu.
func (s *Session) end(reason EndReason) {
	s.cancelTicks()
	s.reason = reason
	s.transition(StateGameOver)
	s.cues.Cue(CueGameOver)

	if s.score > s.highScore {
		s.highScore = s.score
		s.newHigh = true
		if s.store != nil {
			if err := s.store.SaveHighScore(s.score); err != nil {
				s.logger.Warn("could not save high score", "score", s.score, "error", err)
			}
		}
	}
	if rec, ok := s.store.(ScoreRecorder); ok && s.score > 0 {
		if err := rec.RecordScore(s.score); err != nil {
			s.logger.Warn("could not record score", "score", s.score, "error", err)
		}
	}

	s.logger.Info("game over", "reason", reason, "score", s.score, "length", s.snake.Len(), "ticks", s.ticks)
	s.emit()
}

func (s *Session) transition(to State) {
	s.logger.Debug("state change", "from", s.state, "to", to)
	s.state = to
}

// emit sends the current snapshot to the renderer. Caller must hold mu.
func (s *Session) emit() {
	s.renderer.Render(s.snapshotLocked())
}

// Resize recomputes the grid for a new canvas size. Food that fell off the
// board is moved back onto it; the snake is not, so a head now outside the
// board collides on the next tick.
func (s *Session) Resize(canvasW, canvasH int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules.CanvasWidth = canvasW
	s.rules.CanvasHeight = canvasH
	if s.nextRules != nil {
		s.nextRules.CanvasWidth = canvasW
		s.nextRules.CanvasHeight = canvasH
	}
	s.grid = s.rules.Grid()

	if !s.grid.Contains(s.food.Cell()) {
		if err := s.placeFood(); err != nil {
			s.logger.Warn("no room for food after resize", "grid", s.grid)
		}
	}
	s.logger.Debug("resized", "cols", s.grid.Cols, "rows", s.grid.Rows)
	s.emit()
}

// UpdateRules stores rules that take effect at the next Start.
func (s *Session) UpdateRules(r Rules) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRules = &r
	if s.state == StateMenu {
		// The menu previews the board of the next game.
		s.reset()
		s.emit()
	}
}

// Rules returns the rules of the current game.
func (s *Session) Rules() Rules {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rules
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

// Snapshot returns a copy of the current session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	var particles []Particle
	if len(s.particles) > 0 {
		particles = make([]Particle, len(s.particles))
		copy(particles, s.particles)
	}

	return Snapshot{
		State:        s.state,
		Snake:        s.snake.Body(),
		Direction:    s.snake.Direction().String(),
		Food:         s.food.Cell(),
		Score:        s.score,
		HighScore:    s.highScore,
		NewHighScore: s.newHigh,
		Interval:     s.interval,
		Tick:         s.ticks,
		Grid:         s.grid,
		CellSize:     s.rules.CellSize,
		Particles:    particles,
		EndReason:    s.reason,
	}
}

// Close stops the tick timer. The session keeps its state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTicks()
}
