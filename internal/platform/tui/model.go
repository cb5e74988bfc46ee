package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const (
	toastDuration = 2 * time.Second
	flashTicks    = 3
)

// ConfigReloadedMsg delivers a configuration reloaded from disk. The
// current difficulty preset is applied on top of it.
type ConfigReloadedMsg struct {
	Config config.SnakeConfig
}

type toastExpiredMsg struct{ id int }

// frameBuffer keeps the latest snapshot pushed by the session.
type frameBuffer struct {
	last   snake.Snapshot
	frames int
}

func (f *frameBuffer) Render(s snake.Snapshot) {
	f.last = s
	f.frames++
}

// cueQueue collects cues until the model handles them.
type cueQueue struct {
	cues []snake.Cue
}

func (q *cueQueue) Cue(c snake.Cue) {
	q.cues = append(q.cues, c)
}

func (q *cueQueue) drain() []snake.Cue {
	cues := q.cues
	q.cues = nil
	return cues
}

// Options configures a Model.
type Options struct {
	Config config.SnakeConfig      // before the difficulty preset
	Preset config.DifficultyPreset // empty means normal
	Store  snake.HighScoreStore    // nil disables persistence
	Seed   int64                   // 0 means time-based
	Logger *log.Logger
}

// Model is the Bubble Tea model for one snake session.
type Model struct {
	session *snake.Session
	sched   *Scheduler
	frames  *frameBuffer
	cues    *cueQueue

	base   config.SnakeConfig
	preset config.DifficultyPreset

	keys   KeyMap
	help   help.Model
	theme  Theme
	screen *core.Screen
	logger *log.Logger

	width  int
	height int

	toast      string
	toastAlert bool
	toastID    int
	flash      int
	quitting   bool
}

// NewModel creates a model with a fresh session in MENU.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	preset := opts.Preset
	if preset == "" {
		preset = config.DifficultyNormal
	}

	cfg := opts.Config
	config.ApplySnakePreset(&cfg, preset)

	sched := NewScheduler()
	frames := &frameBuffer{}
	cues := &cueQueue{}

	sessionOpts := []snake.Option{
		snake.WithRenderer(frames),
		snake.WithCueSink(cues),
		snake.WithScheduler(sched),
		snake.WithLogger(logger),
		snake.WithSeed(opts.Seed),
	}
	if opts.Store != nil {
		sessionOpts = append(sessionOpts, snake.WithStore(opts.Store))
	}
	session := snake.NewSession(snake.RulesFrom(cfg), sessionOpts...)
	frames.last = session.Snapshot()

	w, h := BoardSize(frames.last.Grid)
	return Model{
		session: session,
		sched:   sched,
		frames:  frames,
		cues:    cues,
		base:    opts.Config,
		preset:  preset,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   DefaultTheme(),
		screen:  core.NewScreen(w, h),
		logger:  logger,
		width:   w,
		height:  h + 2,
	}
}

// Session returns the game session driven by the model.
func (m Model) Session() *snake.Session {
	return m.session
}

// Init initializes the model. The session waits in MENU, so no tick runs yet.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		cmd := m.sched.Fire(msg)
		if m.flash > 0 {
			m.flash--
		}
		return m, tea.Batch(cmd, m.handleCues())

	case ConfigReloadedMsg:
		m.base = msg.Config
		m.applyRules()
		return m, m.showToast("Config reloaded", false)

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.session.Close()
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dir, _ := action.Direction()
		m.session.RequestDirection(dir)

	case core.ActionStart:
		m.session.Start()

	case core.ActionPause:
		if m.session.TogglePause() {
			if m.session.State() == snake.StatePaused {
				cmds = append(cmds, m.showToast("Game Paused", false))
			} else {
				m.toast = ""
			}
		}

	case core.ActionRestart:
		m.session.Restart()

	case core.ActionDifficulty:
		m.preset = m.preset.Next()
		m.applyRules()
		cmds = append(cmds, m.showToast("Difficulty: "+string(m.preset), false))
		m.logger.Debug("difficulty changed", "preset", m.preset)
	}

	cmds = append(cmds, m.sched.Drain(), m.handleCues())
	return m, tea.Batch(cmds...)
}

// applyRules rebuilds the rules from the base config and preset. They take
// effect at the next start.
func (m *Model) applyRules() {
	cfg := m.base
	config.ApplySnakePreset(&cfg, m.preset)
	m.session.UpdateRules(snake.RulesFrom(cfg))
}

// handleCues turns queued sound cues into HUD feedback.
func (m *Model) handleCues() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range m.cues.drain() {
		switch c {
		case snake.CueEat:
			m.flash = flashTicks
		case snake.CueGameOver:
			m.flash = 0
			if m.frames.last.NewHighScore {
				cmds = append(cmds, m.showToast("New High Score!", true))
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) showToast(text string, alert bool) tea.Cmd {
	m.toastID++
	id := m.toastID
	m.toast = text
	m.toastAlert = alert
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.frames.last
	w, h := BoardSize(snap.Grid)
	if m.width < w || m.height < h {
		w, h = max(m.width, 1), max(m.height-2, 1)
	} else {
		w = m.width
	}
	if m.screen.Width() != w || m.screen.Height() != h {
		m.screen.Resize(w, h)
	}

	DrawBoard(m.screen, snap, boardView{
		difficulty: string(m.preset),
		flash:      m.flash > 0,
	})

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	toastStyle := m.theme.Toast
	if m.toastAlert {
		toastStyle = m.theme.ToastAlert
	}
	b.WriteString(centerText(toastStyle.Render(m.toast), m.width))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the Bubble Tea program with the given options. reload, when not
// nil, receives the program so callers can deliver ConfigReloadedMsg.
func Run(opts Options, reload func(*tea.Program)) error {
	model := NewModel(opts)
	defer model.session.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	if reload != nil {
		reload(p)
	}

	_, err := p.Run()
	return err
}
