package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLogFile string
	flagPick    bool
	flagWatch   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake in the current terminal.

Controls:
  Arrows/WASD/hjkl - Steer (an arrow also starts the game)
  Enter            - Start
  Space/P          - Pause
  R                - Restart
  Tab              - Cycle difficulty (applies to the next game)
  ?                - Help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 200ms start, gentle speed-up
  normal - speeds from the config file (150ms down to 80ms)
  hard   - 110ms start, steep speed-up down to 60ms
  fixed  - no speed-up

Examples:
  snake play
  snake play --difficulty hard
  snake play --pick
  snake play --config ./my-snake.yaml --watch
  snake play --log-file /tmp/snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the difficulty from a menu before playing")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		if logger, err = newLogger(f, "snake"); err != nil {
			return err
		}
	}

	if flagPick {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		chosen, ok, err := tui.RunDifficultySelector(preset, width, height)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		preset = chosen
	}

	var hs snake.HighScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		fmt.Fprintln(os.Stderr, "High scores will not be saved.")
	} else {
		defer store.Close()
		hs = store
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var attach func(*tea.Program)
	if path := config.ResolvePath(flagConfig); flagWatch && path != "" {
		attach = func(p *tea.Program) {
			w, err := config.NewWatcher(path, "", logger, func(c config.SnakeConfig) {
				p.Send(tui.ConfigReloadedMsg{Config: c})
			})
			if err != nil {
				logger.Warn("config watch disabled", "error", err)
				return
			}
			go func() {
				if err := w.Run(ctx); err != nil {
					logger.Error("config watcher stopped", "error", err)
				}
			}()
		}
	}

	logger.Info("starting game", "difficulty", preset, "seed", flagSeed)
	return tui.Run(tui.Options{
		Config: cfg,
		Preset: preset,
		Store:  hs,
		Seed:   flagSeed,
		Logger: logger,
	}, attach)
}
