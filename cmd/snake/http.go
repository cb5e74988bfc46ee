package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/server"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagHTTPAddr string

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Serve one game over HTTP and WebSocket",
	Long: `Run a single snake session driven over HTTP.

Endpoints:
  GET  /api/snapshot               current state as JSON
  POST /api/start                  start from the menu or after game over
  POST /api/pause                  toggle pause
  POST /api/restart                restart a running game
  POST /api/direction?direction=up steer (up, down, left, right, ArrowUp, ...)
  POST /api/swipe {"dx":..,"dy":..} steer with a touch swipe
  POST /api/resize {"width":..,"height":..}
  GET  /api/render.png?scale=2     board as PNG
  GET  /api/scores?limit=10        score history
  GET  /ws                         snapshot and cue stream

The config file, when one is found, is watched and applied to the next game.

Examples:
  snake http
  snake http --addr 127.0.0.1:9000 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runHTTP,
}

func init() {
	httpCmd.Flags().StringVar(&flagHTTPAddr, "addr", ":8080", "HTTP listen address")
	httpCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runHTTP(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "snake-http")
	if err != nil {
		return err
	}
	if logger.GetLevel() > log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	playCfg := cfg
	config.ApplySnakePreset(&playCfg, preset)

	hub := server.NewHub(logger)
	opts := []snake.Option{
		snake.WithRenderer(hub),
		snake.WithCueSink(hub),
		snake.WithScheduler(clock.NewRepeater()),
		snake.WithLogger(logger),
		snake.WithSeed(flagSeed),
	}
	srvOpts := []server.Option{
		server.WithLogger(logger),
		server.WithSwipeThreshold(playCfg.Input.SwipeThreshold),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, high scores will not be saved", "error", err)
	} else {
		defer store.Close()
		opts = append(opts, snake.WithStore(store))
		srvOpts = append(srvOpts, server.WithScores(store))
	}

	session := snake.NewSession(snake.RulesFrom(playCfg), opts...)
	defer session.Close()
	srv := server.New(session, hub, srvOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return hub.Run(ctx) })
	g.Go(func() error { return srv.ListenAndServe(ctx, flagHTTPAddr) })

	if path := config.ResolvePath(flagConfig); path != "" {
		w, err := config.NewWatcher(path, preset, logger, func(c config.SnakeConfig) {
			session.UpdateRules(snake.RulesFrom(c))
		})
		if err != nil {
			logger.Warn("config watch disabled", "error", err)
		} else {
			g.Go(func() error { return w.Run(ctx) })
		}
	}

	return g.Wait()
}
