// Package server exposes a snake session over HTTP with Gin and streams
// snapshots to browsers over WebSocket.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const defaultScoresLimit = 10

// ScoreLister reads the finished-game history.
type ScoreLister interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
}

// Server wires HTTP routes to one session.
type Server struct {
	session        *snake.Session
	hub            *Hub
	png            *render.PNG
	scores         ScoreLister
	swipeThreshold float64
	logger         *log.Logger
	engine         *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithScores enables GET /api/scores.
func WithScores(l ScoreLister) Option {
	return func(s *Server) { s.scores = l }
}

// WithSwipeThreshold sets the minimum swipe distance in pixels.
func WithSwipeThreshold(px float64) Option {
	return func(s *Server) {
		if px > 0 {
			s.swipeThreshold = px
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New builds the router. The hub should already be registered on session
// as its renderer and cue sink.
func New(session *snake.Session, hub *Hub, opts ...Option) *Server {
	s := &Server{
		session:        session,
		hub:            hub,
		png:            render.NewPNG(),
		swipeThreshold: core.DefaultSwipeThreshold,
		logger:         log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	api := r.Group("/api")
	api.GET("/snapshot", s.getSnapshot)
	api.POST("/start", s.transition(session.Start))
	api.POST("/pause", s.transition(session.TogglePause))
	api.POST("/restart", s.transition(session.Restart))
	api.POST("/direction", s.postDirection)
	api.POST("/swipe", s.postSwipe)
	api.POST("/resize", s.postResize)
	api.GET("/render.png", s.getPNG)
	api.GET("/scores", s.getScores)
	r.GET("/ws", s.getWS)

	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Stopping HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

type transitionResponse struct {
	Changed  bool           `json:"changed"`
	Snapshot snake.Snapshot `json:"snapshot"`
}

func (s *Server) getSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Snapshot())
}

// transition adapts a session operation to a handler. Operations that are
// illegal in the current state still answer 200 with changed=false.
func (s *Server) transition(op func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		changed := op()
		c.JSON(http.StatusOK, transitionResponse{Changed: changed, Snapshot: s.session.Snapshot()})
	}
}

func (s *Server) postDirection(c *gin.Context) {
	dir, ok := core.ParseDirection(c.Query("direction"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown direction " + strconv.Quote(c.Query("direction"))})
		return
	}
	changed := s.session.RequestDirection(dir)
	c.JSON(http.StatusOK, transitionResponse{Changed: changed, Snapshot: s.session.Snapshot()})
}

type swipeRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

func (s *Server) postSwipe(c *gin.Context) {
	var req swipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dir, ok := core.ClassifySwipe(req.DX, req.DY, s.swipeThreshold)
	changed := false
	if ok {
		changed = s.session.RequestDirection(dir)
	}
	c.JSON(http.StatusOK, gin.H{
		"direction": dir.String(),
		"changed":   changed,
		"snapshot":  s.session.Snapshot(),
	})
}

type resizeRequest struct {
	Width  int `json:"width" binding:"required,gt=0"`
	Height int `json:"height" binding:"required,gt=0"`
}

func (s *Server) postResize(c *gin.Context) {
	var req resizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.session.Resize(req.Width, req.Height)
	c.JSON(http.StatusOK, s.session.Snapshot())
}

func (s *Server) getPNG(c *gin.Context) {
	scale := 1
	if raw := c.Query("scale"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scale must be an integer"})
			return
		}
		scale = n
	}

	var buf bytes.Buffer
	if err := s.png.Encode(&buf, s.session.Snapshot(), scale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) getScores(c *gin.Context) {
	if s.scores == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "score history is disabled"})
		return
	}

	limit := defaultScoresLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	entries, err := s.scores.TopScores(limit)
	if err != nil {
		s.logger.Error("cannot list scores", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot list scores"})
		return
	}

	type scoreJSON struct {
		Score     int       `json:"score"`
		CreatedAt time.Time `json:"created_at"`
	}
	out := make([]scoreJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, scoreJSON{Score: e.Score, CreatedAt: e.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"scores": out, "high_score": s.session.HighScore()})
}

func (s *Server) getWS(c *gin.Context) {
	s.hub.ServeWS(c.Writer, c.Request, s.session.Snapshot())
}
