// Package stream serves the starfield over websockets. Each connection gets
// its own simulation; the client sends held actions and receives one JSON
// frame per tick, so any renderer that speaks JSON can draw the game.
package stream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-starfield/internal/config"
)

// Config holds configuration for the stream server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8090").
	Address string

	// Path is the websocket endpoint.
	Path string

	TickRate int

	// Width and Height are the initial viewport in pixels.
	Width, Height float64

	// MaxViewport bounds either side of a client resize.
	MaxViewport float64

	// Seed for the first game of each session. Zero picks a time-based seed.
	Seed int64

	WriteTimeout time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:      ":8090",
		Path:         "/ws",
		TickRate:     60,
		Width:        800,
		Height:       600,
		MaxViewport:  4096,
		WriteTimeout: 5 * time.Second,
	}
}

// Server accepts websocket sessions.
type Server struct {
	config   Config
	game     config.StarfieldConfig
	logger   *log.Logger
	upgrader websocket.Upgrader
	sessions atomic.Int64
	mux      *http.ServeMux
}

// NewServer creates a stream server for the given game configuration.
func NewServer(cfg Config, game config.StarfieldConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "starfield-stream",
		})
	}
	if cfg.Path == "" {
		cfg.Path = "/ws"
	}
	if cfg.MaxViewport <= 0 {
		cfg.MaxViewport = DefaultConfig().MaxViewport
	}

	s := &Server{
		config: cfg,
		game:   game,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc(cfg.Path, s.handleWS)
	return s
}

// Handler returns the HTTP handler serving the websocket endpoint.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	n := s.sessions.Add(1)
	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seed += n - 1

	id := uuid.NewString()
	logger := s.logger.With("session", id)
	start := time.Now()
	logger.Info("session started", "remote", r.RemoteAddr)

	sess := newSession(id, conn, s.config, s.game, seed, logger)
	if err := sess.run(r.Context()); err != nil {
		logger.Warn("session failed", "err", err)
	}
	logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
}

// ListenAndServe serves until ctx is cancelled. Open sessions are closed
// with the server.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("starting stream server", "address", s.config.Address, "path", s.config.Path)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("stream: listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
