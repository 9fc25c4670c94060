package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
	"github.com/vovakirdan/tui-starfield/internal/games/starfield"
)

// errClosed ends a session whose client went away.
var errClosed = errors.New("stream: connection closed")

// maxFrameDelta caps a single step after a stall.
const maxFrameDelta = 250 * time.Millisecond

// session runs one simulation for one websocket connection. The reader
// goroutine only records intents; the tick goroutine owns the simulation
// and is the only writer on the connection.
type session struct {
	id       string
	conn     *websocket.Conn
	sim      *starfield.Simulation
	logger   *log.Logger
	interval time.Duration
	timeout  time.Duration
	maxSize  float64
	seed     int64
	restarts int64

	mu      sync.Mutex
	held    core.InputFrame
	start   bool
	pause   bool
	resize  *core.Vec2
	pending []core.Cue // Collected during a tick, tick goroutine only

	paused   bool
	overSeen bool
}

func newSession(id string, conn *websocket.Conn, cfg Config, game config.StarfieldConfig, seed int64, logger *log.Logger) *session {
	s := &session{
		id:       id,
		conn:     conn,
		logger:   logger,
		interval: time.Second / time.Duration(max(cfg.TickRate, 1)),
		timeout:  cfg.WriteTimeout,
		maxSize:  cfg.MaxViewport,
		seed:     seed,
		held:     core.NewInputFrame(),
	}
	s.sim = starfield.NewSimulation(game, seed, core.CueSinkFunc(func(c core.Cue) {
		s.pending = append(s.pending, c)
	}))
	s.sim.Reset(cfg.Width, cfg.Height)
	s.sim.RegenerateBackground(cfg.Width, cfg.Height)
	return s
}

// run sends the hello message and serves the session until the client
// disconnects or ctx is cancelled.
func (s *session) run(ctx context.Context) error {
	snap := s.sim.Snapshot()
	if err := s.write(HelloMessage{
		Type:    MsgHello,
		Session: s.id,
		Width:   snap.Width,
		Height:  snap.Height,
		Stars:   snap.Stars,
		Nebulas: snap.Nebulas,
	}); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.readLoop(gctx) })
	g.Go(func() error { return s.tickLoop(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		// Unblocks the reader
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		return s.conn.Close()
	})

	err := g.Wait()
	if errors.Is(err, errClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *session) readLoop(ctx context.Context) error {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return errClosed
			}
			return fmt.Errorf("stream: read: %w", err)
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Warn("bad message", "err", err)
			continue
		}
		s.apply(msg)
	}
}

// apply records a client intent for the next tick.
func (s *session) apply(msg ClientMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Type {
	case MsgInput:
		s.held = heldFrame(msg.Held)
	case MsgStart:
		s.start = true
	case MsgPause:
		s.pause = !s.pause
	case MsgResize:
		if msg.Width <= 0 || msg.Height <= 0 {
			s.logger.Warn("bad resize", "width", msg.Width, "height", msg.Height)
			return
		}
		s.resize = &core.Vec2{min(msg.Width, s.maxSize), min(msg.Height, s.maxSize)}
	default:
		s.logger.Warn("unknown message", "type", msg.Type)
	}
}

func (s *session) tickLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := s.interval
			if !last.IsZero() {
				dt = min(now.Sub(last), maxFrameDelta)
			}
			last = now

			if err := s.step(dt); err != nil {
				return err
			}
		}
	}
}

// step drains pending intents, advances the simulation and sends a frame.
func (s *session) step(dt time.Duration) error {
	s.mu.Lock()
	in := s.held.Clone()
	start, pause, resize := s.start, s.pause, s.resize
	s.start, s.pause, s.resize = false, false, nil
	s.mu.Unlock()

	if resize != nil {
		s.sim.Resize(resize[0], resize[1])
		snap := s.sim.Snapshot()
		if err := s.write(BackgroundMessage{
			Type:    MsgBackground,
			Width:   snap.Width,
			Height:  snap.Height,
			Stars:   snap.Stars,
			Nebulas: snap.Nebulas,
		}); err != nil {
			return err
		}
	}

	switch s.sim.Status() {
	case starfield.StatusStartScreen:
		if start {
			s.sim.Start()
			s.logger.Debug("game started", "seed", s.seed)
		}
	case starfield.StatusGameOver:
		if start {
			s.restarts++
			s.sim.Reseed(s.seed + s.restarts)
			s.sim.Start()
			s.paused = false
			s.overSeen = false
			s.logger.Debug("game restarted", "restarts", s.restarts)
		}
	case starfield.StatusPlaying:
		if pause {
			s.paused = !s.paused
		}
	}

	if !s.paused {
		s.sim.Advance(in, dt)
	}

	snap := s.sim.Snapshot()
	if snap.Status == starfield.StatusGameOver && !s.overSeen {
		s.overSeen = true
		s.logger.Info("game over", "score", snap.Score, "ticks", snap.Tick)
	}

	msg := FrameMessage{
		Type:   MsgFrame,
		Frame:  snap.WithoutBackground(),
		Cues:   s.pending,
		Paused: s.paused,
	}
	s.pending = nil
	return s.write(msg)
}

func (s *session) write(v any) error {
	if s.timeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.timeout))
	}
	if err := s.conn.WriteJSON(v); err != nil {
		if errors.Is(err, websocket.ErrCloseSent) {
			return errClosed
		}
		return fmt.Errorf("stream: write: %w", err)
	}
	return nil
}
