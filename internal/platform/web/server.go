// Package web streams Chillguy Runner sessions to browsers over websockets.
// Each connection gets its own game driven by a server-side tick loop; the
// browser renders snapshots and sends activate, pause and resize messages.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
	"github.com/vovakirdan/chill-runner/internal/storage"
)

// ServerConfig holds configuration for the web host.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the simulation rate of every session.
	TickRate int

	// Document is the game configuration resolved per session.
	Document *config.Document

	// Store persists finished runs. Nil disables persistence.
	Store *storage.Store

	// Clock drives elapsed-time scoring. Nil uses the system clock.
	Clock core.Clock

	Logger *log.Logger
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:  ":8080",
		TickRate: 60,
	}
}

// Server serves the websocket endpoint and a health check.
type Server struct {
	config   ServerConfig
	logger   *log.Logger
	upgrader websocket.Upgrader
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewServer creates a web host.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "chillrunner-web",
		})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		config: cfg,
		logger: cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler returns the HTTP routes of the host.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	return mux
}

// handleWS upgrades the connection and runs one session until it ends.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	runtime, err := s.runtimeFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	player := r.URL.Query().Get("player")
	if player == "" {
		player = "web"
	}

	s.wg.Add(1)
	defer s.wg.Done()

	start := time.Now()
	s.logger.Info("session started", "remote", r.RemoteAddr, "player", player,
		"width", runtime.ScreenW, "height", runtime.ScreenH)

	sess := newSession(conn, runtime, s.config, player)
	go sess.readLoop()
	sess.run(s.ctx)

	s.logger.Info("session ended", "remote", r.RemoteAddr, "player", player,
		"duration", time.Since(start).Round(time.Second))
}

// runtimeFromQuery builds the session runtime from w, h, device and seed.
// Sizes are in simulation pixels, one pixel per cell.
func (s *Server) runtimeFromQuery(q url.Values) (core.RuntimeConfig, error) {
	rt := core.DefaultConfig()
	rt.CellW, rt.CellH = 1, 1
	rt.ScreenW, rt.ScreenH = 800, 480
	rt.TickRate = s.config.TickRate
	rt.Seed = time.Now().UnixNano()

	for name, dst := range map[string]*int{"w": &rt.ScreenW, "h": &rt.ScreenH} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return rt, fmt.Errorf("invalid %s %q", name, v)
		}
		*dst = n
	}

	device, err := config.ParseDevice(q.Get("device"))
	if err != nil {
		return rt, err
	}
	rt.Device = device

	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return rt, fmt.Errorf("invalid seed %q", v)
		}
		rt.Seed = seed
	}
	return rt, nil
}

// ListenAndServe serves until ctx is cancelled, then closes every session.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		s.Close()
		return err
	}

	s.logger.Info("shutting down...")
	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close ends all running sessions and waits for them to finish.
func (s *Server) Close() {
	s.cancel()
	s.wg.Wait()
}
