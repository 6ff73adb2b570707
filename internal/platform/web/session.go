package web

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
	"github.com/vovakirdan/chill-runner/internal/games/chill"
	"github.com/vovakirdan/chill-runner/internal/storage"
)

const (
	writeWait      = 2 * time.Second
	maxMessageSize = 4096
	inboxSize      = 32
)

// session owns one game and its connection. Only run touches the game;
// the reader goroutine hands messages over through inbox.
type session struct {
	conn    *websocket.Conn
	game    *chill.Game
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	player  string
	inbox   chan clientMessage
	input   core.InputFrame
	started time.Time
}

func newSession(conn *websocket.Conn, runtime core.RuntimeConfig, cfg ServerConfig, player string) *session {
	opts := []chill.Option{chill.WithDocument(cfg.Document)}
	if cfg.Clock != nil {
		opts = append(opts, chill.WithClock(cfg.Clock))
	}
	game := chill.New(opts...)
	game.Reset(runtime)

	s := &session{
		conn:    conn,
		game:    game,
		runtime: runtime,
		store:   cfg.Store,
		logger:  cfg.Logger.With("player", player),
		player:  player,
		inbox:   make(chan clientMessage, inboxSize),
		input:   core.NewInputFrame(),
		started: time.Now(),
	}
	s.loadHighScore()
	return s
}

func (s *session) loadHighScore() {
	hs := s.game.Config().HighScore
	if s.store == nil || !hs.Enabled {
		return
	}
	best, err := s.store.HighScore(hs.StorageKey)
	if err != nil {
		s.logger.Warn("could not read high score", "error", err)
		return
	}
	s.game.SetHighScore(best)
}

// readLoop decodes client messages until the connection fails. It closes
// inbox on exit, which stops run.
func (s *session) readLoop() {
	defer close(s.inbox)

	s.conn.SetReadLimit(maxMessageSize)
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("read failed", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Warn("discarding malformed message", "error", err)
			continue
		}
		select {
		case s.inbox <- msg:
		default:
			s.logger.Warn("inbox full, dropping message", "type", msg.Type)
		}
	}
}

// run drives the tick loop until ctx is cancelled, the client goes away or
// a write fails.
func (s *session) run(ctx context.Context) {
	interval := time.Second / time.Duration(s.runtime.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := s.writeJSON(helloFrame{
		Type:     TypeHello,
		Game:     s.game.ID(),
		Title:    s.game.Title(),
		TickRate: s.runtime.TickRate,
	}); err != nil {
		return
	}
	if err := s.writeJSON(snapshotFrame{Type: TypeSnapshot, Snapshot: s.game.Snapshot()}); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return

		case msg, ok := <-s.inbox:
			if !ok {
				return
			}
			s.apply(msg)

		case <-ticker.C:
			if err := s.tick(); err != nil {
				s.logger.Debug("write failed", "error", err)
				return
			}
		}
	}
}

// apply handles one client message between ticks.
func (s *session) apply(msg clientMessage) {
	switch msg.Type {
	case TypeActivate:
		if msg.Restart {
			s.input.Set(core.ActionRestart)
		} else {
			s.input.Set(core.ActionActivate)
		}

	case TypePause:
		s.input.Set(core.ActionPause)

	case TypeResize:
		if msg.Width <= 0 || msg.Height <= 0 {
			s.logger.Warn("ignoring resize with invalid size", "width", msg.Width, "height", msg.Height)
			return
		}
		device, err := config.ParseDevice(msg.Device)
		if err != nil {
			s.logger.Warn("ignoring resize", "error", err)
			return
		}
		s.runtime.ScreenW = msg.Width
		s.runtime.ScreenH = msg.Height
		if msg.Device != "" {
			s.runtime.Device = device
		}
		s.game.Resize(s.runtime)

	case TypeSky:
		if err := s.game.SetSkyType(msg.Sky); err != nil {
			s.logger.Warn("ignoring sky change", "error", err)
		}

	default:
		s.logger.Warn("unknown message type", "type", msg.Type)
	}
}

// tick steps the game once and streams the result.
func (s *session) tick() error {
	wasOver := s.game.IsOver()
	result := s.game.Step(s.input)
	s.input.Clear()

	for _, e := range result.Events {
		if err := s.writeJSON(eventFrame{Type: TypeEvent, Name: e}); err != nil {
			return err
		}
	}
	if err := s.writeJSON(snapshotFrame{Type: TypeSnapshot, Snapshot: s.game.Snapshot()}); err != nil {
		return err
	}

	if result.HighScoreChanged {
		s.saveHighScore(result.State.HighScore)
	}
	switch {
	case wasOver && !result.State.GameOver:
		s.started = time.Now()
	case !wasOver && result.State.GameOver:
		s.saveRun(result.State.Score)
	}
	return nil
}

// saveRun records a finished run and raises the stored high score.
func (s *session) saveRun(score int) {
	if s.store == nil || score <= 0 {
		return
	}
	cfg := s.game.Config()
	run := storage.Run{
		Player:   s.player,
		Device:   string(cfg.Device),
		Score:    score,
		Duration: time.Since(s.started),
	}
	if _, err := s.store.SaveRun(run); err != nil {
		s.logger.Warn("could not save run", "score", score, "error", err)
		return
	}
	s.saveHighScore(score)
}

// saveHighScore raises the stored high score.
func (s *session) saveHighScore(score int) {
	hs := s.game.Config().HighScore
	if s.store == nil || !hs.Enabled || score <= 0 {
		return
	}
	if _, err := s.store.SetHighScore(hs.StorageKey, score); err != nil {
		s.logger.Warn("could not save high score", "score", score, "error", err)
	}
}

func (s *session) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}
