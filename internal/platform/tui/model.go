package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
	"github.com/vovakirdan/chill-runner/internal/games/chill"
	"github.com/vovakirdan/chill-runner/internal/storage"
)

// Options holds the collaborators shared by every screen of a session.
// A nil Store or Sink disables persistence or sound. A nil Logger logs to stderr.
type Options struct {
	Store    *storage.Store
	Document *config.Document
	Sink     core.EventSink
	Logger   *log.Logger
	Player   string // Recorded with each run
	SkyType  string // Empty keeps the configured sky
	Clock    core.Clock
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(os.Stderr)
	}
	if o.Player == "" {
		o.Player = "local"
	}
	return o
}

// muter is implemented by sinks that can be silenced at runtime.
type muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// runSavedMsg reports the outcome of persisting a finished run.
type runSavedMsg struct {
	score     int
	newRecord bool
	err       error
}

// highScoreSavedMsg reports the outcome of persisting a raised high score.
type highScoreSavedMsg struct {
	score int
	err   error
}

// GameModel is the Bubble Tea model that drives one Chillguy Runner session.
type GameModel struct {
	game       *chill.Game
	screen     *core.Screen
	opts       Options
	runtime    core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	loopID     int64
	started    time.Time // Start of the current run
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been persisted
}

// NewGameModel creates a game model and starts the first run.
func NewGameModel(opts Options, runtime core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	opts = opts.withDefaults()

	gameOpts := []chill.Option{chill.WithDocument(opts.Document)}
	if opts.Clock != nil {
		gameOpts = append(gameOpts, chill.WithClock(opts.Clock))
	}
	game := chill.New(gameOpts...)
	if opts.SkyType != "" {
		if err := game.SetSkyType(opts.SkyType); err != nil {
			opts.Logger.Warn("ignoring sky type", "error", err)
		}
	}
	game.Reset(runtime)
	game.SetHighScore(loadHighScore(opts, game.Config().HighScore))

	return GameModel{
		game:       game,
		screen:     core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		opts:       opts,
		runtime:    runtime,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		loopID:     nextLoopID(),
		started:    time.Now(),
	}
}

// loadHighScore reads the persisted high score, or 0 when unavailable.
func loadHighScore(opts Options, cfg config.HighScoreConfig) int {
	if opts.Store == nil || !cfg.Enabled {
		return 0
	}
	best, err := opts.Store.HighScore(cfg.StorageKey)
	if err != nil {
		opts.Logger.Warn("could not read high score", "key", cfg.StorageKey, "error", err)
		return 0
	}
	return best
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate, m.loopID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		action := m.keyMapper.MapMouse(msg, m.gameState.GameOver, m.screen.Width(), m.screen.Height())
		if action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.loopID {
			return m, nil
		}
		return m.handleTick()

	case runSavedMsg:
		if msg.err != nil {
			m.opts.Logger.Warn("could not save run", "score", msg.score, "error", msg.err)
		} else if msg.newRecord {
			m.opts.Logger.Debug("new high score", "score", msg.score)
		}
		return m, nil

	case highScoreSavedMsg:
		if msg.err != nil {
			m.opts.Logger.Warn("could not save high score", "score", msg.score, "error", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Shot):
		m.saveScreenshot()
		return m, nil
	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Mute):
		if mu, ok := m.opts.Sink.(muter); ok {
			mu.SetMuted(!mu.Muted())
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg, m.gameState.GameOver)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize re-fits the running session to the new terminal size.
// Bubble Tea serializes messages, so the resize lands between ticks.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.runtime)
	m.gameState = m.game.State()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.game.IsOver()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.opts.Sink != nil {
		for _, e := range result.Events {
			m.opts.Sink.Handle(e)
		}
	}

	cmds := []tea.Cmd{tickCmd(m.runtime.TickRate, m.loopID)}
	if result.HighScoreChanged {
		cmds = append(cmds, m.saveHighScoreCmd(m.gameState.HighScore))
	}
	switch {
	case wasOver && !m.gameState.GameOver:
		m.started = time.Now()
		m.runSaved = false
	case m.gameState.GameOver && !m.runSaved:
		// Persist once per game over, outside the tick
		m.runSaved = true
		cmds = append(cmds, m.saveRunCmd(m.gameState.Score, time.Since(m.started)))
	}

	return m, tea.Batch(cmds...)
}

// saveRunCmd appends the finished run to history and raises the stored
// high score.
func (m GameModel) saveRunCmd(score int, played time.Duration) tea.Cmd {
	store := m.opts.Store
	if store == nil || score <= 0 {
		return nil
	}
	hs := m.game.Config().HighScore
	run := storage.Run{
		Player:   m.opts.Player,
		Device:   string(m.game.Config().Device),
		Score:    score,
		Duration: played,
	}
	return func() tea.Msg {
		if _, err := store.SaveRun(run); err != nil {
			return runSavedMsg{score: score, err: err}
		}
		if !hs.Enabled {
			return runSavedMsg{score: score}
		}
		raised, err := store.SetHighScore(hs.StorageKey, score)
		return runSavedMsg{score: score, newRecord: raised, err: err}
	}
}

// saveHighScoreCmd stores a high score raised during a run.
func (m GameModel) saveHighScoreCmd(score int) tea.Cmd {
	store := m.opts.Store
	hs := m.game.Config().HighScore
	if store == nil || !hs.Enabled || score <= 0 {
		return nil
	}
	return func() tea.Msg {
		_, err := store.SetHighScore(hs.StorageKey, score)
		return highScoreSavedMsg{score: score, err: err}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".chillrunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.gameState.Paused {
		// Controls replace the bottom row while paused
		view = withFooter(view, helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	}
	return view
}

// Game returns the simulated game.
func (m GameModel) Game() *chill.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program straight into a run, without the menu.
func Run(opts Options, runtime core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(opts, runtime, true),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
