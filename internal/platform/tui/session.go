package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// sessionScreen is the screen a SessionModel is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts     Options
	runtime  core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session. With startInGame the first run starts
// immediately instead of showing the menu.
func NewSessionModel(opts Options, runtime core.RuntimeConfig, startInGame bool) SessionModel {
	opts = opts.withDefaults()
	m := SessionModel{
		opts:    opts,
		runtime: runtime,
		menu:    NewMenuModel(runtime, opts.SkyType, storedHighScore(opts, runtime)),
	}
	if startInGame {
		m.startGame()
	}
	return m
}

// storedHighScore reads the persisted high score for the device the
// runtime resolves to.
func storedHighScore(opts Options, runtime core.RuntimeConfig) int {
	vp := runtime.Viewport()
	cfg := opts.Document.Resolve(config.DetectDevice(runtime.Device, vp), vp)
	return loadHighScore(opts, cfg.HighScore)
}

// startGame creates a fresh game model using the sky picked in the menu.
func (m *SessionModel) startGame() {
	opts := m.opts
	opts.SkyType = m.menu.SkyType()
	gm := NewGameModel(opts, m.runtime)
	m.game = &gm
	m.screen = screenGame
}

// showMenu returns to the title menu, keeping the chosen sky type.
func (m *SessionModel) showMenu() {
	best := 0
	if m.game != nil {
		best = m.game.gameState.HighScore
	}
	m.menu = NewMenuModel(m.runtime, m.menu.SkyType(), best)
	m.game = nil
	m.screen = screenMenu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame && m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		m.startGame()
		return m, m.game.Init()
	case ChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.runtime.ScreenW, m.runtime.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.showMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.menu = NewMenuModel(m.runtime, m.menu.SkyType(), m.menu.highScore)
		m.screen = screenMenu
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts a Bubble Tea program at the title menu.
func RunSession(opts Options, runtime core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(opts, runtime, false),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
