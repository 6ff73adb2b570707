package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// MenuChoice identifies a title menu entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceSky
	ChoiceScores
	ChoiceQuit
)

// skyTypes is the cycle order of the sky entry.
var skyTypes = []string{config.SkyClouds, config.SkyAsteroids, config.SkyRockets}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items     []MenuChoice
	cursor    int
	width     int
	height    int
	skyType   string
	highScore int
	keyMapper *KeyMapper
	quitting  bool
	selected  MenuChoice // Set when the user confirms an entry
}

// NewMenuModel creates a title menu showing the given high score.
func NewMenuModel(runtime core.RuntimeConfig, skyType string, highScore int) MenuModel {
	if skyType == "" {
		skyType = config.SkyClouds
	}
	return MenuModel{
		items:     []MenuChoice{ChoicePlay, ChoiceSky, ChoiceScores, ChoiceQuit},
		width:     runtime.ScreenW,
		height:    runtime.ScreenH,
		skyType:   skyType,
		highScore: highScore,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.items[m.cursor] == ChoiceSky {
			m.cycleSky(-1)
		}

	case MenuActionRight:
		if m.items[m.cursor] == ChoiceSky {
			m.cycleSky(1)
		}

	case MenuActionSelect:
		switch choice := m.items[m.cursor]; choice {
		case ChoiceSky:
			m.cycleSky(1)
		case ChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.selected = choice
		}
	}

	return m, nil
}

func (m *MenuModel) cycleSky(dir int) {
	i := 0
	for j, t := range skyTypes {
		if t == m.skyType {
			i = j
		}
	}
	i = (i + dir + len(skyTypes)) % len(skyTypes)
	m.skyType = skyTypes[i]
}

func (m MenuModel) label(c MenuChoice) string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceSky:
		return fmt.Sprintf("Sky: < %s >", m.skyType)
	case ChoiceScores:
		return "High Scores"
	case ChoiceQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C H I L L G U Y   R U N N E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
	b.WriteString("\n\n")

	for i, c := range m.items {
		style := itemStyle
		if i == m.cursor {
			style = selectedStyle
		}
		b.WriteString(centerText(style.Render(m.label(c)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Sky  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(helpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the confirmed entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// SkyType returns the sky type chosen in the menu.
func (m MenuModel) SkyType() string {
	return m.skyType
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
