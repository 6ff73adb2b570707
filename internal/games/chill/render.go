package chill

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar   = '═'
	DirtChar     = '░'
	PlatformChar = '▀'
	ObstacleChar = '▓'
	PlayerChar   = '█'
	PlayerFace   = '◕'
	LegLeft      = '╱'
	LegRight     = '╲'
	CloudChar    = '~'
	RocketChar   = '>'
	MeterFull    = '█'
	MeterEmpty   = '░'
)

var (
	tokenFrames    = []rune{'◐', '◓', '◑', '◒'}
	asteroidFrames = []rune{'*', '+', 'x', '+'}
)

const restartLabel = "[ Play Again ]"

// Render draws the current game state to the screen.
// Simulation pixels map to cells through the runtime cell size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if !g.ready {
		return
	}
	r := cellMapper{cw: float64(nonZero(g.runtime.CellW)), ch: float64(nonZero(g.runtime.CellH))}

	g.drawSky(dst, r)
	g.drawGround(dst, r)

	for _, p := range g.s.platforms {
		r.fill(dst, p.Box(), PlatformChar, core.ColorOrange)
	}
	for _, t := range g.s.tokens {
		r.fill(dst, t.Box(), spinFrame(tokenFrames, t.Rotation), core.ColorBrightYellow)
	}
	for _, o := range g.s.obstacles {
		r.fill(dst, o.Box(), ObstacleChar, core.ColorRed)
	}
	g.drawPlayer(dst, r)
	g.drawHUD(dst)

	if g.s.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", "")
	}
	if g.s.gameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  High: %d", g.s.score, g.highScore),
			restartLabel)
	}
}

// cellMapper converts simulation boxes into cell rectangles.
type cellMapper struct {
	cw, ch float64
}

func (m cellMapper) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X / m.cw))
	y0 := int(math.Floor(b.Y / m.ch))
	x1 := int(math.Ceil(b.Right()/m.cw)) - 1
	y1 := int(math.Ceil(b.Bottom()/m.ch)) - 1
	return core.NewRect(x0, y0, core.Max(1, x1-x0+1), core.Max(1, y1-y0+1))
}

func (m cellMapper) fill(dst *core.Screen, b core.Box, ch rune, c core.Color) {
	dst.DrawRectColored(m.rect(b), ch, c)
}

func (g *Game) drawSky(dst *core.Screen, m cellMapper) {
	for _, o := range g.s.sky {
		rc := m.rect(core.NewBox(o.X, o.Y, o.Size, o.Size))
		color := core.ColorWhite
		if o.Opacity < 0.85 {
			color = core.ColorGray
		}
		switch g.cfg.Sky.Type {
		case config.SkyAsteroids:
			dst.SetColored(rc.X, rc.Y, spinFrame(asteroidFrames, o.Rotation), color)
		case config.SkyRockets:
			dst.SetColored(rc.X, rc.Y, RocketChar, color)
		default:
			dst.DrawTextColored(rc.X, rc.Y, strings.Repeat(string(CloudChar), rc.W), color)
		}
	}
}

func (g *Game) drawGround(dst *core.Screen, m cellMapper) {
	gy := int(math.Floor(g.world.groundY / m.ch))
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, core.ColorGreen)
	dirt := core.NewRect(0, gy+1, dst.Width(), core.Max(0, dst.Height()-gy-1))
	dst.DrawRectColored(dirt, DirtChar, core.ColorGreen)
}

func (g *Game) drawPlayer(dst *core.Screen, m cellMapper) {
	p := g.s.player
	rc := m.rect(p.Box())
	dst.DrawRectColored(rc, PlayerChar, core.ColorBrightCyan)
	dst.SetColored(rc.Right()-1, rc.Y, PlayerFace, core.ColorBrightCyan)

	if rc.H < 2 {
		return
	}
	// Legs on the bottom row
	legY := rc.Bottom() - 1
	for x := rc.X; x < rc.Right(); x++ {
		ch := ' '
		switch {
		case p.Jumping:
			if x == rc.X || x == rc.Right()-1 {
				ch = LegRight
			}
		case (x-rc.X+p.Frame)%2 == 0:
			ch = LegLeft
		default:
			ch = LegRight
		}
		dst.SetColored(x, legY, ch, core.ColorBrightCyan)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", g.s.score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightWhite)
	highText := fmt.Sprintf(" High: %d ", g.highScore)
	dst.DrawTextColored(dst.Width()-len(highText)-1, 0, highText, core.ColorGray)

	label := " Chill "
	pct := fmt.Sprintf(" %3.0f%% ", g.s.chill)
	barW := dst.Width() - len(label) - len(pct) - 4
	if barW < 4 {
		return
	}
	filled := int(math.Round(g.s.chill / config.ChillMax * float64(barW)))
	filled = core.Clamp(filled, 0, barW)

	dst.DrawTextColored(1, 1, label, core.ColorBrightWhite)
	x := 1 + len(label)
	dst.SetColored(x, 1, '[', core.ColorGray)
	color := meterColor(g.s.chill)
	for i := 0; i < barW; i++ {
		ch := MeterEmpty
		if i < filled {
			ch = MeterFull
		}
		dst.SetColored(x+1+i, 1, ch, color)
	}
	dst.SetColored(x+1+barW, 1, ']', core.ColorGray)
	dst.DrawTextColored(x+2+barW, 1, pct, core.ColorBrightWhite)
}

func meterColor(chill float64) core.Color {
	switch {
	case chill > 60:
		return core.ColorBrightGreen
	case chill > 30:
		return core.ColorYellow
	default:
		return core.ColorBrightRed
	}
}

// RestartButton returns the cell rectangle of the restart control drawn on
// the game over screen. Hosts hit-test pointer input against it.
func RestartButton(screenW, screenH int) core.Rect {
	w := len([]rune(restartLabel))
	_, boxY, _, boxH := messageBox(screenW, screenH, w+4)
	return core.NewRect((screenW-w)/2, boxY+boxH-2, w, 1)
}

// messageBox returns the centered overlay geometry for a given width.
func messageBox(screenW, screenH, boxW int) (x, y, w, h int) {
	h = 7
	return (screenW - boxW) / 2, (screenH - h) / 2, boxW, h
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle, button string) {
	boxW := core.Max(len([]rune(title)), core.Max(len([]rune(subtitle)), len([]rune(button)))) + 4
	boxX, boxY, boxW, boxH := messageBox(dst.Width(), dst.Height(), boxW)
	if button == "" {
		boxH = 5
	}

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRectColored(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightMagenta)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
	if button != "" {
		btn := RestartButton(dst.Width(), dst.Height())
		dst.DrawTextColored(btn.X, btn.Y, button, core.ColorBrightGreen)
	}
}

// spinFrame picks one of the frames from a rotation angle.
func spinFrame(frames []rune, rotation float64) rune {
	quarter := int(math.Floor(rotation/(math.Pi/2))) % len(frames)
	if quarter < 0 {
		quarter += len(frames)
	}
	return frames[quarter]
}

func nonZero(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}
