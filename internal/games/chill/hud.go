package chill

import (
	"math"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// HUD is the viewport-derived layout of the score line and chill meter.
// It is recomputed on initialize and resize.
type HUD struct {
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	Width            float64 `json:"width"`
	MeterHeight      float64 `json:"meterHeight"`
	Spacing          float64 `json:"spacing"`
	ScoreFontSize    int     `json:"scoreFontSize"`
	ChillFontSize    int     `json:"chillFontSize"`
	GameOverFontSize int     `json:"gameOverFontSize"`
}

func computeHUD(cfg *config.Config, vp core.Viewport) HUD {
	smaller := vp.Smaller()
	spacing := math.Max(cfg.HUD.MinSpacing, smaller*cfg.HUD.SpacingRatio)
	return HUD{
		X:                spacing,
		Y:                spacing,
		Width:            math.Max(0, vp.W-spacing*2),
		MeterHeight:      cfg.HUD.MeterHeight,
		Spacing:          spacing,
		ScoreFontSize:    fontSize(smaller, 0.05, 16),
		ChillFontSize:    fontSize(smaller, 0.04, 14),
		GameOverFontSize: fontSize(smaller, 0.08, 24),
	}
}

func fontSize(base, ratio float64, min int) int {
	return core.Max(min, int(math.Round(base*ratio)))
}
