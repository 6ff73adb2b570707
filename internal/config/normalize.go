package config

import (
	"math"

	"github.com/vovakirdan/chill-runner/internal/core"
)

// Normalize clamps out-of-range values so the simulation never sees an
// invalid parameter. Values with no sensible clamp fall back to the device class defaults.
func (c *Config) Normalize(vp core.Viewport) {
	def := DefaultConfigFor(c.Device)

	c.World.GroundHeightRatio = ratioOr(c.World.GroundHeightRatio, def.World.GroundHeightRatio)
	c.World.PlayableHeightRatio = ratioOr(c.World.PlayableHeightRatio, def.World.PlayableHeightRatio)

	c.Physics.Gravity = positiveOr(c.Physics.Gravity, def.Physics.Gravity)
	c.Physics.JumpVelocity = -positiveOr(c.Physics.JumpVelocity, -def.Physics.JumpVelocity)
	c.Physics.MovementSpeed = positiveOr(c.Physics.MovementSpeed, def.Physics.MovementSpeed)

	c.Player.X = math.Max(0, c.Player.X)
	c.Player.BaseRatio = positiveOr(c.Player.BaseRatio, def.Player.BaseRatio)
	c.Player.MaxSize = positiveOr(c.Player.MaxSize, def.Player.MaxSize)
	if c.Player.AnimationInterval < 1 {
		c.Player.AnimationInterval = 1
	}
	if c.Player.AnimationFrames < 1 {
		c.Player.AnimationFrames = 1
	}

	c.Spawn.Token = core.ClampF(c.Spawn.Token, 0, 1)
	c.Spawn.Obstacle = core.ClampF(c.Spawn.Obstacle, 0, 1)
	c.Spawn.Platform = core.ClampF(c.Spawn.Platform, 0, 1)

	c.Chill.Increment = math.Abs(c.Chill.Increment)
	c.Chill.Decrement = math.Abs(c.Chill.Decrement)
	c.Chill.DrainPerTick = math.Abs(c.Chill.DrainPerTick)

	c.Scoring.PerToken = core.Max(0, c.Scoring.PerToken)
	c.Scoring.PerSecond = core.Max(0, c.Scoring.PerSecond)
	c.Scoring.LandingBonus = core.Max(0, c.Scoring.LandingBonus)

	c.Token.BaseRatio = positiveOr(c.Token.BaseRatio, def.Token.BaseRatio)
	c.Token.MaxSize = positiveOr(c.Token.MaxSize, def.Token.MaxSize)
	c.Token.SpawnMargin = math.Abs(c.Token.SpawnMargin)
	c.Token.YVariation = math.Abs(c.Token.YVariation)

	c.Obstacle.BaseRatio = positiveOr(c.Obstacle.BaseRatio, def.Obstacle.BaseRatio)
	c.Obstacle.MaxSize = positiveOr(c.Obstacle.MaxSize, def.Obstacle.MaxSize)
	c.Obstacle.SpawnMargin = math.Abs(c.Obstacle.SpawnMargin)
	c.Obstacle.MinHeightScale = positiveOr(c.Obstacle.MinHeightScale, def.Obstacle.MinHeightScale)
	c.Obstacle.MaxHeightScale = positiveOr(c.Obstacle.MaxHeightScale, def.Obstacle.MaxHeightScale)
	orderRange(&c.Obstacle.MinHeightScale, &c.Obstacle.MaxHeightScale)

	p := &c.Platform
	p.MinWidth = positiveOr(p.MinWidth, def.Platform.MinWidth)
	p.MaxWidth = positiveOr(p.MaxWidth, def.Platform.MaxWidth)
	orderRange(&p.MinWidth, &p.MaxWidth)
	if vp.W > 0 {
		p.MaxWidth = math.Min(p.MaxWidth, vp.W)
		p.MinWidth = math.Min(p.MinWidth, p.MaxWidth)
	}
	p.Height = positiveOr(p.Height, def.Platform.Height)
	p.MinHeightRatio = ratioOr(p.MinHeightRatio, def.Platform.MinHeightRatio)
	p.MaxHeightRatio = ratioOr(p.MaxHeightRatio, def.Platform.MaxHeightRatio)
	orderRange(&p.MinHeightRatio, &p.MaxHeightRatio)
	p.SpawnMargin = math.Abs(p.SpawnMargin)
	p.SpeedFactor = math.Abs(p.SpeedFactor)
	p.InitialMin = core.Max(0, p.InitialMin)
	p.InitialMax = core.Max(0, p.InitialMax)
	if p.InitialMin > p.InitialMax {
		p.InitialMin, p.InitialMax = p.InitialMax, p.InitialMin
	}
	p.LandingAbove = math.Abs(p.LandingAbove)
	p.LandingBelow = math.Abs(p.LandingBelow)
	p.SupportTolerance = math.Abs(p.SupportTolerance)
	p.FootMinRatio = core.ClampF(p.FootMinRatio, 0, 1)
	p.FootMaxRatio = core.ClampF(p.FootMaxRatio, 0, 1)
	orderRange(&p.FootMinRatio, &p.FootMaxRatio)

	s := &c.Sky
	switch s.Type {
	case SkyClouds, SkyAsteroids, SkyRockets:
	default:
		s.Type = def.Sky.Type
	}
	s.Count = core.Max(0, s.Count)
	s.MinSizeRatio = math.Abs(s.MinSizeRatio)
	s.MaxSizeRatio = math.Abs(s.MaxSizeRatio)
	orderRange(&s.MinSizeRatio, &s.MaxSizeRatio)
	s.MinSpeed = math.Abs(s.MinSpeed)
	s.MaxSpeed = math.Abs(s.MaxSpeed)
	orderRange(&s.MinSpeed, &s.MaxSpeed)
	s.MinOpacity = core.ClampF(s.MinOpacity, 0, 1)
	s.MaxOpacity = core.ClampF(s.MaxOpacity, 0, 1)
	orderRange(&s.MinOpacity, &s.MaxOpacity)

	c.HUD.SpacingRatio = math.Abs(c.HUD.SpacingRatio)
	c.HUD.MinSpacing = math.Abs(c.HUD.MinSpacing)
	c.HUD.MeterHeight = positiveOr(c.HUD.MeterHeight, def.HUD.MeterHeight)

	c.Magnetism.Radius = math.Abs(c.Magnetism.Radius)
	c.Magnetism.Strength = math.Abs(c.Magnetism.Strength)

	c.Sound.Volume.Master = core.ClampF(c.Sound.Volume.Master, 0, 1)
	c.Sound.Volume.Effects = core.ClampF(c.Sound.Volume.Effects, 0, 1)

	if c.HighScore.StorageKey == "" {
		c.HighScore.StorageKey = def.HighScore.StorageKey
	}

	if c.Display.CellWidth < 1 {
		c.Display.CellWidth = def.Display.CellWidth
	}
	if c.Display.CellHeight < 1 {
		c.Display.CellHeight = def.Display.CellHeight
	}
}

func positiveOr(v, fallback float64) float64 {
	if v < 0 {
		v = -v
	}
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// ratioOr keeps v when it lies in (0, 1].
func ratioOr(v, fallback float64) float64 {
	if v <= 0 || v > 1 || math.IsNaN(v) {
		return fallback
	}
	return v
}

func orderRange(lo, hi *float64) {
	if *lo > *hi {
		*lo, *hi = *hi, *lo
	}
}
