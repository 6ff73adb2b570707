package chill

import (
	"math"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// jump starts a jump from the ground or a platform. It is a no-op while a
// jump or fall is already in progress and reports whether a jump started.
func jump(p *Player, cfg *config.Config) bool {
	if p.Jumping {
		return false
	}
	p.Jumping = true
	p.OnPlatform = false
	p.VY = cfg.Physics.JumpVelocity
	return true
}

// animate advances the player's animation frame.
func animate(p *Player, cfg *config.Config) {
	p.FrameCount++
	if p.FrameCount > cfg.Player.AnimationInterval {
		p.Frame = (p.Frame + 1) % cfg.Player.AnimationFrames
		p.FrameCount = 0
	}
}

// stepPlayer advances the player's vertical motion by one tick and resolves
// landing against platforms and the ground. It reports whether the player
// landed on a platform this tick.
func stepPlayer(p *Player, platforms []Platform, cfg *config.Config, w world) bool {
	switch {
	case p.Jumping:
		p.Y += p.VY
		p.VY += cfg.Physics.Gravity

		if p.VY > 0 {
			for _, pl := range platforms {
				if canLand(p, pl, cfg) {
					p.Y = pl.Y - p.H
					p.VY = 0
					p.Jumping = false
					p.OnPlatform = true
					return true
				}
			}
		}

		if p.Y >= w.groundY-p.H {
			groundPlayer(p, w)
		}

	case p.OnPlatform:
		if !supported(p, platforms, cfg) {
			// Walked off the edge: start falling from rest.
			p.Jumping = true
			p.OnPlatform = false
			p.VY = 0
		}
	}
	return false
}

// groundPlayer snaps the player onto the ground line.
func groundPlayer(p *Player, w world) {
	p.Y = w.groundY - p.H
	p.VY = 0
	p.Jumping = false
	p.OnPlatform = false
}

// canLand reports whether a descending player's feet are inside the landing
// window of pl while horizontally aligned with it.
func canLand(p *Player, pl Platform, cfg *config.Config) bool {
	feet := p.Feet()
	if feet < pl.Y-cfg.Platform.LandingAbove || feet > pl.Y+cfg.Platform.LandingBelow {
		return false
	}
	return aligned(p, pl, cfg)
}

// supported reports whether any platform still carries a standing player.
func supported(p *Player, platforms []Platform, cfg *config.Config) bool {
	for _, pl := range platforms {
		if aligned(p, pl, cfg) && math.Abs(p.Feet()-pl.Y) < cfg.Platform.SupportTolerance {
			return true
		}
	}
	return false
}

// aligned checks the player's foot band against the platform span.
func aligned(p *Player, pl Platform, cfg *config.Config) bool {
	return p.X+p.W*cfg.Platform.FootMinRatio < pl.X+pl.W &&
		p.X+p.W*cfg.Platform.FootMaxRatio > pl.X
}

// advanceSky scrolls sky objects and recycles the ones that left the viewport.
func advanceSky(sky []SkyObject, skyType string, cfg *config.Config, w world, rng core.Rand) {
	for i := range sky {
		o := &sky[i]
		o.X -= o.Speed
		if skyType != config.SkyClouds {
			o.Rotation += cfg.Sky.RotationSpeed
		}
		if o.X+o.Size < 0 {
			recycleSkyObject(o, cfg, w, rng)
		}
	}
}

// advanceTokens scrolls tokens left and drops the ones fully off screen.
func advanceTokens(tokens []Token, cfg *config.Config) []Token {
	speed := cfg.Physics.MovementSpeed
	kept := tokens[:0]
	for _, t := range tokens {
		t.X -= speed
		t.Rotation += cfg.Token.SpinSpeed
		if t.X+t.W > 0 {
			kept = append(kept, t)
		}
	}
	return kept
}

// advanceObstacles scrolls obstacles left and drops the ones fully off screen.
func advanceObstacles(obstacles []Obstacle, cfg *config.Config) []Obstacle {
	speed := cfg.Physics.MovementSpeed
	kept := obstacles[:0]
	for _, o := range obstacles {
		o.X -= speed
		if o.X+o.W > 0 {
			kept = append(kept, o)
		}
	}
	return kept
}

// advancePlatforms scrolls platforms, slightly slower than the ground layer.
func advancePlatforms(platforms []Platform, cfg *config.Config) []Platform {
	speed := cfg.Physics.MovementSpeed * cfg.Platform.SpeedFactor
	kept := platforms[:0]
	for _, p := range platforms {
		p.X -= speed
		if p.X+p.W > 0 {
			kept = append(kept, p)
		}
	}
	return kept
}
