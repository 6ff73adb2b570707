package chill

import (
	"math"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// magnetize pulls uncollected tokens within the magnet radius toward the
// player's center. The pull weakens linearly with distance.
func magnetize(p *Player, tokens []Token, cfg *config.Config) {
	radius := cfg.Magnetism.Radius
	if radius <= 0 {
		return
	}
	pcx, pcy := p.Box().Center()
	for i := range tokens {
		t := &tokens[i]
		if t.Collected {
			continue
		}
		tcx, tcy := t.Box().Center()
		dx, dy := pcx-tcx, pcy-tcy
		d := math.Hypot(dx, dy)
		if d >= radius {
			continue
		}
		f := (1 - d/radius) * cfg.Magnetism.Strength * 0.05
		t.X += dx * f
		t.Y += dy * f
	}
}

// collide applies token and obstacle contacts to the session. Every entity
// is consumed at most once: the flag is checked before any effect and the
// consumed entity leaves the active set in the same tick.
func collide(s *session, cfg *config.Config) []core.Event {
	var events []core.Event
	pb := s.player.Box()

	for i := range s.tokens {
		t := &s.tokens[i]
		if t.Collected || !pb.Overlaps(t.Box()) {
			continue
		}
		t.Collected = true
		s.score += cfg.Scoring.PerToken
		s.chill = math.Min(config.ChillMax, s.chill+cfg.Chill.Increment)
		events = append(events, core.EventTokenCollected)
	}

	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Hit || !pb.Overlaps(o.Box()) {
			continue
		}
		o.Hit = true
		// May dip below zero until the end-of-tick check clamps it.
		s.chill -= cfg.Chill.Decrement
		events = append(events, core.EventObstacleHit)
	}

	s.tokens = removeCollected(s.tokens)
	s.obstacles = removeHit(s.obstacles)
	return events
}

func removeCollected(tokens []Token) []Token {
	kept := tokens[:0]
	for _, t := range tokens {
		if !t.Collected {
			kept = append(kept, t)
		}
	}
	return kept
}

func removeHit(obstacles []Obstacle) []Obstacle {
	kept := obstacles[:0]
	for _, o := range obstacles {
		if !o.Hit {
			kept = append(kept, o)
		}
	}
	return kept
}

// checkGameOver ends the run once the chill meter is depleted.
// It reports whether the run ended on this call.
func checkGameOver(s *session) bool {
	if s.gameOver || s.chill > 0 {
		return false
	}
	s.chill = 0
	s.gameOver = true
	return true
}
