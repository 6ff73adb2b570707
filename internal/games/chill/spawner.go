package chill

import (
	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// spawn runs one independent Bernoulli trial per entity kind and appends a
// new entity for every trial that succeeds. Probabilities are per tick, so
// spawn frequency scales with the tick rate.
func spawn(s *session, cfg *config.Config, w world, rng core.Rand) {
	if rng.Float64() < cfg.Spawn.Token {
		s.tokens = append(s.tokens, makeToken(cfg, w, rng))
	}
	if rng.Float64() < cfg.Spawn.Obstacle {
		s.obstacles = append(s.obstacles, makeObstacle(cfg, w, rng))
	}
	if rng.Float64() < cfg.Spawn.Platform {
		s.platforms = append(s.platforms, makePlatform(cfg, w, rng))
	}
}
