package chill

import (
	"math"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// world holds the viewport-derived geometry the factories and physics share.
type world struct {
	vp      core.Viewport
	groundY float64
}

func newWorld(cfg *config.Config, vp core.Viewport) world {
	return world{vp: vp, groundY: vp.H * cfg.World.GroundHeightRatio}
}

// playableHeight is the vertical band platforms are placed in.
func (w world) playableHeight(cfg *config.Config) float64 {
	return w.groundY * cfg.World.PlayableHeightRatio
}

// uniform draws from [lo, hi).
func uniform(rng core.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// scaledSize sizes an entity relative to the smaller viewport dimension.
func scaledSize(vp core.Viewport, ratio, max float64) float64 {
	return math.Min(max, vp.Smaller()*ratio)
}

// playerSize is the player's edge length, rounded to whole pixels.
func playerSize(cfg *config.Config, vp core.Viewport) float64 {
	return math.Min(cfg.Player.MaxSize, math.Round(vp.Smaller()*cfg.Player.BaseRatio))
}

// makeToken creates a token just off the right edge, near the ground line.
func makeToken(cfg *config.Config, w world, rng core.Rand) Token {
	size := scaledSize(w.vp, cfg.Token.BaseRatio, cfg.Token.MaxSize)
	v := cfg.Token.YVariation
	return Token{
		X: w.vp.W + cfg.Token.SpawnMargin,
		Y: w.groundY - size + uniform(rng, -v, v),
		W: size,
		H: size,
	}
}

// makeObstacle creates an obstacle standing on the ground just off the right edge.
func makeObstacle(cfg *config.Config, w world, rng core.Rand) Obstacle {
	size := scaledSize(w.vp, cfg.Obstacle.BaseRatio, cfg.Obstacle.MaxSize)
	h := size * uniform(rng, cfg.Obstacle.MinHeightScale, cfg.Obstacle.MaxHeightScale)
	return Obstacle{
		X: w.vp.W + cfg.Obstacle.SpawnMargin,
		Y: w.groundY - h,
		W: size,
		H: h,
	}
}

// makePlatform creates a platform just off the right edge.
func makePlatform(cfg *config.Config, w world, rng core.Rand) Platform {
	width := uniform(rng, cfg.Platform.MinWidth, cfg.Platform.MaxWidth)
	return Platform{
		X: w.vp.W + cfg.Platform.SpawnMargin,
		Y: platformY(cfg, w, rng),
		W: width,
		H: cfg.Platform.Height,
	}
}

// platformY picks a top edge inside the configured band above the ground.
func platformY(cfg *config.Config, w world, rng core.Rand) float64 {
	ph := w.playableHeight(cfg)
	top := w.groundY - ph*cfg.Platform.MaxHeightRatio
	bottom := w.groundY - ph*cfg.Platform.MinHeightRatio
	return uniform(rng, top, bottom)
}

// initialPlatforms spreads a random number of platforms across the viewport,
// one per equal-width segment.
func initialPlatforms(cfg *config.Config, w world, rng core.Rand) []Platform {
	n := cfg.Platform.InitialMin
	if span := cfg.Platform.InitialMax - cfg.Platform.InitialMin; span > 0 {
		n += rng.Intn(span + 1)
	}
	platforms := make([]Platform, 0, n)
	if n == 0 {
		return platforms
	}
	seg := w.vp.W / float64(n)
	for i := 0; i < n; i++ {
		width := uniform(rng, cfg.Platform.MinWidth, cfg.Platform.MaxWidth)
		x := float64(i)*seg + rng.Float64()*(seg-width)
		platforms = append(platforms, Platform{
			X: x,
			Y: platformY(cfg, w, rng),
			W: width,
			H: cfg.Platform.Height,
		})
	}
	return platforms
}

// makeSkyObject creates a sky object anywhere in the top half of the viewport.
func makeSkyObject(cfg *config.Config, w world, rng core.Rand) SkyObject {
	s := cfg.Sky
	return SkyObject{
		X:        rng.Float64() * w.vp.W,
		Y:        rng.Float64() * (w.vp.H / 2),
		Speed:    uniform(rng, s.MinSpeed, s.MaxSpeed),
		Size:     uniform(rng, s.MinSizeRatio, s.MaxSizeRatio) * w.vp.Smaller(),
		Rotation: rng.Float64() * 2 * math.Pi,
		Opacity:  uniform(rng, s.MinOpacity, s.MaxOpacity),
	}
}

// recycleSkyObject moves an object that left the viewport back to the right
// edge. Size and opacity are kept.
func recycleSkyObject(o *SkyObject, cfg *config.Config, w world, rng core.Rand) {
	o.X = w.vp.W
	o.Y = rng.Float64() * (w.vp.H / 2)
	o.Speed = uniform(rng, cfg.Sky.MinSpeed, cfg.Sky.MaxSpeed)
	o.Rotation = rng.Float64() * 2 * math.Pi
}

func makeSky(cfg *config.Config, w world, rng core.Rand) []SkyObject {
	sky := make([]SkyObject, cfg.Sky.Count)
	for i := range sky {
		sky[i] = makeSkyObject(cfg, w, rng)
	}
	return sky
}
