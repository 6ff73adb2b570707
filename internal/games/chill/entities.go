package chill

import "github.com/vovakirdan/chill-runner/internal/core"

// PlayerState is the player's vertical motion state.
type PlayerState int

const (
	Grounded PlayerState = iota
	Jumping
	OnPlatform
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Jumping:
		return "jumping"
	case OnPlatform:
		return "on_platform"
	default:
		return "unknown"
	}
}

// Player is the runner controlled by the activate action.
// Jumping and OnPlatform are mutually exclusive; both false means grounded.
type Player struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	W          float64 `json:"width"`
	H          float64 `json:"height"`
	VY         float64 `json:"yVelocity"` // Negative = up
	Jumping    bool    `json:"jumping"`
	OnPlatform bool    `json:"onPlatform"`
	Frame      int     `json:"frame"`
	FrameCount int     `json:"-"` // Ticks since the last frame advance
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Feet returns the y coordinate of the player's bottom edge.
func (p Player) Feet() float64 {
	return p.Y + p.H
}

// State reports the current motion state.
func (p Player) State() PlayerState {
	switch {
	case p.Jumping:
		return Jumping
	case p.OnPlatform:
		return OnPlatform
	default:
		return Grounded
	}
}

// Token is a collectible.
type Token struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"width"`
	H         float64 `json:"height"`
	Rotation  float64 `json:"rotation"`
	Collected bool    `json:"-"`
}

// Box returns the token's collision box.
func (t Token) Box() core.Box {
	return core.NewBox(t.X, t.Y, t.W, t.H)
}

// Obstacle is a hazard that drains the chill meter on contact.
type Obstacle struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	W   float64 `json:"width"`
	H   float64 `json:"height"`
	Hit bool    `json:"-"`
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Platform is a floating surface the player can land on.
type Platform struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Box returns the platform's bounds.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// SkyObject is background decoration. It never affects gameplay.
type SkyObject struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Speed    float64 `json:"speed"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
}
