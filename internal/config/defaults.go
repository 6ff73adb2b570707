package config

import (
	_ "embed"
)

//go:embed defaults/chill.yaml
var defaultChillYAML []byte

// DefaultConfig returns the hardcoded desktop parameter set.
// It is the base every YAML section is layered onto.
func DefaultConfig() Config {
	return Config{
		Device: DeviceDesktop,
		World: WorldConfig{
			GroundHeightRatio:   0.75,
			PlayableHeightRatio: 0.7,
		},
		Physics: PhysicsConfig{
			Gravity:       0.6,
			JumpVelocity:  -20,
			MovementSpeed: 10,
		},
		Player: PlayerConfig{
			X:                 50,
			BaseRatio:         0.12,
			MaxSize:           150,
			AnimationInterval: 5,
			AnimationFrames:   4,
		},
		Spawn: SpawnConfig{
			Token:    0.02,
			Obstacle: 0.01,
			Platform: 0.01,
		},
		Chill: ChillConfig{
			Increment:    10,
			Decrement:    15,
			DrainPerTick: 0,
		},
		Scoring: ScoringConfig{
			PerToken:     10,
			PerSecond:    1,
			LandingBonus: 2,
		},
		Token: TokenConfig{
			BaseRatio:   0.06,
			MaxSize:     100,
			SpawnMargin: 20,
			YVariation:  25,
			SpinSpeed:   0.02,
		},
		Obstacle: ObstacleConfig{
			BaseRatio:      0.08,
			MaxSize:        100,
			SpawnMargin:    20,
			MinHeightScale: 0.85,
			MaxHeightScale: 1.15,
		},
		Platform: PlatformConfig{
			MinWidth:         100,
			MaxWidth:         200,
			Height:           20,
			MinHeightRatio:   0.4,
			MaxHeightRatio:   0.65,
			SpawnMargin:      50,
			SpeedFactor:      0.8,
			InitialMin:       3,
			InitialMax:       5,
			LandingAbove:     10,
			LandingBelow:     5,
			SupportTolerance: 5,
			FootMinRatio:     0.3,
			FootMaxRatio:     0.7,
		},
		Sky: SkyConfig{
			Type:          SkyClouds,
			Count:         5,
			MinSizeRatio:  0.03,
			MaxSizeRatio:  0.07,
			MinSpeed:      0.5,
			MaxSpeed:      1.0,
			MinOpacity:    0.7,
			MaxOpacity:    1.0,
			RotationSpeed: 0.01,
		},
		HUD: HUDConfig{
			SpacingRatio: 0.05,
			MinSpacing:   30,
			MeterHeight:  30,
		},
		Magnetism: MagnetismConfig{
			Enabled:  false,
			Radius:   100,
			Strength: 2,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume: VolumeLevel{
				Master:  1.0,
				Effects: 0.5,
			},
		},
		HighScore: HighScoreConfig{
			Enabled:    true,
			StorageKey: "chillguyHighScore",
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// DefaultConfigFor returns the hardcoded parameter set for a device class.
// Mobile devices get slower physics, larger sprites and denser spawns.
func DefaultConfigFor(device DeviceClass) Config {
	cfg := DefaultConfig()
	if device != DeviceMobile {
		return cfg
	}
	cfg.Device = DeviceMobile
	cfg.Physics.Gravity = 0.45
	cfg.Physics.JumpVelocity = -15
	cfg.Physics.MovementSpeed = 5
	cfg.Player.BaseRatio = 0.15
	cfg.Player.MaxSize = 120
	cfg.Spawn.Token = 0.03
	cfg.Spawn.Obstacle = 0.015
	cfg.Chill.Increment = 5
	cfg.Chill.Decrement = 20
	cfg.Token.BaseRatio = 0.08
	cfg.Token.MaxSize = 80
	cfg.Obstacle.BaseRatio = 0.1
	cfg.Obstacle.MaxSize = 80
	cfg.HUD.MinSpacing = 20
	return cfg
}
