// Package config provides YAML-based configuration loading and resolution
// of the per-device parameter set used by the runner simulation.
package config

// ChillMax is the upper bound of the chill meter.
const ChillMax = 100.0

// Sky object types.
const (
	SkyClouds    = "clouds"
	SkyAsteroids = "asteroids"
	SkyRockets   = "rockets"
)

// Config is the fully resolved parameter set for one session.
// It is produced by Resolve and treated as immutable afterwards.
type Config struct {
	Device    DeviceClass     `yaml:"-"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Chill     ChillConfig     `yaml:"chill"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Token     TokenConfig     `yaml:"token"`
	Obstacle  ObstacleConfig  `yaml:"obstacle"`
	Platform  PlatformConfig  `yaml:"platform"`
	Sky       SkyConfig       `yaml:"sky"`
	HUD       HUDConfig       `yaml:"hud"`
	Magnetism MagnetismConfig `yaml:"magnetism"`
	Sound     SoundConfig     `yaml:"sound"`
	HighScore HighScoreConfig `yaml:"high_score"`
	Display   DisplayConfig   `yaml:"display"`
}

// WorldConfig defines the ground line.
type WorldConfig struct {
	GroundHeightRatio   float64 `yaml:"ground_height_ratio"`   // groundY = viewport height * ratio
	PlayableHeightRatio float64 `yaml:"playable_height_ratio"` // playable band = groundY * ratio
}

// PhysicsConfig defines per-tick motion constants.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // Added to vertical velocity each tick
	JumpVelocity  float64 `yaml:"jump_velocity"`  // Negative = upward
	MovementSpeed float64 `yaml:"movement_speed"` // Leftward scroll per tick
}

// PlayerConfig defines player geometry and animation.
type PlayerConfig struct {
	X                 float64 `yaml:"x"`
	BaseRatio         float64 `yaml:"base_ratio"`
	MaxSize           float64 `yaml:"max_size"`
	AnimationInterval int     `yaml:"animation_interval"`
	AnimationFrames   int     `yaml:"animation_frames"`
}

// SpawnConfig holds per-tick spawn probabilities.
type SpawnConfig struct {
	Token    float64 `yaml:"token"`
	Obstacle float64 `yaml:"obstacle"`
	Platform float64 `yaml:"platform"`
}

// ChillConfig defines chill meter adjustments.
type ChillConfig struct {
	Increment    float64 `yaml:"increment"`      // Gained per token
	Decrement    float64 `yaml:"decrement"`      // Lost per obstacle
	DrainPerTick float64 `yaml:"drain_per_tick"` // Passive loss, 0 disables
}

// ScoringConfig defines score sources.
type ScoringConfig struct {
	PerToken     int `yaml:"per_token"`
	PerSecond    int `yaml:"per_second"`
	LandingBonus int `yaml:"landing_bonus"`
}

// TokenConfig defines collectible geometry.
type TokenConfig struct {
	BaseRatio   float64 `yaml:"base_ratio"`
	MaxSize     float64 `yaml:"max_size"`
	SpawnMargin float64 `yaml:"spawn_margin"`
	YVariation  float64 `yaml:"y_variation"` // Vertical jitter in +/- pixels
	SpinSpeed   float64 `yaml:"spin_speed"`
}

// ObstacleConfig defines hazard geometry.
type ObstacleConfig struct {
	BaseRatio      float64 `yaml:"base_ratio"`
	MaxSize        float64 `yaml:"max_size"`
	SpawnMargin    float64 `yaml:"spawn_margin"`
	MinHeightScale float64 `yaml:"min_height_scale"`
	MaxHeightScale float64 `yaml:"max_height_scale"`
}

// PlatformConfig defines floating platform geometry and landing rules.
type PlatformConfig struct {
	MinWidth         float64 `yaml:"min_width"`
	MaxWidth         float64 `yaml:"max_width"`
	Height           float64 `yaml:"height"`
	MinHeightRatio   float64 `yaml:"min_height_ratio"`
	MaxHeightRatio   float64 `yaml:"max_height_ratio"`
	SpawnMargin      float64 `yaml:"spawn_margin"`
	SpeedFactor      float64 `yaml:"speed_factor"`
	InitialMin       int     `yaml:"initial_min"`
	InitialMax       int     `yaml:"initial_max"`
	LandingAbove     float64 `yaml:"landing_above"`     // Feet may be this far above the top
	LandingBelow     float64 `yaml:"landing_below"`     // Feet may be this far below the top
	SupportTolerance float64 `yaml:"support_tolerance"` // Max feet/top distance while standing
	FootMinRatio     float64 `yaml:"foot_min_ratio"`    // Left edge of the player's foot band
	FootMaxRatio     float64 `yaml:"foot_max_ratio"`    // Right edge of the player's foot band
}

// SkyConfig defines decorative sky objects.
type SkyConfig struct {
	Type          string  `yaml:"type"`
	Count         int     `yaml:"count"`
	MinSizeRatio  float64 `yaml:"min_size_ratio"`
	MaxSizeRatio  float64 `yaml:"max_size_ratio"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MinOpacity    float64 `yaml:"min_opacity"`
	MaxOpacity    float64 `yaml:"max_opacity"`
	RotationSpeed float64 `yaml:"rotation_speed"`
}

// HUDConfig defines HUD layout ratios.
type HUDConfig struct {
	SpacingRatio float64 `yaml:"spacing_ratio"`
	MinSpacing   float64 `yaml:"min_spacing"`
	MeterHeight  float64 `yaml:"meter_height"`
}

// MagnetismConfig defines the optional token pull toward the player.
type MagnetismConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Radius   float64 `yaml:"radius"`
	Strength float64 `yaml:"strength"`
}

// SoundConfig is consumed by the audio layer only.
type SoundConfig struct {
	Enabled bool        `yaml:"enabled"`
	Volume  VolumeLevel `yaml:"volume"`
}

// VolumeLevel holds linear volumes in [0, 1].
type VolumeLevel struct {
	Master  float64 `yaml:"master"`
	Effects float64 `yaml:"effects"`
}

// HighScoreConfig defines high score persistence.
type HighScoreConfig struct {
	Enabled    bool   `yaml:"enabled"`
	StorageKey string `yaml:"storage_key"`
}

// DisplayConfig maps terminal cells to simulation pixels.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}
