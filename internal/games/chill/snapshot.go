package chill

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Slices are copies; mutating them does not affect the session.
type Snapshot struct {
	Tick        uint64      `json:"tick"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	GroundY     float64     `json:"groundY"`
	Device      string      `json:"device"`
	SkyType     string      `json:"skyType"`
	Player      Player      `json:"player"`
	PlayerState string      `json:"playerState"`
	Tokens      []Token     `json:"tokens"`
	Obstacles   []Obstacle  `json:"obstacles"`
	Platforms   []Platform  `json:"platforms"`
	Sky         []SkyObject `json:"sky"`
	Score       int         `json:"score"`
	HighScore   int         `json:"highScore"`
	Chill       float64     `json:"chill"`
	GameOver    bool        `json:"gameOver"`
	Paused      bool        `json:"paused"`
	HUD         HUD         `json:"hud"`
}

// Snapshot returns the current session as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	return Snapshot{
		Tick:        g.s.tick,
		Width:       g.world.vp.W,
		Height:      g.world.vp.H,
		GroundY:     g.world.groundY,
		Device:      string(g.cfg.Device),
		SkyType:     g.cfg.Sky.Type,
		Player:      g.s.player,
		PlayerState: g.s.player.State().String(),
		Tokens:      append([]Token(nil), g.s.tokens...),
		Obstacles:   append([]Obstacle(nil), g.s.obstacles...),
		Platforms:   append([]Platform(nil), g.s.platforms...),
		Sky:         append([]SkyObject(nil), g.s.sky...),
		Score:       st.Score,
		HighScore:   st.HighScore,
		Chill:       st.Chill,
		GameOver:    st.GameOver,
		Paused:      st.Paused,
		HUD:         g.hud,
	}
}
