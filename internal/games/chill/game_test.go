package chill

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// fakeClock is a manually advanced wall clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fixedRand returns the same values forever. With f close to 1 no spawn
// trial ever succeeds.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

// testRuntime is an 800x480 pixel desktop viewport.
func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		CellW:    10,
		CellH:    20,
		TickRate: 60,
		Seed:     seed,
		Device:   core.DeviceDesktop,
	}
}

// newQuietGame returns a game that never spawns anything and has no platforms.
func newQuietGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	g := New(WithRand(fixedRand{f: 0.999}), WithClock(clk))
	g.Reset(testRuntime(1))
	g.s.platforms = nil
	return g, clk
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestInitialize(t *testing.T) {
	g, _ := newQuietGame(t)
	g.Reset(testRuntime(1))

	p := g.s.player
	if p.W != 58 || p.H != 58 {
		t.Errorf("expected 58px player on 800x480, got %vx%v", p.W, p.H)
	}
	if p.X != 50 {
		t.Errorf("expected player x 50, got %v", p.X)
	}
	if p.Feet() != g.world.groundY {
		t.Errorf("player should stand on the ground line %v, feet at %v", g.world.groundY, p.Feet())
	}
	if p.State() != Grounded {
		t.Errorf("expected grounded player, got %s", p.State())
	}
	if g.s.chill != config.ChillMax {
		t.Errorf("expected full chill meter, got %v", g.s.chill)
	}
	if len(g.s.sky) != g.cfg.Sky.Count {
		t.Errorf("expected %d sky objects, got %d", g.cfg.Sky.Count, len(g.s.sky))
	}
	if n := len(g.s.platforms); n < 3 || n > 5 {
		t.Errorf("expected 3-5 initial platforms, got %d", n)
	}
	if len(g.s.tokens) != 0 || len(g.s.obstacles) != 0 {
		t.Error("tokens and obstacles should start empty")
	}
}

func TestJumpArcReturnsToGround(t *testing.T) {
	g, _ := newQuietGame(t)
	groundTop := g.world.groundY - g.s.player.H

	events := g.Activate(false)
	if len(events) != 1 || events[0] != core.EventJump {
		t.Fatalf("expected a single jump event, got %v", events)
	}
	if !g.s.player.Jumping {
		t.Fatal("player should be jumping")
	}
	if g.s.player.VY != g.cfg.Physics.JumpVelocity {
		t.Fatalf("expected yVelocity %v, got %v", g.cfg.Physics.JumpVelocity, g.s.player.VY)
	}

	g.Step(idle())
	if g.s.player.Y >= groundTop {
		t.Errorf("jump should move player up, y=%v ground=%v", g.s.player.Y, groundTop)
	}

	landed := false
	for i := 0; i < 300; i++ {
		g.Step(idle())
		if !g.s.player.Jumping {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("player never landed")
	}
	p := g.s.player
	if p.Y != groundTop || p.VY != 0 || p.OnPlatform {
		t.Errorf("expected player at rest on the ground, got y=%v vy=%v onPlatform=%v", p.Y, p.VY, p.OnPlatform)
	}
}

func TestJumpIsIdempotentWhileAirborne(t *testing.T) {
	g, _ := newQuietGame(t)

	g.Step(press(core.ActionActivate))
	vy := g.s.player.VY

	if events := g.Activate(false); len(events) != 0 {
		t.Errorf("second jump should emit nothing, got %v", events)
	}
	if g.s.player.VY != vy {
		t.Errorf("second jump changed velocity from %v to %v", vy, g.s.player.VY)
	}
}

func TestTokenCollectedOnce(t *testing.T) {
	g, _ := newQuietGame(t)
	p := g.s.player
	g.s.chill = 95
	g.s.tokens = []Token{{X: p.X + 10, Y: p.Y, W: 20, H: 20}}

	res := g.Step(idle())

	if res.State.Score != g.cfg.Scoring.PerToken {
		t.Errorf("expected score %d, got %d", g.cfg.Scoring.PerToken, res.State.Score)
	}
	if res.State.Chill != config.ChillMax {
		t.Errorf("chill should cap at %v, got %v", config.ChillMax, res.State.Chill)
	}
	if len(g.s.tokens) != 0 {
		t.Errorf("collected token should be removed, %d left", len(g.s.tokens))
	}
	if !hasEvent(res.Events, core.EventTokenCollected) {
		t.Errorf("expected tokenCollected event, got %v", res.Events)
	}

	res = g.Step(idle())
	if res.State.Score != g.cfg.Scoring.PerToken {
		t.Errorf("token scored twice: %d", res.State.Score)
	}
}

func TestConsumedEntitiesHaveNoEffect(t *testing.T) {
	g, _ := newQuietGame(t)
	p := g.s.player
	g.s.chill = 50
	g.s.tokens = []Token{{X: p.X, Y: p.Y, W: 20, H: 20, Collected: true}}
	g.s.obstacles = []Obstacle{{X: p.X, Y: p.Y, W: 20, H: 20, Hit: true}}

	events := collide(&g.s, &g.cfg)

	if len(events) != 0 {
		t.Errorf("expected no events, got %v", events)
	}
	if g.s.score != 0 || g.s.chill != 50 {
		t.Errorf("consumed entities changed state: score=%d chill=%v", g.s.score, g.s.chill)
	}
	if len(g.s.tokens) != 0 || len(g.s.obstacles) != 0 {
		t.Error("consumed entities should leave the active set")
	}
}

func TestObstacleDepletesChill(t *testing.T) {
	g, _ := newQuietGame(t)
	g.cfg.Chill.Decrement = 20
	p := g.s.player
	g.s.chill = 15
	g.s.obstacles = []Obstacle{{X: p.X + 10, Y: p.Y + 10, W: 20, H: 20}}

	res := g.Step(idle())

	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if res.State.Chill != 0 {
		t.Errorf("chill should clamp to 0, got %v", res.State.Chill)
	}
	if !hasEvent(res.Events, core.EventObstacleHit) || !hasEvent(res.Events, core.EventGameOver) {
		t.Errorf("expected obstacleHit and gameOver events, got %v", res.Events)
	}

	// Terminal until restart
	tick := g.s.tick
	g.Step(press(core.ActionActivate))
	if g.s.tick != tick || !g.s.gameOver {
		t.Error("simulation should not advance after game over")
	}
}

func TestObstacleHitAboveZeroKeepsRunning(t *testing.T) {
	g, _ := newQuietGame(t)
	p := g.s.player
	g.s.obstacles = []Obstacle{{X: p.X + 10, Y: p.Y + 10, W: 20, H: 20}}

	res := g.Step(idle())

	want := config.ChillMax - g.cfg.Chill.Decrement
	if res.State.Chill != want {
		t.Errorf("expected chill %v, got %v", want, res.State.Chill)
	}
	if res.State.GameOver {
		t.Error("one hit should not end the run")
	}
}

func TestLandOnPlatform(t *testing.T) {
	g, _ := newQuietGame(t)
	p := &g.s.player
	g.s.platforms = []Platform{{X: 0, Y: 250, W: 200, H: 20}}
	p.Jumping = true
	p.VY = 2
	p.Y = 250 - p.H - 4

	res := g.Step(idle())

	if p.Jumping || !p.OnPlatform {
		t.Fatalf("expected player on platform, jumping=%v onPlatform=%v", p.Jumping, p.OnPlatform)
	}
	if p.Feet() != 250 {
		t.Errorf("feet should rest on the platform top, got %v", p.Feet())
	}
	if p.VY != 0 {
		t.Errorf("expected zero velocity, got %v", p.VY)
	}
	if res.State.Score != g.cfg.Scoring.LandingBonus {
		t.Errorf("expected landing bonus %d, got %d", g.cfg.Scoring.LandingBonus, res.State.Score)
	}
}

func TestOverlappingPlatformsLandOnce(t *testing.T) {
	g, _ := newQuietGame(t)
	p := &g.s.player
	g.s.platforms = []Platform{
		{X: 0, Y: 250, W: 200, H: 20},
		{X: 20, Y: 252, W: 200, H: 20},
	}
	p.Jumping = true
	p.VY = 2
	p.Y = 250 - p.H - 4

	res := g.Step(idle())

	if res.State.Score != g.cfg.Scoring.LandingBonus {
		t.Errorf("expected a single landing bonus, got score %d", res.State.Score)
	}
	if p.Jumping && p.OnPlatform {
		t.Error("player cannot be jumping and on a platform")
	}
}

func TestNoLandingWhileRising(t *testing.T) {
	g, _ := newQuietGame(t)
	p := &g.s.player
	g.s.platforms = []Platform{{X: 0, Y: 250, W: 200, H: 20}}
	p.Jumping = true
	p.VY = -10
	p.Y = 250 - p.H + 3

	g.Step(idle())

	if p.OnPlatform {
		t.Error("a rising player must pass through platforms")
	}
}

func TestWalkOffPlatformStartsFall(t *testing.T) {
	g, _ := newQuietGame(t)
	p := &g.s.player
	g.s.platforms = []Platform{{X: 0, Y: 250, W: 100, H: 20}}
	p.OnPlatform = true
	p.Y = 250 - p.H

	for i := 0; i < 50; i++ {
		y := p.Y
		g.Step(idle())
		if !p.OnPlatform {
			if !p.Jumping {
				t.Fatal("leaving a platform should start a fall")
			}
			if p.VY != 0 {
				t.Errorf("fall should start at rest, got vy=%v", p.VY)
			}
			if p.Y != y {
				t.Errorf("player should not drop on the transition tick, y %v -> %v", y, p.Y)
			}
			return
		}
	}
	t.Fatal("player never left the platform")
}

func TestElapsedTimeScore(t *testing.T) {
	g, clk := newQuietGame(t)

	clk.Advance(900 * time.Millisecond)
	if res := g.Step(idle()); res.State.Score != 0 {
		t.Errorf("less than a second should not score, got %d", res.State.Score)
	}

	clk.Advance(1600 * time.Millisecond) // 2.5s total
	if res := g.Step(idle()); res.State.Score != 2 {
		t.Errorf("expected 2 points after 2.5s, got %d", res.State.Score)
	}

	clk.Advance(600 * time.Millisecond) // 3.1s total
	if res := g.Step(idle()); res.State.Score != 3 {
		t.Errorf("expected 3 points after 3.1s, got %d", res.State.Score)
	}
}

func TestPauseStopsClockAndSimulation(t *testing.T) {
	g, clk := newQuietGame(t)

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	tick := g.s.tick
	clk.Advance(5 * time.Second)
	g.Step(press(core.ActionActivate))
	if g.s.tick != tick {
		t.Error("paused game should not advance")
	}
	if g.s.player.Jumping {
		t.Error("activate should be ignored while paused")
	}

	res = g.Step(press(core.ActionPause))
	if res.State.Paused {
		t.Fatal("expected resumed state")
	}
	if res.State.Score != 0 {
		t.Errorf("paused time should not score, got %d", res.State.Score)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	clk := newFakeClock()
	g := New(WithClock(clk))
	g.Reset(testRuntime(7))

	for i := 0; i < 120; i++ {
		clk.Advance(16 * time.Millisecond)
		g.Step(idle())
	}
	g.s.score = 321
	g.s.tokens = append(g.s.tokens, Token{X: 400, Y: 100, W: 10, H: 10})
	g.s.obstacles = append(g.s.obstacles, Obstacle{X: 500, Y: 100, W: 10, H: 10})
	g.s.chill = 0
	checkGameOver(&g.s)

	// Plain activate does not restart
	g.Step(press(core.ActionActivate))
	if !g.IsOver() {
		t.Fatal("activate without targeting restart should keep the run over")
	}

	res := g.Step(press(core.ActionRestart))

	if res.State.GameOver {
		t.Error("restart should clear game over")
	}
	if res.State.Score != 0 {
		t.Errorf("restart should clear score, got %d", res.State.Score)
	}
	if res.State.Chill != config.ChillMax {
		t.Errorf("restart should refill chill, got %v", res.State.Chill)
	}
	if len(g.s.tokens) != 0 || len(g.s.obstacles) != 0 {
		t.Error("restart should clear tokens and obstacles")
	}
	if n := len(g.s.platforms); n < 3 || n > 5 {
		t.Errorf("expected a fresh set of 3-5 platforms, got %d", n)
	}
	if g.s.tick != 0 {
		t.Errorf("restart should clear tick count, got %d", g.s.tick)
	}
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	clk := newFakeClock()
	g := New(WithClock(clk))
	g.Reset(testRuntime(99))

	for i := 0; i < 5000; i++ {
		clk.Advance(16 * time.Millisecond)
		in := idle()
		if i%23 == 0 {
			in.Set(core.ActionActivate)
		}
		res := g.Step(in)

		if res.State.Chill < 0 || res.State.Chill > config.ChillMax {
			t.Fatalf("tick %d: chill out of range: %v", i, res.State.Chill)
		}
		if g.s.player.Jumping && g.s.player.OnPlatform {
			t.Fatalf("tick %d: player jumping and on platform", i)
		}
		if g.s.player.Feet() > g.world.groundY+1e-9 {
			t.Fatalf("tick %d: player below ground: feet=%v ground=%v", i, g.s.player.Feet(), g.world.groundY)
		}
		if res.State.GameOver {
			g.Step(press(core.ActionRestart))
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		clk := newFakeClock()
		g := New(WithClock(clk))
		g.Reset(testRuntime(12345))
		for i := 0; i < 600; i++ {
			clk.Advance(16 * time.Millisecond)
			in := idle()
			if i%15 == 0 {
				in.Set(core.ActionActivate)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs produced different sessions: score %d vs %d, tick %d vs %d",
			a.Score, b.Score, a.Tick, b.Tick)
	}
}

func TestSpawnProbabilities(t *testing.T) {
	g, _ := newQuietGame(t)

	spawn(&g.s, &g.cfg, g.world, fixedRand{f: 0})
	if len(g.s.tokens) != 1 || len(g.s.obstacles) != 1 || len(g.s.platforms) != 1 {
		t.Fatalf("a zero draw should spawn one of each, got %d/%d/%d",
			len(g.s.tokens), len(g.s.obstacles), len(g.s.platforms))
	}

	tok := g.s.tokens[0]
	if tok.X != g.world.vp.W+g.cfg.Token.SpawnMargin {
		t.Errorf("token should spawn off the right edge, x=%v", tok.X)
	}
	obs := g.s.obstacles[0]
	if math.Abs(obs.Y+obs.H-g.world.groundY) > 1e-9 {
		t.Errorf("obstacle should stand on the ground, bottom=%v", obs.Y+obs.H)
	}
	if obs.H < obs.W*g.cfg.Obstacle.MinHeightScale || obs.H > obs.W*g.cfg.Obstacle.MaxHeightScale {
		t.Errorf("obstacle height %v outside scale range for width %v", obs.H, obs.W)
	}
	pl := g.s.platforms[0]
	ph := g.world.playableHeight(&g.cfg)
	top := g.world.groundY - ph*g.cfg.Platform.MaxHeightRatio
	bottom := g.world.groundY - ph*g.cfg.Platform.MinHeightRatio
	if pl.Y < top || pl.Y > bottom {
		t.Errorf("platform y %v outside band [%v, %v]", pl.Y, top, bottom)
	}

	spawn(&g.s, &g.cfg, g.world, fixedRand{f: 0.999})
	if len(g.s.tokens) != 1 || len(g.s.obstacles) != 1 || len(g.s.platforms) != 1 {
		t.Error("a high draw should spawn nothing")
	}
}

func TestEntitiesPrunedOffScreen(t *testing.T) {
	g, _ := newQuietGame(t)
	g.s.tokens = []Token{{X: -15, Y: 0, W: 20, H: 20}, {X: 700, Y: 0, W: 20, H: 20}}
	g.s.obstacles = []Obstacle{{X: -5, Y: 0, W: 10, H: 10}}
	g.s.platforms = []Platform{{X: -150, Y: 100, W: 150, H: 20}}

	g.Step(idle())

	if len(g.s.tokens) != 1 || g.s.tokens[0].X != 690 {
		t.Errorf("expected only the on-screen token to survive, got %+v", g.s.tokens)
	}
	if len(g.s.obstacles) != 0 {
		t.Errorf("off-screen obstacle should be pruned")
	}
	if len(g.s.platforms) != 0 {
		t.Errorf("off-screen platform should be pruned")
	}
}

func TestPlatformsScrollSlower(t *testing.T) {
	g, _ := newQuietGame(t)
	g.s.platforms = []Platform{{X: 600, Y: 100, W: 150, H: 20}}
	g.s.obstacles = []Obstacle{{X: 600, Y: 0, W: 10, H: 10}}

	g.Step(idle())

	wantPlatform := 600 - g.cfg.Physics.MovementSpeed*g.cfg.Platform.SpeedFactor
	if g.s.platforms[0].X != wantPlatform {
		t.Errorf("platform x = %v, want %v", g.s.platforms[0].X, wantPlatform)
	}
	if g.s.obstacles[0].X != 600-g.cfg.Physics.MovementSpeed {
		t.Errorf("obstacle x = %v", g.s.obstacles[0].X)
	}
}

func TestSkyRecycles(t *testing.T) {
	g, _ := newQuietGame(t)
	g.s.sky = []SkyObject{{X: -30, Y: 10, Size: 20, Speed: 1, Rotation: 1, Opacity: 0.8}}

	g.Step(idle())

	o := g.s.sky[0]
	if o.X != g.world.vp.W {
		t.Errorf("sky object should wrap to the right edge, x=%v", o.X)
	}
	if o.Y < 0 || o.Y > g.world.vp.H/2 {
		t.Errorf("recycled sky object should be in the top half, y=%v", o.Y)
	}
	if o.Size != 20 || o.Opacity != 0.8 {
		t.Error("recycling should keep size and opacity")
	}
}

func TestSkyRotationByType(t *testing.T) {
	g, _ := newQuietGame(t)
	g.s.sky = []SkyObject{{X: 400, Y: 10, Size: 20, Speed: 1, Rotation: 1}}
	g.Step(idle())
	if g.s.sky[0].Rotation != 1 {
		t.Error("clouds should not rotate")
	}

	if err := g.SetSkyType(config.SkyAsteroids); err != nil {
		t.Fatalf("SetSkyType failed: %v", err)
	}
	g.s.sky = []SkyObject{{X: 400, Y: 10, Size: 20, Speed: 1, Rotation: 1}}
	g.Step(idle())
	if math.Abs(g.s.sky[0].Rotation-(1+g.cfg.Sky.RotationSpeed)) > 1e-12 {
		t.Errorf("asteroids should rotate, got %v", g.s.sky[0].Rotation)
	}

	if err := g.SetSkyType("balloons"); err == nil {
		t.Error("expected error for unknown sky type")
	}
	if g.SkyType() != config.SkyAsteroids {
		t.Errorf("failed SetSkyType should keep the previous type, got %q", g.SkyType())
	}
}

func TestAnimationAdvances(t *testing.T) {
	g, _ := newQuietGame(t)
	interval := g.cfg.Player.AnimationInterval

	for i := 0; i < interval; i++ {
		g.Step(idle())
	}
	if g.s.player.Frame != 0 {
		t.Errorf("frame advanced too early: %d", g.s.player.Frame)
	}
	g.Step(idle())
	if g.s.player.Frame != 1 {
		t.Errorf("expected frame 1 after %d ticks, got %d", interval+1, g.s.player.Frame)
	}
}

func TestHighScoreTracking(t *testing.T) {
	g, _ := newQuietGame(t)
	g.SetHighScore(5)
	p := g.s.player
	g.s.tokens = []Token{{X: p.X + 10, Y: p.Y, W: 20, H: 20}}

	res := g.Step(idle())

	if !res.HighScoreChanged {
		t.Error("expected HighScoreChanged")
	}
	if res.State.HighScore != 10 {
		t.Errorf("expected high score 10, got %d", res.State.HighScore)
	}
	if res = g.Step(idle()); res.HighScoreChanged {
		t.Error("high score should only change when passed")
	}
}

func TestMagnetismPullsNearbyTokens(t *testing.T) {
	g, _ := newQuietGame(t)
	g.cfg.Magnetism.Enabled = true
	p := g.s.player
	pcx, _ := p.Box().Center()
	near := Token{X: pcx + 40, Y: p.Y, W: 10, H: 10}
	far := Token{X: pcx + 400, Y: p.Y, W: 10, H: 10}
	tokens := []Token{near, far}

	magnetize(&p, tokens, &g.cfg)

	if tokens[0].X >= near.X {
		t.Errorf("near token should move toward the player, x %v -> %v", near.X, tokens[0].X)
	}
	if tokens[1].X != far.X || tokens[1].Y != far.Y {
		t.Error("far token should not move")
	}
}

func TestResizeSameDeviceKeepsProgress(t *testing.T) {
	g, _ := newQuietGame(t)
	g.s.score = 40
	g.s.tokens = []Token{{X: 600, Y: 300, W: 20, H: 20}}

	rt := testRuntime(1)
	rt.ScreenW, rt.ScreenH = 100, 30 // 1000x600
	g.Resize(rt)

	if g.s.score != 40 || len(g.s.tokens) != 1 {
		t.Error("resize should keep score and entities")
	}
	p := g.s.player
	if p.H != 72 {
		t.Errorf("expected player size 72 on 1000x600, got %v", p.H)
	}
	if p.Feet() != 450 {
		t.Errorf("grounded player should follow the ground line, feet=%v", p.Feet())
	}
	if g.hud.Spacing != 30 {
		t.Errorf("expected HUD spacing 30, got %v", g.hud.Spacing)
	}
}

func TestResizeOnPlatformStartsFall(t *testing.T) {
	g, _ := newQuietGame(t)
	p := &g.s.player
	g.s.platforms = []Platform{{X: 0, Y: 250, W: 200, H: 20}}
	p.OnPlatform = true
	p.Y = 250 - p.H

	rt := testRuntime(1)
	rt.ScreenW = 90
	g.Resize(rt)

	if p.OnPlatform || !p.Jumping || p.VY != 0 {
		t.Errorf("expected free fall after resize, got %+v", *p)
	}
}

func TestResizeDeviceChangeRestartsRun(t *testing.T) {
	g, _ := newQuietGame(t)
	g.s.score = 40

	rt := testRuntime(1)
	rt.Device = core.DeviceAuto
	rt.ScreenW = 40 // 400px wide resolves to mobile
	g.Resize(rt)

	if g.Config().Device != config.DeviceMobile {
		t.Fatalf("expected mobile config, got %q", g.Config().Device)
	}
	if g.s.score != 0 {
		t.Errorf("device change should restart the run, score=%d", g.s.score)
	}
	if g.cfg.Physics.JumpVelocity != -15 {
		t.Errorf("expected mobile jump velocity, got %v", g.cfg.Physics.JumpVelocity)
	}
}

func TestResizeDuringGameOverKeepsResult(t *testing.T) {
	g, _ := newQuietGame(t)
	g.s.score = 77
	g.s.chill = 0
	checkGameOver(&g.s)

	rt := testRuntime(1)
	rt.Device = core.DeviceAuto
	rt.ScreenW = 40
	g.Resize(rt)

	if !g.IsOver() {
		t.Fatal("resize must not resurrect a finished run")
	}
	if g.s.score != 77 {
		t.Errorf("final score should stay on screen, got %d", g.s.score)
	}
	if g.Config().Device != config.DeviceMobile {
		t.Errorf("new config should be resolved for the next run")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, _ := newQuietGame(t)
	g.s.tokens = []Token{{X: 600, Y: 300, W: 20, H: 20}}

	snap := g.Snapshot()
	snap.Tokens[0].X = 0
	snap.Player.Y = 0

	if g.s.tokens[0].X != 600 {
		t.Error("mutating a snapshot changed session tokens")
	}
	if g.s.player.Y == 0 {
		t.Error("mutating a snapshot changed the player")
	}
	if snap.PlayerState != "grounded" {
		t.Errorf("unexpected player state %q", snap.PlayerState)
	}
}

func TestStepBeforeReset(t *testing.T) {
	g := New()
	res := g.Step(press(core.ActionActivate))
	if res.State.GameOver || len(res.Events) != 0 {
		t.Error("uninitialized game should be inert")
	}
}

func hasEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}
