package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/chill-runner/internal/core"
)

// Waveform returns the sample value at time t seconds.
type Waveform func(t float64) float64

// synth renders a Waveform for a fixed duration.
type synth struct {
	wave  Waveform
	rate  beep.SampleRate
	pos   int
	total int
}

// NewSynth creates a finite streamer from a waveform. Samples are clamped
// to [-1, 1] and duplicated on both channels.
func NewSynth(wave Waveform, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &synth{
		wave:  wave,
		rate:  rate,
		total: rate.N(duration),
	}
}

func (s *synth) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.rate)
		v := math.Max(-1, math.Min(1, s.wave(t)))
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *synth) Err() error { return nil }

// Effect durations
const (
	jumpDuration     = 300 * time.Millisecond
	tokenDuration    = 200 * time.Millisecond
	obstacleDuration = 300 * time.Millisecond
	gameOverDuration = time.Second
)

// jumpWave is a falling chirp with a quick decay.
func jumpWave(t float64) float64 {
	return math.Sin(440*2*math.Pi*t*(1-t*2)) * math.Exp(-10*t)
}

// tokenWave is a bright rising tone.
func tokenWave(t float64) float64 {
	return math.Sin(880*2*math.Pi*t*(1+t)) * math.Exp(-5*t)
}

// obstacleWave is a low two-partial thud.
func obstacleWave(t float64) float64 {
	return math.Sin(150*2*math.Pi*t)*math.Exp(-8*t) +
		math.Sin(100*2*math.Pi*t)*math.Exp(-5*t)*0.5
}

// gameOverWave is a slow descending pair of tones.
func gameOverWave(t float64) float64 {
	return math.Sin(440*2*math.Pi*t*(1-t*0.5))*math.Exp(-3*t) +
		math.Sin(220*2*math.Pi*t*(1-t*0.5))*math.Exp(-3*t)*0.5
}

// Effect returns the streamer for a simulation event, or nil when the event
// has no sound.
func Effect(e core.Event, rate beep.SampleRate) beep.Streamer {
	switch e {
	case core.EventJump:
		return NewSynth(jumpWave, jumpDuration, rate)
	case core.EventTokenCollected:
		return NewSynth(tokenWave, tokenDuration, rate)
	case core.EventObstacleHit:
		return NewSynth(obstacleWave, obstacleDuration, rate)
	case core.EventGameOver:
		return NewSynth(gameOverWave, gameOverDuration, rate)
	default:
		return nil
	}
}
