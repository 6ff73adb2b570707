package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

// drain streams s to the end and returns the samples it produced.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n < len(buf) {
			return out
		}
	}
}

func TestEffectsForEvents(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		event    core.Event
		duration time.Duration
	}{
		{core.EventJump, jumpDuration},
		{core.EventTokenCollected, tokenDuration},
		{core.EventObstacleHit, obstacleDuration},
		{core.EventGameOver, gameOverDuration},
	}
	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			s := Effect(tt.event, rate)
			if s == nil {
				t.Fatal("expected a streamer")
			}
			samples := drain(s)
			if len(samples) != rate.N(tt.duration) {
				t.Errorf("expected %d samples, got %d", rate.N(tt.duration), len(samples))
			}
			for i, v := range samples {
				if v[0] < -1 || v[0] > 1 || v[0] != v[1] {
					t.Fatalf("sample %d out of range or not mono: %v", i, v)
				}
			}
			if s.Err() != nil {
				t.Errorf("unexpected error: %v", s.Err())
			}
		})
	}
}

func TestEffectUnknownEvent(t *testing.T) {
	if s := Effect(core.Event("nope"), sampleRate); s != nil {
		t.Error("expected nil streamer for unknown event")
	}
}

func TestSynthClampsWaveform(t *testing.T) {
	rate := beep.SampleRate(100)
	s := NewSynth(func(float64) float64 { return 3 }, 50*time.Millisecond, rate)

	samples := drain(s)
	if len(samples) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(samples))
	}
	for _, v := range samples {
		if v[0] != 1 {
			t.Errorf("expected clamped sample 1, got %v", v[0])
		}
	}

	// Exhausted streamer reports done
	if n, ok := s.Stream(make([][2]float64, 4)); n != 0 || ok {
		t.Errorf("exhausted synth returned n=%d ok=%v", n, ok)
	}
}

func TestPlayerIgnoresEventsBeforeInit(t *testing.T) {
	p := NewPlayer(config.SoundConfig{Enabled: true, Volume: config.VolumeLevel{Master: 1, Effects: 1}})
	p.Handle(core.EventJump)
	if p.mixer.Len() != 0 {
		t.Error("uninitialized player should not queue effects")
	}
}

func TestPlayerQueuesAndMutes(t *testing.T) {
	p := NewPlayer(config.SoundConfig{Enabled: true, Volume: config.VolumeLevel{Master: 1, Effects: 0.5}})
	p.initialized = true // skip opening a device

	p.Handle(core.EventTokenCollected)
	if p.mixer.Len() != 1 {
		t.Fatalf("expected 1 queued effect, got %d", p.mixer.Len())
	}

	p.SetMuted(true)
	if !p.Muted() {
		t.Error("expected muted player")
	}
	p.Handle(core.EventJump)
	if p.mixer.Len() != 1 {
		t.Error("muted player should not queue effects")
	}
}

func TestDisabledPlayerInitIsNoop(t *testing.T) {
	p := NewPlayer(config.SoundConfig{Enabled: false})
	if err := p.Init(); err != nil {
		t.Fatalf("Init on disabled player failed: %v", err)
	}
	p.Handle(core.EventJump)
	if p.mixer.Len() != 0 {
		t.Error("disabled player should stay silent")
	}
}

func TestNewVolumeSilence(t *testing.T) {
	s := newVolume(NewSynth(func(float64) float64 { return 1 }, 10*time.Millisecond, beep.SampleRate(1000)), 0)
	for _, v := range drain(s) {
		if v[0] != 0 {
			t.Fatalf("zero volume should be silent, got %v", v[0])
		}
	}
}
