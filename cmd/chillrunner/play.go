package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chill-runner/internal/audio"
	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
	"github.com/vovakirdan/chill-runner/internal/platform/tui"
	"github.com/vovakirdan/chill-runner/internal/storage"
)

var flagSky string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run straight away",
	Long: `Start playing immediately, skipping the title menu.

Controls:
  Space/Up/W     - Jump (click works too)
  Enter/R/Space  - Play again after game over
  P              - Pause
  M              - Mute
  Esc/B          - Back to menu (paused or game over)
  Q/Ctrl+C       - Quit

Examples:
  chillrunner play
  chillrunner play --sky rockets
  chillrunner play --device mobile --seed 42
  chillrunner play --config ./my-chill.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLocal(true)
	},
}

func init() {
	playCmd.Flags().StringVar(&flagSky, "sky", "", "Sky objects: clouds, asteroids or rockets")
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runLocal(false)
}

// runLocal runs a terminal session, optionally skipping the menu.
func runLocal(startInGame bool) error {
	switch flagSky {
	case "", config.SkyClouds, config.SkyAsteroids, config.SkyRockets:
	default:
		return fmt.Errorf("unknown sky type %q", flagSky)
	}

	if !stdoutIsTerminal() {
		return fmt.Errorf("playing needs a terminal; use 'chillrunner web' or 'chillrunner serve' instead")
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger("chillrunner")
	defer closeLog()
	logger.Info("config loaded", "source", doc.Source)

	// The game still works without storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	runtime := terminalRuntime(doc)
	sink := newSoundSink(doc, runtime, logger)

	opts := tui.Options{
		Store:    store,
		Document: doc,
		Logger:   logger,
		SkyType:  flagSky,
	}
	if sink != nil {
		opts.Sink = sink
		defer sink.Close()
	}

	if startInGame {
		err = tui.Run(opts, runtime)
	} else {
		err = tui.RunSession(opts, runtime)
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newSoundSink opens the audio device, or returns nil when sound is
// disabled or unavailable.
func newSoundSink(doc *config.Document, runtime core.RuntimeConfig, logger *log.Logger) *audio.Player {
	vp := runtime.Viewport()
	cfg := doc.Resolve(config.DetectDevice(runtime.Device, vp), vp)
	if flagMute || !cfg.Sound.Enabled {
		return nil
	}
	player := audio.NewPlayer(cfg.Sound)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return nil
	}
	return player
}
