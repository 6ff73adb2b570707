// chillrunner is an endless side-scrolling runner for the terminal, SSH and
// the browser.
//
// Usage:
//
//	chillrunner                 - Start with the title menu
//	chillrunner play            - Start a run straight away
//	chillrunner serve           - Start SSH server for remote play
//	chillrunner web             - Start the websocket host for browsers
//	chillrunner scores          - Show the run history
//	chillrunner config          - Print the resolved configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.chillrunner/scores.db)
//	--config <path>    - Use a custom config YAML
//	--device <class>   - Force auto, mobile or desktop parameters
//	--log-level <lvl>  - debug, info, warn or error
//	--mute             - Disable sound effects
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagDevice   string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chillrunner",
	Short: "Chillguy Runner - stay chill, jump obstacles, collect tokens",
	Long: `Chillguy Runner is an endless side-scrolling runner. Jump over obstacles,
land on floating platforms and collect tokens to keep your chill meter up.

Available commands:
  play     - Start a run straight away
  serve    - Start SSH server for remote play
  web      - Stream sessions to browsers over websockets
  scores   - View the run history
  config   - Print the resolved configuration

Examples:
  chillrunner
  chillrunner play --seed 42
  chillrunner serve --ssh :2222
  chillrunner web --addr :8080
  chillrunner config --device mobile`,
	SilenceUsage:      true,
	PersistentPreRunE: validateGlobalFlags,
	RunE:              runMenu,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.chillrunner/scores.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagDevice, "device", "auto", "Device class: auto, mobile or desktop")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

func validateGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	device, err := config.ParseDevice(flagDevice)
	if err != nil {
		return err
	}
	flagDevice = device
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	return nil
}

// newLogger creates a leveled logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, _ := log.ParseLevel(flagLogLevel)
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// fileLogger logs to ~/.chillrunner/chillrunner.log so the terminal UI stays
// clean. It falls back to discarding output when the file cannot be opened.
func fileLogger(prefix string) (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	dir := filepath.Join(home, ".chillrunner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "chillrunner.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	return newLogger(f, prefix), func() { f.Close() }
}

// loadDocument loads the game configuration document.
func loadDocument() (*config.Document, error) {
	doc, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return doc, nil
}

// stdoutIsTerminal reports whether output goes to a terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalRuntime builds the runtime for the local terminal.
func terminalRuntime(doc *config.Document) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	rt.Device = flagDevice
	doc.ApplyDisplay(&rt)
	return rt
}
