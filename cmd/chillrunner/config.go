package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chill-runner/internal/config"
	"github.com/vovakirdan/chill-runner/internal/core"
)

var (
	flagViewW int
	flagViewH int
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Resolve the configuration for a device class and viewport and print it as
YAML. Useful as a starting point for a custom config file.

Without --width/--height the current terminal size is used.

Examples:
  chillrunner config
  chillrunner config --device mobile
  chillrunner config --width 375 --height 667
  chillrunner config --config ./my-chill.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().IntVar(&flagViewW, "width", 0, "Viewport width in pixels")
	configCmd.Flags().IntVar(&flagViewH, "height", 0, "Viewport height in pixels")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	vp := terminalRuntime(doc).Viewport()
	if flagViewW > 0 {
		vp.W = float64(flagViewW)
	}
	if flagViewH > 0 {
		vp.H = float64(flagViewH)
	}
	cfg := doc.Resolve(config.DetectDevice(flagDevice, vp), vp)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# source: %s\n", doc.Source)
	fmt.Fprintf(w, "# device: %s, viewport: %s\n", cfg.Device, viewportString(vp))
	_, err = w.Write(out)
	return err
}

func viewportString(vp core.Viewport) string {
	return fmt.Sprintf("%.0fx%.0f", vp.W, vp.H)
}
