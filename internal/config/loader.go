package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chill-runner/internal/core"
)

// Document is a parsed configuration file. Sections are kept as raw nodes so
// that partial overrides can be layered onto defaults at resolution time.
type Document struct {
	Base    yaml.Node `yaml:"base"`
	Mobile  yaml.Node `yaml:"mobile"`
	Desktop yaml.Node `yaml:"desktop"`

	// Source is the file the document was read from, or "embedded".
	Source string `yaml:"-"`
}

// Load loads the configuration document.
// Search order: customPath -> ~/.chillrunner/configs/chill.yaml -> ./configs/chill.yaml -> embedded default
func Load(customPath string) (*Document, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		doc, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		doc.Source = customPath
		return doc, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("chill.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if doc, err := Parse(data); err == nil {
				doc.Source = userCfgPath
				return doc, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "chill.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if doc, err := Parse(data); err == nil {
			doc.Source = localPath
			return doc, nil
		}
	}

	// Use embedded default YAML
	doc, err := Parse(defaultChillYAML)
	if err != nil {
		// Fallback to hardcoded defaults if embed fails
		return &Document{Source: "builtin"}, nil
	}
	doc.Source = "embedded"
	return doc, nil
}

// Parse decodes a configuration document and checks that every section
// decodes onto Config, so that Resolve cannot fail later.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	sections := []struct {
		name string
		node *yaml.Node
	}{
		{"base", &doc.Base},
		{"mobile", &doc.Mobile},
		{"desktop", &doc.Desktop},
	}
	for _, sec := range sections {
		cfg := DefaultConfig()
		if err := decodeSection(sec.node, &cfg); err != nil {
			return nil, fmt.Errorf("section %s: %w", sec.name, err)
		}
	}
	return &doc, nil
}

// Resolve produces the normalized parameter set for a device class and
// viewport. Sections are layered onto the hardcoded defaults of the device
// class, so a nil document or a missing section keeps those defaults.
func (d *Document) Resolve(device DeviceClass, vp core.Viewport) Config {
	if device != DeviceMobile {
		device = DeviceDesktop
	}
	cfg := DefaultConfigFor(device)
	if d != nil {
		_ = decodeSection(&d.Base, &cfg)
		switch device {
		case DeviceMobile:
			_ = decodeSection(&d.Mobile, &cfg)
		default:
			_ = decodeSection(&d.Desktop, &cfg)
		}
	}
	cfg.Device = device
	cfg.Normalize(vp)
	return cfg
}

// ApplyDisplay sets the cell-to-pixel mapping of rt from the base section.
// The mapping must be known before the device class can be detected, so
// device sections cannot override it.
func (d *Document) ApplyDisplay(rt *core.RuntimeConfig) {
	cfg := DefaultConfig()
	if d != nil {
		_ = decodeSection(&d.Base, &cfg)
	}
	def := DefaultConfig().Display
	rt.CellW = positiveInt(cfg.Display.CellWidth, def.CellWidth)
	rt.CellH = positiveInt(cfg.Display.CellHeight, def.CellHeight)
}

func positiveInt(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}

// decodeSection layers a section onto cfg. Keys absent from the node keep
// their current value.
func decodeSection(node *yaml.Node, cfg *Config) error {
	if node == nil || node.Kind == 0 {
		return nil
	}
	return node.Decode(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chillrunner", "configs", filename)
}
