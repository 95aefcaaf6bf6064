// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the studio app and the headless
// export tool
type Config struct {
	// AssetsDir is the directory asset paths resolve against.
	AssetsDir string `env:"WOJAK_ASSETS_DIR" envDefault:"."`

	// CanvasWidth/CanvasHeight size the composition surface.
	CanvasWidth  int `env:"WOJAK_CANVAS_W" envDefault:"900"`
	CanvasHeight int `env:"WOJAK_CANVAS_H" envDefault:"900"`

	// ManifestPath optionally replaces the built-in catalogue.
	ManifestPath string `env:"WOJAK_MANIFEST"`

	// WeightsPath optionally overrides the randomizer weight table.
	WeightsPath string `env:"WOJAK_WEIGHTS"`
}

// Load parses the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
