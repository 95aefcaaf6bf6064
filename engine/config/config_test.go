package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AssetsDir != "." {
		t.Errorf("AssetsDir = %q, want .", cfg.AssetsDir)
	}
	if cfg.CanvasWidth != 900 || cfg.CanvasHeight != 900 {
		t.Errorf("canvas = %dx%d, want 900x900", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.ManifestPath != "" || cfg.WeightsPath != "" {
		t.Errorf("override paths should default empty: %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WOJAK_ASSETS_DIR", "/srv/traits")
	t.Setenv("WOJAK_CANVAS_W", "512")
	t.Setenv("WOJAK_CANVAS_H", "256")
	t.Setenv("WOJAK_WEIGHTS", "weights.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AssetsDir != "/srv/traits" {
		t.Errorf("AssetsDir = %q", cfg.AssetsDir)
	}
	if cfg.CanvasWidth != 512 || cfg.CanvasHeight != 256 {
		t.Errorf("canvas = %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.WeightsPath != "weights.yaml" {
		t.Errorf("WeightsPath = %q", cfg.WeightsPath)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WOJAK_CANVAS_W", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("malformed canvas width accepted")
	}
}
