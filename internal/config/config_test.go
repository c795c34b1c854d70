package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCanvas(t *testing.T) {
	cv := Default().LayoutCanvas()
	if cv.Width != DefaultWidth || cv.Height != DefaultHeight {
		t.Errorf("canvas: %+v", cv)
	}
	if cv.MaxSpread != DefaultHeight*DefaultSpreadFrac {
		t.Errorf("max spread should default from height: %f", cv.MaxSpread)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votemap.yaml")
	body := `
mode: scatter
color_policy: gradient
workers: 4
canvas:
  width: 1200
  height: 800
palette:
  dem: "#0000ff"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "scatter" || cfg.Workers != 4 {
		t.Errorf("config: %+v", cfg)
	}
	cv := cfg.LayoutCanvas()
	if cv.Width != 1200 || cv.Height != 800 {
		t.Errorf("canvas: %+v", cv)
	}
	// Padding was not set: default applies.
	if cv.PaddingX != DefaultPaddingX {
		t.Errorf("padding: %f", cv.PaddingX)
	}

	pal, err := cfg.BuildPalette()
	if err != nil {
		t.Fatal(err)
	}
	if pal.Dem.Hex() != "#0000ff" {
		t.Errorf("dem color: %s", pal.Dem.Hex())
	}
	// Unset entries keep defaults.
	if pal.Rep.Hex() != "#b2182b" {
		t.Errorf("rep color: %s", pal.Rep.Hex())
	}
}

func TestBuildPaletteRejectsBadHex(t *testing.T) {
	cfg := Default()
	cfg.Palette.Neutral = "not-a-color"
	if _, err := cfg.BuildPalette(); err == nil {
		t.Error("bad hex should fail")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votemap.yaml")
	cfg := Default()
	cfg.Database = "election.db"
	cfg.Canvas.MaxSpread = 150

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Database != "election.db" || got.Canvas.MaxSpread != 150 {
		t.Errorf("roundtrip: %+v", got)
	}
}

func TestPresetsAreValid(t *testing.T) {
	for name, cfg := range Presets {
		if _, err := cfg.BuildPalette(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		cv := cfg.LayoutCanvas()
		if cv.Width <= 0 || cv.Height <= 0 {
			t.Errorf("preset %s canvas: %+v", name, cv)
		}
	}
}
