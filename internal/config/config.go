package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/votemap/internal/colors"
	"github.com/san-kum/votemap/internal/layout"
)

const (
	DefaultWidth      = 960.0
	DefaultHeight     = 600.0
	DefaultPaddingX   = 40.0
	DefaultSpreadFrac = 0.35
)

type Config struct {
	Geometry string        `yaml:"geometry"`
	Database string        `yaml:"database"`
	Mode     string        `yaml:"mode"`
	Policy   string        `yaml:"color_policy"`
	Workers  int           `yaml:"workers"`
	Canvas   CanvasConfig  `yaml:"canvas"`
	Palette  PaletteConfig `yaml:"palette"`
}

type CanvasConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	PaddingX float64 `yaml:"padding_x"`
	// MaxSpread of the scatter mode, as an absolute distance. Zero means
	// DefaultSpreadFrac of the canvas height.
	MaxSpread float64 `yaml:"max_spread"`
}

type PaletteConfig struct {
	Dem     string `yaml:"dem"`
	Rep     string `yaml:"rep"`
	Other   string `yaml:"other"`
	Neutral string `yaml:"neutral"`
	NoData  string `yaml:"no_data"`
}

func Default() *Config {
	return &Config{
		Mode:   "geographic",
		Policy: "winner",
		Canvas: CanvasConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			PaddingX: DefaultPaddingX,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LayoutCanvas resolves the canvas with defaults applied.
func (c *Config) LayoutCanvas() layout.Canvas {
	cv := c.Canvas
	if cv.Width <= 0 {
		cv.Width = DefaultWidth
	}
	if cv.Height <= 0 {
		cv.Height = DefaultHeight
	}
	if cv.PaddingX <= 0 {
		cv.PaddingX = DefaultPaddingX
	}
	if cv.MaxSpread <= 0 {
		cv.MaxSpread = cv.Height * DefaultSpreadFrac
	}
	return layout.Canvas{
		Width:     cv.Width,
		Height:    cv.Height,
		PaddingX:  cv.PaddingX,
		MaxSpread: cv.MaxSpread,
	}
}

// BuildPalette resolves the palette, falling back to the default color for
// any unset entry.
func (c *Config) BuildPalette() (colors.Palette, error) {
	p := colors.DefaultPalette()
	for _, field := range []struct {
		hex string
		dst *colorful.Color
	}{
		{c.Palette.Dem, &p.Dem},
		{c.Palette.Rep, &p.Rep},
		{c.Palette.Other, &p.Other},
		{c.Palette.Neutral, &p.Neutral},
		{c.Palette.NoData, &p.NoData},
	} {
		if field.hex == "" {
			continue
		}
		col, err := colorful.Hex(field.hex)
		if err != nil {
			return p, fmt.Errorf("palette color %q: %w", field.hex, err)
		}
		*field.dst = col
	}
	return p, nil
}
