package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/san-kum/votemap/internal/colors"
	"github.com/san-kum/votemap/internal/dataset"
	"github.com/san-kum/votemap/internal/engine"
	"github.com/san-kum/votemap/internal/export"
	"github.com/san-kum/votemap/internal/geo"
	"github.com/san-kum/votemap/internal/layout"
)

// demoUnits is the synthetic geometry size when --demo is set.
const demoUnits = 240

var demoYears = []int{2000, 2004, 2008, 2012, 2016, 2020, 2024}

func buildEngine() (*engine.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if geomPath != "" {
		cfg.Geometry = geomPath
	}
	if dbPath != "" {
		cfg.Database = dbPath
	}
	if workers != 0 {
		cfg.Workers = workers
	}

	canvas := cfg.LayoutCanvas()
	palette, err := cfg.BuildPalette()
	if err != nil {
		return nil, err
	}

	var (
		units []geo.Unit
		ds    *dataset.Dataset
	)
	if demo || (cfg.Geometry == "" && cfg.Database == "") {
		units = geo.DemoGrid(demoUnits, canvas.Width, canvas.Height)
		ds = dataset.Demo(units, demoYears)
	} else {
		units, ds, err = dataset.LoadAll(cfg.Geometry, cfg.Database)
		if err != nil {
			return nil, err
		}
	}

	return engine.New(units, ds, canvas, palette, engine.Options{
		Workers: cfg.Workers,
		Logger:  newLogger(),
	}), nil
}

func runLayout(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	mode, ok := layout.ParseMode(modeName)
	if !ok {
		return fmt.Errorf("unknown mode %q", modeName)
	}
	policy, ok := colors.ParsePolicy(policyName)
	if !ok {
		return fmt.Errorf("unknown color policy %q", policyName)
	}

	year, err = eng.Dataset().ResolveYear(year)
	if err != nil {
		return err
	}

	positions := eng.ComputeLayout(mode, year)
	if positions == nil && mode != layout.ModeGeographic {
		return fmt.Errorf("no layout for %s %d (missing or empty period)", mode, year)
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	fill := func(id string) colorful.Color {
		return eng.ColorFor(id, float64(year), policy)
	}

	switch format {
	case "svg":
		export.SVG(w, eng.Canvas(), eng.Units(), positions, fill)
	case "json":
		frame := export.Frame{
			Mode:      mode.String(),
			Period:    year,
			Positions: positions,
			Colors:    make(map[string]string, len(eng.Units())),
		}
		for _, u := range eng.Units() {
			frame.Colors[u.ID] = fill(u.ID).Hex()
		}
		return export.WriteJSON(w, frame)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func runPrecompute(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	logger := newLogger()
	eng.SetMode(layout.ModeCartogram)
	eng.StartBackgroundFill()

	done := make(chan struct{})
	go func() {
		eng.WaitBackgroundFill()
		close(done)
	}()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p := eng.Progress()
			logger.Info("precomputing", "completed", p.Completed, "total", p.Total)
		case <-done:
			p := eng.Progress()
			logger.Info("precompute finished", "completed", p.Completed, "total", p.Total)
			return nil
		}
	}
}
