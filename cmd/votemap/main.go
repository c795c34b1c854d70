package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/votemap/internal/config"
	"github.com/san-kum/votemap/internal/ingest"
	"github.com/san-kum/votemap/internal/tui"
	"github.com/san-kum/votemap/internal/viz"
)

var (
	configFile string
	preset     string
	geomPath   string
	dbPath     string
	demo       bool
	verbose    bool
	workers    int
	// layout command
	modeName   string
	year       int
	policyName string
	format     string
	outPath    string
	// trend command
	trendWidth  int
	trendHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "votemap",
		Short: "county election results as cartograms, grids and scatters",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine()
			if err != nil {
				return err
			}
			defer eng.Close()
			return tui.Run(eng)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&geomPath, "geometry", "", "projected geometry file (json)")
	pf.StringVar(&dbPath, "db", "", "election results database (sqlite)")
	pf.BoolVar(&demo, "demo", false, "use synthetic demo data")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.IntVar(&workers, "workers", 0, "background worker count (0 = auto)")

	importCmd := &cobra.Command{
		Use:   "import [csv]",
		Short: "convert a county results csv into the sqlite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return fmt.Errorf("--db is required for import")
			}
			rows, err := ingest.ImportCSV(args[0], dbPath, newLogger())
			if err != nil {
				return err
			}
			fmt.Printf("imported %d rows into %s\n", rows, dbPath)
			return nil
		},
	}

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "compute one layout frame and export it",
		RunE:  runLayout,
	}
	layoutCmd.Flags().StringVar(&modeName, "mode", "cartogram", "arrangement mode")
	layoutCmd.Flags().IntVar(&year, "year", 0, "election year (0 = latest)")
	layoutCmd.Flags().StringVar(&policyName, "policy", "winner", "color policy")
	layoutCmd.Flags().StringVar(&format, "format", "svg", "output format (svg|json)")
	layoutCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	precomputeCmd := &cobra.Command{
		Use:   "precompute",
		Short: "fill the cartogram layout cache for every year",
		RunE:  runPrecompute,
	}

	yearsCmd := &cobra.Command{
		Use:   "years",
		Short: "list the sampled election years",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine()
			if err != nil {
				return err
			}
			defer eng.Close()
			for _, y := range eng.Dataset().Years() {
				fmt.Println(y)
			}
			return nil
		},
	}

	trendCmd := &cobra.Command{
		Use:   "trend [fips]",
		Short: "plot the two-party split over time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine()
			if err != nil {
				return err
			}
			defer eng.Close()
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			fmt.Println(viz.Trend(eng.Dataset(), id, trendWidth, trendHeight))
			return nil
		},
	}
	trendCmd.Flags().IntVar(&trendWidth, "width", 70, "plot width")
	trendCmd.Flags().IntVar(&trendHeight, "height", 12, "plot height")

	rootCmd.AddCommand(importCmd, layoutCmd, precomputeCmd, yearsCmd, trendCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return cfg, nil
	}
	return config.Default(), nil
}
