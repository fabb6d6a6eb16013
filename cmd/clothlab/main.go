package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/clothlab/internal/cloth"
	"github.com/san-kum/clothlab/internal/config"
	"github.com/san-kum/clothlab/internal/driver"
	"github.com/san-kum/clothlab/internal/export"
	"github.com/san-kum/clothlab/internal/gui"
	"github.com/san-kum/clothlab/internal/metrics"
	"github.com/san-kum/clothlab/internal/viz"
)

var (
	rows       int
	cols       int
	spacing    float64
	gravity    float64
	damping    float64
	dt         float64
	iterations int
	ticks      int
	configFile string
	preset     string
	csvPath    string
	jsonPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clothlab",
		Short: "interactive 2d cloth simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunLive(cfg)
		},
	}

	addSimFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "grid rows")
		cmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "grid columns")
		cmd.Flags().Float64Var(&spacing, "spacing", config.DefaultSpacing, "particle spacing")
		cmd.Flags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravity")
		cmd.Flags().Float64Var(&damping, "damping", config.DefaultDamping, "velocity damping")
		cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
		cmd.Flags().IntVar(&iterations, "iters", config.DefaultIterations, "relaxation passes per tick")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	}
	addSimFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "terminal front-end with mouse interaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunLive(cfg)
		},
	}
	addSimFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed front-end",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	addSimFlags(guiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run with metrics",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", 600, "number of ticks")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write metric traces to CSV file")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write metric traces to JSON file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark grid sizes and iteration counts",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&ticks, "ticks", 600, "number of ticks per case")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %dx%d grid, %d iterations, gravity %.0f\n",
					name, p.Rows, p.Cols, p.Iterations, p.Gravity)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, guiCmd, runCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig layers preset, config file, and changed CLI flags over the
// defaults, in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("rows") {
		cfg.Rows = rows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Cols = cols
	}
	if cmd.Flags().Changed("spacing") {
		cfg.Spacing = spacing
	}
	if cmd.Flags().Changed("gravity") {
		cfg.Gravity = gravity
	}
	if cmd.Flags().Changed("damping") {
		cfg.Damping = damping
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("iters") {
		cfg.Iterations = iterations
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder(
		metrics.NewStretchError(),
		metrics.NewKineticEnergy(),
		metrics.NewFinite(),
	)
	d := driver.New(cfg.Mesh(), cfg.Params(), cfg.PickRadius)
	d.AddObserver(rec)

	fmt.Printf("running %dx%d cloth for %d ticks...\n", cfg.Rows, cfg.Cols, ticks)
	start := time.Now()
	if err := d.Run(context.Background(), ticks); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v (%.0f ticks/sec)\n\n", elapsed, float64(ticks)/elapsed.Seconds())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tFINAL")
	final := rec.Final()
	for _, name := range rec.Names() {
		fmt.Fprintf(w, "%s\t%.6f\n", name, final[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if trace := rec.Traces["stretch_error"]; len(trace) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(trace,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("stretch error vs tick"),
		))
	}

	data := export.NewRunData(cfg, rec)
	if csvPath != "" {
		if err := export.CSVFile(csvPath, data); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := export.JSONFile(jsonPath, data); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	grids := []struct{ rows, cols int }{
		{10, 15},
		{20, 30},
		{40, 60},
	}
	iters := []int{1, 5, 10}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tCONSTRAINTS\tITERS\tTICKS\tTIME\tTICKS/SEC")

	for _, g := range grids {
		for _, it := range iters {
			mesh := cloth.New(g.rows, g.cols, config.DefaultSpacing,
				cloth.Vec2{X: config.DefaultOriginX, Y: config.DefaultOriginY})
			params := cloth.Params{
				Gravity:    config.DefaultGravity,
				Damping:    config.DefaultDamping,
				Dt:         config.DefaultDt,
				Iterations: it,
			}
			d := driver.New(mesh, params, config.DefaultPickRadius)

			start := time.Now()
			if err := d.Run(context.Background(), ticks); err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%dx%d\t%d\t%d\t%d\t%v\t%.0f\n",
				g.rows, g.cols, len(mesh.Constraints), it, ticks,
				elapsed.Round(time.Microsecond), float64(ticks)/elapsed.Seconds())
		}
	}

	return w.Flush()
}
