package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/outlayd/pkg/arrangement"
	"github.com/dshills/outlayd/pkg/backend"
	"github.com/dshills/outlayd/pkg/daemon"
	"github.com/dshills/outlayd/pkg/export"
	"github.com/dshills/outlayd/pkg/geom"
	"github.com/dshills/outlayd/pkg/validate"
)

// runSolve computes a single layout for the backend's currently connected
// outputs (ignoring any stored arrangement) and writes it out, the
// one-shot counterpart to `run`'s continuous loop.
func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML configuration file (optional; defaults apply)")
	outputDir := fs.String("output", ".", "output directory for exported files")
	format := fs.String("format", "json", "export format: json, svg, or all")
	backendKind := fs.String("backend", "", "override the config's backendKind: fake or x11")
	verbose := fs.Bool("verbose", false, "enable verbose output")
	fs.Parse(args)

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		return fmt.Errorf("invalid format %q, must be one of: json, svg, all", *format)
	}

	cfg, err := loadConfigOrDefault(*configPath)
	if err != nil {
		return err
	}
	if *backendKind != "" {
		cfg.BackendKind = *backendKind
	}

	if *verbose {
		fmt.Printf("Bounds: %dx%d - %dx%d\n", cfg.Bounds.WMin, cfg.Bounds.HMin, cfg.Bounds.WMax, cfg.Bounds.HMax)
		fmt.Printf("Backend: %s\n", cfg.BackendKind)
	}

	adapter, closeFn, err := openAdapter(*cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	outputs, vmax, err := adapter.CurrentOutputs(ctx)
	if err != nil {
		return fmt.Errorf("reading current outputs: %w", err)
	}
	if len(outputs) == 0 {
		return fmt.Errorf("backend reports no connected outputs")
	}

	start := time.Now()
	arr, err := daemon.SolveOnce(*cfg, outputs, vmax)
	if err != nil {
		return fmt.Errorf("solving layout: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Solved %d outputs in %v\n", len(outputs), elapsed)
		printArrangement(arr)
		printValidation(arr, *cfg)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	baseName := "arrangement"

	if *format == "json" || *format == "all" {
		path := filepath.Join(*outputDir, baseName+".json")
		if err := export.SaveJSONToFile(arr, path); err != nil {
			return fmt.Errorf("exporting JSON: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote %s\n", path)
		}
	}
	if *format == "svg" || *format == "all" {
		path := filepath.Join(*outputDir, baseName+".svg")
		opts := export.DefaultSVGOptions()
		if err := export.SaveSVGToFile(arr, path, opts); err != nil {
			return fmt.Errorf("exporting SVG: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote %s\n", path)
		}
	}

	fmt.Printf("Solved layout for %d outputs (%dx%d virtual screen) in %v\n",
		len(arr.Outputs), arr.VirtualScreen.W, arr.VirtualScreen.H, elapsed)
	return nil
}

func loadConfigOrDefault(path string) (*daemon.Config, error) {
	if path == "" {
		cfg := daemon.DefaultConfig()
		return &cfg, nil
	}
	return daemon.LoadConfig(path)
}

func openAdapter(cfg daemon.Config) (backend.Adapter, func(), error) {
	switch cfg.BackendKind {
	case "x11":
		a, err := backend.NewX11Adapter()
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to X11: %w", err)
		}
		return a, a.Close, nil
	case "fake", "":
		a := backend.NewFakeAdapter(sampleFakeOutputs(), sampleFakeVMax())
		return a, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backendKind %q", cfg.BackendKind)
	}
}

// sampleFakeOutputs gives the fake backend a two-display set to solve
// against when no real windowing system is available, e.g. in CI or a
// headless dry run.
func sampleFakeOutputs() []backend.Output {
	return []backend.Output{
		{ID: "DP-1", Mode: arrangement.Mode{Width: 1920, Height: 1080}},
		{ID: "DP-2", Mode: arrangement.Mode{Width: 1920, Height: 1080}},
	}
}

func sampleFakeVMax() geom.Size {
	return geom.Size{W: 7680, H: 4320}
}

func printArrangement(arr arrangement.Arrangement) {
	fmt.Println("Outputs:")
	for _, o := range arr.Outputs {
		fmt.Printf("  %s: %s at (%d, %d)\n", o.ID, o.Mode.String(), o.Position.X, o.Position.Y)
	}
}

func printValidation(arr arrangement.Arrangement, cfg daemon.Config) {
	sizes := make(validate.Sizes, len(arr.Outputs))
	for _, o := range arr.Outputs {
		sizes[o.ID] = struct{ W, H int }{W: o.Mode.Width, H: o.Mode.Height}
	}
	report := validate.Check(arr, sizes, cfg.Bounds.WMin, cfg.Bounds.HMin, cfg.Bounds.WMax, cfg.Bounds.HMax, nil)
	fmt.Println(validate.Summary(report))
}
