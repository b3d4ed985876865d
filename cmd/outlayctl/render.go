package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/outlayd/pkg/arrangement"
	"github.com/dshills/outlayd/pkg/export"
)

// runRender loads a previously exported arrangement JSON file and
// renders it to an SVG diagram, for inspecting a stored layout without
// re-solving it.
func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	inPath := fs.String("in", "", "path to an arrangement JSON file (required)")
	outPath := fs.String("out", "arrangement.svg", "path to write the SVG diagram")
	title := fs.String("title", "", "diagram title (default: \"Display Arrangement\")")
	fs.Parse(args)

	if *inPath == "" {
		return fmt.Errorf("-in is required")
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *inPath, err)
	}
	var arr arrangement.Arrangement
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("parsing %s: %w", *inPath, err)
	}

	opts := export.DefaultSVGOptions()
	if *title != "" {
		opts.Title = *title
	}
	if err := export.SaveSVGToFile(arr, *outPath, opts); err != nil {
		return fmt.Errorf("rendering SVG: %w", err)
	}

	fmt.Printf("Rendered %d outputs to %s\n", len(arr.Outputs), *outPath)
	return nil
}
