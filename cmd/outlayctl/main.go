// Command outlayctl drives the display-arrangement engine from the
// command line: solve a layout once and print or export it, render an
// existing arrangement to SVG, or run the daemon loop against a backend.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	case "run":
		err = runDaemon(os.Args[2:])
	case "-version", "--version", "version":
		fmt.Printf("outlayctl version %s\n", version)
		return
	case "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown subcommand %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: outlayctl <command> [options]")
	fmt.Fprintln(os.Stderr, "\nCommands:")
	fmt.Fprintln(os.Stderr, "  solve    compute a layout for a fixed set of outputs and print/export it")
	fmt.Fprintln(os.Stderr, "  render   render a stored arrangement to an SVG diagram")
	fmt.Fprintln(os.Stderr, "  run      run the daemon loop against a live or fake backend")
	fmt.Fprintln(os.Stderr, "  version  print version and exit")
	fmt.Fprintln(os.Stderr, "\nRun 'outlayctl <command> -help' for command-specific flags.")
}

// contextWithSignals returns a context canceled on SIGINT/SIGTERM, the
// same shutdown hook shape the teacher's CLI would use if it ran a
// long-lived process instead of a one-shot generator.
func contextWithSignals() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
