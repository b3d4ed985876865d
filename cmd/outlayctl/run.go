package main

import (
	"flag"
	"fmt"

	"github.com/dshills/outlayd/pkg/daemon"
	"github.com/dshills/outlayd/pkg/store"
)

// runDaemon runs the Supervisor's event loop until interrupted, the
// long-lived counterpart to `solve`'s one-shot computation.
func runDaemon(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML configuration file (optional; defaults apply)")
	backendKind := fs.String("backend", "", "override the config's backendKind: fake or x11")
	fs.Parse(args)

	cfg, err := loadConfigOrDefault(*configPath)
	if err != nil {
		return err
	}
	if *backendKind != "" {
		cfg.BackendKind = *backendKind
	}

	adapter, closeFn, err := openAdapter(*cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening store at %s: %w", cfg.DBPath, err)
	}

	log := daemon.NewLogger(cfg.LogLevel)
	sup := daemon.NewSupervisor(*cfg, adapter, st, log)

	ctx, cancel := contextWithSignals()
	defer cancel()

	log.Infof("outlayd running with backend %q, store %s", cfg.BackendKind, cfg.DBPath)
	if err := sup.Run(ctx); err != nil {
		return fmt.Errorf("daemon stopped: %w", err)
	}
	return nil
}
