// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Command eventbus-demo subscribes a printing callback to one event and
// publishes it once.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ManuGH/eventbus/internal/config"
	"github.com/ManuGH/eventbus/internal/eventbus"
	xglog "github.com/ManuGH/eventbus/internal/log"
	"github.com/ManuGH/eventbus/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("eventbus-demo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	showVersion := fs.Bool("version", false, "print version and exit")
	configPath := fs.String("config", "", "path to config file (YAML)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "eventbus-demo: %v\n", err)
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	// Configure logger with safe defaults until config is loaded
	xglog.Configure(xglog.Config{
		Level:   config.DefaultLogLevel,
		Service: config.DefaultLogService,
		Version: version.Version,
	})
	logger := xglog.WithComponent("demo")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", *configPath).Msg("failed to load config")
		return 1
	}

	xglog.Reconfigure(xglog.Config{
		Level:   cfg.Log.Level,
		Service: cfg.Log.Service,
		Version: version.Version,
	})
	logger = xglog.WithComponent("demo")

	received := 0
	bus := eventbus.New().Subscribe(cfg.Demo.Event, func(args ...any) {
		received++
		fmt.Fprintln(stdout, append([]any{"Received:"}, args...)...)
	})

	payload := make([]any, len(cfg.Demo.Args))
	for i, a := range cfg.Demo.Args {
		payload[i] = a
	}
	bus.Publish(cfg.Demo.Event, payload...)

	logger.Info().
		Str(xglog.FieldBusID, bus.ID()).
		Str(xglog.FieldEvent, cfg.Demo.Event).
		Int("invocations", received).
		Msg("demo complete")
	return 0
}
