// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config loads settings for the eventbus demo binary.
//
// The bus itself takes no configuration; this package only covers logging
// and the scenario the demo publishes.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultLogLevel   = "info"
	DefaultLogService = "eventbus"
	DefaultDemoEvent  = "data"
)

// Config is the root configuration document.
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Demo DemoConfig `yaml:"demo"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// DemoConfig describes the event published by the demo binary.
type DemoConfig struct {
	Event string   `yaml:"event"`
	Args  []string `yaml:"args"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:   DefaultLogLevel,
			Service: DefaultLogService,
		},
		Demo: DemoConfig{
			Event: DefaultDemoEvent,
			Args:  []string{"42"},
		},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
	}
	if strings.TrimSpace(c.Demo.Event) == "" {
		return fmt.Errorf("%w: demo.event must not be empty", ErrInvalidValue)
	}
	return nil
}
