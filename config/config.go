// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the viscera tool
// and the functions that load, save and watch it.
package config

import (
	"log/slog"
	"time"

	"cogentcore.org/viscera/base/errors"
	"cogentcore.org/viscera/base/logx"
	"cogentcore.org/viscera/base/reflectx"
	"cogentcore.org/viscera/member"
)

// Config is the configuration of the viscera tool.
type Config struct {

	// Tick is the interval between refresh ticks while running.
	Tick Duration `toml:"tick" yaml:"tick" default:"250ms"`

	// ShowUnexported is whether unexported fields are shown.
	ShowUnexported bool `toml:"show_unexported" yaml:"show_unexported" default:"true"`

	// MaxElements is the maximum number of children shown for a
	// collection; 0 means no limit.
	MaxElements int `toml:"max_elements" yaml:"max_elements" default:"100"`

	// Color is whether output is colored.
	Color bool `toml:"color" yaml:"color" default:"true"`

	// Debug is whether to log debugging information.
	Debug bool `toml:"debug" yaml:"debug"`

	// Verbose is whether to log informational messages.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// Quiet is whether to only log errors.
	Quiet bool `toml:"quiet" yaml:"quiet"`

	// Scene is the number of game objects in the demo scene.
	Scene int `toml:"scene" yaml:"scene" default:"3"`
}

// New returns a new config with the default values.
func New() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}

// SetFromDefaults sets the values of the given config from the
// `default:` struct field tags. Errors are logged in addition to
// being returned.
func SetFromDefaults(cfg *Config) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// LogLevel returns the log level selected by the logging flags.
func (c *Config) LogLevel() slog.Level {
	return logx.LevelFromFlags(c.Debug, c.Verbose, c.Quiet)
}

// Apply applies the settings of the config that affect
// member creation to the given registry.
func (c *Config) Apply(r *member.Registry) {
	r.ShowUnexported = c.ShowUnexported
	r.MaxElements = c.MaxElements
}

// Duration is a [time.Duration] that is written in configuration
// files as text, such as "250ms".
type Duration time.Duration

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
