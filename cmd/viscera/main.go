// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command viscera is an interactive inspector of a live demo scene.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/viscera/base/errors"
	"cogentcore.org/viscera/base/logx"
	"cogentcore.org/viscera/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the command line settings.
type options struct {
	file string
	cfg  *config.Config
}

// flagSetters copy the value of each config flag.
var flagSetters = map[string]func(dst, src *config.Config){
	"tick":         func(dst, src *config.Config) { dst.Tick = src.Tick },
	"unexported":   func(dst, src *config.Config) { dst.ShowUnexported = src.ShowUnexported },
	"max-elements": func(dst, src *config.Config) { dst.MaxElements = src.MaxElements },
	"color":        func(dst, src *config.Config) { dst.Color = src.Color },
	"debug":        func(dst, src *config.Config) { dst.Debug = src.Debug },
	"verbose":      func(dst, src *config.Config) { dst.Verbose = src.Verbose },
	"quiet":        func(dst, src *config.Config) { dst.Quiet = src.Quiet },
	"scene":        func(dst, src *config.Config) { dst.Scene = src.Scene },
}

// load returns the config from the config file, if any, with the
// flags set on the command line applied on top of it.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	if o.file == "" {
		return o.cfg, nil
	}
	cfg := config.New()
	if err := config.Open(cfg, o.file); err != nil {
		return nil, err
	}
	for name, set := range flagSetters {
		if cmd.Flags().Changed(name) {
			set(cfg, o.cfg)
		}
	}
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	o := &options{cfg: config.New()}
	root := &cobra.Command{
		Use:           "viscera",
		Short:         "Inspect and edit a live object graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.file == "" {
				o.file = config.Find(config.SearchPaths()...)
			}
			cfg, err := o.load(cmd)
			if err != nil {
				return errors.Log(err)
			}
			logx.SetDefault(os.Stderr, cfg.LogLevel(), cfg.Color)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			s := NewSession(cfg, cmd.OutOrStdout())
			if o.file != "" {
				w, err := config.Watch(o.file, func(fc *config.Config) {
					for name, set := range flagSetters {
						if cmd.Flags().Changed(name) {
							set(fc, o.cfg)
						}
					}
					s.SetConfig(fc)
				})
				if err != nil {
					return errors.Log(err)
				}
				defer w.Close()
			}
			return s.Run(cmd.InOrStdin())
		},
	}
	fs := root.PersistentFlags()
	fs.StringVarP(&o.file, "config", "c", "", "config file (TOML, or YAML for .yaml files), by default viscera.toml or viscera.yaml in the current or user config directory; reloaded when it changes")
	fs.DurationVar((*time.Duration)(&o.cfg.Tick), "tick", time.Duration(o.cfg.Tick), "interval between refresh ticks")
	fs.BoolVar(&o.cfg.ShowUnexported, "unexported", o.cfg.ShowUnexported, "show unexported fields")
	fs.IntVar(&o.cfg.MaxElements, "max-elements", o.cfg.MaxElements, "maximum number of collection elements shown (0 for no limit)")
	fs.BoolVar(&o.cfg.Color, "color", o.cfg.Color, "color the output")
	fs.BoolVar(&o.cfg.Debug, "debug", false, "log debugging information")
	fs.BoolVarP(&o.cfg.Verbose, "verbose", "v", false, "log informational messages")
	fs.BoolVarP(&o.cfg.Quiet, "quiet", "q", false, "only log errors")
	fs.IntVar(&o.cfg.Scene, "scene", o.cfg.Scene, "number of game objects in the demo scene")
	errors.Must(root.MarkPersistentFlagFilename("config", "toml", "yaml", "yml"))

	root.AddCommand(newWatchCommand(o), newConfigCommand(o))
	return root
}

// newWatchCommand returns the command that shows one object of the
// scene, refreshing it on every tick until interrupted.
func newWatchCommand(o *options) *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "watch <object>",
		Short: "Show a game object of the demo scene as it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			s := NewSession(cfg, cmd.OutOrStdout())
			if err := s.selectObject(args); err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			return s.Watch(ctx, frames)
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 0, "stop after this many ticks (0 for no limit)")
	return cmd
}

// newConfigCommand returns the command that writes the current
// configuration to a file.
func newConfigCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "save-config <file>",
		Short: "Write the current configuration as TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(cfg, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved", args[0])
			return nil
		},
	}
}
