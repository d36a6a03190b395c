// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command enumgen generates helpful methods for Go enums.
package main

import (
	"os"

	"cogentcore.org/viscera/base/errors"
	"cogentcore.org/viscera/base/reflectx"
	"cogentcore.org/viscera/enums/enumgen"
	"github.com/spf13/cobra"
)

func main() {
	cfg := &enumgen.Config{}
	errors.Log(reflectx.SetFromDefaultTags(cfg))
	cmd := &cobra.Command{
		Use:          "enumgen [dir]",
		Short:        "Enumgen generates helpful methods for Go enums.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.Dir = args[0]
			}
			return enumgen.Generate(cfg)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&cfg.Output, "output", cfg.Output, "the output file location relative to the package")
	fs.StringVar(&cfg.TrimPrefix, "trim-prefix", "", "a comma-separated list of prefixes to trim from each item")
	fs.BoolVar(&cfg.LineComment, "line-comment", false, "use line comment text as printed text when present")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
