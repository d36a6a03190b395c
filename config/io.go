// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/viscera/base/fsx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open reads the given config file into the given config, on top of its
// current values. The format is TOML, or YAML for files ending in .yaml
// or .yml.
func Open(cfg *Config, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return Read(cfg, b, filepath.Ext(file))
}

// Read decodes the given config data in the format named by the given
// file extension into the given config.
func Read(cfg *Config, b []byte, ext string) error {
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(cfg)
	}
	if err != nil {
		return fmt.Errorf("config: decoding %s config: %w", strings.TrimPrefix(ext, "."), err)
	}
	return nil
}

// Save writes the given config to the given file in TOML format.
func Save(cfg *Config, file string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0o666)
}

// DefaultFiles are the names of the config files looked for by [Find].
var DefaultFiles = []string{"viscera.toml", "viscera.yaml"}

// SearchPaths returns the directories searched by [Find]: the current
// directory and the viscera directory of the user config directory.
func SearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "viscera"))
	}
	return paths
}

// Find returns the first of the [DefaultFiles] found on the given
// paths, or "" if there is none.
func Find(paths ...string) string {
	files := fsx.FindFilesOnPaths(paths, DefaultFiles...)
	if len(files) == 0 {
		return ""
	}
	return files[0]
}
