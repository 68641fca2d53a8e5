// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

const configName = "vvvv.toml"

// Config is the on-disk vvvv.toml.
type Config struct {
	Width      int   `toml:"width,omitempty"`
	Color      *bool `toml:"color,omitempty"`
	StrictDash bool  `toml:"strict_dash,omitempty"`
}

type configLocation struct {
	Path   string
	Config *Config
}

// settings are the effective options after merging config, environment and
// global flags.
type settings struct {
	Path       string `toml:"-"`
	Width      int    `toml:"width"`
	Color      bool   `toml:"color"`
	StrictDash bool   `toml:"strict_dash"`
}

func loadConfigFromCwd() (*configLocation, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return loadConfigFromDir(cwd)
}

// loadConfigFromDir returns the nearest vvvv.toml at or above startDir, or
// nil if there is none.
func loadConfigFromDir(startDir string) (*configLocation, error) {
	path, err := findConfigPath(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Width < 0 {
		return nil, fmt.Errorf("%s: width must not be negative", path)
	}
	return &configLocation{Path: path, Config: &cfg}, nil
}

func findConfigPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, configName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// resolveSettings merges loc (may be nil), the environment and flags, in
// increasing order of precedence. termWidth is consulted only when no source
// sets a width.
func resolveSettings(loc *configLocation, getenv func(string) string, flags globalFlagsParsed, termWidth func() (int, bool)) settings {
	s := settings{Color: true}
	widthSet := false
	if loc != nil && loc.Config != nil {
		s.Path = loc.Path
		if loc.Config.Width > 0 {
			s.Width, widthSet = loc.Config.Width, true
		}
		if loc.Config.Color != nil {
			s.Color = *loc.Config.Color
		}
		s.StrictDash = loc.Config.StrictDash
	}
	if v := getenv("VVVV_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			s.Width, widthSet = n, true
		} else {
			log.Printf("ignoring VVVV_WIDTH=%q: not a column count", v)
		}
	}
	if flags.Width > 0 {
		s.Width, widthSet = flags.Width, true
	}
	if flags.NoColor {
		s.Color = false
	}
	if flags.StrictDash {
		s.StrictDash = true
	}
	if !widthSet && termWidth != nil {
		if w, ok := termWidth(); ok {
			s.Width = w
		}
	}
	return s
}
