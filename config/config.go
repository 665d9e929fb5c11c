// Package config loads keychain settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName  = "keychain"
	fileName = "config.toml"
	// LocalFile is read from the working directory after the user config.
	LocalFile = "keychain.toml"
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// DefaultRobots are the intermediate robot counts solved when none are set.
var DefaultRobots = []int{2, 25}

// Config holds the solver settings read from TOML files and flags.
type Config struct {
	Input       string `koanf:"input"`        // file of codes, empty for stdin
	Robots      []int  `koanf:"robots"`       // intermediate robot counts, one run each
	Workers     int    `koanf:"workers"`      // 0 means one per CPU
	SharedCache bool   `koanf:"shared_cache"` // one cache per run instead of per code (default: true)
	ShowPresses int    `koanf:"show_presses"` // print press sequences for runs with at most this many robots
	DumpCache   bool   `koanf:"dump_cache"`
	Verbose     bool   `koanf:"verbose"`
}

// Default returns the settings used when no file sets anything.
func Default() *Config {
	cfg := &Config{SharedCache: true}
	_ = cfg.Normalize()
	return cfg
}

// Load reads the user config and ./keychain.toml when present, then every
// path in paths, later files overriding earlier ones. Explicit paths must
// exist.
func Load(paths ...string) (*Config, error) {
	return LoadFiles(append(DefaultPaths(), paths...)...)
}

// LoadFiles reads exactly the given files in order (last wins) and
// normalizes the result.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	// slices are decoded into fresh values; defaults for them come from Normalize
	cfg := &Config{SharedCache: true}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths returns the existing implicit config files in load order:
// $XDG_CONFIG_HOME/keychain/config.toml, then ./keychain.toml.
func DefaultPaths() []string {
	var paths []string
	if p, err := xdg.SearchConfigFile(filepath.Join(appName, fileName)); err == nil {
		paths = append(paths, p)
	}
	if _, err := os.Stat(LocalFile); err == nil {
		paths = append(paths, LocalFile)
	}
	return paths
}

// Normalize applies defaults and validates ranges.
func (c *Config) Normalize() error {
	if len(c.Robots) == 0 {
		c.Robots = append([]int(nil), DefaultRobots...)
	}
	for _, n := range c.Robots {
		if n < 0 {
			return fmt.Errorf("%w: robots entry %d", ErrInvalid, n)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	if c.ShowPresses < 0 {
		return fmt.Errorf("%w: show_presses %d", ErrInvalid, c.ShowPresses)
	}
	c.Input = expandPath(c.Input)
	return nil
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
