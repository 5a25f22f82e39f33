// Package config loads the morph CLI configuration. Values are resolved
// with priority: environment variables > config file (.morph.yml) >
// defaults.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".morph.yml"

// Config holds the settings shared by the morph subcommands.
type Config struct {
	// Seed makes runs reproducible; zero means seed from entropy.
	Seed uint64 `koanf:"seed"`

	// Samples is how many mutations the dist command draws.
	Samples int `koanf:"samples"`

	// Parallel is the number of sampling workers.
	Parallel int `koanf:"parallel"`

	// Iters and ShrinkIters are the check budgets used by the shrink
	// command.
	Iters       int `koanf:"iters"`
	ShrinkIters int `koanf:"shrink_iters"`

	// Plain forces the non-interactive UI even on a terminal.
	Plain bool `koanf:"plain"`
}

// Load resolves the configuration, reading path if it exists. An empty path
// means DefaultPath.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		_ = k.Set(key, value)
	}

	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("MORPH_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func defaults() map[string]any {
	return map[string]any{
		"seed":         uint64(0),
		"samples":      100000,
		"parallel":     runtime.NumCPU(),
		"iters":        1000,
		"shrink_iters": 1000,
		"plain":        false,
	}
}

// envTransform maps MORPH_SHRINK_ITERS to shrink_iters and
// MORPH_FOO__BAR to foo.bar.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "MORPH_"))
	return strings.ReplaceAll(s, "__", ".")
}
