package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectConfig is the optional optlint.toml, discovered by walking up
// from the checked path. Flags override whatever it sets.
type projectConfig struct {
	Lint  lintConfig  `toml:"lint"`
	Cache cacheConfig `toml:"cache"`
}

type lintConfig struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

type cacheConfig struct {
	Enabled bool `toml:"enabled"`
}

func defaultConfig() projectConfig {
	return projectConfig{
		Lint:  lintConfig{Extensions: []string{".php"}},
		Cache: cacheConfig{Enabled: true},
	}
}

// findOptlintToml walks from startDir to the filesystem root looking
// for optlint.toml.
func findOptlintToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "optlint.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig resolves the effective configuration for a start path.
// Missing manifests are not an error; the defaults apply.
func loadConfig(startPath string) (projectConfig, error) {
	cfg := defaultConfig()

	startDir := startPath
	if info, err := os.Stat(startPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(startPath)
	}

	path, found, err := findOptlintToml(startDir)
	if err != nil || !found {
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if len(cfg.Lint.Extensions) == 0 {
		cfg.Lint.Extensions = []string{".php"}
	}
	return cfg, nil
}
