package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindOptlintTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	manifest := filepath.Join(root, "optlint.toml")
	if err := os.WriteFile(manifest, []byte("[lint]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	path, found, err := findOptlintToml(nested)
	if err != nil {
		t.Fatalf("findOptlintToml: %v", err)
	}
	if !found {
		t.Fatal("manifest not found from nested directory")
	}
	if path != manifest {
		t.Errorf("path = %q, want %q", path, manifest)
	}
}

func TestFindOptlintTomlMissing(t *testing.T) {
	_, found, err := findOptlintToml(t.TempDir())
	if err != nil {
		t.Fatalf("findOptlintToml: %v", err)
	}
	if found {
		t.Error("reported a manifest in an empty tree")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Lint.Extensions) != 1 || cfg.Lint.Extensions[0] != ".php" {
		t.Errorf("extensions = %v, want [.php]", cfg.Lint.Extensions)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should default to enabled")
	}
}

func TestLoadConfigFromManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := `[lint]
extensions = [".php", ".inc"]
exclude = ["vendor", "node_modules"]

[cache]
enabled = false
`
	if err := os.WriteFile(filepath.Join(dir, "optlint.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadConfig(dir)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Lint.Extensions) != 2 || cfg.Lint.Extensions[1] != ".inc" {
		t.Errorf("extensions = %v", cfg.Lint.Extensions)
	}
	if len(cfg.Lint.Exclude) != 2 {
		t.Errorf("exclude = %v", cfg.Lint.Exclude)
	}
	if cfg.Cache.Enabled {
		t.Error("cache.enabled = true, want false from manifest")
	}
}

func TestLoadConfigStartingFromFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "optlint.toml"), []byte("[lint]\nexclude = [\"vendor\"]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "plugin.php")
	if err := os.WriteFile(target, []byte("<?php\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadConfig(target)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if len(cfg.Lint.Exclude) != 1 || cfg.Lint.Exclude[0] != "vendor" {
		t.Errorf("exclude = %v, want [vendor]", cfg.Lint.Exclude)
	}
}
