package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvCatalogPath, "")

	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("config file should not exist")
	}
	if cfg.Browse.DurationMax != 300 {
		t.Errorf("duration_max default: got %d, want 300", cfg.Browse.DurationMax)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("logging format default: got %q", cfg.Logging.Format)
	}
	if !strings.HasSuffix(cfg.Catalog.Path, filepath.Join("linkboard", "links.json")) {
		t.Errorf("catalog path default: got %q", cfg.Catalog.Path)
	}
}

func TestLoadParsesFile(t *testing.T) {
	t.Setenv(EnvCatalogPath, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[catalog]\npath = \"" + filepath.Join(dir, "links.json") + "\"\n\n" +
		"[browse]\nduration_min = 30\nduration_max = 120\n\n" +
		"[logging]\nformat = \"json\"\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolution: exists=%v path=%q", exists, resolved)
	}
	if cfg.Browse.DurationMin != 30 || cfg.Browse.DurationMax != 120 {
		t.Errorf("browse ranges: got %+v", cfg.Browse)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging: got %+v", cfg.Logging)
	}
}

func TestEnvOverridesCatalogPath(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "elsewhere.json")
	t.Setenv(EnvCatalogPath, override)

	cfg, _, _, err := Load(filepath.Join(dir, "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Path != override {
		t.Errorf("catalog path: got %q, want %q", cfg.Catalog.Path, override)
	}
}

func TestValidateRejectsInvertedRanges(t *testing.T) {
	cfg := Default()
	cfg.Browse.DurationMin = 200
	cfg.Browse.DurationMax = 100
	if err := cfg.Validate(); err == nil {
		t.Fatal("inverted duration range should fail validation")
	}

	cfg = Default()
	cfg.Browse.RatingMin = 9
	cfg.Browse.RatingMax = 2
	if err := cfg.Validate(); err == nil {
		t.Fatal("inverted rating range should fail validation")
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown log format should fail validation")
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv(EnvCatalogPath, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	if cfg.Browse.RatingMax != 10 {
		t.Errorf("sample rating_max: got %g", cfg.Browse.RatingMax)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expanded, err := ExpandPath("~/links.json")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if expanded != filepath.Join(home, "links.json") {
		t.Errorf("tilde expansion: got %q", expanded)
	}
}
