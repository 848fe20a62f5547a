// Package testsupport holds shared fixtures for package tests: temp-dir
// configs and seeded catalogs.
package testsupport

import (
	"path/filepath"
	"testing"

	"linkboard/internal/config"
)

// NewConfig returns a Config rooted in a per-test temp directory.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "links.json")
	return &cfg
}
