// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package icons

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icons.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
asset_root: /srv/fonts
packs:
  - bootstrap
  - heroicons
features:
  - heroicons-mini
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AssetRoot != "/srv/fonts" {
		t.Errorf("AssetRoot = %q, want %q", cfg.AssetRoot, "/srv/fonts")
	}
	if !slices.Equal(cfg.Packs, []string{"bootstrap", "heroicons"}) {
		t.Errorf("Packs = %v", cfg.Packs)
	}
	if !slices.Equal(cfg.Features, []string{"heroicons-mini"}) {
		t.Errorf("Features = %v", cfg.Features)
	}
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
asset_root: /srv/fonts
pakcs:
  - bootstrap
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
