// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package icons

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects which packs and feature gates the runtime enables
// and where font files live. It is read once at process start; there
// are no fallbacks or automatic discovery, so the same config always
// produces the same registry.
type Config struct {
	// AssetRoot is the directory AssetRef paths are resolved against.
	// Empty means the current working directory.
	AssetRoot string `yaml:"asset_root"`

	// Packs lists the enabled pack IDs. An empty list enables every
	// pack the catalog was generated with.
	Packs []string `yaml:"packs"`

	// Features lists the enabled feature gates. Assets and variants
	// guarded by a feature not listed here are excluded from the
	// registry and from every lookup.
	Features []string `yaml:"features"`
}

// LoadConfig reads a YAML config file. Unknown keys are rejected so a
// typo cannot silently disable a pack.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &cfg, nil
}
