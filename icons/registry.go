// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package icons

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Registry holds the loaded font assets and the enablement decisions
// of one process. Build it once at startup with NewRegistry (usually
// via the generated catalog's Load); it is immutable afterwards and
// safe to share across goroutines without locking.
type Registry struct {
	// packs is nil when every pack is enabled.
	packs    map[string]bool
	features map[string]bool
	fonts    []FontAsset
}

// NewRegistry builds the runtime registry from a config and the
// generated asset references. Every asset belonging to an enabled
// pack whose feature gate (if any) is enabled is read into memory,
// in the order the generator emitted: packs by ID, assets by path.
// Assets with a ".zst" extension are zstd-decompressed on load.
func NewRegistry(cfg *Config, refs []AssetRef) (*Registry, error) {
	registry := &Registry{}

	if len(cfg.Packs) > 0 {
		registry.packs = make(map[string]bool, len(cfg.Packs))
		for _, id := range cfg.Packs {
			registry.packs[id] = true
		}
	}
	registry.features = make(map[string]bool, len(cfg.Features))
	for _, feature := range cfg.Features {
		registry.features[feature] = true
	}

	for _, ref := range refs {
		if !registry.PackEnabled(ref.Pack) || !registry.FeatureEnabled(ref.Feature) {
			continue
		}
		data, err := loadFontFile(filepath.Join(cfg.AssetRoot, ref.Path))
		if err != nil {
			return nil, fmt.Errorf("pack %q: %w", ref.Pack, err)
		}
		registry.fonts = append(registry.fonts, FontAsset{Family: ref.Family, Bytes: data})
	}

	return registry, nil
}

// loadFontFile reads a font file, transparently decompressing files
// stored with a ".zst" suffix. Packs with large fonts ship them
// compressed; the registry always hands renderers raw TTF bytes.
func loadFontFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font asset: %w", err)
	}

	if !strings.HasSuffix(path, ".zst") {
		return data, nil
	}

	reader, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("initializing zstd: %w", err)
	}
	defer reader.Close()

	decompressed, err := reader.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing font asset %s: %w", path, err)
	}
	return decompressed, nil
}

// PackEnabled reports whether the pack is enabled by the config the
// registry was built from.
func (r *Registry) PackEnabled(id string) bool {
	if r.packs == nil {
		return true
	}
	return r.packs[id]
}

// FeatureEnabled reports whether a feature gate is enabled. The empty
// gate (no feature) is always enabled.
func (r *Registry) FeatureEnabled(name string) bool {
	return name == "" || r.features[name]
}

// Fonts returns the loaded font assets in deterministic order. The
// returned slice and the asset bytes are read-only.
func (r *Registry) Fonts() []FontAsset {
	return r.fonts
}
