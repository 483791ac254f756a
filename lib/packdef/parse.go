// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package packdef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result into a PackMap and checks the schema-level
// required fields. Semantic validation (uniqueness, referential
// integrity) happens later in Normalize.
func Parse(data []byte) (*PackMap, error) {
	stripped := jsonc.ToJSON(data)

	var pack PackMap
	if err := json.Unmarshal(stripped, &pack); err != nil {
		return nil, fmt.Errorf("parsing pack descriptor: %w", err)
	}

	if err := checkSchema(&pack); err != nil {
		return nil, err
	}
	return &pack, nil
}

// checkSchema rejects descriptors with missing required fields. The
// JSON decoder leaves absent fields at their zero value, so these
// checks stand in for the schema's "required" markers.
func checkSchema(pack *PackMap) error {
	if pack.PackID == "" {
		return fmt.Errorf("descriptor is missing pack_id")
	}
	if len(pack.Variants) == 0 {
		return fmt.Errorf("pack %q declares no variants", pack.PackID)
	}
	for _, variant := range pack.Variants {
		if variant.ID == "" {
			return fmt.Errorf("pack %q: variant is missing id", pack.PackID)
		}
		if variant.Family == "" {
			return fmt.Errorf("pack %q: variant %q is missing family", pack.PackID, variant.ID)
		}
		if variant.TTFAssetPath == "" {
			return fmt.Errorf("pack %q: variant %q is missing ttf_asset_path", pack.PackID, variant.ID)
		}
	}
	for _, icon := range pack.Icons {
		if icon.Name == "" {
			return fmt.Errorf("pack %q: icon is missing name", pack.PackID)
		}
	}
	return nil
}

// ReadFile reads a JSONC pack descriptor from disk and parses it.
// Returns a descriptive error if the file cannot be read or the
// descriptor is malformed; both name the path.
func ReadFile(path string) (*PackMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	pack, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	pack.SourcePath = path
	return pack, nil
}

// LoadDir reads every pack descriptor (*.json or *.jsonc) in dir,
// ordered lexicographically by filename so repeated runs see packs in
// the same order. An empty directory is an error: a generator run
// with nothing to generate is a misconfiguration, not a no-op.
func LoadDir(dir string) ([]*PackMap, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading maps directory %s: %w", dir, err)
	}

	var packs []*PackMap
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".jsonc":
		default:
			continue
		}
		pack, err := ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}

	if len(packs) == 0 {
		return nil, fmt.Errorf("no pack descriptors found in %s", dir)
	}
	return packs, nil
}
