// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package packdef

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iconforge/iconforge/icons"
)

// FontAssetInfo is one deduplicated backing font file of a pack: the
// generated variable identifier, the family name shared by every
// variant using the file, the normalized asset path, and the feature
// gate (empty when ungated).
type FontAssetInfo struct {
	Identifier string
	Family     string
	Path       string
	Feature    string
}

// AssetCollection is the result of deduplicating a pack's variants by
// backing file.
type AssetCollection struct {
	// Assets is ordered by asset path.
	Assets []FontAssetInfo

	// IdentifierByPath maps a normalized asset path to the generated
	// variable identifier of its asset.
	IdentifierByPath map[string]string

	// FeatureByKey maps each variant key to that variant's own
	// feature gate ("" when ungated). Unlike the asset-level gate,
	// this is exact per variant and drives per-entry gating in the
	// generated tables.
	FeatureByKey map[icons.VariantKey]string
}

// ConflictingFamilyError reports two variants that share a backing
// font file but declare different family names. A file stores exactly
// one family, so the descriptor is contradicting itself.
type ConflictingFamilyError struct {
	Pack     string
	Path     string
	Family   string
	Conflict string
}

func (e *ConflictingFamilyError) Error() string {
	return fmt.Sprintf("pack %q has conflicting family names for %s: %q vs %q",
		e.Pack, e.Path, e.Family, e.Conflict)
}

// CollectFontAssets groups a pack's variants by backing asset path
// (backslashes normalized to forward slashes) and collapses each
// group into one FontAssetInfo.
//
// A group's feature gate is the single shared value when every
// variant in the group agrees (including "no feature"). When the
// gates are heterogeneous the asset is emitted ungated — always
// included — because any of its variants may need the file. That
// widens availability, never narrows it; per-variant gating stays
// exact through FeatureByKey.
func CollectFontAssets(pack *NormalizedPack) (*AssetCollection, error) {
	families := make(map[string]string)
	features := make(map[string]map[string]bool)
	featureByKey := make(map[icons.VariantKey]string, len(pack.Variants))
	var paths []string

	for _, variant := range pack.Variants {
		path := strings.ReplaceAll(variant.AssetPath, `\`, "/")
		featureByKey[variant.Key] = variant.Feature

		if existing, seen := families[path]; seen {
			if existing != variant.Family {
				return nil, &ConflictingFamilyError{
					Pack:     pack.PackID,
					Path:     path,
					Family:   existing,
					Conflict: variant.Family,
				}
			}
		} else {
			families[path] = variant.Family
			features[path] = make(map[string]bool)
			paths = append(paths, path)
		}
		features[path][variant.Feature] = true
	}

	slices.Sort(paths)

	collection := &AssetCollection{
		IdentifierByPath: make(map[string]string, len(paths)),
		FeatureByKey:     featureByKey,
	}
	for _, path := range paths {
		identifier, err := AssetIdentifier(pack.PackID, path)
		if err != nil {
			return nil, fmt.Errorf("pack %q: %w", pack.PackID, err)
		}

		feature := ""
		if len(features[path]) == 1 {
			for only := range features[path] {
				feature = only
			}
		}

		collection.IdentifierByPath[path] = identifier
		collection.Assets = append(collection.Assets, FontAssetInfo{
			Identifier: identifier,
			Family:     families[path],
			Path:       path,
			Feature:    feature,
		})
	}

	return collection, nil
}
