// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package packdef

import (
	"errors"
	"testing"

	"github.com/iconforge/iconforge/icons"
)

func TestCollectFontAssets_DeduplicatesSharedFile(t *testing.T) {
	pack := &NormalizedPack{
		PackID: "demo",
		Variants: []VariantInfo{
			{ID: "filled", Key: icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular}, Family: "Demo", AssetPath: "fonts/demo.ttf"},
			{ID: "regular", Key: icons.VariantKey{Style: icons.StyleRegular, Size: icons.SizeRegular}, Family: "Demo", AssetPath: "fonts/demo.ttf"},
		},
	}

	collection, err := CollectFontAssets(pack)
	if err != nil {
		t.Fatalf("CollectFontAssets: %v", err)
	}
	if len(collection.Assets) != 1 {
		t.Fatalf("len(Assets) = %d, want 1", len(collection.Assets))
	}

	asset := collection.Assets[0]
	if asset.Identifier != "fontAssetDemoDemo" {
		t.Errorf("Identifier = %q", asset.Identifier)
	}
	if asset.Family != "Demo" || asset.Path != "fonts/demo.ttf" || asset.Feature != "" {
		t.Errorf("asset = %+v", asset)
	}
	if collection.IdentifierByPath["fonts/demo.ttf"] != asset.Identifier {
		t.Errorf("IdentifierByPath = %v", collection.IdentifierByPath)
	}
}

func TestCollectFontAssets_SortsByPath(t *testing.T) {
	pack := &NormalizedPack{
		PackID: "demo",
		Variants: []VariantInfo{
			{ID: "a", Key: icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular}, Family: "Z", AssetPath: "fonts/zeta.ttf"},
			{ID: "b", Key: icons.VariantKey{Style: icons.StyleRegular, Size: icons.SizeRegular}, Family: "A", AssetPath: "fonts/alpha.ttf"},
		},
	}

	collection, err := CollectFontAssets(pack)
	if err != nil {
		t.Fatalf("CollectFontAssets: %v", err)
	}
	if collection.Assets[0].Path != "fonts/alpha.ttf" || collection.Assets[1].Path != "fonts/zeta.ttf" {
		t.Errorf("asset order = %q, %q", collection.Assets[0].Path, collection.Assets[1].Path)
	}
}

func TestCollectFontAssets_FamilyConflict(t *testing.T) {
	pack := &NormalizedPack{
		PackID: "demo",
		Variants: []VariantInfo{
			{ID: "a", Key: icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular}, Family: "Demo", AssetPath: "fonts/demo.ttf"},
			{ID: "b", Key: icons.VariantKey{Style: icons.StyleRegular, Size: icons.SizeRegular}, Family: "Other", AssetPath: "fonts/demo.ttf"},
		},
	}

	_, err := CollectFontAssets(pack)
	if err == nil {
		t.Fatal("expected family conflict error")
	}
	var conflict *ConflictingFamilyError
	if !errors.As(err, &conflict) {
		t.Fatalf("error type %T: %v", err, err)
	}
	if conflict.Path != "fonts/demo.ttf" || conflict.Family != "Demo" || conflict.Conflict != "Other" {
		t.Errorf("conflict = %+v", conflict)
	}
}

func TestCollectFontAssets_FeatureWidening(t *testing.T) {
	// Heterogeneous gates on one file widen the asset to ungated;
	// a uniform gate is kept.
	pack := &NormalizedPack{
		PackID: "demo",
		Variants: []VariantInfo{
			{ID: "a", Key: icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular}, Family: "Shared", AssetPath: "fonts/shared.ttf", Feature: "extras"},
			{ID: "b", Key: icons.VariantKey{Style: icons.StyleRegular, Size: icons.SizeRegular}, Family: "Shared", AssetPath: "fonts/shared.ttf"},
			{ID: "c", Key: icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeMini}, Family: "Gated", AssetPath: "fonts/gated.ttf", Feature: "extras"},
		},
	}

	collection, err := CollectFontAssets(pack)
	if err != nil {
		t.Fatalf("CollectFontAssets: %v", err)
	}
	byPath := make(map[string]FontAssetInfo)
	for _, asset := range collection.Assets {
		byPath[asset.Path] = asset
	}
	if byPath["fonts/shared.ttf"].Feature != "" {
		t.Errorf("shared asset feature = %q, want widened to ungated", byPath["fonts/shared.ttf"].Feature)
	}
	if byPath["fonts/gated.ttf"].Feature != "extras" {
		t.Errorf("gated asset feature = %q, want extras", byPath["fonts/gated.ttf"].Feature)
	}

	// Widening never loosens per-variant gating.
	if collection.FeatureByKey[icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular}] != "extras" {
		t.Error("FeatureByKey lost the gate of the gated variant")
	}
	if collection.FeatureByKey[icons.VariantKey{Style: icons.StyleRegular, Size: icons.SizeRegular}] != "" {
		t.Error("FeatureByKey invented a gate for the ungated variant")
	}
}

func TestCollectFontAssets_NormalizesBackslashes(t *testing.T) {
	pack := &NormalizedPack{
		PackID: "demo",
		Variants: []VariantInfo{
			{ID: "a", Key: icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular}, Family: "Demo", AssetPath: `fonts\demo.ttf`},
			{ID: "b", Key: icons.VariantKey{Style: icons.StyleRegular, Size: icons.SizeRegular}, Family: "Demo", AssetPath: "fonts/demo.ttf"},
		},
	}

	collection, err := CollectFontAssets(pack)
	if err != nil {
		t.Fatalf("CollectFontAssets: %v", err)
	}
	if len(collection.Assets) != 1 {
		t.Fatalf("len(Assets) = %d, want 1 after path normalization", len(collection.Assets))
	}
	if collection.Assets[0].Path != "fonts/demo.ttf" {
		t.Errorf("Path = %q", collection.Assets[0].Path)
	}
}
