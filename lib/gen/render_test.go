// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package gen

import (
	"strings"
	"testing"

	"github.com/iconforge/iconforge/icons"
	"github.com/iconforge/iconforge/lib/packdef"
)

func demoPack() *packdef.NormalizedPack {
	return &packdef.NormalizedPack{
		PackID: "demo",
		Variants: []packdef.VariantInfo{
			{
				ID:        "filled",
				Key:       icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular},
				Family:    "Demo",
				AssetPath: "fonts/demo.ttf",
			},
			{
				ID:        "mini",
				Key:       icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeMini},
				Family:    "Demo Mini",
				AssetPath: "fonts/demo-mini.ttf",
				Feature:   "demo-mini",
			},
		},
		Icons: []packdef.NormalizedIcon{
			{
				Name:       "alarm",
				Identifier: "Alarm",
				Codepoints: []packdef.CodepointEntry{
					{Key: icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular}, Codepoint: 0xF102},
					{Key: icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeMini}, Codepoint: 0xF103},
				},
			},
			{
				Name:       "type",
				Identifier: "Type_",
				Codepoints: []packdef.CodepointEntry{
					{Key: icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular}, Codepoint: 0xF200},
				},
			},
		},
	}
}

func TestRenderPack(t *testing.T) {
	source, err := RenderPack(demoPack())
	if err != nil {
		t.Fatalf("RenderPack: %v", err)
	}

	for _, want := range []string{
		"// Code generated by iconforge generate. DO NOT EDIT.",
		"package catalog",
		`const demoPackID = "demo"`,
		`var fontAssetDemoDemo = icons.AssetRef{Pack: demoPackID, Family: "Demo", Path: "fonts/demo.ttf", Feature: ""}`,
		`var fontAssetDemoDemoMini = icons.AssetRef{Pack: demoPackID, Family: "Demo Mini", Path: "fonts/demo-mini.ttf", Feature: "demo-mini"}`,
		"var demoVariants = []variantRecord{",
		"\t{key: icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular}, asset: fontAssetDemoDemo, feature: \"\"},",
		"type DemoIcon uint16",
		"\tDemoAlarm DemoIcon = iota",
		"\tDemoType_",
		"func (i DemoIcon) Name() string {",
		"var demoIconNames = []string{",
		"var demoIconAlarmCodepoints = []codepointRecord{",
		"codepoint: 0xF102",
		"var demoIconType_Available = []availabilityRecord{",
		"func demoVariantFamily(reg *icons.Registry, key icons.VariantKey) (string, bool) {",
		"func demoIconCodepoint(reg *icons.Registry, name string, key icons.VariantKey) (rune, bool) {",
		"func demoIconAvailable(reg *icons.Registry, name string) ([]icons.VariantKey, bool) {",
	} {
		if !strings.Contains(source, want) {
			t.Errorf("rendered pack missing %q", want)
		}
	}
}

func TestRenderPack_Deterministic(t *testing.T) {
	first, err := RenderPack(demoPack())
	if err != nil {
		t.Fatalf("RenderPack: %v", err)
	}
	second, err := RenderPack(demoPack())
	if err != nil {
		t.Fatalf("RenderPack: %v", err)
	}
	if first != second {
		t.Error("repeated rendering produced different output")
	}
}

func TestRenderPack_InvalidPackID(t *testing.T) {
	pack := demoPack()
	pack.PackID = "bad--id"
	if _, err := RenderPack(pack); err == nil {
		t.Fatal("expected error for malformed pack id")
	}
}

func TestRenderIndex(t *testing.T) {
	other := demoPack()
	other.PackID = "zoo"

	source, err := RenderIndex([]*packdef.NormalizedPack{demoPack(), other})
	if err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}

	for _, want := range []string{
		"type Pack uint8",
		"\tPackDemo Pack = iota",
		"\tPackZoo",
		"func (p Pack) ID() string {",
		"type variantRecord struct {",
		"type codepointRecord struct {",
		"type availabilityRecord struct {",
		"func assetRefs() []icons.AssetRef {",
		"\t\tfontAssetDemoDemo,",
		"\t\tfontAssetZooDemo,",
		"func Load(cfg *icons.Config) (*icons.Registry, error) {",
		"func Fonts(reg *icons.Registry) []icons.FontAsset {",
		"func List(reg *icons.Registry, pack Pack) []string {",
		"func TryIcon(reg *icons.Registry, pack Pack, name string, style icons.Style, size icons.Size) (icons.IconRef, error) {",
		"return resolveIcon(reg, demoPackID, name, style, size, demoIconAvailable, demoVariantFamily, demoIconCodepoint)",
		"func resolveIcon(",
	} {
		if !strings.Contains(source, want) {
			t.Errorf("rendered index missing %q", want)
		}
	}

	// Asset order is pack then path: demo's assets before zoo's.
	if strings.Index(source, "fontAssetDemoDemo,") > strings.Index(source, "fontAssetZooDemo,") {
		t.Error("asset references out of pack order")
	}
}

func TestStyleExpr_CoversAllStyles(t *testing.T) {
	for style := icons.StyleRegular; style <= icons.StyleRounded; style++ {
		expr := styleExpr(style)
		if expr == "" {
			t.Errorf("styleExpr(%s) = empty", style)
		}
		if !strings.HasPrefix(expr, "icons.Style") {
			t.Errorf("styleExpr(%s) = %q", style, expr)
		}
	}
}

func TestSizeExpr(t *testing.T) {
	if got := sizeExpr(icons.SizeMini); got != "icons.SizeMini" {
		t.Errorf("sizeExpr(Mini) = %q", got)
	}
	if got := sizeExpr(icons.CustomSize(16)); got != "icons.CustomSize(16)" {
		t.Errorf("sizeExpr(16) = %q", got)
	}
}

func TestPackPrefix(t *testing.T) {
	prefix, err := packPrefix("my-pack")
	if err != nil {
		t.Fatalf("packPrefix: %v", err)
	}
	if prefix != "myPack" {
		t.Errorf("packPrefix = %q, want myPack", prefix)
	}
}
