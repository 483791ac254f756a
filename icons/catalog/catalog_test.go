// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package catalog_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/iconforge/iconforge/icons"
	"github.com/iconforge/iconforge/icons/catalog"
)

// Tests run from this package's directory; the repository's asset
// tree is two levels up.
const assetRoot = "../.."

func load(t *testing.T, cfg *icons.Config) *icons.Registry {
	t.Helper()
	cfg.AssetRoot = assetRoot
	reg, err := catalog.Load(cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return reg
}

func TestLoad_UngatedFonts(t *testing.T) {
	reg := load(t, &icons.Config{})

	var families []string
	for _, font := range catalog.Fonts(reg) {
		families = append(families, font.Family)
		if len(font.Bytes) == 0 {
			t.Errorf("font %q loaded empty", font.Family)
		}
	}

	// Gated faces (mini, micro) are excluded without their features.
	want := []string{"Bootstrap Regular", "Heroicons Outline", "Heroicons Solid"}
	if !slices.Equal(families, want) {
		t.Errorf("families = %v, want %v", families, want)
	}
}

func TestLoad_FeaturesEnableGatedFonts(t *testing.T) {
	reg := load(t, &icons.Config{Features: []string{"heroicons-mini", "heroicons-micro"}})

	var families []string
	for _, font := range catalog.Fonts(reg) {
		families = append(families, font.Family)
	}
	want := []string{
		"Bootstrap Regular",
		"Heroicons Micro",
		"Heroicons Mini",
		"Heroicons Outline",
		"Heroicons Solid",
	}
	if !slices.Equal(families, want) {
		t.Errorf("families = %v, want %v", families, want)
	}
}

func TestLoad_PackFilterSkipsAssets(t *testing.T) {
	reg := load(t, &icons.Config{Packs: []string{"bootstrap"}})

	fonts := catalog.Fonts(reg)
	if len(fonts) != 1 || fonts[0].Family != "Bootstrap Regular" {
		t.Errorf("fonts = %v", fonts)
	}
}

func TestPackID(t *testing.T) {
	if catalog.PackBootstrap.ID() != "bootstrap" {
		t.Errorf("PackBootstrap.ID() = %q", catalog.PackBootstrap.ID())
	}
	if catalog.PackHeroicons.ID() != "heroicons" {
		t.Errorf("PackHeroicons.ID() = %q", catalog.PackHeroicons.ID())
	}
}

func TestIconName(t *testing.T) {
	if got := catalog.BootstrapAlarm.Name(); got != "alarm" {
		t.Errorf("BootstrapAlarm.Name() = %q", got)
	}
	if got := catalog.HeroiconsAcademicCap.Name(); got != "academic-cap" {
		t.Errorf("HeroiconsAcademicCap.Name() = %q", got)
	}
	if got := catalog.BootstrapIcon(99).Name(); got != "" {
		t.Errorf("out-of-range Name() = %q", got)
	}
}

func TestList(t *testing.T) {
	reg := load(t, &icons.Config{})

	names := catalog.List(reg, catalog.PackBootstrap)
	if !slices.Equal(names, []string{"0-circle", "123", "alarm"}) {
		t.Errorf("bootstrap names = %v", names)
	}
	if !slices.IsSorted(names) {
		t.Error("names not sorted")
	}
}

func TestList_DisabledPack(t *testing.T) {
	reg := load(t, &icons.Config{Packs: []string{"heroicons"}})

	if names := catalog.List(reg, catalog.PackBootstrap); names != nil {
		t.Errorf("List of disabled pack = %v, want nil", names)
	}
	if names := catalog.List(reg, catalog.PackHeroicons); len(names) != 2 {
		t.Errorf("heroicons names = %v", names)
	}
}

func TestTryIcon_Resolves(t *testing.T) {
	reg := load(t, &icons.Config{})

	ref, err := catalog.TryIcon(reg, catalog.PackBootstrap, "alarm", icons.StyleRegular, icons.SizeRegular)
	if err != nil {
		t.Fatalf("TryIcon: %v", err)
	}
	if ref.Family != "Bootstrap Regular" || ref.Codepoint != 0xF102 {
		t.Errorf("ref = %+v", ref)
	}

	ref, err = catalog.TryIcon(reg, catalog.PackHeroicons, "academic-cap", icons.StyleOutline, icons.SizeRegular)
	if err != nil {
		t.Fatalf("TryIcon: %v", err)
	}
	if ref.Family != "Heroicons Outline" || ref.Codepoint != 0xE900 {
		t.Errorf("ref = %+v", ref)
	}
}

func TestTryIcon_PerVariantOverrides(t *testing.T) {
	reg := load(t, &icons.Config{})

	outline, err := catalog.TryIcon(reg, catalog.PackHeroicons, "arrow-left-on-rectangle", icons.StyleOutline, icons.SizeRegular)
	if err != nil {
		t.Fatalf("TryIcon outline: %v", err)
	}
	if outline.Codepoint != 0xE901 {
		t.Errorf("outline codepoint = %X, want E901", outline.Codepoint)
	}

	solid, err := catalog.TryIcon(reg, catalog.PackHeroicons, "arrow-left-on-rectangle", icons.StyleFilled, icons.SizeRegular)
	if err != nil {
		t.Fatalf("TryIcon solid: %v", err)
	}
	if solid.Codepoint != 0xE902 || solid.Family != "Heroicons Solid" {
		t.Errorf("solid = %+v", solid)
	}
}

func TestTryIcon_PackDisabled(t *testing.T) {
	reg := load(t, &icons.Config{Packs: []string{"bootstrap"}})

	_, err := catalog.TryIcon(reg, catalog.PackHeroicons, "academic-cap", icons.StyleOutline, icons.SizeRegular)
	var disabled *icons.PackDisabledError
	if !errors.As(err, &disabled) {
		t.Fatalf("error = %v, want PackDisabledError", err)
	}
	if disabled.Pack != "heroicons" {
		t.Errorf("Pack = %q", disabled.Pack)
	}
}

func TestTryIcon_IconNotFound(t *testing.T) {
	reg := load(t, &icons.Config{})

	_, err := catalog.TryIcon(reg, catalog.PackBootstrap, "ghost", icons.StyleRegular, icons.SizeRegular)
	var notFound *icons.IconNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want IconNotFoundError", err)
	}
	if notFound.Pack != "bootstrap" || notFound.Name != "ghost" {
		t.Errorf("notFound = %+v", notFound)
	}
}

func TestTryIcon_VariantUnavailable(t *testing.T) {
	reg := load(t, &icons.Config{})

	// "123" exists only in the regular face.
	_, err := catalog.TryIcon(reg, catalog.PackBootstrap, "123", icons.StyleFilled, icons.SizeRegular)
	var unavailable *icons.VariantUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want VariantUnavailableError", err)
	}
	if unavailable.Requested != (icons.VariantKey{Style: icons.StyleFilled, Size: icons.SizeRegular}) {
		t.Errorf("Requested = %s", unavailable.Requested)
	}
	want := []icons.VariantKey{{Style: icons.StyleRegular, Size: icons.SizeRegular}}
	if !slices.Equal(unavailable.Available, want) {
		t.Errorf("Available = %v, want %v", unavailable.Available, want)
	}
}

func TestTryIcon_FeatureGatedVariant(t *testing.T) {
	// Without the feature the mini variant is invisible: the lookup
	// fails and the advertised availability excludes it.
	reg := load(t, &icons.Config{})
	_, err := catalog.TryIcon(reg, catalog.PackHeroicons, "academic-cap", icons.StyleFilled, icons.SizeMini)
	var unavailable *icons.VariantUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want VariantUnavailableError", err)
	}
	for _, key := range unavailable.Available {
		if key.Size == icons.SizeMini {
			t.Errorf("gated variant advertised as available: %s", key)
		}
	}

	// With the feature the same lookup resolves.
	reg = load(t, &icons.Config{Features: []string{"heroicons-mini"}})
	ref, err := catalog.TryIcon(reg, catalog.PackHeroicons, "academic-cap", icons.StyleFilled, icons.SizeMini)
	if err != nil {
		t.Fatalf("TryIcon with feature: %v", err)
	}
	if ref.Family != "Heroicons Mini" || ref.Codepoint != 0xE900 {
		t.Errorf("ref = %+v", ref)
	}
}

func TestTryIcon_CustomSizeVariant(t *testing.T) {
	reg := load(t, &icons.Config{Features: []string{"heroicons-micro"}})

	ref, err := catalog.TryIcon(reg, catalog.PackHeroicons, "academic-cap", icons.StyleFilled, icons.CustomSize(16))
	if err != nil {
		t.Fatalf("TryIcon: %v", err)
	}
	if ref.Family != "Heroicons Micro" || ref.Codepoint != 0xE900 {
		t.Errorf("ref = %+v", ref)
	}

	// A custom size nothing declares stays unavailable.
	_, err = catalog.TryIcon(reg, catalog.PackHeroicons, "academic-cap", icons.StyleFilled, icons.CustomSize(17))
	var unavailable *icons.VariantUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want VariantUnavailableError", err)
	}
}
