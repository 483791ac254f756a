// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package gen

import (
	"fmt"

	"github.com/iconforge/iconforge/lib/packdef"
)

// RenderPack renders the per-pack artifact: asset references, the
// variant table, the icon discriminator, the name/codepoint/
// availability tables, and the pack's three linear-scan accessors.
// The tables are small (tens to low hundreds of entries), so linear
// scans keep the generated code free of index structures.
func RenderPack(pack *packdef.NormalizedPack) (string, error) {
	collection, err := packdef.CollectFontAssets(pack)
	if err != nil {
		return "", err
	}
	packIdent, err := packdef.PackIdentifier(pack.PackID)
	if err != nil {
		return "", err
	}
	prefix, err := packPrefix(pack.PackID)
	if err != nil {
		return "", err
	}

	w := &lineWriter{}
	w.preamble()

	w.line("const %sPackID = %q", prefix, pack.PackID)
	w.blank()

	for _, asset := range collection.Assets {
		w.line("var %s = icons.AssetRef{Pack: %sPackID, Family: %q, Path: %q, Feature: %q}",
			asset.Identifier, prefix, asset.Family, asset.Path, asset.Feature)
	}
	w.blank()

	w.line("// %sVariants maps each declared variant key to its backing asset,", prefix)
	w.line("// in declared variant order.")
	w.line("var %sVariants = []variantRecord{", prefix)
	for _, variant := range pack.Variants {
		path := normalizePath(variant.AssetPath)
		identifier, ok := collection.IdentifierByPath[path]
		if !ok {
			return "", fmt.Errorf("pack %q: no asset for variant %q path %q", pack.PackID, variant.ID, path)
		}
		w.line("\t{key: %s, asset: %s, feature: %q},", keyExpr(variant.Key), identifier, variant.Feature)
	}
	w.line("}")
	w.blank()

	w.line("// %sIcon enumerates the icons of the %s pack.", packIdent, pack.PackID)
	w.line("type %sIcon uint16", packIdent)
	w.blank()
	w.line("const (")
	for i, icon := range pack.Icons {
		if i == 0 {
			w.line("\t%s%s %sIcon = iota", packIdent, icon.Identifier, packIdent)
		} else {
			w.line("\t%s%s", packIdent, icon.Identifier)
		}
	}
	w.line(")")
	w.blank()

	w.line("// Name returns the descriptor name of the icon.")
	w.line("func (i %sIcon) Name() string {", packIdent)
	w.line("\tif int(i) < len(%sIconNames) {", prefix)
	w.line("\t\treturn %sIconNames[int(i)]", prefix)
	w.line("\t}")
	w.line("\treturn \"\"")
	w.line("}")
	w.blank()

	w.line("var %sIconNames = []string{", prefix)
	for _, icon := range pack.Icons {
		w.line("\t%q,", icon.Name)
	}
	w.line("}")
	w.blank()

	for _, icon := range pack.Icons {
		w.line("var %sIcon%sCodepoints = []codepointRecord{", prefix, icon.Identifier)
		for _, entry := range icon.Codepoints {
			w.line("\t{key: %s, codepoint: 0x%X, feature: %q},",
				keyExpr(entry.Key), entry.Codepoint, collection.FeatureByKey[entry.Key])
		}
		w.line("}")
		w.blank()
	}

	for _, icon := range pack.Icons {
		w.line("var %sIcon%sAvailable = []availabilityRecord{", prefix, icon.Identifier)
		for _, entry := range icon.Codepoints {
			w.line("\t{key: %s, feature: %q},", keyExpr(entry.Key), collection.FeatureByKey[entry.Key])
		}
		w.line("}")
		w.blank()
	}

	w.line("var %sIconCodepoints = []iconCodepoints{", prefix)
	for _, icon := range pack.Icons {
		w.line("\t{name: %q, codepoints: %sIcon%sCodepoints},", icon.Name, prefix, icon.Identifier)
	}
	w.line("}")
	w.blank()

	w.line("var %sIconAvailability = []iconAvailability{", prefix)
	for _, icon := range pack.Icons {
		w.line("\t{name: %q, available: %sIcon%sAvailable},", icon.Name, prefix, icon.Identifier)
	}
	w.line("}")
	w.blank()

	w.line("func %sVariantFamily(reg *icons.Registry, key icons.VariantKey) (string, bool) {", prefix)
	w.line("\tfor _, variant := range %sVariants {", prefix)
	w.line("\t\tif variant.key == key && reg.FeatureEnabled(variant.feature) {")
	w.line("\t\t\treturn variant.asset.Family, true")
	w.line("\t\t}")
	w.line("\t}")
	w.line("\treturn \"\", false")
	w.line("}")
	w.blank()

	w.line("func %sIconCodepoint(reg *icons.Registry, name string, key icons.VariantKey) (rune, bool) {", prefix)
	w.line("\tfor _, entry := range %sIconCodepoints {", prefix)
	w.line("\t\tif entry.name != name {")
	w.line("\t\t\tcontinue")
	w.line("\t\t}")
	w.line("\t\tfor _, record := range entry.codepoints {")
	w.line("\t\t\tif record.key == key && reg.FeatureEnabled(record.feature) {")
	w.line("\t\t\t\treturn record.codepoint, true")
	w.line("\t\t\t}")
	w.line("\t\t}")
	w.line("\t\treturn 0, false")
	w.line("\t}")
	w.line("\treturn 0, false")
	w.line("}")
	w.blank()

	w.line("func %sIconAvailable(reg *icons.Registry, name string) ([]icons.VariantKey, bool) {", prefix)
	w.line("\tfor _, entry := range %sIconAvailability {", prefix)
	w.line("\t\tif entry.name != name {")
	w.line("\t\t\tcontinue")
	w.line("\t\t}")
	w.line("\t\tkeys := make([]icons.VariantKey, 0, len(entry.available))")
	w.line("\t\tfor _, record := range entry.available {")
	w.line("\t\t\tif reg.FeatureEnabled(record.feature) {")
	w.line("\t\t\t\tkeys = append(keys, record.key)")
	w.line("\t\t\t}")
	w.line("\t\t}")
	w.line("\t\treturn keys, true")
	w.line("\t}")
	w.line("\treturn nil, false")
	w.line("}")

	return w.String(), nil
}
