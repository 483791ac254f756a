// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package gen

import (
	"github.com/iconforge/iconforge/lib/packdef"
)

// RenderIndex renders the index artifact: the Pack discriminator, the
// record types shared by every pack table, the union of all packs'
// deduplicated asset references, registry construction, and the
// Fonts/List/TryIcon dispatch with the shared resolution algorithm.
// packs must already be sorted by pack ID.
func RenderIndex(packs []*packdef.NormalizedPack) (string, error) {
	type packSymbols struct {
		id     string
		ident  string
		prefix string
		assets []packdef.FontAssetInfo
	}

	symbols := make([]packSymbols, 0, len(packs))
	for _, pack := range packs {
		collection, err := packdef.CollectFontAssets(pack)
		if err != nil {
			return "", err
		}
		ident, err := packdef.PackIdentifier(pack.PackID)
		if err != nil {
			return "", err
		}
		prefix, err := packPrefix(pack.PackID)
		if err != nil {
			return "", err
		}
		symbols = append(symbols, packSymbols{
			id:     pack.PackID,
			ident:  ident,
			prefix: prefix,
			assets: collection.Assets,
		})
	}

	w := &lineWriter{}
	w.preamble()

	w.line("// Pack identifies a generated icon pack.")
	w.line("type Pack uint8")
	w.blank()
	w.line("const (")
	for i, pack := range symbols {
		if i == 0 {
			w.line("\tPack%s Pack = iota", pack.ident)
		} else {
			w.line("\tPack%s", pack.ident)
		}
	}
	w.line(")")
	w.blank()

	w.line("// ID returns the descriptor pack_id of the pack.")
	w.line("func (p Pack) ID() string {")
	w.line("\tswitch p {")
	for _, pack := range symbols {
		w.line("\tcase Pack%s:", pack.ident)
		w.line("\t\treturn %sPackID", pack.prefix)
	}
	w.line("\t}")
	w.line("\treturn \"\"")
	w.line("}")
	w.blank()

	w.line("type variantRecord struct {")
	w.line("\tkey     icons.VariantKey")
	w.line("\tasset   icons.AssetRef")
	w.line("\tfeature string")
	w.line("}")
	w.blank()
	w.line("type codepointRecord struct {")
	w.line("\tkey       icons.VariantKey")
	w.line("\tcodepoint rune")
	w.line("\tfeature   string")
	w.line("}")
	w.blank()
	w.line("type availabilityRecord struct {")
	w.line("\tkey     icons.VariantKey")
	w.line("\tfeature string")
	w.line("}")
	w.blank()
	w.line("type iconCodepoints struct {")
	w.line("\tname       string")
	w.line("\tcodepoints []codepointRecord")
	w.line("}")
	w.blank()
	w.line("type iconAvailability struct {")
	w.line("\tname      string")
	w.line("\tavailable []availabilityRecord")
	w.line("}")
	w.blank()

	w.line("// assetRefs lists every deduplicated font asset across all packs,")
	w.line("// in pack then asset-path order.")
	w.line("func assetRefs() []icons.AssetRef {")
	w.line("\treturn []icons.AssetRef{")
	for _, pack := range symbols {
		for _, asset := range pack.assets {
			w.line("\t\t%s,", asset.Identifier)
		}
	}
	w.line("\t}")
	w.line("}")
	w.blank()

	w.line("// Load reads every font asset enabled by cfg and builds the")
	w.line("// process-lifetime registry consumed by Fonts, List, and TryIcon.")
	w.line("func Load(cfg *icons.Config) (*icons.Registry, error) {")
	w.line("\treturn icons.NewRegistry(cfg, assetRefs())")
	w.line("}")
	w.blank()

	w.line("// Fonts returns the loaded font assets of every enabled pack.")
	w.line("func Fonts(reg *icons.Registry) []icons.FontAsset {")
	w.line("\treturn reg.Fonts()")
	w.line("}")
	w.blank()

	w.line("// List returns the pack's icon names in sorted order, or nil when")
	w.line("// the pack is not enabled.")
	w.line("func List(reg *icons.Registry, pack Pack) []string {")
	w.line("\tswitch pack {")
	for _, pack := range symbols {
		w.line("\tcase Pack%s:", pack.ident)
		w.line("\t\tif reg.PackEnabled(%sPackID) {", pack.prefix)
		w.line("\t\t\treturn %sIconNames", pack.prefix)
		w.line("\t\t}")
	}
	w.line("\t}")
	w.line("\treturn nil")
	w.line("}")
	w.blank()

	w.line("// TryIcon resolves an icon to the font family and codepoint that")
	w.line("// render it, or returns one of the three recoverable lookup errors.")
	w.line("func TryIcon(reg *icons.Registry, pack Pack, name string, style icons.Style, size icons.Size) (icons.IconRef, error) {")
	w.line("\tswitch pack {")
	for _, pack := range symbols {
		w.line("\tcase Pack%s:", pack.ident)
		w.line("\t\treturn resolveIcon(reg, %sPackID, name, style, size, %sIconAvailable, %sVariantFamily, %sIconCodepoint)",
			pack.prefix, pack.prefix, pack.prefix, pack.prefix)
	}
	w.line("\t}")
	w.line("\treturn icons.IconRef{}, &icons.PackDisabledError{Pack: pack.ID()}")
	w.line("}")
	w.blank()

	w.line("// resolveIcon implements the shared resolution algorithm: disabled")
	w.line("// pack, then unknown name, then unavailable variant (carrying the")
	w.line("// icon's full ordered availability), then the resolved reference.")
	w.line("func resolveIcon(")
	w.line("\treg *icons.Registry,")
	w.line("\tpack string,")
	w.line("\tname string,")
	w.line("\tstyle icons.Style,")
	w.line("\tsize icons.Size,")
	w.line("\tavailable func(*icons.Registry, string) ([]icons.VariantKey, bool),")
	w.line("\tfamily func(*icons.Registry, icons.VariantKey) (string, bool),")
	w.line("\tcodepoint func(*icons.Registry, string, icons.VariantKey) (rune, bool),")
	w.line(") (icons.IconRef, error) {")
	w.line("\tif !reg.PackEnabled(pack) {")
	w.line("\t\treturn icons.IconRef{}, &icons.PackDisabledError{Pack: pack}")
	w.line("\t}")
	w.line("\tkeys, known := available(reg, name)")
	w.line("\tif !known {")
	w.line("\t\treturn icons.IconRef{}, &icons.IconNotFoundError{Pack: pack, Name: name}")
	w.line("\t}")
	w.line("\trequested := icons.VariantKey{Style: style, Size: size}")
	w.line("\tunavailable := func() error {")
	w.line("\t\treturn &icons.VariantUnavailableError{Pack: pack, Name: name, Requested: requested, Available: keys}")
	w.line("\t}")
	w.line("\tfound := false")
	w.line("\tfor _, key := range keys {")
	w.line("\t\tif key == requested {")
	w.line("\t\t\tfound = true")
	w.line("\t\t\tbreak")
	w.line("\t\t}")
	w.line("\t}")
	w.line("\tif !found {")
	w.line("\t\treturn icons.IconRef{}, unavailable()")
	w.line("\t}")
	w.line("\tfam, ok := family(reg, requested)")
	w.line("\tif !ok {")
	w.line("\t\treturn icons.IconRef{}, unavailable()")
	w.line("\t}")
	w.line("\tvalue, ok := codepoint(reg, name, requested)")
	w.line("\tif !ok {")
	w.line("\t\treturn icons.IconRef{}, unavailable()")
	w.line("\t}")
	w.line("\treturn icons.IconRef{Family: fam, Codepoint: value}, nil")
	w.line("}")

	return w.String(), nil
}
