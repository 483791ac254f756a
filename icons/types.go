// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package icons

import (
	"fmt"
	"strconv"
)

// Style is the closed set of stroke/fill styles an icon pack variant
// can declare. The set is fixed by the descriptor schema; the emitter
// dispatches exhaustively over it.
type Style uint8

const (
	StyleRegular Style = iota
	StyleFilled
	StyleOutline
	StyleLight
	StyleThin
	StyleBold
	StyleDuotone
	StyleGlyph
	StyleSharp
	StyleRounded
)

// styleNames is indexed by Style. Order must match the constant block.
var styleNames = [...]string{
	"Regular",
	"Filled",
	"Outline",
	"Light",
	"Thin",
	"Bold",
	"Duotone",
	"Glyph",
	"Sharp",
	"Rounded",
}

// String returns the descriptor spelling of the style.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// ParseStyle parses a descriptor style name. The match is exact and
// case-sensitive, the same spelling the descriptor schema requires.
func ParseStyle(name string) (Style, error) {
	for i, candidate := range styleNames {
		if candidate == name {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("unknown style %q (expected one of Regular, Filled, Outline, Light, Thin, Bold, Duotone, Glyph, Sharp, Rounded)", name)
}

// sizeToken discriminates the Size union. The zero value is reserved
// so that an uninitialized Size is distinguishable from every valid
// size.
type sizeToken uint8

const (
	sizeTokenTiny sizeToken = iota + 1
	sizeTokenMini
	sizeTokenRegular
	sizeTokenLarge
	sizeTokenCustom
)

// Size is one of the four fixed size tokens or a custom pixel size in
// 1..65535. Size values are comparable; two sizes are equal when they
// carry the same token and, for custom sizes, the same pixel count.
type Size struct {
	token sizeToken
	px    uint16
}

// The four fixed size tokens of the descriptor schema.
var (
	SizeTiny    = Size{token: sizeTokenTiny}
	SizeMini    = Size{token: sizeTokenMini}
	SizeRegular = Size{token: sizeTokenRegular}
	SizeLarge   = Size{token: sizeTokenLarge}
)

// CustomSize returns a custom pixel size. px must be in 1..65535;
// the descriptor parser rejects anything outside that range before a
// Size is ever constructed from input.
func CustomSize(px uint16) Size {
	return Size{token: sizeTokenCustom, px: px}
}

// IsCustom reports whether the size is a custom pixel size rather
// than one of the four fixed tokens.
func (s Size) IsCustom() bool {
	return s.token == sizeTokenCustom
}

// Px returns the pixel count of a custom size, or 0 for the fixed
// tokens.
func (s Size) Px() uint16 {
	if s.token == sizeTokenCustom {
		return s.px
	}
	return 0
}

// String returns the descriptor spelling: the token name, or the bare
// pixel count for custom sizes.
func (s Size) String() string {
	switch s.token {
	case sizeTokenTiny:
		return "Tiny"
	case sizeTokenMini:
		return "Mini"
	case sizeTokenRegular:
		return "Regular"
	case sizeTokenLarge:
		return "Large"
	case sizeTokenCustom:
		return strconv.Itoa(int(s.px))
	}
	return "Size(invalid)"
}

// ParseSizeToken parses one of the four fixed size token names.
// Custom numeric sizes are handled by the descriptor parser, which
// sees them as JSON numbers rather than strings.
func ParseSizeToken(name string) (Size, error) {
	switch name {
	case "Tiny":
		return SizeTiny, nil
	case "Mini":
		return SizeMini, nil
	case "Regular":
		return SizeRegular, nil
	case "Large":
		return SizeLarge, nil
	}
	return Size{}, fmt.Errorf("unknown size %q (expected Tiny, Mini, Regular, Large, or an integer)", name)
}

// VariantKey identifies a variant within a pack: the (style, size)
// pair every lookup is keyed on.
type VariantKey struct {
	Style Style
	Size  Size
}

// String renders the key as "Style/Size" for error messages.
func (k VariantKey) String() string {
	return k.Style.String() + "/" + k.Size.String()
}

// IconRef is a resolved glyph: the font family to render with and the
// Unicode codepoint of the glyph inside that font.
type IconRef struct {
	Family    string
	Codepoint rune
}

// FontAsset is a loaded font: the family name stored inside the TTF
// and its raw bytes. The bytes are owned by the Registry and must be
// treated as read-only.
type FontAsset struct {
	Family string
	Bytes  []byte
}

// AssetRef is a generated reference to a font file on disk, one per
// deduplicated backing file of a pack. The registry resolves Path
// against the configured asset root and loads the bytes at startup.
// Feature, when non-empty, names the gate that must be enabled for
// the asset to be loaded at all.
type AssetRef struct {
	Pack    string
	Family  string
	Path    string
	Feature string
}
