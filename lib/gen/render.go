// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package gen

import (
	"fmt"
	"strings"

	"github.com/iconforge/iconforge/icons"
	"github.com/iconforge/iconforge/lib/packdef"
)

// header is the first line of every artifact. The wording follows the
// Go convention for generated files so tooling skips them.
const header = "// Code generated by iconforge generate. DO NOT EDIT."

// lineWriter accumulates rendered source one line at a time.
type lineWriter struct {
	builder strings.Builder
}

func (w *lineWriter) line(format string, args ...any) {
	if len(args) == 0 {
		w.builder.WriteString(format)
	} else {
		fmt.Fprintf(&w.builder, format, args...)
	}
	w.builder.WriteByte('\n')
}

func (w *lineWriter) blank() {
	w.builder.WriteByte('\n')
}

func (w *lineWriter) String() string {
	return w.builder.String()
}

// preamble emits the generated-file header, package clause, and the
// icons import shared by every artifact.
func (w *lineWriter) preamble() {
	w.line(header)
	w.blank()
	w.line("package catalog")
	w.blank()
	w.line("import (")
	w.line("\t\"github.com/iconforge/iconforge/icons\"")
	w.line(")")
	w.blank()
}

// styleExpr maps a style onto its Go constant expression. The switch
// covers the whole closed enum; extending Style means extending this
// dispatch.
func styleExpr(style icons.Style) string {
	switch style {
	case icons.StyleRegular:
		return "icons.StyleRegular"
	case icons.StyleFilled:
		return "icons.StyleFilled"
	case icons.StyleOutline:
		return "icons.StyleOutline"
	case icons.StyleLight:
		return "icons.StyleLight"
	case icons.StyleThin:
		return "icons.StyleThin"
	case icons.StyleBold:
		return "icons.StyleBold"
	case icons.StyleDuotone:
		return "icons.StyleDuotone"
	case icons.StyleGlyph:
		return "icons.StyleGlyph"
	case icons.StyleSharp:
		return "icons.StyleSharp"
	case icons.StyleRounded:
		return "icons.StyleRounded"
	}
	return ""
}

// sizeExpr maps a size onto its Go constructor expression.
func sizeExpr(size icons.Size) string {
	if size.IsCustom() {
		return fmt.Sprintf("icons.CustomSize(%d)", size.Px())
	}
	switch size {
	case icons.SizeTiny:
		return "icons.SizeTiny"
	case icons.SizeMini:
		return "icons.SizeMini"
	case icons.SizeRegular:
		return "icons.SizeRegular"
	case icons.SizeLarge:
		return "icons.SizeLarge"
	}
	return ""
}

// keyExpr renders a VariantKey literal.
func keyExpr(key icons.VariantKey) string {
	return fmt.Sprintf("icons.VariantKey{Style: %s, Size: %s}", styleExpr(key.Style), sizeExpr(key.Size))
}

// normalizePath applies the same backslash normalization the asset
// deduplicator uses, so table rendering finds the deduplicated asset
// for every variant path spelling.
func normalizePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// packPrefix returns the lowerCamel symbol prefix of a pack, e.g.
// "bootstrap" or "myPack". Generated pack-scoped tables and accessors
// hang off this prefix.
func packPrefix(packID string) (string, error) {
	ident, err := packdef.PackIdentifier(packID)
	if err != nil {
		return "", err
	}
	return strings.ToLower(ident[:1]) + ident[1:], nil
}
