// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package packdef

import (
	"fmt"
	"path"
	"strings"
)

// goKeywords is the set of Go reserved words. A generated identifier
// that matches one (case-insensitively) gets a trailing underscore so
// it stays a valid, distinct symbol in emitted code.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// IconIdentifier maps an icon name to the identifier used for its
// generated constants. The mapping is pure and deterministic: split
// on "-", uppercase the first alphabetic character of each segment,
// concatenate. A leading digit gets an "Icon" prefix so the result
// is a valid identifier; a keyword collision gets a "_" suffix.
//
//	"arrow-left" → "ArrowLeft"
//	"0-circle"   → "Icon0Circle"
//	"type"       → "Type_"
//
// Two distinct names can map to the same identifier; detecting that
// is the normalizer's job, not this function's.
func IconIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("icon name is empty")
	}

	var builder strings.Builder
	for _, segment := range strings.Split(name, "-") {
		if segment == "" {
			return "", fmt.Errorf("icon name contains empty segment: %q", name)
		}
		builder.WriteString(capitalize(segment))
	}

	ident := builder.String()
	if ident[0] >= '0' && ident[0] <= '9' {
		ident = "Icon" + ident
	}
	if goKeywords[strings.ToLower(ident)] {
		ident += "_"
	}
	return ident, nil
}

// PackIdentifier maps a pack ID to the identifier used for its Pack
// constant and generated symbol prefixes, with the same rules as icon
// names.
func PackIdentifier(packID string) (string, error) {
	ident, err := IconIdentifier(packID)
	if err != nil {
		return "", fmt.Errorf("pack id %q: %w", packID, err)
	}
	return ident, nil
}

// AssetIdentifier derives the lowerCamel variable name for a font
// asset from its pack ID and file stem, e.g.
// ("bootstrap", "assets/fonts/bootstrap/bootstrap-icons.ttf") →
// "fontAssetBootstrapBootstrapIcons". A ".zst" compression suffix is
// stripped before the stem is taken.
func AssetIdentifier(packID, assetPath string) (string, error) {
	stem := path.Base(strings.TrimSuffix(assetPath, ".zst"))
	stem = strings.TrimSuffix(stem, path.Ext(stem))
	if stem == "" || stem == "." {
		return "", fmt.Errorf("invalid font asset path: %q", assetPath)
	}

	packIdent, err := PackIdentifier(packID)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("fontAsset")
	builder.WriteString(packIdent)
	for _, segment := range strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	}) {
		builder.WriteString(capitalize(segment))
	}

	ident := builder.String()
	for _, r := range ident {
		if !isIdentRune(r) {
			return "", fmt.Errorf("font asset path %q yields invalid identifier character %q", assetPath, r)
		}
	}
	return ident, nil
}

// capitalize uppercases the first character of a segment when it is
// an ASCII letter, leaving the rest unchanged.
func capitalize(segment string) string {
	first := segment[0]
	if first >= 'a' && first <= 'z' {
		return string(first-'a'+'A') + segment[1:]
	}
	return segment
}

func isIdentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}
