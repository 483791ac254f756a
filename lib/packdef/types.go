// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package packdef

import (
	"encoding/json"
	"fmt"

	"github.com/iconforge/iconforge/icons"
)

// PackMap is the raw, unvalidated descriptor for one pack, exactly as
// authored on disk. Normalize turns it into a NormalizedPack.
type PackMap struct {
	PackID   string    `json:"pack_id"`
	Variants []Variant `json:"variants"`
	Icons    []Icon    `json:"icons"`

	// SourcePath is the descriptor file the pack was read from. Set
	// by ReadFile/LoadDir, not part of the schema. Every validation
	// error names it so failures point at the offending file.
	SourcePath string `json:"-"`
}

// Variant is one declared font variant of a pack: a (style, size)
// rendering backed by a font file and family name, optionally guarded
// by a build feature gate.
type Variant struct {
	ID           string
	Style        icons.Style
	Size         icons.Size
	Family       string
	TTFAssetPath string

	// Feature is nil when the descriptor omits the field. A present
	// but blank value is a validation error, so "no gate" and
	// "forgot to name the gate" cannot be confused.
	Feature *string
}

// UnmarshalJSON decodes a variant, mapping the schema's string style
// and string-or-integer size onto the closed runtime enums. A size
// that is neither one of the four tokens nor an integer in 1..65535
// is a parse error, not a validation error: the descriptor is
// malformed at the schema level.
func (v *Variant) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           string          `json:"id"`
		Style        *string         `json:"style"`
		Size         json.RawMessage `json:"size"`
		Family       string          `json:"family"`
		TTFAssetPath string          `json:"ttf_asset_path"`
		Feature      *string         `json:"feature"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Style == nil {
		return fmt.Errorf("variant %q: missing style", raw.ID)
	}
	style, err := icons.ParseStyle(*raw.Style)
	if err != nil {
		return fmt.Errorf("variant %q: %w", raw.ID, err)
	}

	if len(raw.Size) == 0 {
		return fmt.Errorf("variant %q: missing size", raw.ID)
	}
	size, err := parseSize(raw.Size)
	if err != nil {
		return fmt.Errorf("variant %q: %w", raw.ID, err)
	}

	v.ID = raw.ID
	v.Style = style
	v.Size = size
	v.Family = raw.Family
	v.TTFAssetPath = raw.TTFAssetPath
	v.Feature = raw.Feature
	return nil
}

// parseSize decodes the size field: either one of the four token
// strings or a positive integer in 1..65535 (a custom pixel size).
func parseSize(raw json.RawMessage) (icons.Size, error) {
	if raw[0] == '"' {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return icons.Size{}, err
		}
		return icons.ParseSizeToken(name)
	}

	var px int64
	if err := json.Unmarshal(raw, &px); err != nil {
		return icons.Size{}, fmt.Errorf("size must be a token string or an integer: %w", err)
	}
	if px < 1 || px > 65535 {
		return icons.Size{}, fmt.Errorf("custom size %d out of range (must be 1..65535)", px)
	}
	return icons.CustomSize(uint16(px)), nil
}

// Icon is one raw icon entry: a name, an optional default codepoint,
// per-variant codepoint overrides, and an optional explicit
// availability list.
type Icon struct {
	Name      string            `json:"name"`
	Codepoint *uint32           `json:"codepoint"`
	Overrides map[string]uint32 `json:"overrides"`

	// Availability distinguishes "omitted" (nil, derived during
	// normalization) from "explicitly empty" (non-nil zero-length,
	// a validation error).
	Availability []string `json:"availability"`
}
