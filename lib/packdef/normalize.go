// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package packdef

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iconforge/iconforge/icons"
)

// ErrorKind names the semantic validation failure a NormalizationError
// reports. Every kind is fatal to the generator run.
type ErrorKind int

const (
	ErrDuplicateVariantID ErrorKind = iota
	ErrDuplicateVariantKey
	ErrEmptyFeatureName
	ErrDuplicateIconName
	ErrIdentifierCollision
	ErrUnknownVariantReferenced
	ErrEmptyAvailability
	ErrDuplicateAvailabilityEntry
	ErrOverrideNotInAvailability
	ErrNoCodepointOrOverrides
	ErrMissingCodepointForVariant
	ErrNoAvailableVariants
)

var errorKindNames = [...]string{
	"DuplicateVariantID",
	"DuplicateVariantKey",
	"EmptyFeatureName",
	"DuplicateIconName",
	"IdentifierCollision",
	"UnknownVariantReferenced",
	"EmptyAvailability",
	"DuplicateAvailabilityEntry",
	"OverrideNotInAvailability",
	"NoCodepointOrOverrides",
	"MissingCodepointForVariant",
	"NoAvailableVariants",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// NormalizationError is a semantic validation failure, carrying enough
// context (descriptor path, pack, icon, variant) to locate the source
// of the problem.
type NormalizationError struct {
	Kind    ErrorKind
	Source  string
	Pack    string
	Icon    string
	Variant string
	Detail  string
}

func (e *NormalizationError) Error() string {
	var builder strings.Builder
	if e.Source != "" {
		builder.WriteString(e.Source)
		builder.WriteString(": ")
	}
	fmt.Fprintf(&builder, "pack %q", e.Pack)
	if e.Icon != "" {
		fmt.Fprintf(&builder, ": icon %q", e.Icon)
	}
	if e.Variant != "" {
		fmt.Fprintf(&builder, ": variant %q", e.Variant)
	}
	builder.WriteString(": ")
	builder.WriteString(e.Detail)
	return builder.String()
}

// VariantInfo is a validated variant in canonical (ID-sorted) order.
type VariantInfo struct {
	ID        string
	Key       icons.VariantKey
	Family    string
	AssetPath string

	// Feature is the build gate name, or "" when ungated.
	Feature string
}

// CodepointEntry is one resolved (variant key, codepoint) pair of a
// normalized icon.
type CodepointEntry struct {
	Key       icons.VariantKey
	Codepoint rune
}

// NormalizedIcon is an icon restricted to its computed availability,
// with codepoints in declared (ID-sorted) variant order.
type NormalizedIcon struct {
	Name       string
	Identifier string
	Codepoints []CodepointEntry
}

// NormalizedPack is the canonical model of one pack: variants ordered
// by ID, icons ordered by name, every invariant enforced.
type NormalizedPack struct {
	PackID     string
	SourcePath string
	Variants   []VariantInfo
	Icons      []NormalizedIcon
}

// Normalize validates a raw pack descriptor and produces its canonical
// model. It is the single source of truth for descriptor correctness:
// everything downstream (deduplication, rendering) may assume the
// invariants hold. Normalize does not mutate the input and is
// idempotent over it.
func Normalize(pack *PackMap) (*NormalizedPack, error) {
	fail := func(kind ErrorKind, icon, variant, format string, args ...any) error {
		return &NormalizationError{
			Kind:    kind,
			Source:  pack.SourcePath,
			Pack:    pack.PackID,
			Icon:    icon,
			Variant: variant,
			Detail:  fmt.Sprintf(format, args...),
		}
	}

	variants := slices.Clone(pack.Variants)
	slices.SortStableFunc(variants, func(a, b Variant) int {
		return strings.Compare(a.ID, b.ID)
	})

	seenKeys := make(map[icons.VariantKey]string, len(variants))
	keyByID := make(map[string]icons.VariantKey, len(variants))
	info := make([]VariantInfo, 0, len(variants))

	for _, variant := range variants {
		if _, dup := keyByID[variant.ID]; dup {
			return nil, fail(ErrDuplicateVariantID, "", variant.ID, "duplicate variant id")
		}

		key := icons.VariantKey{Style: variant.Style, Size: variant.Size}
		if other, dup := seenKeys[key]; dup {
			return nil, fail(ErrDuplicateVariantKey, "", variant.ID,
				"duplicate style/size %s (also declared by variant %q)", key, other)
		}
		seenKeys[key] = variant.ID

		feature := ""
		if variant.Feature != nil {
			if strings.TrimSpace(*variant.Feature) == "" {
				return nil, fail(ErrEmptyFeatureName, "", variant.ID, "feature name is empty")
			}
			feature = *variant.Feature
		}

		keyByID[variant.ID] = key
		info = append(info, VariantInfo{
			ID:        variant.ID,
			Key:       key,
			Family:    variant.Family,
			AssetPath: variant.TTFAssetPath,
			Feature:   feature,
		})
	}

	variantIDs := make([]string, len(info))
	for i, v := range info {
		variantIDs[i] = v.ID
	}

	seenNames := make(map[string]bool, len(pack.Icons))
	nameByIdent := make(map[string]string, len(pack.Icons))
	normalized := make([]NormalizedIcon, 0, len(pack.Icons))

	for i := range pack.Icons {
		icon := &pack.Icons[i]

		if seenNames[icon.Name] {
			return nil, fail(ErrDuplicateIconName, icon.Name, "", "duplicate icon name")
		}
		seenNames[icon.Name] = true

		ident, err := IconIdentifier(icon.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: pack %q: %w", pack.SourcePath, pack.PackID, err)
		}
		if prev, collision := nameByIdent[ident]; collision {
			return nil, fail(ErrIdentifierCollision, icon.Name, "",
				"identifier collision: %q and %q both map to %q", prev, icon.Name, ident)
		}
		nameByIdent[ident] = icon.Name

		overrideIDs := sortedKeys(icon.Overrides)
		for _, id := range overrideIDs {
			if _, known := keyByID[id]; !known {
				return nil, fail(ErrUnknownVariantReferenced, icon.Name, id,
					"override references undeclared variant")
			}
		}

		availability, err := computeAvailability(icon, variantIDs, keyByID, overrideIDs, fail)
		if err != nil {
			return nil, err
		}

		availabilitySet := make(map[string]bool, len(availability))
		for _, id := range availability {
			availabilitySet[id] = true
		}

		var codepoints []CodepointEntry
		for _, id := range variantIDs {
			if !availabilitySet[id] {
				continue
			}
			value, overridden := icon.Overrides[id]
			if !overridden {
				if icon.Codepoint == nil {
					return nil, fail(ErrMissingCodepointForVariant, icon.Name, id,
						"no codepoint for variant (no default and no override)")
				}
				value = *icon.Codepoint
			}
			codepoints = append(codepoints, CodepointEntry{
				Key:       keyByID[id],
				Codepoint: rune(value),
			})
		}

		// Defensive: availability is validated non-empty above, and
		// every entry maps to a declared variant, so this cannot fire
		// for input that passed the earlier checks.
		if len(codepoints) == 0 {
			return nil, fail(ErrNoAvailableVariants, icon.Name, "", "no available variants")
		}

		normalized = append(normalized, NormalizedIcon{
			Name:       icon.Name,
			Identifier: ident,
			Codepoints: codepoints,
		})
	}

	slices.SortFunc(normalized, func(a, b NormalizedIcon) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &NormalizedPack{
		PackID:     pack.PackID,
		SourcePath: pack.SourcePath,
		Variants:   info,
		Icons:      normalized,
	}, nil
}

// computeAvailability resolves the set of variant IDs an icon is
// available for. Explicit lists are validated (known IDs, superset of
// override keys, non-empty, duplicate-free). An omitted list derives
// as all declared variants when a default codepoint exists, else as
// the override keys when only overrides exist.
func computeAvailability(
	icon *Icon,
	variantIDs []string,
	keyByID map[string]icons.VariantKey,
	overrideIDs []string,
	fail func(kind ErrorKind, icon, variant, format string, args ...any) error,
) ([]string, error) {
	if icon.Availability == nil {
		if icon.Codepoint != nil {
			return variantIDs, nil
		}
		if len(overrideIDs) > 0 {
			return overrideIDs, nil
		}
		return nil, fail(ErrNoCodepointOrOverrides, icon.Name, "", "no codepoint or overrides")
	}

	for _, id := range icon.Availability {
		if _, known := keyByID[id]; !known {
			return nil, fail(ErrUnknownVariantReferenced, icon.Name, id,
				"availability references undeclared variant")
		}
	}
	for _, id := range overrideIDs {
		if !slices.Contains(icon.Availability, id) {
			return nil, fail(ErrOverrideNotInAvailability, icon.Name, id,
				"override not listed in availability")
		}
	}
	if len(icon.Availability) == 0 {
		return nil, fail(ErrEmptyAvailability, icon.Name, "", "availability is empty")
	}
	seen := make(map[string]bool, len(icon.Availability))
	for _, id := range icon.Availability {
		if seen[id] {
			return nil, fail(ErrDuplicateAvailabilityEntry, icon.Name, id,
				"availability lists variant more than once")
		}
		seen[id] = true
	}
	return icon.Availability, nil
}

// sortedKeys returns the map's keys in sorted order. Override maps
// are iterated through this so error selection and derived
// availability are deterministic.
func sortedKeys(m map[string]uint32) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
