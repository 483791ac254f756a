// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package icons

import (
	"fmt"
	"strings"
)

// PackDisabledError is returned when a lookup names a pack that the
// runtime configuration did not enable.
type PackDisabledError struct {
	Pack string
}

func (e *PackDisabledError) Error() string {
	return fmt.Sprintf("icon pack %q is not enabled", e.Pack)
}

// IconNotFoundError is returned when a lookup names an icon the pack
// does not contain.
type IconNotFoundError struct {
	Pack string
	Name string
}

func (e *IconNotFoundError) Error() string {
	return fmt.Sprintf("pack %q has no icon %q", e.Pack, e.Name)
}

// VariantUnavailableError is returned when an icon exists but has no
// glyph for the requested (style, size). Available carries the icon's
// full availability in declared-variant order so a caller can pick a
// deterministic fallback, e.g. its first entry.
type VariantUnavailableError struct {
	Pack      string
	Name      string
	Requested VariantKey
	Available []VariantKey
}

func (e *VariantUnavailableError) Error() string {
	keys := make([]string, len(e.Available))
	for i, key := range e.Available {
		keys[i] = key.String()
	}
	return fmt.Sprintf("icon %q in pack %q is not available in %s (available: %s)",
		e.Name, e.Pack, e.Requested, strings.Join(keys, ", "))
}
