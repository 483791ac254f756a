// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iconforge/iconforge/lib/packdef"
)

// loadNormalized reads every descriptor in mapsDir and normalizes
// each pack, failing fast on the first invalid descriptor. The result
// is ordered by pack ID, the canonical order every command and the
// emitter share. Two descriptors claiming the same pack ID would
// render to the same artifact path, so that is rejected here.
func loadNormalized(mapsDir string) ([]*packdef.NormalizedPack, error) {
	raw, err := packdef.LoadDir(mapsDir)
	if err != nil {
		return nil, err
	}

	sourceByID := make(map[string]string, len(raw))
	packs := make([]*packdef.NormalizedPack, 0, len(raw))
	for _, pack := range raw {
		normalized, err := packdef.Normalize(pack)
		if err != nil {
			return nil, err
		}
		if prev, dup := sourceByID[normalized.PackID]; dup {
			return nil, fmt.Errorf("pack id %q declared by both %s and %s",
				normalized.PackID, prev, normalized.SourcePath)
		}
		sourceByID[normalized.PackID] = normalized.SourcePath
		packs = append(packs, normalized)
	}

	slices.SortFunc(packs, func(a, b *packdef.NormalizedPack) int {
		return strings.Compare(a.PackID, b.PackID)
	})
	return packs, nil
}
