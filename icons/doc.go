// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

// Package icons is the runtime surface of iconforge: the types, errors,
// configuration, and font-asset registry consumed by the generated
// lookup tables in icons/catalog and by GUI front-ends.
//
// The package holds no catalog data itself. The generator (cmd/iconforge)
// compiles pack descriptors into the catalog package, whose tables are
// expressed in this package's vocabulary: Style, Size, VariantKey,
// IconRef, FontAsset, and the three recoverable lookup errors.
//
// Pack and feature enablement is a runtime decision. A Config names the
// enabled packs and feature gates; NewRegistry reads the font files of
// every enabled asset exactly once at process start and the resulting
// Registry is immutable afterwards, so lookups need no locking.
package icons
