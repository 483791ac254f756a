// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

// Package packdef provides parsing, validation, and normalization for
// icon pack descriptors. A descriptor is one JSONC file per pack (JSON
// extended with // line comments, /* block comments */, and trailing
// commas) declaring the pack's font variants and its icons with their
// codepoints, per-variant overrides, and availability.
//
// The typical flow:
//
//  1. LoadDir or ReadFile: JSONC bytes → PackMap (raw, unvalidated)
//  2. Normalize: PackMap → NormalizedPack, enforcing every invariant
//     (uniqueness, referential integrity, identifier collisions,
//     availability/override consistency)
//  3. CollectFontAssets: collapse variants sharing a backing font
//     file into deduplicated asset records with feature gates
//
// The normalized model is transient: it is rebuilt from descriptors on
// every generator run and never persisted. Ordering is canonical
// everywhere (variants by ID, icons by name) so downstream rendering
// is byte-for-byte deterministic.
package packdef
