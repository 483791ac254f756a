// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

// Package gen renders normalized pack models into the Go source files
// of the icons/catalog package and keeps them in sync with disk.
//
// The artifact set is one index file (the Pack discriminator, shared
// record types, asset union, and the Fonts/List/TryIcon dispatch)
// plus one file per pack (asset references, variant and icon tables,
// and the pack's linear-scan accessors). Rendering is byte-for-byte
// deterministic: inputs are canonically ordered by the normalizer and
// every container here is a slice, never a map iteration.
//
// Rendered source is piped through gofmt before it is compared or
// written, so the artifacts match whatever formatting the consuming
// checkout's toolchain produces. SyncFile implements the write/check
// split: write mode overwrites drifted artifacts, check mode fails on
// the first drifted or missing artifact without touching disk.
package gen
