// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package gen

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// DriftError reports an artifact whose persisted content differs from
// the freshly rendered content. Rendered and OnDisk are short content
// digests for the diagnostic; regeneration is the fix, never hand
// editing.
type DriftError struct {
	Path     string
	Rendered string
	OnDisk   string
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("generated file differs: %s (rendered %s, on disk %s); run 'iconforge generate'",
		e.Path, e.Rendered, e.OnDisk)
}

// MissingArtifactError reports an artifact absent from disk in check
// mode.
type MissingArtifactError struct {
	Path string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("generated file missing: %s; run 'iconforge generate'", e.Path)
}

// digest returns a short BLAKE3 digest of artifact content, used only
// to label drift diagnostics.
func digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// SyncFile reconciles one rendered artifact with disk. In write mode
// (checkOnly false) it overwrites the file when content differs,
// creating parent directories as needed, and reports whether it
// wrote. In check mode it never mutates: a content difference is a
// DriftError, an absent file a MissingArtifactError.
func SyncFile(path string, content []byte, checkOnly bool) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, content) {
			return false, nil
		}
		if checkOnly {
			return false, &DriftError{Path: path, Rendered: digest(content), OnDisk: digest(existing)}
		}

	case errors.Is(err, fs.ErrNotExist):
		if checkOnly {
			return false, &MissingArtifactError{Path: path}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return false, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}

	default:
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
