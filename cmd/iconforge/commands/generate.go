// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/iconforge/iconforge/lib/cli"
	"github.com/iconforge/iconforge/lib/gen"
)

func generateCommand() *cli.Command {
	var (
		check   bool
		mapsDir string
		outDir  string
	)
	return &cli.Command{
		Name:    "generate",
		Summary: "compile descriptors and sync the generated catalog",
		Description: "generate loads every pack descriptor, normalizes it, renders the\n" +
			"catalog sources, and writes any artifact whose content changed.\n" +
			"With --check nothing is written: drift or a missing artifact is a\n" +
			"failure, which is how CI keeps descriptors and generated code in\n" +
			"lockstep.",
		Examples: []cli.Example{
			{Description: "regenerate the catalog in place", Command: "iconforge generate"},
			{Description: "CI gate: fail when the catalog is stale", Command: "iconforge generate --check"},
			{Command: "iconforge generate --maps assets/maps --out icons/catalog"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("generate", pflag.ContinueOnError)
			flags.BoolVar(&check, "check", false,
				"verify artifacts are current instead of writing them")
			flags.StringVar(&mapsDir, "maps", defaultMapsDir,
				"directory containing pack descriptors")
			flags.StringVar(&outDir, "out", defaultOutDir,
				"directory receiving generated sources")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("generate takes no arguments")
			}
			return runGenerate(check, mapsDir, outDir)
		},
	}
}

// artifact is one rendered output file, formatted and ready to sync.
type artifact struct {
	path    string
	content []byte
}

func runGenerate(check bool, mapsDir, outDir string) error {
	logger := cli.NewCommandLogger().With("command", "generate")

	packs, err := loadNormalized(mapsDir)
	if err != nil {
		return err
	}

	// Render and format everything before touching disk. A descriptor
	// or formatter failure in any pack must leave all artifacts
	// untouched, and check mode shares the exact bytes write mode
	// would produce.
	artifacts := make([]artifact, 0, len(packs)+1)

	index, err := gen.RenderIndex(packs)
	if err != nil {
		return err
	}
	formatted, err := gen.Format(index)
	if err != nil {
		return fmt.Errorf("formatting catalog index: %w", err)
	}
	artifacts = append(artifacts, artifact{
		path:    filepath.Join(outDir, "catalog.go"),
		content: []byte(formatted),
	})

	for _, pack := range packs {
		source, err := gen.RenderPack(pack)
		if err != nil {
			return err
		}
		formatted, err := gen.Format(source)
		if err != nil {
			return fmt.Errorf("formatting pack %s: %w", pack.PackID, err)
		}
		artifacts = append(artifacts, artifact{
			path:    filepath.Join(outDir, pack.PackID+".go"),
			content: []byte(formatted),
		})
	}

	written := 0
	for _, a := range artifacts {
		changed, err := gen.SyncFile(a.path, a.content, check)
		if err != nil {
			return err
		}
		if changed {
			logger.Info("artifact written", "path", a.path)
			written++
		}
	}

	if check {
		logger.Info("artifacts current",
			"packs", len(packs),
			"artifacts", len(artifacts))
		return nil
	}
	logger.Info("generation complete",
		"packs", len(packs),
		"artifacts", len(artifacts),
		"written", written)
	return nil
}
