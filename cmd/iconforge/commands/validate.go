// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/iconforge/iconforge/lib/cli"
	"github.com/iconforge/iconforge/lib/packdef"
)

func validateCommand() *cli.Command {
	var mapsDir string
	return &cli.Command{
		Name:    "validate",
		Summary: "check descriptors without writing anything",
		Description: "validate runs the full compiler front end (parse, normalize,\n" +
			"font asset collection) over every descriptor and stops there.\n" +
			"It exercises every rule generate enforces but never renders or\n" +
			"writes, so it is safe to run from editor hooks.",
		Examples: []cli.Example{
			{Command: "iconforge validate"},
			{Command: "iconforge validate --maps assets/maps"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("validate", pflag.ContinueOnError)
			flags.StringVar(&mapsDir, "maps", defaultMapsDir,
				"directory containing pack descriptors")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("validate takes no arguments")
			}
			return runValidate(mapsDir)
		},
	}
}

func runValidate(mapsDir string) error {
	logger := cli.NewCommandLogger().With("command", "validate")

	packs, err := loadNormalized(mapsDir)
	if err != nil {
		return err
	}

	for _, pack := range packs {
		assets, err := packdef.CollectFontAssets(pack)
		if err != nil {
			return err
		}
		logger.Info("pack valid",
			"pack", pack.PackID,
			"source", pack.SourcePath,
			"variants", len(pack.Variants),
			"icons", len(pack.Icons),
			"assets", len(assets.Assets))
	}

	logger.Info("descriptors valid", "packs", len(packs))
	return nil
}
