// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/iconforge/iconforge/lib/cli"
	"github.com/iconforge/iconforge/lib/packdef"
)

func listCommand() *cli.Command {
	var mapsDir string
	return &cli.Command{
		Name:    "list",
		Summary: "show packs or the icons of one pack",
		Description: "list without arguments prints a summary row per pack. With a\n" +
			"pack id it prints that pack's icons with the Go identifier and\n" +
			"variant availability each icon resolved to.",
		Usage: "iconforge list [pack-id]",
		Examples: []cli.Example{
			{Description: "summarize every pack", Command: "iconforge list"},
			{Description: "list one pack's icons", Command: "iconforge list bootstrap"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flags.StringVar(&mapsDir, "maps", defaultMapsDir,
				"directory containing pack descriptors")
			return flags
		},
		Run: func(args []string) error {
			switch len(args) {
			case 0:
				return runListPacks(mapsDir)
			case 1:
				return runListIcons(mapsDir, args[0])
			default:
				return fmt.Errorf("list takes at most one pack id")
			}
		},
	}
}

func runListPacks(mapsDir string) error {
	packs, err := loadNormalized(mapsDir)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PACK\tSOURCE\tVARIANTS\tICONS\tASSETS")
	for _, pack := range packs {
		assets, err := packdef.CollectFontAssets(pack)
		if err != nil {
			return err
		}
		fmt.Fprintf(writer, "%s\t%s\t%d\t%d\t%d\n",
			pack.PackID, pack.SourcePath, len(pack.Variants), len(pack.Icons), len(assets.Assets))
	}
	return writer.Flush()
}

func runListIcons(mapsDir, packID string) error {
	packs, err := loadNormalized(mapsDir)
	if err != nil {
		return err
	}

	var pack *packdef.NormalizedPack
	for _, candidate := range packs {
		if candidate.PackID == packID {
			pack = candidate
			break
		}
	}
	if pack == nil {
		return fmt.Errorf("unknown pack %q; run 'iconforge list' for the pack table", packID)
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ICON\tIDENTIFIER\tVARIANTS")
	for _, icon := range pack.Icons {
		fmt.Fprintf(writer, "%s\t%s\t", icon.Name, icon.Identifier)
		for i, entry := range icon.Codepoints {
			if i > 0 {
				fmt.Fprint(writer, " ")
			}
			fmt.Fprint(writer, entry.Key)
		}
		fmt.Fprintln(writer)
	}
	return writer.Flush()
}
