// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands defines the iconforge command tree. Each command
// file owns one subcommand: generate (the compiler), validate (the
// compiler without the emitter), list (descriptor inspection), and
// version.
package commands

import (
	"fmt"

	"github.com/iconforge/iconforge/lib/cli"
	"github.com/iconforge/iconforge/lib/version"
)

// Default locations, relative to the repository root the generator
// runs from.
const (
	defaultMapsDir = "assets/maps"
	defaultOutDir  = "icons/catalog"
)

// Root builds the iconforge command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "iconforge",
		Summary: "compile icon pack descriptors into Go lookup tables",
		Description: "iconforge compiles declarative icon pack descriptors (JSONC) into\n" +
			"the static, deterministic lookup tables consumed by the icons\n" +
			"runtime package.",
		Subcommands: []*cli.Command{
			generateCommand(),
			validateCommand(),
			listCommand(),
			versionCommand(),
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "print build version information",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("version takes no arguments")
			}
			fmt.Println(version.Full())
			return nil
		},
	}
}
