// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-tree framework behind the iconforge
// binary: nested commands dispatched by positional arguments, pflag
// flag sets parsed lazily per command, tabwriter-rendered help, and
// typo suggestions for unknown commands and flags.
//
// Commands return plain errors; main prints them with an "error:"
// prefix and exits 1. A command that has already written its own
// output returns an ExitError to pick the exit code without a
// redundant message.
package cli
