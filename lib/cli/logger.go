// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates the structured logger for generator
// commands. On a terminal it uses slog.TextHandler for readable
// output; when stderr is piped or redirected (CI, build gates) it
// switches to slog.JSONHandler so log lines stay machine-parseable.
//
// Callers scope the logger with command context via With():
//
//	logger := cli.NewCommandLogger().With("command", "generate")
func NewCommandLogger() *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
