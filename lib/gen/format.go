// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package gen

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// FormatterError is a fatal failure to run the external formatter:
// the tool could not be spawned or exited non-zero. Stderr carries
// the tool's captured diagnostics.
type FormatterError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *FormatterError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *FormatterError) Unwrap() error {
	return e.Err
}

// Format pipes rendered source through gofmt and returns the
// formatted output. Running the real formatter (rather than an
// in-process approximation) keeps the artifacts identical to what
// the consuming checkout's toolchain would produce. The subprocess
// pipes are scoped to this call and released on every path.
func Format(source string) (string, error) {
	cmd := exec.Command("gofmt")
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &FormatterError{
			Tool:   "gofmt",
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.String(), nil
}
