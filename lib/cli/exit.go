// Copyright 2026 The Iconforge Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without an extra error
// message: the command has already written its own output. The main
// function checks for the ExitCode interface on returned errors to
// tell "handled non-zero exit" from "unexpected error to display".
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the process exit code to use.
func (e *ExitError) ExitCode() int {
	return e.Code
}
