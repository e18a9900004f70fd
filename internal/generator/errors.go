// Package generator materializes a project on disk from a config.Project:
// it creates the directory, drives uv to scaffold and install
// dependencies, writes every templated file, and initializes version
// control. It is the only component in the system with side effects.
package generator

import (
	"errors"
	"fmt"
)

// ErrProjectExists indicates the target project directory is already occupied.
var ErrProjectExists = errors.New("generator: project directory already exists")

// CommandError wraps a failed external command with the command line that
// failed, so the operator can re-run it for diagnosis. Any step wrapped in
// a CommandError aborts the rest of the pipeline.
type CommandError struct {
	Cmd string
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed: %s: %v", e.Cmd, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}
