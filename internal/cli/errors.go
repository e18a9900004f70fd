package cli

import "errors"

// Sentinel errors for the CLI front end.
var (
	// ErrReservedName indicates the project name is on the reserved blocklist.
	ErrReservedName = errors.New("cli: project name is reserved or invalid")

	// ErrToolMissing indicates a required external tool is not on PATH.
	ErrToolMissing = errors.New("cli: required tool not found in PATH")

	// ErrRemoteExists indicates the remote repository name is already taken.
	ErrRemoteExists = errors.New("cli: remote repository already exists")
)
