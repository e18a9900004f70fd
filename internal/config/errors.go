// Package config defines the immutable project configuration for pyrepo:
// the archetype and license enumerations, the feature toggles, and the
// aggregate Project value that every other component consumes. Derived
// values (package name, ruff target) are computed on demand from the
// display name and Python version; nothing here touches the filesystem.
package config

import "errors"

// Sentinel errors for configuration construction.
var (
	// ErrInvalidArchetype indicates an unrecognized project archetype value.
	ErrInvalidArchetype = errors.New("config: invalid archetype, must be one of: library, api, cli, data, tui")

	// ErrInvalidLicense indicates an unrecognized license value.
	ErrInvalidLicense = errors.New("config: invalid license, must be one of: MIT, Apache-2.0, GPL-3.0, BSD-3-Clause, Unlicense, none")
)
