package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Archetype represents the kind of project being scaffolded.
type Archetype string

const (
	ArchetypeLibrary Archetype = "library"
	ArchetypeAPI     Archetype = "api"
	ArchetypeCLI     Archetype = "cli"
	ArchetypeData    Archetype = "data"
	ArchetypeTUI     Archetype = "tui"
)

// Archetypes lists every supported archetype in display order.
var Archetypes = []Archetype{
	ArchetypeLibrary,
	ArchetypeAPI,
	ArchetypeCLI,
	ArchetypeData,
	ArchetypeTUI,
}

// ParseArchetype converts a user-supplied string into an Archetype.
// Returns ErrInvalidArchetype for values outside the closed set.
func ParseArchetype(s string) (Archetype, error) {
	for _, a := range Archetypes {
		if strings.EqualFold(s, string(a)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w (got %q)", ErrInvalidArchetype, s)
}

// License represents the license choice for the generated project.
type License string

const (
	LicenseMIT       License = "MIT"
	LicenseApache2   License = "Apache-2.0"
	LicenseGPL3      License = "GPL-3.0"
	LicenseBSD3      License = "BSD-3-Clause"
	LicenseUnlicense License = "Unlicense"
	LicenseNone      License = "none"
)

// Licenses lists every supported license in display order.
var Licenses = []License{
	LicenseMIT,
	LicenseApache2,
	LicenseGPL3,
	LicenseBSD3,
	LicenseUnlicense,
	LicenseNone,
}

// ParseLicense converts a user-supplied string into a License.
// Returns ErrInvalidLicense for values outside the closed set.
func ParseLicense(s string) (License, error) {
	for _, l := range Licenses {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w (got %q)", ErrInvalidLicense, s)
}

// Features holds the independent toggles for optional generated artifacts.
// Each toggle is orthogonal; no toggle implies another.
type Features struct {
	VSCode     bool // .vscode/ settings and extensions
	Docker     bool // Dockerfile and .dockerignore
	Makefile   bool // Makefile with common targets
	Changelog  bool // CHANGELOG.md
	Security   bool // bandit, detect-secrets, secrets baseline
	Dependabot bool // .github/dependabot.yml
	Compose    bool // docker-compose.yml (api and data archetypes only)
}

// DefaultFeatures returns the feature set with every toggle enabled.
func DefaultFeatures() Features {
	return Features{
		VSCode:     true,
		Docker:     true,
		Makefile:   true,
		Changelog:  true,
		Security:   true,
		Dependabot: true,
		Compose:    true,
	}
}

// Project is the aggregate configuration for one generation run. It is
// constructed once by the CLI front end and read-only afterwards; the
// generator never mutates it.
type Project struct {
	Name          string    // Display name, e.g. "my-api".
	Location      string    // Parent directory for the new repository.
	PythonVersion string    // Target Python version, e.g. "3.12".
	Archetype     Archetype // Project archetype.
	License       License   // License choice; LicenseNone suppresses the file.
	Features      Features  // Optional artifact toggles.
	Private       bool      // Remote repository visibility.
	SkipGitHub    bool      // Suppress remote repository creation.
	SkipEditor    bool      // Suppress post-generation editor launch.
}

// Path returns the full path of the project directory.
func (p Project) Path() string {
	return filepath.Join(p.Location, p.Name)
}

// PackageName returns the import-safe package identifier derived from the
// display name: every "-" and "." replaced by "_". Distinct names may
// collapse to the same identifier; collisions are not resolved.
func (p Project) PackageName() string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(p.Name)
}

// PythonTarget returns the ruff target version tag, e.g. "3.12" -> "py312".
func (p Project) PythonTarget() string {
	return "py" + strings.ReplaceAll(p.PythonVersion, ".", "")
}
