// Package catalog holds the static dependency tables consumed by the
// template renderers: runtime and development packages per archetype,
// plus the archetype-independent core and security tool lists. The
// tables are fixed data; order is preserved in generated output.
package catalog

import "github.com/pyrepo/pyrepo/internal/config"

var runtimePackages = map[config.Archetype][]string{
	config.ArchetypeLibrary: {},
	config.ArchetypeAPI: {
		"fastapi",
		"uvicorn",
		"httpx",
		"pydantic",
		"pydantic-settings",
		"python-dotenv",
		"structlog",
	},
	config.ArchetypeCLI: {"typer", "rich", "python-dotenv"},
	config.ArchetypeData: {
		"polars",
		"pyarrow",
		"duckdb",
		"sqlalchemy",
		"httpx",
		"pydantic",
		"python-dotenv",
		"structlog",
	},
	config.ArchetypeTUI: {"textual", "rich", "python-dotenv"},
}

var devPackages = map[config.Archetype][]string{
	config.ArchetypeLibrary: {},
	config.ArchetypeAPI:     {"httpx"}, // async test client
	config.ArchetypeCLI:     {},
	config.ArchetypeData:    {"faker"}, // test data generation
	config.ArchetypeTUI:     {"textual-dev"},
}

var coreDevPackages = []string{
	"ruff",
	"pytest",
	"pytest-cov",
	"mypy",
	"pre-commit",
	"pytest-asyncio",
}

var securityPackages = []string{"bandit", "detect-secrets"}

// RuntimePackages returns the ordered runtime dependency list for the
// archetype. Total over the closed archetype set; an empty list means
// the archetype has no runtime dependencies, not a missing entry.
func RuntimePackages(a config.Archetype) []string {
	return clone(runtimePackages[a])
}

// DevPackages returns the ordered archetype-specific development
// dependency list. Total over the closed archetype set.
func DevPackages(a config.Archetype) []string {
	return clone(devPackages[a])
}

// CoreDevPackages returns the development tools shared by every archetype.
func CoreDevPackages() []string {
	return clone(coreDevPackages)
}

// SecurityPackages returns the security tooling added when the security
// feature toggle is enabled.
func SecurityPackages() []string {
	return clone(securityPackages)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
