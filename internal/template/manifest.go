// Package template contains the pure rendering functions that turn a
// config.Project into file contents. Renderers have no filesystem or
// process side effects; the generator decides where the output lands.
package template

import (
	"fmt"
	"strings"

	"github.com/pyrepo/pyrepo/internal/catalog"
	"github.com/pyrepo/pyrepo/internal/config"
)

// Pyproject renders the pyproject.toml manifest for the project.
//
// The dependency list always renders as an explicit collection: an empty
// runtime list becomes "[]", never an omitted field. The license field is
// present only when a license was chosen, and the [project.scripts] block
// only for the cli and api archetypes.
func Pyproject(p config.Project) string {
	var b strings.Builder

	runtimeDeps := catalog.RuntimePackages(p.Archetype)
	depsLine := "[]"
	if len(runtimeDeps) > 0 {
		depsLine = fmt.Sprintf("[\n    %s,\n]", joinQuoted(runtimeDeps, ",\n    "))
	}

	fmt.Fprintf(&b, `[project]
name = %q
version = "0.1.0"
description = "Add your description here"
readme = "README.md"
requires-python = ">=%s"
dependencies = %s
`, p.PackageName(), p.PythonVersion, depsLine)

	if p.License != config.LicenseNone {
		fmt.Fprintf(&b, "license = %q\n", string(p.License))
	}

	fmt.Fprintf(&b, `
[build-system]
requires = ["hatchling"]
build-backend = "hatchling.build"

[tool.hatch.build.targets.wheel]
packages = ["src/%s"]
`, p.PackageName())

	if p.Archetype == config.ArchetypeCLI || p.Archetype == config.ArchetypeAPI {
		fmt.Fprintf(&b, `
[project.scripts]
%s = "%s.main:app"
`, p.PackageName(), p.PackageName())
	}

	// Dev group order is fixed: core tools, archetype tools, security tools.
	devDeps := catalog.CoreDevPackages()
	devDeps = append(devDeps, catalog.DevPackages(p.Archetype)...)
	if p.Features.Security {
		devDeps = append(devDeps, catalog.SecurityPackages()...)
	}

	fmt.Fprintf(&b, `
[dependency-groups]
dev = [
    %s,
]
`, joinQuoted(devDeps, ",\n    "))

	fmt.Fprintf(&b, `
[tool.ruff]
line-length = 120
target-version = %q
src = ["src"]

[tool.ruff.lint]
select = ["E", "F", "I", "UP", "B", "SIM", "RUF"]

[tool.mypy]
strict = true
python_version = %q

[tool.pytest.ini_options]
testpaths = ["tests"]
addopts = "-v --cov=src --cov-report=term-missing"
asyncio_mode = "auto"
asyncio_default_fixture_loop_scope = "function"
`, p.PythonTarget(), p.PythonVersion)

	if p.Features.Security {
		b.WriteString(`
[tool.bandit]
exclude_dirs = ["tests"]
`)
	}

	return b.String()
}

// joinQuoted renders each element as a double-quoted TOML string joined
// by sep.
func joinQuoted(items []string, sep string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, sep)
}
