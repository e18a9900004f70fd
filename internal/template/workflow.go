package template

import (
	"fmt"
	"strconv"
	"strings"
)

// CIWorkflow renders the GitHub Actions workflow. The matrix tests the
// configured Python version; when the configured minor version is below
// 13 the next minor ("X.13") is added as a forward-compatibility check.
// This is a fixed heuristic, not a general version range.
func CIWorkflow(pythonVersion string) string {
	versions := []string{pythonVersion}
	if major, minor, ok := strings.Cut(pythonVersion, "."); ok {
		if m, err := strconv.Atoi(minor); err == nil && m < 13 {
			versions = append(versions, major+".13")
		}
	}

	quoted := make([]string, len(versions))
	for i, v := range versions {
		quoted[i] = fmt.Sprintf("%q", v)
	}

	return fmt.Sprintf(`name: CI

on:
  push:
    branches: [main]
  pull_request:
    branches: [main]

jobs:
  ci:
    runs-on: ubuntu-latest
    strategy:
      fail-fast: false
      matrix:
        python-version: [%s]
    steps:
      - uses: actions/checkout@v4

      - name: Setup uv
        uses: astral-sh/setup-uv@v4
        with:
          version: "latest"

      - name: Set up Python ${{ matrix.python-version }}
        run: uv python install ${{ matrix.python-version }}

      - name: Install dependencies
        run: uv sync --frozen

      - name: Lint
        run: |
          uv run ruff check --output-format=github .
          uv run ruff format --check .

      - name: Type check
        run: uv run mypy src

      - name: Test
        run: uv run pytest
`, strings.Join(quoted, ", "))
}

// Dependabot is the .github/dependabot.yml content: weekly pip and
// github-actions updates with grouped dev dependencies.
const Dependabot = `version: 2
updates:
  - package-ecosystem: "pip"
    directory: "/"
    schedule:
      interval: "weekly"
    groups:
      dev-dependencies:
        patterns:
          - "ruff"
          - "pytest*"
          - "mypy"
          - "pre-commit"
  - package-ecosystem: "github-actions"
    directory: "/"
    schedule:
      interval: "weekly"
`
