package template

import (
	"fmt"
	"strings"

	"github.com/pyrepo/pyrepo/internal/config"
)

// Gitignore is the .gitignore content for every generated project.
const Gitignore = `__pycache__/
*.py[cod]
*$py.class
.venv/
venv/
.mypy_cache/
.pytest_cache/
.ruff_cache/
*.egg-info/
dist/
build/
.coverage
htmlcov/
.env
.secrets.baseline
.DS_Store
`

// EnvExample renders the .env.example file. Service and pipeline
// archetypes get additional connection placeholders.
func EnvExample(a config.Archetype) string {
	base := "# Copy to .env and fill in values\nLOG_LEVEL=INFO\n"
	switch a {
	case config.ArchetypeAPI:
		base += "HOST=0.0.0.0\nPORT=8000\nDATABASE_URL=\n"
	case config.ArchetypeData:
		base += "DATABASE_URL=\nAWS_PROFILE=\n"
	case config.ArchetypeLibrary, config.ArchetypeCLI, config.ArchetypeTUI:
	}
	return base
}

// EditorConfig is the .editorconfig content.
const EditorConfig = `root = true

[*]
indent_style = space
indent_size = 4
end_of_line = lf
charset = utf-8
trim_trailing_whitespace = true
insert_final_newline = true

[*.{yml,yaml,json,toml}]
indent_size = 2

[*.tcss]
indent_size = 2

[Makefile]
indent_style = tab
`

// PreCommitConfig renders .pre-commit-config.yaml. The bandit and
// detect-secrets hooks are appended only when security tooling is enabled.
func PreCommitConfig(includeSecurity bool) string {
	base := `repos:
  - repo: https://github.com/astral-sh/ruff-pre-commit
    rev: v0.8.6
    hooks:
      - id: ruff
        args: [--fix]
      - id: ruff-format
  - repo: local
    hooks:
      - id: mypy
        name: mypy
        entry: uv run mypy
        language: system
        types: [python]
`
	if includeSecurity {
		base += `  - repo: https://github.com/PyCQA/bandit
    rev: 1.8.0
    hooks:
      - id: bandit
        args: ["-c", "pyproject.toml"]
        additional_dependencies: ["bandit[toml]"]
  - repo: https://github.com/Yelp/detect-secrets
    rev: v1.5.0
    hooks:
      - id: detect-secrets
        args: ["--baseline", ".secrets.baseline"]
`
	}
	return base
}

// VSCodeSettings is the .vscode/settings.json content.
const VSCodeSettings = `{
  "python.defaultInterpreterPath": ".venv/bin/python",
  "[python]": {
    "editor.defaultFormatter": "charliermarsh.ruff",
    "editor.formatOnSave": true,
    "editor.codeActionsOnSave": {
      "source.fixAll": "explicit",
      "source.organizeImports": "explicit"
    }
  },
  "python.analysis.typeCheckingMode": "strict"
}
`

// VSCodeExtensions is the .vscode/extensions.json content.
const VSCodeExtensions = `{
  "recommendations": [
    "charliermarsh.ruff",
    "ms-python.python",
    "ms-python.mypy-type-checker",
    "tamasfe.even-better-toml"
  ]
}
`

// Makefile renders the task-runner file. Run targets vary by archetype.
func Makefile(a config.Archetype, packageName string) string {
	var b strings.Builder
	b.WriteString(`.PHONY: install test lint format typecheck ci clean

install:
	uv sync

test:
	uv run pytest

lint:
	uv run ruff check .

format:
	uv run ruff format .
	uv run ruff check --fix .

typecheck:
	uv run mypy src

ci: lint typecheck test

clean:
	rm -rf .venv .mypy_cache .pytest_cache .ruff_cache .coverage htmlcov dist *.egg-info
	find . -type d -name __pycache__ -exec rm -rf {} +
`)

	switch a {
	case config.ArchetypeAPI:
		fmt.Fprintf(&b, `
run:
	uv run uvicorn %s.main:app --reload

docker-build:
	docker build -t %s .

docker-run:
	docker run -p 8000:8000 %s
`, packageName, packageName, packageName)
	case config.ArchetypeCLI:
		fmt.Fprintf(&b, `
run:
	uv run python -m %s.main
`, packageName)
	case config.ArchetypeTUI:
		fmt.Fprintf(&b, `
run:
	uv run python -m %s.app

dev:
	uv run textual run --dev src/%s/app.py
`, packageName, packageName)
	case config.ArchetypeLibrary, config.ArchetypeData:
	}

	return b.String()
}

// Changelog is the initial CHANGELOG.md content.
const Changelog = `# Changelog

All notable changes to this project will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.1.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).

## [Unreleased]

### Added

- Initial project structure
`
