package template

import (
	"fmt"
	"strings"

	"github.com/pyrepo/pyrepo/internal/config"
)

// Dockerfile renders a two-stage build: dependencies installed without the
// dev group in a uv builder image, then copied into a slim runtime image.
// The launch command varies by archetype; TUI apps get a comment since
// they are not normally containerized.
func Dockerfile(p config.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, `FROM ghcr.io/astral-sh/uv:python%s-bookworm-slim AS builder
WORKDIR /app
COPY pyproject.toml uv.lock ./
RUN uv sync --frozen --no-dev --no-install-project
COPY src ./src
RUN uv sync --frozen --no-dev

FROM python:%s-slim-bookworm
WORKDIR /app
COPY --from=builder /app/.venv .venv
COPY src ./src
ENV PATH="/app/.venv/bin:$PATH"
`, p.PythonVersion, p.PythonVersion)

	pkg := p.PackageName()
	switch p.Archetype {
	case config.ArchetypeAPI:
		fmt.Fprintf(&b, "CMD [\"uvicorn\", \"%s.main:app\", \"--host\", \"0.0.0.0\", \"--port\", \"8000\"]\n", pkg)
	case config.ArchetypeCLI:
		fmt.Fprintf(&b, "ENTRYPOINT [\"python\", \"-m\", \"%s.main\"]\n", pkg)
	case config.ArchetypeTUI:
		fmt.Fprintf(&b, "# TUI apps typically not containerized\nCMD [\"python\", \"-m\", \"%s.app\"]\n", pkg)
	case config.ArchetypeLibrary, config.ArchetypeData:
		fmt.Fprintf(&b, "CMD [\"python\", \"-m\", \"%s\"]\n", pkg)
	}

	return b.String()
}

// Dockerignore is the .dockerignore content shipped with the Dockerfile.
const Dockerignore = `.venv/
.git/
.github/
.vscode/
.mypy_cache/
.pytest_cache/
.ruff_cache/
__pycache__/
*.pyc
.coverage
htmlcov/
.env
.secrets.baseline
`
