package template

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pyrepo/pyrepo/internal/config"
)

var titleCaser = cases.Title(language.Und)

// ClassName derives the TUI application class name from a package
// identifier: each underscore-delimited segment capitalized and
// concatenated, with an "App" suffix. "my_tui" -> "MyTuiApp".
func ClassName(packageName string) string {
	var b strings.Builder
	for _, segment := range strings.Split(packageName, "_") {
		b.WriteString(titleCaser.String(segment))
	}
	b.WriteString("App")
	return b.String()
}

// MainPy returns the main.py stub for archetypes that have one (api and
// cli). The second return value reports whether a stub exists.
func MainPy(a config.Archetype, packageName string) (string, bool) {
	switch a {
	case config.ArchetypeAPI:
		return `from fastapi import FastAPI

app = FastAPI()


@app.get("/health")
async def health() -> dict[str, str]:
    return {"status": "ok"}
`, true
	case config.ArchetypeCLI:
		return `import typer

app = typer.Typer()


@app.command()
def main(name: str = "world") -> None:
    """Greet someone."""
    typer.echo(f"Hello, {name}!")


if __name__ == "__main__":
    app()
`, true
	case config.ArchetypeLibrary, config.ArchetypeData, config.ArchetypeTUI:
		return "", false
	}
	return "", false
}

// AppPy returns the app.py stub for TUI projects: a full-screen Textual
// application with a quit keybinding.
func AppPy(packageName string) string {
	className := ClassName(packageName)
	return fmt.Sprintf(`from textual.app import App, ComposeResult
from textual.widgets import Footer, Header, Static


class %s(App):
    """A Textual app."""

    BINDINGS = [("q", "quit", "Quit")]

    def compose(self) -> ComposeResult:
        yield Header()
        yield Static("Hello, World!")
        yield Footer()


def main() -> None:
    app = %s()
    app.run()


if __name__ == "__main__":
    main()
`, className, className)
}

// PipelinePy returns the pipeline.py stub for data projects.
func PipelinePy() string {
	return `import polars as pl


def transform(df: pl.DataFrame) -> pl.DataFrame:
    """Example transformation."""
    return df
`
}

// TCSS returns the Textual stylesheet for TUI projects.
func TCSS() string {
	return `Screen {
    align: center middle;
}

Static {
    width: auto;
    padding: 1 2;
    background: $surface;
    border: round $primary;
}
`
}

// TestFile returns the archetype-matched test file name and content.
// Every archetype produces exactly one test file; library projects get a
// placeholder test asserting a trivial truth.
func TestFile(a config.Archetype, packageName string) (string, string) {
	switch a {
	case config.ArchetypeAPI:
		return "test_api.py", fmt.Sprintf(`from typing import AsyncIterator

import pytest
from httpx import ASGITransport, AsyncClient

from %s.main import app


@pytest.fixture
async def client() -> AsyncIterator[AsyncClient]:
    async with AsyncClient(transport=ASGITransport(app=app), base_url="http://test") as ac:
        yield ac


@pytest.mark.asyncio
async def test_health(client: AsyncClient) -> None:
    response = await client.get("/health")
    assert response.status_code == 200
    assert response.json() == {"status": "ok"}
`, packageName)
	case config.ArchetypeCLI:
		return "test_cli.py", fmt.Sprintf(`from typer.testing import CliRunner

from %s.main import app

runner = CliRunner()


def test_main() -> None:
    result = runner.invoke(app, ["--name", "test"])
    assert result.exit_code == 0
    assert "Hello, test!" in result.stdout
`, packageName)
	case config.ArchetypeTUI:
		className := ClassName(packageName)
		return "test_app.py", fmt.Sprintf(`import pytest

from %s.app import %s


@pytest.mark.asyncio
async def test_app_runs() -> None:
    app = %s()
    async with app.run_test():
        assert app.is_running
`, packageName, className, className)
	case config.ArchetypeData:
		return "test_pipeline.py", fmt.Sprintf(`import polars as pl

from %s.pipeline import transform


def test_transform() -> None:
    df = pl.DataFrame({"a": [1, 2, 3]})
    result = transform(df)
    assert result.shape == (3, 1)
`, packageName)
	case config.ArchetypeLibrary:
	}
	return "test_placeholder.py", `def test_placeholder() -> None:
    assert True
`
}
