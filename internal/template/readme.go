package template

import (
	"fmt"
	"strings"

	"github.com/pyrepo/pyrepo/internal/config"
)

// treeNode is one entry in the rendered directory tree.
type treeNode struct {
	name     string
	children []*treeNode
	isDir    bool
}

func (n *treeNode) child(name string, isDir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			if isDir {
				c.isDir = true
			}
			return c
		}
	}
	c := &treeNode{name: name, isDir: isDir}
	n.children = append(n.children, c)
	return c
}

// buildTree folds a list of slash-separated relative paths into a tree,
// preserving first-mention order.
func buildTree(paths []string) *treeNode {
	root := &treeNode{}
	for _, path := range paths {
		parts := strings.Split(path, "/")
		node := root
		for i, part := range parts {
			node = node.child(part, i < len(parts)-1)
		}
	}
	return root
}

// renderTree renders the tree with box-drawing connectors, directories
// suffixed with "/".
func renderTree(node *treeNode, prefix string, out *strings.Builder) {
	for i, c := range node.children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(node.children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		name := c.name
		if c.isDir {
			name += "/"
		}
		out.WriteString(prefix + connector + name + "\n")
		renderTree(c, childPrefix, out)
	}
}

// Readme renders README.md. The project-structure section is built from
// the generator's ordered ledger of written paths, so the documented tree
// always matches what was actually written.
func Readme(p config.Project, writtenPaths []string) string {
	var tree strings.Builder
	renderTree(buildTree(writtenPaths), "", &tree)

	var b strings.Builder
	fmt.Fprintf(&b, `# %s

## Project Structure

`+"```text\n%s```"+`

## Setup

`+"```bash\nuv sync\nsource .venv/bin/activate\n```"+`

## Development

`+"```bash\n", p.PackageName(), tree.String())

	if p.Features.Makefile {
		b.WriteString(`# Run tests
make test

# Lint and format
make format
make lint

# Type check
make typecheck

# Run all CI checks
make ci
`)
	} else {
		b.WriteString(`# Run tests
uv run pytest

# Lint
uv run ruff check .
uv run ruff format .

# Type check
uv run mypy src
`)
	}

	switch p.Archetype {
	case config.ArchetypeAPI:
		fmt.Fprintf(&b, `
# Run development server
make run
# or: uv run uvicorn %s.main:app --reload

# Docker
make docker-build
make docker-run
# or: docker compose up
`, p.PackageName())
	case config.ArchetypeCLI:
		fmt.Fprintf(&b, `
# Run CLI
make run
# or: uv run python -m %s.main --help
`, p.PackageName())
	case config.ArchetypeTUI:
		b.WriteString(`
# Run TUI app
make run

# Run with hot reload (textual dev mode)
make dev
`)
	case config.ArchetypeLibrary, config.ArchetypeData:
	}

	b.WriteString("```\n")
	return b.String()
}
