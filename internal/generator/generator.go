package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pyrepo/pyrepo/internal/config"
	"github.com/pyrepo/pyrepo/internal/git"
	"github.com/pyrepo/pyrepo/internal/github"
	"github.com/pyrepo/pyrepo/internal/template"
	"github.com/pyrepo/pyrepo/internal/uv"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// PackageManager abstracts the uv operations the generator needs.
type PackageManager interface {
	Init(ctx context.Context, pythonVersion, packageName string) error
	Lock(ctx context.Context) error
	Sync(ctx context.Context) error
	Run(ctx context.Context, args ...string) error
	RunCapture(ctx context.Context, args ...string) (string, error)
}

// VCS abstracts the git operations the generator needs.
type VCS interface {
	Init(ctx context.Context) error
	UserName(ctx context.Context) (string, error)
}

// Result summarizes one generation run. CreatedFiles is the ordered
// ledger of every file written, relative to the project root with slash
// separators; the README renderer consumes it directly so the documented
// tree cannot drift from the actual write-set.
type Result struct {
	Path         string
	CreatedFiles []string
	Warnings     []string
}

// Generator materializes one project. Construct with New; the zero value
// is not usable.
type Generator struct {
	cfg     config.Project
	author  string // override; empty means resolve via sources
	now     func() time.Time
	logger  *slog.Logger
	pm      PackageManager
	vcs     VCS
	sources []AuthorSource
}

// Option configures a Generator.
type Option func(*Generator)

// WithAuthor overrides author resolution with a fixed name.
func WithAuthor(name string) Option {
	return func(g *Generator) { g.author = name }
}

// WithClock injects the clock used for the license year.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger injects a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithPackageManager injects a package manager, replacing the uv default.
func WithPackageManager(pm PackageManager) Option {
	return func(g *Generator) { g.pm = pm }
}

// WithVCS injects a version control client, replacing the git default.
func WithVCS(vcs VCS) Option {
	return func(g *Generator) { g.vcs = vcs }
}

// WithAuthorSources replaces the default author resolution chain.
func WithAuthorSources(sources []AuthorSource) Option {
	return func(g *Generator) { g.sources = sources }
}

// New creates a Generator for the given project configuration.
func New(cfg config.Project, opts ...Option) *Generator {
	path := cfg.Path()
	gitClient := git.New(path)
	ghClient := github.New(path)

	g := &Generator{
		cfg:    cfg,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		pm:     uv.New(path),
		vcs:    gitClient,
		sources: []AuthorSource{
			{Name: "git user.name", Lookup: gitClient.UserName},
			{Name: "gh display name", Lookup: ghClient.DisplayName},
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs the full pipeline. On a fatal error the target directory
// may be left partially populated; no rollback is attempted.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	path := g.cfg.Path()
	result := &Result{Path: path}

	g.logger.Info("generating project",
		"path", path,
		"archetype", g.cfg.Archetype,
		"python", g.cfg.PythonVersion,
	)

	// Step 1: claim the target directory.
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, path)
	}
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return nil, fmt.Errorf("create project directory: %w", err)
	}

	// Step 2: scaffold with uv, then drop its placeholder files.
	if err := g.pm.Init(ctx, g.cfg.PythonVersion, g.cfg.PackageName()); err != nil {
		return nil, &CommandError{Cmd: "uv init", Err: err}
	}
	for _, name := range []string{"hello.py", "main.py"} {
		if err := os.Remove(filepath.Join(path, name)); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("remove placeholder %s: %w", name, err)
		}
	}
	if err := g.write(result, ".python-version", g.cfg.PythonVersion+"\n"); err != nil {
		return nil, err
	}

	// Step 3: manifest, then lock and install before anything depends on it.
	if err := g.write(result, "pyproject.toml", template.Pyproject(g.cfg)); err != nil {
		return nil, err
	}
	if err := g.pm.Lock(ctx); err != nil {
		return nil, &CommandError{Cmd: "uv lock", Err: err}
	}
	if err := g.pm.Sync(ctx); err != nil {
		return nil, &CommandError{Cmd: "uv sync", Err: err}
	}
	result.CreatedFiles = append(result.CreatedFiles, "uv.lock")

	// Step 4: static and derived configuration files.
	if err := g.writeConfigFiles(result); err != nil {
		return nil, err
	}

	// Step 5: stubs, workflow, and toggled artifacts, then the README
	// rendered from the ledger of everything written so far.
	if err := g.writeSourceFiles(result); err != nil {
		return nil, err
	}
	if err := g.writeTestFiles(result); err != nil {
		return nil, err
	}
	if err := g.writeOptionalFiles(ctx, result); err != nil {
		return nil, err
	}
	result.CreatedFiles = append(result.CreatedFiles, "README.md")
	readme := template.Readme(g.cfg, result.CreatedFiles)
	if err := g.writeNoRecord("README.md", readme); err != nil {
		return nil, err
	}

	// Step 6: secret-scanning baseline (sole non-fatal external call).
	if g.cfg.Features.Security {
		g.writeSecretsBaseline(ctx, result)
	}

	// Step 7: version control and commit hooks.
	if err := g.vcs.Init(ctx); err != nil {
		return nil, &CommandError{Cmd: "git init", Err: err}
	}
	if err := g.pm.Run(ctx, "pre-commit", "install"); err != nil {
		return nil, &CommandError{Cmd: "uv run pre-commit install", Err: err}
	}

	g.logger.Info("project generated", "files", len(result.CreatedFiles))
	return result, nil
}

// writeConfigFiles writes the always-present configuration files.
func (g *Generator) writeConfigFiles(result *Result) error {
	files := []struct {
		path    string
		content string
	}{
		{".gitignore", template.Gitignore},
		{".env.example", template.EnvExample(g.cfg.Archetype)},
		{".editorconfig", template.EditorConfig},
		{".pre-commit-config.yaml", template.PreCommitConfig(g.cfg.Features.Security)},
	}
	for _, f := range files {
		if err := g.write(result, f.path, f.content); err != nil {
			return err
		}
	}
	return nil
}

// writeSourceFiles writes the package markers and the archetype stub.
func (g *Generator) writeSourceFiles(result *Result) error {
	pkg := g.cfg.PackageName()
	srcDir := "src/" + pkg

	if err := g.write(result, srcDir+"/__init__.py", ""); err != nil {
		return err
	}
	if err := g.write(result, srcDir+"/py.typed", ""); err != nil {
		return err
	}

	switch g.cfg.Archetype {
	case config.ArchetypeAPI, config.ArchetypeCLI:
		if content, ok := template.MainPy(g.cfg.Archetype, pkg); ok {
			if err := g.write(result, srcDir+"/main.py", content); err != nil {
				return err
			}
		}
	case config.ArchetypeTUI:
		if err := g.write(result, srcDir+"/app.py", template.AppPy(pkg)); err != nil {
			return err
		}
		if err := g.write(result, srcDir+"/css/"+pkg+".tcss", template.TCSS()); err != nil {
			return err
		}
	case config.ArchetypeData:
		if err := g.write(result, srcDir+"/pipeline.py", template.PipelinePy()); err != nil {
			return err
		}
	case config.ArchetypeLibrary:
		// No source stub beyond the package markers.
	}
	return nil
}

// writeTestFiles writes the test package marker and the archetype test.
func (g *Generator) writeTestFiles(result *Result) error {
	if err := g.write(result, "tests/__init__.py", ""); err != nil {
		return err
	}
	name, content := template.TestFile(g.cfg.Archetype, g.cfg.PackageName())
	return g.write(result, "tests/"+name, content)
}

// writeOptionalFiles writes the workflow and every toggled artifact.
func (g *Generator) writeOptionalFiles(ctx context.Context, result *Result) error {
	if err := g.write(result, ".github/workflows/ci.yml", template.CIWorkflow(g.cfg.PythonVersion)); err != nil {
		return err
	}
	if g.cfg.Features.Dependabot {
		if err := g.write(result, ".github/dependabot.yml", template.Dependabot); err != nil {
			return err
		}
	}
	if g.cfg.Features.VSCode {
		if err := g.write(result, ".vscode/settings.json", template.VSCodeSettings); err != nil {
			return err
		}
		if err := g.write(result, ".vscode/extensions.json", template.VSCodeExtensions); err != nil {
			return err
		}
	}
	if g.cfg.Features.Docker {
		if err := g.write(result, "Dockerfile", template.Dockerfile(g.cfg)); err != nil {
			return err
		}
		if err := g.write(result, ".dockerignore", template.Dockerignore); err != nil {
			return err
		}
	}
	if g.cfg.Features.Compose {
		// Empty render means the archetype has no compose file; never
		// write an empty file.
		if compose := template.ComposeFile(g.cfg); compose != "" {
			if err := g.write(result, "docker-compose.yml", compose); err != nil {
				return err
			}
		}
	}
	if g.cfg.Features.Makefile {
		if err := g.write(result, "Makefile", template.Makefile(g.cfg.Archetype, g.cfg.PackageName())); err != nil {
			return err
		}
	}
	if g.cfg.Features.Changelog {
		if err := g.write(result, "CHANGELOG.md", template.Changelog); err != nil {
			return err
		}
	}
	if g.cfg.License != config.LicenseNone {
		author := g.author
		if author == "" {
			author = ResolveAuthor(ctx, g.sources)
		}
		year := g.now().UTC().Year()
		if err := g.write(result, "LICENSE", template.LicenseText(g.cfg.License, year, author)); err != nil {
			return err
		}
	}
	return nil
}

// writeSecretsBaseline runs the secret scanner and persists its output.
// A failed scan persists an empty-object placeholder instead of aborting.
func (g *Generator) writeSecretsBaseline(ctx context.Context, result *Result) {
	baseline, err := g.pm.RunCapture(ctx, "detect-secrets", "scan")
	if err != nil {
		baseline = "{}"
		result.Warnings = append(result.Warnings, fmt.Sprintf("secret scan failed, wrote empty baseline: %v", err))
		g.logger.Warn("secret scan failed", "error", err)
	}
	if err := g.write(result, ".secrets.baseline", baseline); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("write secrets baseline: %v", err))
	}
}

// write writes content under the project root and records the path in
// the ledger.
func (g *Generator) write(result *Result, relPath, content string) error {
	if err := g.writeNoRecord(relPath, content); err != nil {
		return err
	}
	result.CreatedFiles = append(result.CreatedFiles, relPath)
	return nil
}

// writeNoRecord writes content under the project root without touching
// the ledger. Used for the README, which is recorded before rendering so
// it appears in its own tree.
func (g *Generator) writeNoRecord(relPath, content string) error {
	fullPath := filepath.Join(g.cfg.Path(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), dirPerm); err != nil {
		return fmt.Errorf("mkdir for %s: %w", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}
