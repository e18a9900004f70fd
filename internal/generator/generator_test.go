package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/pyrepo/pyrepo/internal/config"
)

// fakePM records uv invocations without running anything. Init drops the
// placeholder files the real uv init would create.
type fakePM struct {
	dir     string
	calls   []string
	initErr error
	lockErr error
	syncErr error
	scanOut string
	scanErr error
}

func (f *fakePM) Init(_ context.Context, _, _ string) error {
	f.calls = append(f.calls, "init")
	if f.initErr != nil {
		return f.initErr
	}
	for _, name := range []string{"hello.py", "main.py"} {
		if err := os.WriteFile(filepath.Join(f.dir, name), []byte("print()\n"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakePM) Lock(context.Context) error {
	f.calls = append(f.calls, "lock")
	return f.lockErr
}

func (f *fakePM) Sync(context.Context) error {
	f.calls = append(f.calls, "sync")
	return f.syncErr
}

func (f *fakePM) Run(_ context.Context, args ...string) error {
	f.calls = append(f.calls, "run "+strings.Join(args, " "))
	return nil
}

func (f *fakePM) RunCapture(_ context.Context, args ...string) (string, error) {
	f.calls = append(f.calls, "capture "+strings.Join(args, " "))
	return f.scanOut, f.scanErr
}

type fakeVCS struct {
	initCalled bool
	userName   string
}

func (f *fakeVCS) Init(context.Context) error {
	f.initCalled = true
	return nil
}

func (f *fakeVCS) UserName(context.Context) (string, error) {
	if f.userName == "" {
		return "", errors.New("not configured")
	}
	return f.userName, nil
}

func testConfig(t *testing.T, a config.Archetype) config.Project {
	t.Helper()
	return config.Project{
		Name:          "my-proj",
		Location:      t.TempDir(),
		PythonVersion: "3.12",
		Archetype:     a,
		License:       config.LicenseMIT,
		Features:      config.DefaultFeatures(),
	}
}

func newTestGenerator(cfg config.Project, extra ...Option) (*Generator, *fakePM, *fakeVCS) {
	pm := &fakePM{dir: cfg.Path(), scanOut: `{"results": {}}`}
	vcs := &fakeVCS{userName: "Jane Doe"}
	opts := append([]Option{
		WithPackageManager(pm),
		WithVCS(vcs),
		WithClock(func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }),
	}, extra...)
	return New(cfg, opts...), pm, vcs
}

func TestGenerateRefusesExistingDirectory(t *testing.T) {
	cfg := testConfig(t, config.ArchetypeLibrary)
	if err := os.MkdirAll(cfg.Path(), 0o755); err != nil {
		t.Fatal(err)
	}

	gen, pm, _ := newTestGenerator(cfg)
	_, err := gen.Generate(context.Background())
	if !errors.Is(err, ErrProjectExists) {
		t.Fatalf("Generate() error = %v, want ErrProjectExists", err)
	}
	if len(pm.calls) != 0 {
		t.Errorf("no external commands may run after the precondition fails, got %v", pm.calls)
	}
}

func TestGenerateLibraryProject(t *testing.T) {
	cfg := testConfig(t, config.ArchetypeLibrary)
	gen, pm, vcs := newTestGenerator(cfg)

	result, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	wantFiles := []string{
		".python-version",
		"pyproject.toml",
		".gitignore",
		".env.example",
		".editorconfig",
		".pre-commit-config.yaml",
		"src/my_proj/__init__.py",
		"src/my_proj/py.typed",
		"tests/__init__.py",
		"tests/test_placeholder.py",
		".github/workflows/ci.yml",
		".github/dependabot.yml",
		".vscode/settings.json",
		"Dockerfile",
		"Makefile",
		"CHANGELOG.md",
		"LICENSE",
		"README.md",
		".secrets.baseline",
	}
	for _, rel := range wantFiles {
		if _, err := os.Stat(filepath.Join(result.Path, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}

	// Libraries never get a compose file and the uv placeholders must be gone.
	for _, rel := range []string{"docker-compose.yml", "hello.py", "main.py"} {
		if _, err := os.Stat(filepath.Join(result.Path, rel)); !os.IsNotExist(err) {
			t.Errorf("%s must not exist", rel)
		}
	}

	if !vcs.initCalled {
		t.Error("git init was not called")
	}
	wantPrefix := []string{"init", "lock", "sync"}
	if len(pm.calls) < 3 || !slices.Equal(pm.calls[:3], wantPrefix) {
		t.Errorf("uv call order = %v, want prefix %v", pm.calls, wantPrefix)
	}
	if !slices.Contains(pm.calls, "run pre-commit install") {
		t.Errorf("pre-commit install missing from %v", pm.calls)
	}
}

func TestGenerateLedgerOrderAndReadme(t *testing.T) {
	cfg := testConfig(t, config.ArchetypeLibrary)
	gen, _, _ := newTestGenerator(cfg)

	result, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	idx := func(rel string) int { return slices.Index(result.CreatedFiles, rel) }
	if idx(".python-version") < 0 || idx("pyproject.toml") < 0 || idx("uv.lock") < 0 {
		t.Fatalf("ledger missing early entries: %v", result.CreatedFiles)
	}
	if !(idx(".python-version") < idx("pyproject.toml") && idx("pyproject.toml") < idx("uv.lock")) {
		t.Errorf("ledger order wrong: %v", result.CreatedFiles)
	}

	// The README records itself but the baseline file lands after it.
	last := result.CreatedFiles[len(result.CreatedFiles)-1]
	if last != ".secrets.baseline" {
		t.Errorf("last ledger entry = %q, want .secrets.baseline", last)
	}
	readme, err := os.ReadFile(filepath.Join(result.Path, "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(readme), "README.md") {
		t.Error("README tree must include the README itself")
	}
	if strings.Contains(string(readme), ".secrets.baseline") {
		t.Error("README tree must not include the secrets baseline")
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*fakePM)
		wantCmd string
	}{
		{name: "init", setup: func(pm *fakePM) { pm.initErr = errors.New("boom") }, wantCmd: "uv init"},
		{name: "lock", setup: func(pm *fakePM) { pm.lockErr = errors.New("boom") }, wantCmd: "uv lock"},
		{name: "sync", setup: func(pm *fakePM) { pm.syncErr = errors.New("boom") }, wantCmd: "uv sync"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, config.ArchetypeLibrary)
			gen, pm, _ := newTestGenerator(cfg)
			tt.setup(pm)

			_, err := gen.Generate(context.Background())
			var cmdErr *CommandError
			if !errors.As(err, &cmdErr) {
				t.Fatalf("Generate() error = %v, want CommandError", err)
			}
			if cmdErr.Cmd != tt.wantCmd {
				t.Errorf("CommandError.Cmd = %q, want %q", cmdErr.Cmd, tt.wantCmd)
			}
		})
	}
}

func TestGenerateSecretScanFallback(t *testing.T) {
	cfg := testConfig(t, config.ArchetypeLibrary)
	gen, pm, _ := newTestGenerator(cfg)
	pm.scanErr = errors.New("scanner exploded")

	result, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("a failed secret scan must not abort generation: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the failed scan")
	}
	baseline, err := os.ReadFile(filepath.Join(result.Path, ".secrets.baseline"))
	if err != nil {
		t.Fatal(err)
	}
	if string(baseline) != "{}" {
		t.Errorf("baseline = %q, want empty object placeholder", baseline)
	}
}

func TestGenerateComposeFile(t *testing.T) {
	t.Run("api gets compose", func(t *testing.T) {
		cfg := testConfig(t, config.ArchetypeAPI)
		gen, _, _ := newTestGenerator(cfg)
		result, err := gen.Generate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(filepath.Join(result.Path, "docker-compose.yml")); err != nil {
			t.Errorf("api project missing docker-compose.yml: %v", err)
		}
	})

	t.Run("toggle off suppresses compose", func(t *testing.T) {
		cfg := testConfig(t, config.ArchetypeAPI)
		cfg.Features.Compose = false
		gen, _, _ := newTestGenerator(cfg)
		result, err := gen.Generate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(filepath.Join(result.Path, "docker-compose.yml")); !os.IsNotExist(err) {
			t.Error("docker-compose.yml must not exist with the toggle off")
		}
	})
}

func TestGenerateLicense(t *testing.T) {
	t.Run("fixed author and clock", func(t *testing.T) {
		cfg := testConfig(t, config.ArchetypeLibrary)
		gen, _, _ := newTestGenerator(cfg, WithAuthor("Override Name"))
		result, err := gen.Generate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		license, err := os.ReadFile(filepath.Join(result.Path, "LICENSE"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(license), "Copyright (c) 2026 Override Name") {
			t.Errorf("LICENSE missing copyright line:\n%s", license)
		}
	})

	t.Run("none suppresses the file", func(t *testing.T) {
		cfg := testConfig(t, config.ArchetypeLibrary)
		cfg.License = config.LicenseNone
		gen, _, _ := newTestGenerator(cfg)
		result, err := gen.Generate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(filepath.Join(result.Path, "LICENSE")); !os.IsNotExist(err) {
			t.Error("LICENSE must not exist for LicenseNone")
		}
	})
}

func TestGenerateArchetypeStubs(t *testing.T) {
	tests := []struct {
		archetype config.Archetype
		wantFiles []string
	}{
		{config.ArchetypeAPI, []string{"src/my_proj/main.py", "tests/test_api.py"}},
		{config.ArchetypeCLI, []string{"src/my_proj/main.py", "tests/test_cli.py"}},
		{config.ArchetypeTUI, []string{"src/my_proj/app.py", "src/my_proj/css/my_proj.tcss", "tests/test_app.py"}},
		{config.ArchetypeData, []string{"src/my_proj/pipeline.py", "tests/test_pipeline.py"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.archetype), func(t *testing.T) {
			cfg := testConfig(t, tt.archetype)
			gen, _, _ := newTestGenerator(cfg)
			result, err := gen.Generate(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			for _, rel := range tt.wantFiles {
				if _, err := os.Stat(filepath.Join(result.Path, filepath.FromSlash(rel))); err != nil {
					t.Errorf("expected %s to exist: %v", rel, err)
				}
			}
		})
	}
}
