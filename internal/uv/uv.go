// Package uv wraps the uv package manager binary. All project
// scaffolding, dependency locking, and tool execution goes through this
// package so the rest of the system never shells out to uv directly.
package uv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ErrUVNotFound indicates the uv binary is not on PATH.
var ErrUVNotFound = errors.New("uv: binary not found in PATH")

// execFunc is the function signature for executing uv commands.
// Used for dependency injection in tests.
type execFunc func(ctx context.Context, dir string, args ...string) (string, error)

// Runner executes uv commands rooted at a project directory.
type Runner struct {
	dir    string
	logger *slog.Logger
	// execFn is the function used to execute uv commands.
	// If nil, the package-level execUV function is used.
	execFn execFunc
}

// New creates a Runner rooted at the given project directory.
func New(dir string) *Runner {
	return &Runner{
		dir:    dir,
		logger: slog.Default().With("module", "uv"),
	}
}

// NewWithExec creates a Runner with a custom exec function for testing.
func NewWithExec(dir string, fn execFunc) *Runner {
	return &Runner{
		dir:    dir,
		logger: slog.Default().With("module", "uv"),
		execFn: fn,
	}
}

func (r *Runner) exec(ctx context.Context, args ...string) (string, error) {
	if r.execFn != nil {
		return r.execFn(ctx, r.dir, args...)
	}
	return execUV(ctx, r.dir, args...)
}

// Init scaffolds a project in the runner's directory with the given
// Python version and package name. No workspace membership is set up.
func (r *Runner) Init(ctx context.Context, pythonVersion, packageName string) error {
	r.logger.Debug("initializing project", "python", pythonVersion, "name", packageName)
	_, err := r.exec(ctx, "init", ".", "--python", pythonVersion, "--no-workspace", "--name", packageName)
	return err
}

// Lock resolves dependencies into uv.lock.
func (r *Runner) Lock(ctx context.Context) error {
	_, err := r.exec(ctx, "lock")
	return err
}

// Sync installs the locked dependencies into the project environment.
func (r *Runner) Sync(ctx context.Context) error {
	_, err := r.exec(ctx, "sync")
	return err
}

// Run executes a tool inside the project environment, discarding output.
func (r *Runner) Run(ctx context.Context, args ...string) error {
	_, err := r.exec(ctx, append([]string{"run"}, args...)...)
	return err
}

// RunCapture executes a tool inside the project environment and returns
// its stdout.
func (r *Runner) RunCapture(ctx context.Context, args ...string) (string, error) {
	return r.exec(ctx, append([]string{"run"}, args...)...)
}

// execUV executes a uv command in the given directory and returns stdout.
// VIRTUAL_ENV is scrubbed from the environment so uv operates on the
// target project rather than any environment active in the caller's shell.
func execUV(ctx context.Context, dir string, args ...string) (string, error) {
	uvPath, err := exec.LookPath("uv")
	if err != nil {
		return "", fmt.Errorf("uv lookup: %w", ErrUVNotFound)
	}

	cmd := exec.CommandContext(ctx, uvPath, args...)
	cmd.Dir = dir
	cmd.Env = scrubEnv(os.Environ(), "VIRTUAL_ENV")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("uv %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("uv: %s: %w", stderrStr, err)
	}

	return stdout.String(), nil
}

// scrubEnv returns env without any entry for the named variable.
func scrubEnv(env []string, name string) []string {
	out := env[:0:0]
	for _, kv := range env {
		if !strings.HasPrefix(kv, name+"=") {
			out = append(out, kv)
		}
	}
	return out
}
