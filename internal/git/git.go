// Package git wraps the system git binary for the handful of operations
// the scaffolder needs: repository initialization, staging, the initial
// commit and push, and reading the configured user name.
package git

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

// ErrGitNotFound indicates the git binary is not on PATH.
var ErrGitNotFound = errors.New("git: binary not found in PATH")

// execFunc is the function signature for executing git commands.
// Used for dependency injection in tests.
type execFunc func(ctx context.Context, dir string, args ...string) (string, error)

// Client executes git commands rooted at a repository directory.
type Client struct {
	dir    string
	logger *slog.Logger
	execFn execFunc
}

// New creates a Client rooted at the given directory.
func New(dir string) *Client {
	return &Client{
		dir:    dir,
		logger: slog.Default().With("module", "git"),
	}
}

// NewWithExec creates a Client with a custom exec function for testing.
func NewWithExec(dir string, fn execFunc) *Client {
	return &Client{
		dir:    dir,
		logger: slog.Default().With("module", "git"),
		execFn: fn,
	}
}

func (c *Client) exec(ctx context.Context, args ...string) (string, error) {
	if c.execFn != nil {
		return c.execFn(ctx, c.dir, args...)
	}
	return execGit(ctx, c.dir, args...)
}

// Init initializes a repository in the client's directory.
func (c *Client) Init(ctx context.Context) error {
	c.logger.Debug("initializing repository", "dir", c.dir)
	_, err := c.exec(ctx, "init", "--quiet")
	return err
}

// AddAll stages every change in the working tree.
func (c *Client) AddAll(ctx context.Context) error {
	_, err := c.exec(ctx, "add", "-A")
	return err
}

// Commit records the staged changes with the given message.
func (c *Client) Commit(ctx context.Context, message string) error {
	_, err := c.exec(ctx, "commit", "-m", message)
	return err
}

// Push pushes the branch to the remote and sets the upstream.
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	_, err := c.exec(ctx, "push", "-u", remote, branch)
	return err
}

// UserName returns the configured git user.name, trimmed.
func (c *Client) UserName(ctx context.Context) (string, error) {
	out, err := c.exec(ctx, "config", "user.name")
	if err != nil {
		return "", fmt.Errorf("read user.name: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// execGit executes a git command in the given directory and returns stdout.
// GIT_TERMINAL_PROMPT=0 and LC_ALL=C keep behavior consistent.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("git lookup: %w", ErrGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
