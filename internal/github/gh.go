// Package github wraps the gh CLI for remote repository operations:
// existence checks, repository creation, and authenticated-user lookups.
package github

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

// Sentinel errors for gh operations.
var (
	// ErrGHNotFound indicates the gh binary is not on PATH.
	ErrGHNotFound = errors.New("github: gh binary not found in PATH")

	// ErrRepoExists indicates the remote repository name is already taken.
	ErrRepoExists = errors.New("github: repository already exists")
)

// execFunc is the function signature for executing gh commands.
// Used for dependency injection in tests.
type execFunc func(ctx context.Context, dir string, args ...string) (string, error)

// Client executes gh commands rooted at a repository directory.
type Client struct {
	dir    string
	logger *slog.Logger
	execFn execFunc
}

// New creates a Client rooted at the given directory.
func New(dir string) *Client {
	return &Client{
		dir:    dir,
		logger: slog.Default().With("module", "github"),
	}
}

// NewWithExec creates a Client with a custom exec function for testing.
func NewWithExec(dir string, fn execFunc) *Client {
	return &Client{
		dir:    dir,
		logger: slog.Default().With("module", "github"),
		execFn: fn,
	}
}

func (c *Client) exec(ctx context.Context, args ...string) (string, error) {
	if c.execFn != nil {
		return c.execFn(ctx, c.dir, args...)
	}
	return execGH(ctx, c.dir, args...)
}

// Available reports whether the gh binary can be found.
func Available() bool {
	_, err := exec.LookPath("gh")
	return err == nil
}

// RepoExists reports whether a repository with the given name already
// exists for the authenticated user.
func (c *Client) RepoExists(ctx context.Context, name string) bool {
	_, err := c.exec(ctx, "repo", "view", name)
	return err == nil
}

// CreateRepo creates a remote repository from the current directory and
// wires it up as the "origin" remote.
func (c *Client) CreateRepo(ctx context.Context, name string, private bool) error {
	visibility := "--public"
	if private {
		visibility = "--private"
	}
	c.logger.Debug("creating repository", "name", name, "visibility", visibility)
	_, err := c.exec(ctx, "repo", "create", name, visibility, "--source=.", "--remote=origin")
	return err
}

// Login returns the authenticated user's login name.
func (c *Client) Login(ctx context.Context) (string, error) {
	out, err := c.exec(ctx, "api", "user", "--jq", ".login")
	if err != nil {
		return "", fmt.Errorf("get login: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// DisplayName returns the authenticated user's display name.
func (c *Client) DisplayName(ctx context.Context) (string, error) {
	out, err := c.exec(ctx, "api", "user", "--jq", ".name")
	if err != nil {
		return "", fmt.Errorf("get display name: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// execGH executes a gh command in the given directory and returns stdout.
func execGH(ctx context.Context, dir string, args ...string) (string, error) {
	ghPath, err := exec.LookPath("gh")
	if err != nil {
		return "", fmt.Errorf("gh lookup: %w", ErrGHNotFound)
	}

	cmd := exec.CommandContext(ctx, ghPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GH_PROMPT_DISABLED=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("gh %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("gh: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
