// Package cli implements the pyrepo command-line surface: the create
// command that scaffolds a new Python repository, and the doctor command
// that checks for the external tools the pipeline depends on.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyrepo/pyrepo/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "pyrepo",
	Short: "Scaffold Python repositories with batteries included",
	Long: `pyrepo creates and initializes new Python repositories: project
layout, pyproject.toml with archetype-specific dependencies, CI workflow,
pre-commit hooks, optional Docker and compose files, a GitHub remote,
and an opened editor.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("pyrepo %s\n", version.GetVersion()))
}
