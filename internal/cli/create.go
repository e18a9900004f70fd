package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pyrepo/pyrepo/internal/config"
	"github.com/pyrepo/pyrepo/internal/generator"
	"github.com/pyrepo/pyrepo/internal/git"
	"github.com/pyrepo/pyrepo/internal/github"
	"github.com/pyrepo/pyrepo/internal/uv"
)

// reservedNames are project names rejected before any side effect.
var reservedNames = map[string]struct{}{
	"test-repo": {},
	"test_repo": {},
	"tests":     {},
	"test":      {},
}

// isReservedName reports whether the name is blocked, case-insensitively.
func isReservedName(name string) bool {
	_, reserved := reservedNames[strings.ToLower(name)]
	return reserved
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create and initialize a new Python repository",
	Long: `Create and initialize a new Python repository with best practices:
project layout, dependency management via uv, linting, typing, tests,
CI, pre-commit hooks, and an optional GitHub remote.

Examples:
  pyrepo create -n mylib                      Library, Python 3.12, MIT, all features
  pyrepo create -n myapi -t api               FastAPI service
  pyrepo create -n mycli -t cli --license Apache-2.0
  pyrepo create -n mytui -t tui -p 3.13
  pyrepo create -n minimal --no-docker --no-security
  pyrepo create -n oss-tool --public`,
	PreRunE: validateCreateFlags,
	RunE:    runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("name", "n", "", "Repository name (required unless running interactively)")
	createCmd.Flags().StringP("location", "l", "", "Parent directory for the new repo (default: ~/Repos)")
	createCmd.Flags().StringP("python", "p", "3.12", "Python version")
	createCmd.Flags().StringP("type", "t", "library", "Project type: library, api, cli, data, or tui")
	createCmd.Flags().String("license", "MIT", "License: MIT, Apache-2.0, GPL-3.0, BSD-3-Clause, Unlicense, or none")
	createCmd.Flags().StringP("author", "a", "", "Author name for the license")
	createCmd.Flags().Bool("no-vscode", false, "Skip VS Code configuration")
	createCmd.Flags().Bool("no-docker", false, "Skip Docker configuration")
	createCmd.Flags().Bool("no-makefile", false, "Skip Makefile generation")
	createCmd.Flags().Bool("no-changelog", false, "Skip CHANGELOG.md generation")
	createCmd.Flags().Bool("no-security", false, "Skip security tools (bandit, detect-secrets)")
	createCmd.Flags().Bool("no-dependabot", false, "Skip Dependabot configuration")
	createCmd.Flags().Bool("no-compose", false, "Skip docker-compose.yml for api/data projects")
	createCmd.Flags().Bool("no-github", false, "Skip GitHub repository creation")
	createCmd.Flags().Bool("no-editor", false, "Don't open an editor after creation")
	createCmd.Flags().Bool("public", false, "Make the GitHub repository public (default: private)")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateCreateFlags validates closed-set flag values before execution.
func validateCreateFlags(cmd *cobra.Command, _ []string) error {
	if _, err := config.ParseArchetype(getStringFlag(cmd, "type")); err != nil {
		return err
	}
	if _, err := config.ParseLicense(getStringFlag(cmd, "license")); err != nil {
		return err
	}
	return nil
}

// checkPrerequisites verifies the tools every generation run needs.
// gh is checked later, only when a remote repository is requested.
func checkPrerequisites() error {
	for _, tool := range []string{"uv", "git"} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%w: %s", ErrToolMissing, tool)
		}
	}
	return nil
}

// runCreate executes the full creation workflow: configuration, project
// generation, test run, remote publication, and editor launch.
func runCreate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if err := checkPrerequisites(); err != nil {
		return err
	}

	name := getStringFlag(cmd, "name")
	archetype, _ := config.ParseArchetype(getStringFlag(cmd, "type"))
	license, _ := config.ParseLicense(getStringFlag(cmd, "license"))

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if name == "" && interactive {
		result, err := runWizard()
		if err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}
		name = result.Name
		if !cmd.Flags().Changed("type") {
			archetype = result.Archetype
		}
		if !cmd.Flags().Changed("license") {
			license = result.License
		}
	}
	if name == "" {
		return fmt.Errorf("project name required: pass --name or run interactively")
	}

	if isReservedName(name) {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}

	location := getStringFlag(cmd, "location")
	if location == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		location = filepath.Join(home, "Repos")
	}

	cfg := config.Project{
		Name:          name,
		Location:      location,
		PythonVersion: getStringFlag(cmd, "python"),
		Archetype:     archetype,
		License:       license,
		Features: config.Features{
			VSCode:     !getBoolFlag(cmd, "no-vscode"),
			Docker:     !getBoolFlag(cmd, "no-docker"),
			Makefile:   !getBoolFlag(cmd, "no-makefile"),
			Changelog:  !getBoolFlag(cmd, "no-changelog"),
			Security:   !getBoolFlag(cmd, "no-security"),
			Dependabot: !getBoolFlag(cmd, "no-dependabot"),
			Compose:    !getBoolFlag(cmd, "no-compose"),
		},
		Private:    !getBoolFlag(cmd, "public"),
		SkipGitHub: getBoolFlag(cmd, "no-github"),
		SkipEditor: getBoolFlag(cmd, "no-editor"),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, _ = fmt.Fprintf(out, "Creating %s (%s, Python %s)\n",
		cfg.PackageName(), cfg.Archetype, cfg.PythonVersion)

	gen := generator.New(cfg, generator.WithAuthor(getStringFlag(cmd, "author")))

	var result *generator.Result
	genErr := withSpinner("Generating project...", func() error {
		var err error
		result, err = gen.Generate(ctx)
		return err
	})
	if genErr != nil {
		return fmt.Errorf("generation failed: %w", genErr)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Path", result.Path},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
		}),
	}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project created", details...))

	if err := runPostGeneration(ctx, out, cfg, result.Path); err != nil {
		return err
	}

	printSummary(out, cfg, result.Path)
	return nil
}

// runPostGeneration runs the test suite, publishes the repository, and
// launches the editor. Only remote publication failures are fatal.
func runPostGeneration(ctx context.Context, out io.Writer, cfg config.Project, path string) error {
	// Test suite failure is a warning, not an abort.
	_, _ = fmt.Fprintln(out, "Running tests...")
	if err := uv.New(path).Run(ctx, "pytest"); err != nil {
		_, _ = fmt.Fprintln(out, cliWarn.Render("Warning: tests failed"))
	}

	if !cfg.SkipGitHub {
		if err := publishToGitHub(ctx, out, cfg, path); err != nil {
			return err
		}
	}

	if !cfg.SkipEditor {
		if !launchEditor(path) {
			_, _ = fmt.Fprintln(out, cliMuted.Render(
				"Note: editor not opened (install the 'code' shell command to enable)"))
		}
	}
	return nil
}

// publishToGitHub creates the remote repository and pushes the initial
// commit. A missing gh binary downgrades to a warning; a name collision
// is fatal with cleanup instructions.
func publishToGitHub(ctx context.Context, out io.Writer, cfg config.Project, path string) error {
	if !github.Available() {
		_, _ = fmt.Fprintln(out, cliWarn.Render("Warning: gh CLI not found, skipping GitHub setup"))
		return nil
	}

	gh := github.New(path)
	if gh.RepoExists(ctx, cfg.Name) {
		_, _ = fmt.Fprintf(out, "%s\n%s\n",
			cliWarn.Render(fmt.Sprintf("To delete the existing repo: gh repo delete %s --yes", cfg.Name)),
			cliWarn.Render(fmt.Sprintf("To clean up the local directory: rm -rf %s", path)))
		return fmt.Errorf("%w: %q", ErrRemoteExists, cfg.Name)
	}

	_, _ = fmt.Fprintln(out, "Creating GitHub repository...")
	if err := gh.CreateRepo(ctx, cfg.Name, cfg.Private); err != nil {
		return fmt.Errorf("create repository: %w", err)
	}

	repo := git.New(path)
	if err := repo.AddAll(ctx); err != nil {
		return fmt.Errorf("stage files: %w", err)
	}

	// Run the hooks once so auto-fixes land before the first commit.
	// pre-commit exits non-zero when it modifies files; that is expected.
	_, _ = fmt.Fprintln(out, "Running pre-commit hooks...")
	_ = uv.New(path).Run(ctx, "pre-commit", "run", "--all-files")

	if err := repo.AddAll(ctx); err != nil {
		return fmt.Errorf("re-stage files: %w", err)
	}
	if err := repo.Commit(ctx, "Initial commit"); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if err := repo.Push(ctx, "origin", "main"); err != nil {
		return fmt.Errorf("push: %w", err)
	}

	if login, err := gh.Login(ctx); err == nil && login != "" {
		_, _ = fmt.Fprintln(out, symSuccess()+" "+fmt.Sprintf("Pushed to github.com/%s/%s", login, cfg.Name))
	}
	return nil
}

// editorLauncher is one strategy for opening the project in an editor.
type editorLauncher struct {
	name string
	args []string
}

// editorLaunchers returns the ordered launch strategies for the platform.
func editorLaunchers(goos, path string) []editorLauncher {
	launchers := []editorLauncher{
		{name: "code", args: []string{"code", path}},
	}
	if goos == "darwin" {
		launchers = append(launchers, editorLauncher{
			name: "open -a",
			args: []string{"open", "-a", "Visual Studio Code", path},
		})
	}
	return launchers
}

// launchEditor tries each launch strategy in order; first success wins.
func launchEditor(path string) bool {
	for _, l := range editorLaunchers(runtime.GOOS, path) {
		if err := exec.Command(l.args[0], l.args[1:]...).Run(); err == nil {
			return true
		}
	}
	return false
}

// withSpinner runs fn behind a spinner when attached to a terminal.
func withSpinner(title string, fn func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fn()
	}
	var actionErr error
	err := spinner.New().
		Title(title).
		Action(func() {
			actionErr = fn()
		}).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}

// printSummary prints the enabled features and next steps.
func printSummary(out io.Writer, cfg config.Project, path string) {
	var features []string
	if cfg.Features.VSCode {
		features = append(features, "VS Code configuration")
	}
	if cfg.Features.Docker {
		features = append(features, "Dockerfile")
	}
	if cfg.Features.Compose && (cfg.Archetype == config.ArchetypeAPI || cfg.Archetype == config.ArchetypeData) {
		features = append(features, "docker-compose.yml")
	}
	if cfg.Features.Makefile {
		features = append(features, "Makefile")
	}
	if cfg.Features.Changelog {
		features = append(features, "CHANGELOG.md")
	}
	if cfg.Features.Security {
		features = append(features, "Security scanning (bandit, detect-secrets)")
	}
	if cfg.Features.Dependabot {
		features = append(features, "Dependabot")
	}
	if cfg.License != config.LicenseNone {
		features = append(features, "License: "+string(cfg.License))
	}

	var b strings.Builder
	for i, f := range features {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + f)
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderCard("Features enabled", b.String()))

	next := []string{"cd " + path, "source .venv/bin/activate"}
	if cfg.Features.Makefile {
		next = append(next, "make test")
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderCard("Next steps", strings.Join(next, "\n")))
}
