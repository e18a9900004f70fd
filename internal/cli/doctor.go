package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

// doctorTool describes one binary the doctor command reports on.
type doctorTool struct {
	name     string
	required bool
	purpose  string
}

var doctorTools = []doctorTool{
	{name: "uv", required: true, purpose: "Python package management"},
	{name: "git", required: true, purpose: "version control"},
	{name: "gh", required: false, purpose: "GitHub repository creation"},
	{name: "code", required: false, purpose: "opening projects in VS Code"},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required external tools are available",
	Long: `Check that the external tools pyrepo depends on are installed
and reachable on PATH. Required tools block project creation when
missing; optional tools only disable the feature they back.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	var missing []string
	var lines []kvPair
	for _, tool := range doctorTools {
		path, err := exec.LookPath(tool.name)
		switch {
		case err == nil:
			lines = append(lines, kvPair{tool.name, symSuccess() + " " + path})
		case tool.required:
			lines = append(lines, kvPair{tool.name, symWarning() + " missing (required, " + tool.purpose + ")"})
			missing = append(missing, tool.name)
		default:
			lines = append(lines, kvPair{tool.name, cliMuted.Render("missing (optional, " + tool.purpose + ")")})
		}
	}

	_, _ = fmt.Fprintln(out, renderCard("Environment", renderKeyValueLines(lines)))

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrToolMissing, missing)
	}
	_, _ = fmt.Fprintln(out, cliSuccess.Render("All required tools found"))
	return nil
}
