package template

import (
	"strings"
	"testing"
)

func TestCIWorkflowMatrix(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "below 13 adds forward check", version: "3.12", want: `python-version: ["3.12", "3.13"]`},
		{name: "at 13 tests only itself", version: "3.13", want: `python-version: ["3.13"]`},
		{name: "older minor", version: "3.10", want: `python-version: ["3.10", "3.13"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CIWorkflow(tt.version)
			if !strings.Contains(got, tt.want) {
				t.Errorf("CIWorkflow(%q) matrix wrong, want %q in:\n%s", tt.version, tt.want, got)
			}
		})
	}
}

func TestCIWorkflowSteps(t *testing.T) {
	got := CIWorkflow("3.12")
	for _, step := range []string{
		"uv sync --frozen",
		"uv run ruff check",
		"uv run mypy src",
		"uv run pytest",
	} {
		if !strings.Contains(got, step) {
			t.Errorf("workflow missing step %q", step)
		}
	}
}
