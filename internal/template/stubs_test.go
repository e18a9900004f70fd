package template

import (
	"strings"
	"testing"

	"github.com/pyrepo/pyrepo/internal/config"
)

func TestClassName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "mytui", want: "MytuiApp"},
		{input: "my_tui", want: "MyTuiApp"},
		{input: "log_view_er", want: "LogViewErApp"},
	}

	for _, tt := range tests {
		if got := ClassName(tt.input); got != tt.want {
			t.Errorf("ClassName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMainPyPerArchetype(t *testing.T) {
	tests := []struct {
		archetype config.Archetype
		exists    bool
		contains  string
	}{
		{archetype: config.ArchetypeAPI, exists: true, contains: "FastAPI()"},
		{archetype: config.ArchetypeCLI, exists: true, contains: "typer.Typer()"},
		{archetype: config.ArchetypeLibrary, exists: false},
		{archetype: config.ArchetypeData, exists: false},
		{archetype: config.ArchetypeTUI, exists: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.archetype), func(t *testing.T) {
			got, ok := MainPy(tt.archetype, "my_proj")
			if ok != tt.exists {
				t.Fatalf("MainPy(%s) exists = %v, want %v", tt.archetype, ok, tt.exists)
			}
			if tt.exists && !strings.Contains(got, tt.contains) {
				t.Errorf("MainPy(%s) missing %q", tt.archetype, tt.contains)
			}
		})
	}
}

func TestAppPyUsesDerivedClassName(t *testing.T) {
	got := AppPy("my_tui")
	if !strings.Contains(got, "class MyTuiApp(App):") {
		t.Errorf("AppPy missing derived class name:\n%s", got)
	}
}

func TestTestFilePerArchetype(t *testing.T) {
	tests := []struct {
		archetype config.Archetype
		wantName  string
		contains  string
	}{
		{archetype: config.ArchetypeAPI, wantName: "test_api.py", contains: "ASGITransport"},
		{archetype: config.ArchetypeCLI, wantName: "test_cli.py", contains: "CliRunner"},
		{archetype: config.ArchetypeTUI, wantName: "test_app.py", contains: "run_test"},
		{archetype: config.ArchetypeData, wantName: "test_pipeline.py", contains: "transform"},
		{archetype: config.ArchetypeLibrary, wantName: "test_placeholder.py", contains: "assert True"},
	}

	for _, tt := range tests {
		t.Run(string(tt.archetype), func(t *testing.T) {
			name, content := TestFile(tt.archetype, "my_proj")
			if name != tt.wantName {
				t.Errorf("TestFile(%s) name = %q, want %q", tt.archetype, name, tt.wantName)
			}
			if !strings.Contains(content, tt.contains) {
				t.Errorf("TestFile(%s) content missing %q", tt.archetype, tt.contains)
			}
		})
	}
}
