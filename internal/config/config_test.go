package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParseArchetype(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Archetype
		wantErr bool
	}{
		{name: "library", input: "library", want: ArchetypeLibrary},
		{name: "api", input: "api", want: ArchetypeAPI},
		{name: "cli", input: "cli", want: ArchetypeCLI},
		{name: "data", input: "data", want: ArchetypeData},
		{name: "tui", input: "tui", want: ArchetypeTUI},
		{name: "case insensitive", input: "API", want: ArchetypeAPI},
		{name: "unknown", input: "webapp", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArchetype(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArchetype) {
					t.Fatalf("ParseArchetype(%q) error = %v, want ErrInvalidArchetype", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArchetype(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseArchetype(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLicense(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    License
		wantErr bool
	}{
		{name: "mit", input: "MIT", want: LicenseMIT},
		{name: "mit lowercase", input: "mit", want: LicenseMIT},
		{name: "apache", input: "Apache-2.0", want: LicenseApache2},
		{name: "gpl", input: "GPL-3.0", want: LicenseGPL3},
		{name: "bsd", input: "BSD-3-Clause", want: LicenseBSD3},
		{name: "unlicense", input: "Unlicense", want: LicenseUnlicense},
		{name: "none", input: "none", want: LicenseNone},
		{name: "unknown", input: "WTFPL", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLicense(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLicense) {
					t.Fatalf("ParseLicense(%q) error = %v, want ErrInvalidLicense", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLicense(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLicense(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestProjectPackageName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "mylib", want: "mylib"},
		{name: "hyphen", input: "my-api", want: "my_api"},
		{name: "dot", input: "my.tool", want: "my_tool"},
		{name: "mixed", input: "my-data.pipeline", want: "my_data_pipeline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project{Name: tt.input}
			if got := p.PackageName(); got != tt.want {
				t.Errorf("PackageName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProjectPythonTarget(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "3.12", want: "py312"},
		{version: "3.13", want: "py313"},
		{version: "3.10", want: "py310"},
	}

	for _, tt := range tests {
		p := Project{PythonVersion: tt.version}
		if got := p.PythonTarget(); got != tt.want {
			t.Errorf("PythonTarget() for %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestProjectPath(t *testing.T) {
	p := Project{Name: "mylib", Location: filepath.Join("home", "Repos")}
	want := filepath.Join("home", "Repos", "mylib")
	if got := p.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestDefaultFeatures(t *testing.T) {
	f := DefaultFeatures()
	if f != (Features{
		VSCode:     true,
		Docker:     true,
		Makefile:   true,
		Changelog:  true,
		Security:   true,
		Dependabot: true,
		Compose:    true,
	}) {
		t.Errorf("DefaultFeatures() = %+v, want every toggle enabled", f)
	}
}
