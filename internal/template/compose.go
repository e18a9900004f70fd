package template

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pyrepo/pyrepo/internal/config"
)

// composeFile models the docker-compose.yml document.
type composeFile struct {
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]*struct{}      `yaml:"volumes,omitempty"`
}

type composeService struct {
	Build       string                      `yaml:"build,omitempty"`
	Image       string                      `yaml:"image,omitempty"`
	Ports       []string                    `yaml:"ports,omitempty"`
	Environment any                         `yaml:"environment,omitempty"`
	DependsOn   map[string]composeCondition `yaml:"depends_on,omitempty"`
	Volumes     []string                    `yaml:"volumes,omitempty"`
	Restart     string                      `yaml:"restart,omitempty"`
	Healthcheck *composeHealthcheck         `yaml:"healthcheck,omitempty"`
}

type composeCondition struct {
	Condition string `yaml:"condition"`
}

type composeHealthcheck struct {
	Test     []string `yaml:"test,flow"`
	Interval string   `yaml:"interval"`
	Timeout  string   `yaml:"timeout"`
	Retries  int      `yaml:"retries"`
}

// ComposeFile renders docker-compose.yml for the api and data archetypes:
// an application service gated on a healthy postgres service. All other
// archetypes return an empty string and the generator must not write a
// file for them.
func ComposeFile(p config.Project) string {
	if p.Archetype != config.ArchetypeAPI && p.Archetype != config.ArchetypeData {
		return ""
	}

	pkg := p.PackageName()
	dbURL := fmt.Sprintf("DATABASE_URL=postgresql://postgres:postgres@db:5432/%s", pkg)

	app := composeService{
		Build:       ".",
		Environment: []string{"LOG_LEVEL=INFO", dbURL},
		DependsOn:   map[string]composeCondition{"db": {Condition: "service_healthy"}},
		Volumes:     []string{"./src:/app/src:ro"},
	}
	if p.Archetype == config.ArchetypeAPI {
		app.Ports = []string{"8000:8000"}
		app.Restart = "unless-stopped"
	} else {
		app.Volumes = append(app.Volumes, "./data:/app/data")
	}

	db := composeService{
		Image: "postgres:16-alpine",
		Environment: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       pkg,
		},
		Volumes: []string{"postgres_data:/var/lib/postgresql/data"},
		Ports:   []string{"5432:5432"},
		Healthcheck: &composeHealthcheck{
			Test:     []string{"CMD-SHELL", "pg_isready -U postgres"},
			Interval: "5s",
			Timeout:  "5s",
			Retries:  5,
		},
	}

	doc := composeFile{
		Services: map[string]composeService{"app": app, "db": db},
		Volumes:  map[string]*struct{}{"postgres_data": nil},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		// The document is built from static values; encoding cannot fail.
		panic(fmt.Sprintf("encode compose file: %v", err))
	}
	_ = enc.Close()
	return buf.String()
}
