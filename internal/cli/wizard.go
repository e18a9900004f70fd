package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/pyrepo/pyrepo/internal/config"
)

// wizardResult holds the answers collected by the interactive form.
type wizardResult struct {
	Name      string
	Archetype config.Archetype
	License   config.License
}

// runWizard asks for the values not supplied via flags. Only used when
// stdin is a terminal and --name was not given.
func runWizard() (*wizardResult, error) {
	result := &wizardResult{
		Archetype: config.ArchetypeLibrary,
		License:   config.LicenseMIT,
	}

	archetypeOptions := make([]huh.Option[config.Archetype], 0, len(config.Archetypes))
	for _, a := range config.Archetypes {
		archetypeOptions = append(archetypeOptions, huh.NewOption(string(a), a))
	}
	licenseOptions := make([]huh.Option[config.License], 0, len(config.Licenses))
	for _, l := range config.Licenses {
		licenseOptions = append(licenseOptions, huh.NewOption(string(l), l))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Repository name").
				Description("Used for the directory, the package name, and the remote.").
				Value(&result.Name),
			huh.NewSelect[config.Archetype]().
				Title("Project type").
				Options(archetypeOptions...).
				Value(&result.Archetype),
			huh.NewSelect[config.License]().
				Title("License").
				Options(licenseOptions...).
				Value(&result.License),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}
	return result, nil
}
