package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ochairo/droidspec/internal/domain/entities"
	"github.com/ochairo/droidspec/internal/paths"
)

// SBOMFileName is written next to the plan
const SBOMFileName = "bom.cdx.json"

// sbomGenerator builds a CycloneDX SBOM from the descriptor's dependency list
type sbomGenerator struct {
	now func() time.Time
}

// NewSBOMGenerator creates a new SBOM generator gateway
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewSBOMGenerator() *sbomGenerator {
	return &sbomGenerator{now: time.Now}
}

// GenerateSBOM lists the application and every declared Maven dependency
func (g *sbomGenerator) GenerateSBOM(_ context.Context, build *entities.ResolvedBuild) (*entities.SBOM, error) {
	if build == nil || build.Descriptor == nil {
		return nil, fmt.Errorf("resolved build cannot be nil")
	}
	desc := build.Descriptor

	components := make([]entities.Component, 0, len(desc.Dependencies))
	seen := make(map[string]bool)
	for _, d := range desc.Dependencies {
		purl := mavenPURL(d)
		if seen[purl] {
			continue
		}
		seen[purl] = true

		components = append(components, entities.Component{
			Type:    "library",
			Group:   d.Group,
			Name:    d.Name,
			Version: d.Version,
			PURL:    purl,
			Scope:   scopeFor(d.Configuration),
		})
	}

	return &entities.SBOM{
		BOMFormat:   "CycloneDX",
		SpecVersion: "1.4",
		Version:     1,
		Components:  components,
		Metadata: entities.Metadata{
			Timestamp: g.now().UTC(),
			Tools:     []entities.Tool{{Name: "droidspec"}},
			Component: entities.Component{
				Type:    "application",
				Name:    desc.ApplicationID,
				Version: desc.Version.Name,
			},
		},
	}, nil
}

// WriteSBOM generates the SBOM and writes it into outputDir
func (g *sbomGenerator) WriteSBOM(ctx context.Context, build *entities.ResolvedBuild, outputDir string) (string, error) {
	sbom, err := g.GenerateSBOM(ctx, build)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(sbom, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal SBOM: %w", err)
	}

	sbomPath := filepath.Join(outputDir, SBOMFileName)
	if err := os.WriteFile(sbomPath, append(data, '\n'), paths.DefaultFileMode); err != nil {
		return "", fmt.Errorf("failed to write SBOM: %w", err)
	}
	return sbomPath, nil
}

func mavenPURL(d entities.Dependency) string {
	return fmt.Sprintf("pkg:maven/%s/%s@%s", d.Group, d.Name, d.Version)
}

// scopeFor maps a dependency configuration to a CycloneDX scope. compileOnly
// dependencies are not packaged into the app.
func scopeFor(configuration string) string {
	if configuration == "compileOnly" {
		return "excluded"
	}
	return "required"
}
