package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ochairo/droidspec/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/droidspec/internal/domain-orchestrators"
	"github.com/ochairo/droidspec/internal/domain/entities"
	"github.com/ochairo/droidspec/internal/domain/services"
)

// CheckOutputsCmd is 'droidspec check-outputs'
type CheckOutputsCmd struct {
	Variant string `arg:"" enum:"release,debug" help:"Build variant to check (release or debug)."`
	Module  string `arg:"" optional:"" default:"." type:"path" help:"Application module directory (android/app)."`
	Outputs string `help:"Directory holding the engine's packages (default <module>/build/outputs/apk)." type:"path" placeholder:"DIR"`
}

// Run fails unless the engine produced exactly the planned packages
func (c *CheckOutputsCmd) Run(ctx context.Context, s *Settings, out io.Writer) error {
	variant, err := entities.ParseBuildVariant(c.Variant)
	if err != nil {
		return err
	}

	result, err := s.orchestrator(orchestrators.ConfigureConfig{}).Configure(ctx, c.Module)
	if err != nil {
		return err
	}

	dir := c.Outputs
	if dir == "" {
		dir = filepath.Join(result.Project.ModuleDir, gateways.ApkOutputDir)
	}
	found, err := gateways.NewArtifactFinder().FindRecursive(dir)
	if err != nil {
		return err
	}

	validation := services.NewOutputService().ValidateOutputs(result.Build.Artifacts, variant, found)
	if !validation.IsReady() {
		return fmt.Errorf("%s", validation.ErrorMessage())
	}

	_, err = fmt.Fprintf(out, "✓ All %d %s packages present\n", len(validation.Expected), variant)
	return err
}
