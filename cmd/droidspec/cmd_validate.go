package main

import (
	"context"
	"fmt"
	"io"

	orchestrators "github.com/ochairo/droidspec/internal/domain-orchestrators"
)

// ValidateCmd is 'droidspec validate'
type ValidateCmd struct {
	Module         string `arg:"" optional:"" default:"." type:"path" help:"Application module directory (android/app)."`
	RequireSigning bool   `help:"Fail when the release build has no signing credentials."`
	Strict         bool   `help:"Treat warnings as errors."`
}

// Run exits non-zero when the descriptor cannot be resolved
func (c *ValidateCmd) Run(ctx context.Context, s *Settings, out io.Writer) error {
	config := orchestrators.ConfigureConfig{
		RequireSigning: c.RequireSigning || s.Config.RequireSigning,
	}

	result, err := s.orchestrator(config).Configure(ctx, c.Module)
	if err != nil {
		return err
	}

	for _, w := range result.Build.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if c.Strict && len(result.Build.Warnings) > 0 {
		return fmt.Errorf("%d warning(s) in strict mode", len(result.Build.Warnings))
	}

	_, err = fmt.Fprintf(out, "%s: ok (%d packages planned)\n", result.Build.Descriptor.ApplicationID, len(result.Build.Artifacts))
	return err
}
