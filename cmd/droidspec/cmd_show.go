package main

import (
	"context"
	"io"

	orchestrators "github.com/ochairo/droidspec/internal/domain-orchestrators"
	"github.com/ochairo/droidspec/internal/external-adapters/hcl"
)

// ShowCmd is 'droidspec show'
type ShowCmd struct {
	Module string `arg:"" optional:"" default:"." type:"path" help:"Application module directory (android/app)."`
}

// Run prints the descriptor with every plugin reference replaced by its value
func (c *ShowCmd) Run(ctx context.Context, s *Settings, out io.Writer) error {
	result, err := s.orchestrator(orchestrators.ConfigureConfig{}).Configure(ctx, c.Module)
	if err != nil {
		return err
	}

	_, err = out.Write(hcl.Render(result.Build.Descriptor))
	return err
}
