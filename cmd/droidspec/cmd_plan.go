package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ochairo/droidspec/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/droidspec/internal/domain-orchestrators"
)

// PlanCmd is 'droidspec plan'
type PlanCmd struct {
	Module         string `arg:"" optional:"" default:"." type:"path" help:"Application module directory (android/app)."`
	Write          bool   `short:"w" help:"Write the plan and its checksum instead of printing it."`
	Output         string `short:"o" help:"Directory the plan is written to (default dist)." placeholder:"DIR"`
	RequireSigning bool   `help:"Fail when the release build has no signing credentials."`
	SignKey        string `help:"Armored private key used to sign the written plan." type:"path" placeholder:"KEY"`
	Passphrase     string `help:"Passphrase of the signing key." env:"DROIDSPEC_SIGNING_PASSPHRASE"`
}

// Run resolves the module and prints the plan, or writes it with --write
func (c *PlanCmd) Run(ctx context.Context, s *Settings, out io.Writer) error {
	config := orchestrators.ConfigureConfig{
		RequireSigning:    c.RequireSigning || s.Config.RequireSigning,
		WritePlan:         c.Write,
		OutputDir:         firstNonEmpty(c.Output, s.Config.OutputDir),
		SigningKey:        firstNonEmpty(c.SignKey, s.Config.SigningKey),
		SigningPassphrase: []byte(c.Passphrase),
	}

	result, err := s.orchestrator(config).Configure(ctx, c.Module)
	if err != nil {
		return err
	}

	if c.Write {
		_, err := fmt.Fprintln(out, result.GetSummary())
		return err
	}

	data, err := gateways.NewPlanWriter().Marshal(result.Build)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
