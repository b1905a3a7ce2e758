package main

import (
	"fmt"
	"log/slog"

	"github.com/ochairo/droidspec/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/droidspec/internal/domain-orchestrators"
	"github.com/ochairo/droidspec/internal/domain/interfaces"
	"github.com/ochairo/droidspec/internal/domain/interfaces/repositories"
	"github.com/ochairo/droidspec/internal/external-adapters/hcl"
	"github.com/ochairo/droidspec/internal/external-adapters/yaml"
)

// CLI is the root command
type CLI struct {
	Globals

	Plan         PlanCmd         `cmd:"" help:"Resolve the descriptor and print or write the build plan."`
	Show         ShowCmd         `cmd:"" help:"Print the effective descriptor with plugin values bound."`
	Validate     ValidateCmd     `cmd:"" help:"Resolve the descriptor and report errors and warnings."`
	Verify       VerifyCmd       `cmd:"" help:"Verify a written plan's checksum and signature."`
	CheckOutputs CheckOutputsCmd `cmd:"" name:"check-outputs" help:"Compare packages produced by the build engine with the plan."`
	Version      VersionCmd      `cmd:"" help:"Show version information."`
}

// Globals are flags shared by every command
type Globals struct {
	Quiet      bool   `short:"q" help:"Only print warnings and errors."`
	Debug      bool   `short:"d" help:"Enable debug output."`
	Config     string `help:"User config file." type:"path" default:"${config_file}" placeholder:"PATH"`
	Descriptor string `help:"Descriptor file inside the module directory (default app.hcl)." placeholder:"FILE"`
	Builtin    bool   `help:"Use the embedded descriptor instead of the module's file."`
}

// Settings are the merged user config and global flags handed to commands
type Settings struct {
	Config     yaml.Config
	Descriptor string
	Builtin    bool
	Logger     interfaces.Logger
}

// load reads the user config file and lets flags override it
func (g Globals) load(logger *slog.Logger) (*Settings, error) {
	loader := yaml.NewConfigLoader(g.Config)
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", loader.Path(), err)
	}
	logger.Debug("loaded config", "path", loader.Path())

	s := &Settings{
		Config:     *cfg,
		Descriptor: cfg.Descriptor,
		Builtin:    g.Builtin,
		Logger:     interfaces.NewSlogLogger(logger),
	}
	if g.Descriptor != "" {
		s.Descriptor = g.Descriptor
	}
	return s, nil
}

func (s *Settings) repository() repositories.DescriptorRepository {
	if s.Builtin {
		return hcl.NewBuiltinRepository()
	}
	return hcl.NewDescriptorRepository(s.Descriptor)
}

// orchestrator wires the adapters into a configure orchestrator
func (s *Settings) orchestrator(config orchestrators.ConfigureConfig) *orchestrators.ConfigureOrchestrator {
	return orchestrators.NewConfigureOrchestrator(
		s.repository(),
		gateways.NewFlutterPlugin(s.Logger),
		gateways.NewCredentialsStore(),
		gateways.NewPlanWriter(),
		gateways.NewPlanAttestor(),
		config,
		s.Logger,
	)
}
