// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ochairo/droidspec/internal/domain/entities"
	"github.com/ochairo/droidspec/internal/domain/interfaces"
	"github.com/ochairo/droidspec/internal/domain/interfaces/gateways"
	"github.com/ochairo/droidspec/internal/domain/interfaces/repositories"
	"github.com/ochairo/droidspec/internal/domain/services"
	"github.com/ochairo/droidspec/internal/paths"
)

// DefaultCredentialsFile is used when a signing config names no properties file
const DefaultCredentialsFile = "key.properties"

// PlanWriter persists a resolved build
type PlanWriter interface {
	WritePlan(ctx context.Context, build *entities.ResolvedBuild, outputDir string) (*entities.PlanAttestation, error)
}

// PlanSigner adds a detached signature to a written plan
type PlanSigner interface {
	Sign(ctx context.Context, att *entities.PlanAttestation, keyPath string, passphrase []byte) error
}

// ConfigureOrchestrator evaluates a module's descriptor into a resolved build
type ConfigureOrchestrator struct {
	descriptors repositories.DescriptorRepository
	plugin      gateways.PluginBinding
	credentials gateways.CredentialsStore
	writer      PlanWriter
	signer      PlanSigner
	splits      *services.SplitService
	variants    *services.VariantService
	artifacts   *services.ArtifactService
	config      ConfigureConfig
	logger      interfaces.Logger
}

// ConfigureConfig holds configuration for the orchestrator
type ConfigureConfig struct {
	// RequireSigning turns a release without credentials into an error
	RequireSigning bool
	// WritePlan writes the plan into OutputDir after resolution
	WritePlan bool
	OutputDir string
	// SigningKey signs the written plan when set
	SigningKey        string
	SigningPassphrase []byte
}

// NewConfigureOrchestrator creates a new configure orchestrator. writer and
// signer may be nil when plans are never written or signed.
func NewConfigureOrchestrator(
	descriptors repositories.DescriptorRepository,
	plugin gateways.PluginBinding,
	credentials gateways.CredentialsStore,
	writer PlanWriter,
	signer PlanSigner,
	config ConfigureConfig,
	logger interfaces.Logger,
) *ConfigureOrchestrator {
	if config.OutputDir == "" {
		config.OutputDir = "dist"
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &ConfigureOrchestrator{
		descriptors: descriptors,
		plugin:      plugin,
		credentials: credentials,
		writer:      writer,
		signer:      signer,
		splits:      services.NewSplitService(),
		variants:    services.NewVariantService(),
		artifacts:   services.NewArtifactService(),
		config:      config,
		logger:      logger,
	}
}

// ConfigureResult contains the result of a configure operation
type ConfigureResult struct {
	Build         *entities.ResolvedBuild
	Project       paths.Project
	Attestation   *entities.PlanAttestation
	TotalDuration time.Duration
	Success       bool
	Error         error
}

// Configure evaluates the descriptor of the module in moduleDir once
func (o *ConfigureOrchestrator) Configure(ctx context.Context, moduleDir string) (*ConfigureResult, error) {
	startTime := time.Now()
	result := &ConfigureResult{}

	fail := func(err error) (*ConfigureResult, error) {
		result.Error = err
		result.TotalDuration = time.Since(startTime)
		o.logger.Error("Configuration failed", interfaces.F("module", moduleDir), interfaces.F("error", err))
		return result, err
	}

	// Step 1: Load descriptor
	tmpl, err := o.descriptors.GetDescriptor(ctx, moduleDir)
	if err != nil {
		return fail(fmt.Errorf("failed to load descriptor: %w", err))
	}
	project := paths.ForModule(moduleDir, tmpl.FlutterSource())
	result.Project = project

	// Step 2: Resolve plugin values
	values, err := o.plugin.Resolve(ctx, project.RootDir, project.FlutterDir)
	if err != nil {
		return fail(fmt.Errorf("failed to resolve flutter plugin values: %w", err))
	}

	// Step 3: Bind plugin values into the descriptor
	desc, err := tmpl.Bind(values)
	if err != nil {
		return fail(fmt.Errorf("failed to bind descriptor: %w", err))
	}

	build := &entities.ResolvedBuild{
		Descriptor: desc,
		Plugin:     values,
		Signing:    make(map[string]entities.SigningConfig),
	}

	// Step 4: Load signing credentials
	for _, ref := range desc.SigningConfigs {
		file := ref.PropertiesFile
		if file == "" {
			file = DefaultCredentialsFile
		}
		propsPath := project.RootFile(file)

		creds, err := o.credentials.LoadCredentials(ctx, propsPath, project.ModuleDir)
		if err != nil {
			return fail(fmt.Errorf("signing config %s: %w", ref.Name, err))
		}
		if creds == nil {
			o.logger.Debug("Credentials file absent", interfaces.F("signing_config", ref.Name), interfaces.F("path", propsPath))
		}

		build.Signing[ref.Name] = entities.SigningConfig{
			Name:           ref.Name,
			PropertiesFile: propsPath,
			Credentials:    creds,
		}
	}

	// Step 5: Resolve variants
	variants, err := o.variants.Resolve(desc, build.Signing)
	if err != nil {
		return fail(err)
	}
	build.Variants = variants

	if release, ok := build.Variant(entities.VariantRelease); ok && !release.Signed {
		if o.config.RequireSigning {
			return fail(services.ErrReleaseUnsigned)
		}
		build.Warnings = append(build.Warnings, "release build is unsigned: no signing credentials found")
	}
	if bt, ok := desc.BuildType(entities.VariantDebug); ok && bt.MinifyEnabled {
		build.Warnings = append(build.Warnings, "debug build type sets minify_enabled; debug builds are never minified")
	}
	build.Warnings = append(build.Warnings, o.missingRuleFiles(project, variants)...)

	// Step 6: Resolve abi splits and plan artifacts
	abis, err := o.splits.Resolve(desc.AbiSplits)
	if err != nil {
		return fail(err)
	}
	build.Abis = abis
	build.Artifacts = o.artifacts.Plan(variants, abis, desc.AbiSplits.UniversalApk, desc.Version)

	for _, w := range build.Warnings {
		o.logger.Warn(w)
	}
	result.Build = build

	// Step 7: Write and sign the plan
	if o.config.WritePlan && o.writer != nil {
		att, err := o.writer.WritePlan(ctx, build, o.config.OutputDir)
		if err != nil {
			return fail(fmt.Errorf("failed to write plan: %w", err))
		}
		if o.config.SigningKey != "" && o.signer != nil {
			if err := o.signer.Sign(ctx, att, o.config.SigningKey, o.config.SigningPassphrase); err != nil {
				return fail(fmt.Errorf("failed to sign plan: %w", err))
			}
		}
		result.Attestation = att
		o.logger.Info("Plan written", interfaces.F("path", att.PlanPath), interfaces.F("sha256", att.SHA256))
	}

	o.logger.Info("Configuration resolved",
		interfaces.F("namespace", desc.Namespace),
		interfaces.F("variants", len(variants)),
		interfaces.F("artifacts", len(build.Artifacts)),
	)

	result.Success = true
	result.TotalDuration = time.Since(startTime)
	return result, nil
}

// missingRuleFiles warns about project rule files that do not exist.
// Bundled default files are extracted at build time and are not checked.
func (o *ConfigureOrchestrator) missingRuleFiles(project paths.Project, variants []entities.ResolvedVariant) []string {
	var warnings []string
	for _, v := range variants {
		if !v.MinifyEnabled {
			continue
		}
		for _, pf := range v.ProguardFiles {
			if pf.Default {
				continue
			}
			if _, err := os.Stat(project.ModuleFile(pf.Path)); os.IsNotExist(err) {
				warnings = append(warnings, fmt.Sprintf("%s build: rule file %s not found", v.Variant, pf.Path))
			}
		}
	}
	return warnings
}

// GetSummary returns a human-readable summary of the configuration
func (r *ConfigureResult) GetSummary() string {
	if !r.Success {
		return fmt.Sprintf("Configuration failed: %v", r.Error)
	}

	b := r.Build
	d := b.Descriptor
	summary := fmt.Sprintf(`Configuration resolved!
Application: %s
SDK: compile %d, min %d, target %d
Version: %s (%d)
Packages: %d
Total: %v`,
		d.ApplicationID,
		d.Sdk.CompileSdk, d.Sdk.MinSdk, d.Sdk.TargetSdk,
		d.Version.Name, d.Version.Code,
		len(b.Artifacts),
		r.TotalDuration,
	)

	if release, ok := b.Variant(entities.VariantRelease); ok {
		if release.Signed {
			summary += fmt.Sprintf("\n\nRelease signing: %s", release.SigningSource)
		} else {
			summary += "\n\nRelease signing: NONE (the build engine will reject release packaging)"
		}
	}

	if r.Attestation != nil {
		summary += fmt.Sprintf("\nPlan: %s (sha256 %s)", r.Attestation.PlanPath, r.Attestation.SHA256)
		if r.Attestation.SBOMPath != "" {
			summary += fmt.Sprintf("\nSBOM: %s", r.Attestation.SBOMPath)
		}
		if r.Attestation.SignaturePath != "" {
			summary += fmt.Sprintf("\nSignature: %s (key %s)", r.Attestation.SignaturePath, r.Attestation.SignerKeyID)
		}
	}

	return summary
}
