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

// PlanFileName is the name of the serialized plan inside the output directory
const PlanFileName = "build-plan.json"

const redacted = "********"

// PlanDocument is the JSON form of a resolved build. Passwords never appear
// in it.
type PlanDocument struct {
	Namespace     string            `json:"namespace"`
	ApplicationID string            `json:"application_id"`
	CompileSdk    int               `json:"compile_sdk"`
	MinSdk        int               `json:"min_sdk"`
	TargetSdk     int               `json:"target_sdk"`
	VersionCode   int               `json:"version_code"`
	VersionName   string            `json:"version_name"`
	NdkVersion    string            `json:"ndk_version,omitempty"`
	PluginSources map[string]string `json:"plugin_sources,omitempty"`
	Signing       []SigningDocument `json:"signing"`
	Variants      []VariantDocument `json:"variants"`
	Abis          []string          `json:"abis,omitempty"`
	UniversalApk  bool              `json:"universal_apk"`
	Artifacts     []ArtifactDoc     `json:"artifacts"`
	Dependencies  []string          `json:"dependencies,omitempty"`
	Warnings      []string          `json:"warnings,omitempty"`
	GeneratedAt   time.Time         `json:"generated_at"`
}

// SigningDocument describes a signing config without its secrets
type SigningDocument struct {
	Name           string `json:"name"`
	PropertiesFile string `json:"properties_file"`
	Populated      bool   `json:"populated"`
	KeyAlias       string `json:"key_alias,omitempty"`
	StoreFile      string `json:"store_file,omitempty"`
	KeyPassword    string `json:"key_password,omitempty"`
	StorePassword  string `json:"store_password,omitempty"`
}

// VariantDocument describes a resolved build variant
type VariantDocument struct {
	Name            string   `json:"name"`
	MinifyEnabled   bool     `json:"minify_enabled"`
	ShrinkResources bool     `json:"shrink_resources"`
	SigningConfig   string   `json:"signing_config,omitempty"`
	Signed          bool     `json:"signed"`
	DebugKey        bool     `json:"debug_key,omitempty"`
	ProguardFiles   []string `json:"proguard_files,omitempty"`
}

// ArtifactDoc describes one planned output package
type ArtifactDoc struct {
	Variant     string `json:"variant"`
	Abi         string `json:"abi,omitempty"`
	Universal   bool   `json:"universal,omitempty"`
	FileName    string `json:"file_name"`
	VersionCode int    `json:"version_code"`
	Signed      bool   `json:"signed"`
}

// NewPlanDocument converts a resolved build into its JSON form
func NewPlanDocument(build *entities.ResolvedBuild, now time.Time) *PlanDocument {
	desc := build.Descriptor
	doc := &PlanDocument{
		Namespace:     desc.Namespace,
		ApplicationID: desc.ApplicationID,
		CompileSdk:    desc.Sdk.CompileSdk,
		MinSdk:        desc.Sdk.MinSdk,
		TargetSdk:     desc.Sdk.TargetSdk,
		VersionCode:   desc.Version.Code,
		VersionName:   desc.Version.Name,
		NdkVersion:    desc.NdkVersion,
		PluginSources: build.Plugin.Sources,
		Abis:          build.Abis,
		UniversalApk:  desc.AbiSplits.Enabled && desc.AbiSplits.UniversalApk,
		Warnings:      build.Warnings,
		GeneratedAt:   now.UTC(),
	}

	for _, ref := range desc.SigningConfigs {
		sd := SigningDocument{Name: ref.Name, PropertiesFile: ref.PropertiesFile}
		if sc, ok := build.Signing[ref.Name]; ok {
			sd.PropertiesFile = sc.PropertiesFile
			if sc.Populated() {
				sd.Populated = true
				sd.KeyAlias = sc.Credentials.KeyAlias
				sd.StoreFile = sc.Credentials.StoreFile
				sd.KeyPassword = mask(sc.Credentials.KeyPassword)
				sd.StorePassword = mask(sc.Credentials.StorePassword)
			}
		}
		doc.Signing = append(doc.Signing, sd)
	}

	for _, v := range build.Variants {
		vd := VariantDocument{
			Name:            string(v.Variant),
			MinifyEnabled:   v.MinifyEnabled,
			ShrinkResources: v.ShrinkResources,
			SigningConfig:   v.SigningConfig,
			Signed:          v.Signed,
			DebugKey:        v.UsesDebugKey,
		}
		for _, pf := range v.ProguardFiles {
			vd.ProguardFiles = append(vd.ProguardFiles, pf.Path)
		}
		doc.Variants = append(doc.Variants, vd)
	}

	for _, a := range build.Artifacts {
		doc.Artifacts = append(doc.Artifacts, ArtifactDoc{
			Variant:     string(a.Variant),
			Abi:         a.Abi,
			Universal:   a.Universal,
			FileName:    a.FileName,
			VersionCode: a.VersionCode,
			Signed:      a.Signed,
		})
	}

	for _, d := range desc.Dependencies {
		doc.Dependencies = append(doc.Dependencies, d.Configuration+" "+d.Coordinate())
	}

	return doc
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return redacted
}

// PlanWriter writes plan documents and their checksums
type PlanWriter struct {
	checksums *checksumVerifier
	sbom      *sbomGenerator
	now       func() time.Time
}

// NewPlanWriter creates a new plan writer
func NewPlanWriter() *PlanWriter {
	return &PlanWriter{
		checksums: NewChecksumVerifier(),
		sbom:      NewSBOMGenerator(),
		now:       time.Now,
	}
}

// Marshal renders the plan as indented JSON
func (w *PlanWriter) Marshal(build *entities.ResolvedBuild) ([]byte, error) {
	data, err := json.MarshalIndent(NewPlanDocument(build, w.now()), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	return append(data, '\n'), nil
}

// WritePlan writes build-plan.json, build-plan.json.sha256 and the
// dependency SBOM into outputDir
func (w *PlanWriter) WritePlan(ctx context.Context, build *entities.ResolvedBuild, outputDir string) (*entities.PlanAttestation, error) {
	if outputDir == "" {
		outputDir = "dist"
	}
	if err := os.MkdirAll(outputDir, paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := w.Marshal(build)
	if err != nil {
		return nil, err
	}

	planPath := filepath.Join(outputDir, PlanFileName)
	if err := os.WriteFile(planPath, data, paths.DefaultFileMode); err != nil {
		return nil, fmt.Errorf("failed to write plan: %w", err)
	}

	sum, err := w.checksums.WriteChecksumFile(planPath)
	if err != nil {
		return nil, err
	}

	sbomPath, err := w.sbom.WriteSBOM(ctx, build, outputDir)
	if err != nil {
		return nil, err
	}

	return &entities.PlanAttestation{
		PlanPath:  planPath,
		SHA256:    sum,
		SBOMPath:  sbomPath,
		Timestamp: w.now().UTC(),
	}, nil
}
