// Package hcl provides the HCL-based build descriptor parser and repository.
package hcl

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

// ErrLiteralPluginValue is returned when an attribute that must come from the
// Flutter plugin is given any other expression
var ErrLiteralPluginValue = errors.New("value must be a reference to the flutter plugin object")

// PluginObject is the variable name the plugin values are exposed under
const PluginObject = "flutter"

//go:embed app.hcl
var defaultDescriptor []byte

// DefaultDescriptor returns the built-in descriptor source
func DefaultDescriptor() []byte {
	out := make([]byte, len(defaultDescriptor))
	copy(out, defaultDescriptor)
	return out
}

// DescriptorParser parses HCL descriptor files
type DescriptorParser struct{}

// NewDescriptorParser creates a new HCL parser
func NewDescriptorParser() *DescriptorParser {
	return &DescriptorParser{}
}

// ParseFile parses a descriptor file into a Template
func (p *DescriptorParser) ParseFile(filePath string) (*Template, error) {
	//nolint:gosec // G304: filePath is the descriptor path of the module being configured
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data, filePath)
}

// Parse parses HCL bytes into a Template. Plugin-bound attributes are kept
// as expressions until Template.Bind is called.
func (p *DescriptorParser) Parse(data []byte, filename string) (*Template, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	var raw hclFile
	ctx := &hcl.EvalContext{Functions: functions()}
	if diags := gohcl.DecodeBody(file.Body, ctx, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode descriptor: %w", diags)
	}

	base, err := convertStatic(&raw)
	if err != nil {
		return nil, err
	}

	return &Template{filename: filename, raw: &raw, base: base}, nil
}

// Template is a parsed descriptor awaiting plugin values
type Template struct {
	filename string
	raw      *hclFile
	base     entities.Descriptor
}

// FlutterSource returns the flutter block's source path
func (t *Template) FlutterSource() string {
	return t.base.FlutterSource
}

// Filename returns the name the template was parsed from
func (t *Template) Filename() string {
	return t.filename
}

// Bind evaluates the plugin-bound attributes against values
func (t *Template) Bind(values entities.PluginValues) (*entities.Descriptor, error) {
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{PluginObject: pluginObject(values)},
		Functions: functions(),
	}

	desc := t.base
	var err error

	android := t.raw.Android
	if desc.Sdk.CompileSdk, err = bindInt(ctx, "compile_sdk", android.CompileSdk); err != nil {
		return nil, err
	}
	if desc.Sdk.MinSdk, err = bindInt(ctx, "min_sdk", android.DefaultConfig.MinSdk); err != nil {
		return nil, err
	}
	if desc.Sdk.TargetSdk, err = bindInt(ctx, "target_sdk", android.DefaultConfig.TargetSdk); err != nil {
		return nil, err
	}
	if desc.Version.Code, err = bindInt(ctx, "version_code", android.DefaultConfig.VersionCode); err != nil {
		return nil, err
	}
	if desc.Version.Name, err = bindString(ctx, "version_name", android.DefaultConfig.VersionName); err != nil {
		return nil, err
	}
	if !isOmitted(android.NdkVersion) {
		if desc.NdkVersion, err = bindString(ctx, "ndk_version", android.NdkVersion); err != nil {
			return nil, err
		}
	}

	if desc.Sdk.MinSdk > desc.Sdk.TargetSdk {
		return nil, fmt.Errorf("min_sdk %d is greater than target_sdk %d", desc.Sdk.MinSdk, desc.Sdk.TargetSdk)
	}
	if desc.Sdk.TargetSdk > desc.Sdk.CompileSdk {
		return nil, fmt.Errorf("target_sdk %d is greater than compile_sdk %d", desc.Sdk.TargetSdk, desc.Sdk.CompileSdk)
	}

	return &desc, nil
}

func pluginObject(values entities.PluginValues) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"compileSdkVersion": cty.NumberIntVal(int64(values.Sdk.CompileSdk)),
		"minSdkVersion":     cty.NumberIntVal(int64(values.Sdk.MinSdk)),
		"targetSdkVersion":  cty.NumberIntVal(int64(values.Sdk.TargetSdk)),
		"ndkVersion":        cty.StringVal(values.NdkVersion),
		"versionCode":       cty.NumberIntVal(int64(values.Version.Code)),
		"versionName":       cty.StringVal(values.Version.Name),
	})
}

// evalPluginRef evaluates expr after checking it is a plain traversal of
// the plugin object, e.g. flutter.minSdkVersion
func evalPluginRef(ctx *hcl.EvalContext, name string, expr hcl.Expression, want cty.Type) (cty.Value, error) {
	trav, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() || trav.RootName() != PluginObject {
		return cty.NilVal, fmt.Errorf("%s: %s: %w", expr.Range(), name, ErrLiteralPluginValue)
	}

	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("%s: %w", name, diags)
	}

	val, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, fmt.Errorf("%s: %w", name, err)
	}
	if val.IsNull() {
		return cty.NilVal, fmt.Errorf("%s: plugin value is null", name)
	}

	return val, nil
}

func bindInt(ctx *hcl.EvalContext, name string, expr hcl.Expression) (int, error) {
	val, err := evalPluginRef(ctx, name, expr, cty.Number)
	if err != nil {
		return 0, err
	}

	var out int
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func bindString(ctx *hcl.EvalContext, name string, expr hcl.Expression) (string, error) {
	val, err := evalPluginRef(ctx, name, expr, cty.String)
	if err != nil {
		return "", err
	}
	return val.AsString(), nil
}

// isOmitted reports whether expr is the null placeholder gohcl substitutes
// for an absent optional attribute
func isOmitted(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	if len(expr.Variables()) > 0 {
		return false
	}
	val, diags := expr.Value(nil)
	return !diags.HasErrors() && val.IsNull()
}

func convertStatic(raw *hclFile) (entities.Descriptor, error) {
	android := raw.Android

	if strings.TrimSpace(raw.Flutter.Source) == "" {
		return entities.Descriptor{}, fmt.Errorf("flutter block must set source")
	}

	desc := entities.Descriptor{
		Plugins:       raw.Plugins,
		Namespace:     android.Namespace,
		ApplicationID: android.DefaultConfig.ApplicationID,
		FlutterSource: raw.Flutter.Source,
	}

	if android.CompileOptions != nil {
		desc.CompileOptions = entities.CompileOptions{
			SourceCompatibility: android.CompileOptions.SourceCompatibility,
			TargetCompatibility: android.CompileOptions.TargetCompatibility,
		}
	}
	if android.Kotlin != nil {
		desc.Kotlin.JvmTarget = android.Kotlin.JvmTarget
	}
	if raw.Kotlin != nil {
		desc.Kotlin.JvmToolchain = raw.Kotlin.JvmToolchain
	}

	signingNames := make(map[string]bool)
	for _, sc := range android.SigningConfigs {
		if signingNames[sc.Name] {
			return entities.Descriptor{}, fmt.Errorf("signing_config %q declared twice", sc.Name)
		}
		signingNames[sc.Name] = true
		desc.SigningConfigs = append(desc.SigningConfigs, entities.SigningConfigRef{
			Name:           sc.Name,
			PropertiesFile: sc.PropertiesFile,
		})
	}

	seen := make(map[entities.BuildVariant]bool)
	for _, bt := range android.BuildTypes {
		buildType, err := convertBuildType(bt)
		if err != nil {
			return entities.Descriptor{}, err
		}
		if seen[buildType.Variant] {
			return entities.Descriptor{}, fmt.Errorf("build_type %q declared twice", bt.Name)
		}
		seen[buildType.Variant] = true
		desc.BuildTypes = append(desc.BuildTypes, buildType)
	}

	if android.Splits != nil && android.Splits.Abi != nil {
		abi := android.Splits.Abi
		desc.AbiSplits = entities.AbiSplitPolicy{
			Enabled:      abi.Enable,
			Reset:        abi.Reset,
			Include:      abi.Include,
			UniversalApk: abi.UniversalApk,
		}
	}

	deps, err := convertDependencies(raw.Dependencies)
	if err != nil {
		return entities.Descriptor{}, err
	}
	desc.Dependencies = deps

	return desc, nil
}

func convertBuildType(bt *hclBuildType) (entities.BuildType, error) {
	variant, err := entities.ParseBuildVariant(bt.Name)
	if err != nil {
		return entities.BuildType{}, err
	}

	files := make([]entities.ProguardFile, 0, len(bt.ProguardFiles))
	for _, f := range bt.ProguardFiles {
		files = append(files, entities.ProguardFile{Path: f, Default: isDefaultProguardFile(f)})
	}

	return entities.BuildType{
		Variant:         variant,
		MinifyEnabled:   bt.MinifyEnabled,
		ShrinkResources: bt.ShrinkResources,
		SigningConfig:   bt.SigningConfig,
		ProguardFiles:   files,
	}, nil
}

func convertDependencies(hd *hclDependencies) ([]entities.Dependency, error) {
	if hd == nil {
		return nil, nil
	}

	var out []entities.Dependency
	groups := []struct {
		configuration string
		coords        []string
	}{
		{"implementation", hd.Implementation},
		{"api", hd.API},
		{"compileOnly", hd.CompileOnly},
		{"runtimeOnly", hd.RuntimeOnly},
	}

	for _, g := range groups {
		for _, coord := range g.coords {
			parts := strings.Split(coord, ":")
			if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
				return nil, fmt.Errorf("invalid dependency coordinate %q (expected group:name:version)", coord)
			}
			out = append(out, entities.Dependency{
				Configuration: g.configuration,
				Group:         parts[0],
				Name:          parts[1],
				Version:       parts[2],
			})
		}
	}

	return out, nil
}
