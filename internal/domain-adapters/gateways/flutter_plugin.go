// Package gateways adapts external files and tools to the domain gateway interfaces.
package gateways

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ochairo/droidspec/internal/domain/entities"
	"github.com/ochairo/droidspec/internal/domain/interfaces"
	"github.com/ochairo/droidspec/internal/external-adapters/properties"
	"github.com/ochairo/droidspec/internal/external-adapters/yaml"
)

// Values the Flutter Gradle plugin exports when nothing overrides them
const (
	DefaultCompileSdk  = 36
	DefaultMinSdk      = 24
	DefaultTargetSdk   = 36
	DefaultNdkVersion  = "27.0.12077973"
	DefaultVersionCode = 1
	DefaultVersionName = "1.0"
)

// local.properties keys read by the plugin
const (
	localCompileSdk  = "flutter.compileSdkVersion"
	localMinSdk      = "flutter.minSdkVersion"
	localTargetSdk   = "flutter.targetSdkVersion"
	localNdkVersion  = "flutter.ndkVersion"
	localVersionCode = "flutter.versionCode"
	localVersionName = "flutter.versionName"
	localFlutterSdk  = "flutter.sdk"
)

// Value sources recorded in PluginValues.Sources
const (
	SourcePluginDefault   = "plugin default"
	SourceLocalProperties = "local.properties"
	SourcePubspec         = "pubspec.yaml"
)

// FlutterPlugin resolves the values the Flutter Gradle plugin exposes to
// the application module
type FlutterPlugin struct {
	pubspec *yaml.PubspecParser
	logger  interfaces.Logger
}

// NewFlutterPlugin creates a new plugin binding
func NewFlutterPlugin(logger interfaces.Logger) *FlutterPlugin {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &FlutterPlugin{
		pubspec: yaml.NewPubspecParser(),
		logger:  logger,
	}
}

// Resolve reads local.properties from androidDir and pubspec.yaml from
// flutterDir and layers them over the plugin defaults
func (f *FlutterPlugin) Resolve(_ context.Context, androidDir, flutterDir string) (entities.PluginValues, error) {
	localPath := filepath.Join(androidDir, "local.properties")
	local, err := properties.LoadLocal(localPath)
	if err != nil {
		return entities.PluginValues{}, err
	}

	values := entities.PluginValues{
		Sdk: entities.SdkVersionSet{
			CompileSdk: DefaultCompileSdk,
			MinSdk:     DefaultMinSdk,
			TargetSdk:  DefaultTargetSdk,
		},
		NdkVersion: DefaultNdkVersion,
		Version: entities.AppVersion{
			Code: DefaultVersionCode,
			Name: DefaultVersionName,
		},
		FlutterSdkPath: local[localFlutterSdk],
		Sources: map[string]string{
			"compileSdkVersion": SourcePluginDefault,
			"minSdkVersion":     SourcePluginDefault,
			"targetSdkVersion":  SourcePluginDefault,
			"ndkVersion":        SourcePluginDefault,
			"versionCode":       SourcePluginDefault,
			"versionName":       SourcePluginDefault,
		},
	}

	overrides := []struct {
		key    string
		name   string
		target *int
	}{
		{localCompileSdk, "compileSdkVersion", &values.Sdk.CompileSdk},
		{localMinSdk, "minSdkVersion", &values.Sdk.MinSdk},
		{localTargetSdk, "targetSdkVersion", &values.Sdk.TargetSdk},
	}
	for _, o := range overrides {
		raw, ok := local[o.key]
		if !ok {
			continue
		}
		n, err := positiveInt(raw)
		if err != nil {
			return entities.PluginValues{}, fmt.Errorf("%s: %s: %w", localPath, o.key, err)
		}
		*o.target = n
		values.Sources[o.name] = SourceLocalProperties
	}

	if ndk, ok := local[localNdkVersion]; ok && ndk != "" {
		values.NdkVersion = ndk
		values.Sources["ndkVersion"] = SourceLocalProperties
	}

	if err := f.resolveVersion(&values, local, localPath, flutterDir); err != nil {
		return entities.PluginValues{}, err
	}

	f.logger.Debug("Resolved Flutter plugin values",
		interfaces.F("compile_sdk", values.Sdk.CompileSdk),
		interfaces.F("min_sdk", values.Sdk.MinSdk),
		interfaces.F("target_sdk", values.Sdk.TargetSdk),
		interfaces.F("version_code", values.Version.Code),
		interfaces.F("version_name", values.Version.Name),
	)

	return values, nil
}

// resolveVersion prefers local.properties, which the Flutter tool writes on
// every build, and falls back to pubspec.yaml
func (f *FlutterPlugin) resolveVersion(values *entities.PluginValues, local map[string]string, localPath, flutterDir string) error {
	codeRaw, hasCode := local[localVersionCode]
	name, hasName := local[localVersionName]

	if hasCode {
		code, err := positiveInt(codeRaw)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", localPath, localVersionCode, err)
		}
		values.Version.Code = code
		values.Sources["versionCode"] = SourceLocalProperties
	}
	if hasName && name != "" {
		values.Version.Name = name
		values.Sources["versionName"] = SourceLocalProperties
	}
	if hasCode && hasName {
		return nil
	}

	pubspecPath := filepath.Join(flutterDir, "pubspec.yaml")
	if _, err := os.Stat(pubspecPath); os.IsNotExist(err) {
		f.logger.Debug("No pubspec.yaml, keeping plugin version defaults", interfaces.F("path", pubspecPath))
		return nil
	}

	pub, err := f.pubspec.ParseFile(pubspecPath)
	if err != nil {
		return err
	}
	if !pub.HasVersion {
		return nil
	}

	if !hasName {
		values.Version.Name = pub.VersionName
		values.Sources["versionName"] = SourcePubspec
	}
	if !hasCode && pub.VersionCode > 0 {
		values.Version.Code = pub.VersionCode
		values.Sources["versionCode"] = SourcePubspec
	}

	return nil
}

func positiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}
