package hcl

import "github.com/hashicorp/hcl/v2"

// hclFile is the top-level structure of a descriptor file
type hclFile struct {
	Plugins      []string         `hcl:"plugins,optional"`
	Android      hclAndroid       `hcl:"android,block"`
	Kotlin       *hclToolchain    `hcl:"kotlin,block"`
	Flutter      hclFlutter       `hcl:"flutter,block"`
	Dependencies *hclDependencies `hcl:"dependencies,block"`
}

type hclAndroid struct {
	Namespace      string              `hcl:"namespace"`
	CompileSdk     hcl.Expression      `hcl:"compile_sdk"`
	NdkVersion     hcl.Expression      `hcl:"ndk_version,optional"`
	CompileOptions *hclCompileOptions  `hcl:"compile_options,block"`
	Kotlin         *hclKotlinOptions   `hcl:"kotlin,block"`
	DefaultConfig  hclDefaultConfig    `hcl:"default_config,block"`
	SigningConfigs []*hclSigningConfig `hcl:"signing_config,block"`
	BuildTypes     []*hclBuildType     `hcl:"build_type,block"`
	Splits         *hclSplits          `hcl:"splits,block"`
}

type hclCompileOptions struct {
	SourceCompatibility string `hcl:"source_compatibility,optional"`
	TargetCompatibility string `hcl:"target_compatibility,optional"`
}

type hclKotlinOptions struct {
	JvmTarget string `hcl:"jvm_target,optional"`
}

type hclToolchain struct {
	JvmToolchain int `hcl:"jvm_toolchain,optional"`
}

type hclDefaultConfig struct {
	ApplicationID string         `hcl:"application_id"`
	MinSdk        hcl.Expression `hcl:"min_sdk"`
	TargetSdk     hcl.Expression `hcl:"target_sdk"`
	VersionCode   hcl.Expression `hcl:"version_code"`
	VersionName   hcl.Expression `hcl:"version_name"`
}

type hclSigningConfig struct {
	Name           string `hcl:"name,label"`
	PropertiesFile string `hcl:"properties_file,optional"`
}

type hclBuildType struct {
	Name            string   `hcl:"name,label"`
	MinifyEnabled   bool     `hcl:"minify_enabled,optional"`
	ShrinkResources bool     `hcl:"shrink_resources,optional"`
	SigningConfig   string   `hcl:"signing_config,optional"`
	ProguardFiles   []string `hcl:"proguard_files,optional"`
}

type hclSplits struct {
	Abi *hclAbiSplit `hcl:"abi,block"`
}

type hclAbiSplit struct {
	Enable       bool     `hcl:"enable,optional"`
	Reset        bool     `hcl:"reset,optional"`
	Include      []string `hcl:"include,optional"`
	UniversalApk bool     `hcl:"universal_apk,optional"`
}

type hclFlutter struct {
	Source string `hcl:"source"`
}

type hclDependencies struct {
	Implementation []string `hcl:"implementation,optional"`
	API            []string `hcl:"api,optional"`
	CompileOnly    []string `hcl:"compile_only,optional"`
	RuntimeOnly    []string `hcl:"runtime_only,optional"`
}
