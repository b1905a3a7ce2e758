package hcl

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

// Render writes a resolved descriptor back out as HCL. Plugin-bound values
// appear as the literals they resolved to, so the output is for display only
// and will not parse as a descriptor.
func Render(desc *entities.Descriptor) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	if len(desc.Plugins) > 0 {
		root.SetAttributeValue("plugins", stringList(desc.Plugins))
		root.AppendNewline()
	}

	android := root.AppendNewBlock("android", nil).Body()
	android.SetAttributeValue("namespace", cty.StringVal(desc.Namespace))
	android.SetAttributeValue("compile_sdk", cty.NumberIntVal(int64(desc.Sdk.CompileSdk)))
	if desc.NdkVersion != "" {
		android.SetAttributeValue("ndk_version", cty.StringVal(desc.NdkVersion))
	}

	if desc.CompileOptions != (entities.CompileOptions{}) {
		co := android.AppendNewBlock("compile_options", nil).Body()
		co.SetAttributeValue("source_compatibility", cty.StringVal(desc.CompileOptions.SourceCompatibility))
		co.SetAttributeValue("target_compatibility", cty.StringVal(desc.CompileOptions.TargetCompatibility))
	}
	if desc.Kotlin.JvmTarget != "" {
		android.AppendNewBlock("kotlin", nil).Body().
			SetAttributeValue("jvm_target", cty.StringVal(desc.Kotlin.JvmTarget))
	}

	dc := android.AppendNewBlock("default_config", nil).Body()
	dc.SetAttributeValue("application_id", cty.StringVal(desc.ApplicationID))
	dc.SetAttributeValue("min_sdk", cty.NumberIntVal(int64(desc.Sdk.MinSdk)))
	dc.SetAttributeValue("target_sdk", cty.NumberIntVal(int64(desc.Sdk.TargetSdk)))
	dc.SetAttributeValue("version_code", cty.NumberIntVal(int64(desc.Version.Code)))
	dc.SetAttributeValue("version_name", cty.StringVal(desc.Version.Name))

	for _, sc := range desc.SigningConfigs {
		b := android.AppendNewBlock("signing_config", []string{sc.Name}).Body()
		b.SetAttributeValue("properties_file", cty.StringVal(sc.PropertiesFile))
	}

	for _, bt := range desc.BuildTypes {
		b := android.AppendNewBlock("build_type", []string{string(bt.Variant)}).Body()
		b.SetAttributeValue("minify_enabled", cty.BoolVal(bt.MinifyEnabled))
		if bt.ShrinkResources {
			b.SetAttributeValue("shrink_resources", cty.True)
		}
		if bt.SigningConfig != "" {
			b.SetAttributeValue("signing_config", cty.StringVal(bt.SigningConfig))
		}
		if len(bt.ProguardFiles) > 0 {
			paths := make([]string, 0, len(bt.ProguardFiles))
			for _, pf := range bt.ProguardFiles {
				paths = append(paths, pf.Path)
			}
			b.SetAttributeValue("proguard_files", stringList(paths))
		}
	}

	abi := android.AppendNewBlock("splits", nil).Body().AppendNewBlock("abi", nil).Body()
	abi.SetAttributeValue("enable", cty.BoolVal(desc.AbiSplits.Enabled))
	abi.SetAttributeValue("reset", cty.BoolVal(desc.AbiSplits.Reset))
	abi.SetAttributeValue("include", stringList(desc.AbiSplits.Include))
	abi.SetAttributeValue("universal_apk", cty.BoolVal(desc.AbiSplits.UniversalApk))

	if desc.Kotlin.JvmToolchain != 0 {
		root.AppendNewline()
		root.AppendNewBlock("kotlin", nil).Body().
			SetAttributeValue("jvm_toolchain", cty.NumberIntVal(int64(desc.Kotlin.JvmToolchain)))
	}

	root.AppendNewline()
	root.AppendNewBlock("flutter", nil).Body().SetAttributeValue("source", cty.StringVal(desc.FlutterSource))

	if len(desc.Dependencies) > 0 {
		byConfig := make(map[string][]string)
		var order []string
		for _, d := range desc.Dependencies {
			if _, ok := byConfig[d.Configuration]; !ok {
				order = append(order, d.Configuration)
			}
			byConfig[d.Configuration] = append(byConfig[d.Configuration], d.Coordinate())
		}

		root.AppendNewline()
		deps := root.AppendNewBlock("dependencies", nil).Body()
		for _, c := range order {
			deps.SetAttributeValue(attributeForConfiguration(c), stringList(byConfig[c]))
		}
	}

	return hclwrite.Format(f.Bytes())
}

func attributeForConfiguration(c string) string {
	switch c {
	case "compileOnly":
		return "compile_only"
	case "runtimeOnly":
		return "runtime_only"
	default:
		return c
	}
}

func stringList(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(items))
	for _, s := range items {
		vals = append(vals, cty.StringVal(s))
	}
	return cty.ListVal(vals)
}
