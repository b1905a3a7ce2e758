package entities

// Descriptor is the build configuration of the Android application module
// after every plugin-bound value has been resolved.
type Descriptor struct {
	Plugins        []string
	Namespace      string
	ApplicationID  string
	Sdk            SdkVersionSet
	Version        AppVersion
	NdkVersion     string
	CompileOptions CompileOptions
	Kotlin         KotlinOptions
	SigningConfigs []SigningConfigRef
	BuildTypes     []BuildType
	AbiSplits      AbiSplitPolicy
	FlutterSource  string
	Dependencies   []Dependency
}

// CompileOptions holds the Java language level for sources and bytecode
type CompileOptions struct {
	SourceCompatibility string
	TargetCompatibility string
}

// KotlinOptions holds the Kotlin compiler target and the JVM toolchain version
type KotlinOptions struct {
	JvmTarget    string
	JvmToolchain int
}

// Dependency is a declared library coordinate, e.g. "group:name:version"
type Dependency struct {
	Configuration string // "implementation", "api", ...
	Group         string
	Name          string
	Version       string
}

// Coordinate returns the dependency in group:name:version notation
func (d Dependency) Coordinate() string {
	return d.Group + ":" + d.Name + ":" + d.Version
}

// BuildType returns the build type declared for the variant, if any
func (d *Descriptor) BuildType(variant BuildVariant) (BuildType, bool) {
	for _, bt := range d.BuildTypes {
		if bt.Variant == variant {
			return bt, true
		}
	}
	return BuildType{}, false
}

// SigningConfig returns the signing config declared under name, if any
func (d *Descriptor) SigningConfig(name string) (SigningConfigRef, bool) {
	for _, sc := range d.SigningConfigs {
		if sc.Name == name {
			return sc, true
		}
	}
	return SigningConfigRef{}, false
}
