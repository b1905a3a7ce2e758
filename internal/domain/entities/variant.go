package entities

import "fmt"

// BuildVariant names a build configuration profile
type BuildVariant string

// Build variants understood by the descriptor
const (
	VariantRelease BuildVariant = "release"
	VariantDebug   BuildVariant = "debug"
)

// ParseBuildVariant converts a block label to a BuildVariant
func ParseBuildVariant(s string) (BuildVariant, error) {
	switch BuildVariant(s) {
	case VariantRelease, VariantDebug:
		return BuildVariant(s), nil
	default:
		return "", fmt.Errorf("unknown build type %q (expected release or debug)", s)
	}
}

// BuildType is the per-variant configuration declared in the descriptor
type BuildType struct {
	Variant         BuildVariant
	MinifyEnabled   bool
	ShrinkResources bool
	SigningConfig   string // name of a signing config, empty for none
	ProguardFiles   []ProguardFile
}

// ProguardFile is a code-shrinking rule file. Default files ship with the
// Android Gradle plugin and are extracted into the build directory.
type ProguardFile struct {
	Path    string
	Default bool
}

// ResolvedVariant is a build type with its signing state settled
type ResolvedVariant struct {
	BuildType
	Signed        bool
	SigningSource string // properties file the credentials came from
	UsesDebugKey  bool
}
