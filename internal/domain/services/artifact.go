package services

import (
	"fmt"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

// abiVersionCodes are the per-ABI multipliers used by the Flutter tool when
// splitting per ABI. The universal package keeps the base version code.
var abiVersionCodes = map[string]int{
	entities.AbiArmeabiV7a: 1,
	entities.AbiArm64V8a:   2,
	entities.AbiX86:        3,
	entities.AbiX8664:      4,
}

// ArtifactService plans the packages the external engine will produce
type ArtifactService struct{}

// NewArtifactService creates a new artifact service
func NewArtifactService() *ArtifactService {
	return &ArtifactService{}
}

// Plan lists the output packages for each variant. With splitting enabled
// that is one package per abi plus, when universal is set, one universal
// package. Without splitting each variant yields a single package.
func (s *ArtifactService) Plan(variants []entities.ResolvedVariant, abis []string, universal bool, version entities.AppVersion) []entities.ArtifactSpec {
	var out []entities.ArtifactSpec

	for _, v := range variants {
		if len(abis) == 0 {
			out = append(out, entities.ArtifactSpec{
				Variant:     v.Variant,
				FileName:    fmt.Sprintf("app-%s.apk", v.Variant),
				VersionCode: version.Code,
				Signed:      v.Signed,
			})
			continue
		}

		for _, abi := range abis {
			out = append(out, entities.ArtifactSpec{
				Variant:     v.Variant,
				Abi:         abi,
				FileName:    FileName(v.Variant, abi),
				VersionCode: SplitVersionCode(abi, version.Code),
				Signed:      v.Signed,
			})
		}

		if universal {
			out = append(out, entities.ArtifactSpec{
				Variant:     v.Variant,
				Universal:   true,
				FileName:    FileName(v.Variant, "universal"),
				VersionCode: version.Code,
				Signed:      v.Signed,
			})
		}
	}

	return out
}

// FileName returns the package file name for a variant and split name
func FileName(variant entities.BuildVariant, split string) string {
	return fmt.Sprintf("app-%s-%s.apk", split, variant)
}

// SplitVersionCode returns abi*1000 + base for a known abi, base otherwise
func SplitVersionCode(abi string, base int) int {
	mult, ok := abiVersionCodes[abi]
	if !ok {
		return base
	}
	return mult*1000 + base
}
