package entities

// Android ABIs that can appear in a split include list
const (
	AbiArmeabiV7a = "armeabi-v7a"
	AbiArm64V8a   = "arm64-v8a"
	AbiX86        = "x86"
	AbiX8664      = "x86_64"
)

// KnownAbis lists the ABIs in their canonical order. It is also the
// include list a split starts from before reset() is applied.
var KnownAbis = []string{AbiArmeabiV7a, AbiArm64V8a, AbiX86, AbiX8664}

// AbiSplitPolicy controls per-architecture output splitting
type AbiSplitPolicy struct {
	Enabled      bool
	Reset        bool
	Include      []string
	UniversalApk bool
}

// IsKnownAbi reports whether abi is a supported Android ABI
func IsKnownAbi(abi string) bool {
	for _, k := range KnownAbis {
		if k == abi {
			return true
		}
	}
	return false
}
