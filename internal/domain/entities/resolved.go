package entities

// ResolvedBuild is the outcome of evaluating the descriptor once
type ResolvedBuild struct {
	Descriptor *Descriptor
	Plugin     PluginValues
	Signing    map[string]SigningConfig
	Variants   []ResolvedVariant
	Abis       []string
	Artifacts  []ArtifactSpec
	Warnings   []string
}

// Variant returns the resolved variant, if present
func (r *ResolvedBuild) Variant(v BuildVariant) (ResolvedVariant, bool) {
	for _, rv := range r.Variants {
		if rv.Variant == v {
			return rv, true
		}
	}
	return ResolvedVariant{}, false
}
