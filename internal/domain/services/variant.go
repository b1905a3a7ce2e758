package services

import (
	"fmt"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

// VariantService settles per-variant flags and signing state
type VariantService struct{}

// NewVariantService creates a new variant service
func NewVariantService() *VariantService {
	return &VariantService{}
}

// Resolve returns one ResolvedVariant per declared build type, debug and
// release always included. Release credentials are only read when the
// referenced signing config was populated.
func (s *VariantService) Resolve(desc *entities.Descriptor, signing map[string]entities.SigningConfig) ([]entities.ResolvedVariant, error) {
	variants := make([]entities.ResolvedVariant, 0, 2)

	for _, v := range []entities.BuildVariant{entities.VariantRelease, entities.VariantDebug} {
		bt, ok := desc.BuildType(v)
		if !ok {
			bt = entities.BuildType{Variant: v}
		}

		resolved, err := s.resolveOne(bt, signing)
		if err != nil {
			return nil, err
		}
		variants = append(variants, resolved)
	}

	return variants, nil
}

func (s *VariantService) resolveOne(bt entities.BuildType, signing map[string]entities.SigningConfig) (entities.ResolvedVariant, error) {
	rv := entities.ResolvedVariant{BuildType: bt}

	if bt.ShrinkResources && !bt.MinifyEnabled {
		return rv, fmt.Errorf("build type %s: %w", bt.Variant, ErrShrinkWithoutMinify)
	}

	if bt.Variant == entities.VariantDebug {
		// debug never minifies, whatever the descriptor says
		rv.MinifyEnabled = false
		rv.ShrinkResources = false
	}

	if bt.SigningConfig == "" {
		// the engine signs debug builds with its own debug keystore
		rv.UsesDebugKey = bt.Variant == entities.VariantDebug
		rv.Signed = rv.UsesDebugKey
		return rv, nil
	}

	sc, ok := signing[bt.SigningConfig]
	if !ok {
		return rv, fmt.Errorf("%w %q referenced by build type %s", ErrUnknownSigningConfig, bt.SigningConfig, bt.Variant)
	}

	if sc.Populated() {
		rv.Signed = true
		rv.SigningSource = sc.Credentials.Source
	}

	return rv, nil
}
