package services

import (
	"fmt"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

// SplitService applies abi split semantics
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// Resolve returns the effective architecture list for policy.
// The list starts from every known ABI, reset() empties it and include()
// appends to it. Duplicates keep their first position. A disabled policy
// resolves to nil.
func (s *SplitService) Resolve(policy entities.AbiSplitPolicy) ([]string, error) {
	if !policy.Enabled {
		return nil, nil
	}

	var abis []string
	if !policy.Reset {
		abis = append(abis, entities.KnownAbis...)
	}

	seen := make(map[string]bool, len(abis))
	for _, abi := range abis {
		seen[abi] = true
	}

	for _, abi := range policy.Include {
		if !entities.IsKnownAbi(abi) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAbi, abi)
		}
		if seen[abi] {
			continue
		}
		seen[abi] = true
		abis = append(abis, abi)
	}

	if len(abis) == 0 {
		return nil, ErrEmptyAbiSet
	}

	return abis, nil
}
