package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

// OutputStatus represents how produced packages compare to the plan
type OutputStatus string

// Output validation statuses
const (
	StatusReady               OutputStatus = "ready"
	StatusNoArtifacts         OutputStatus = "no_artifacts"
	StatusMissingArtifacts    OutputStatus = "missing_artifacts"
	StatusUnexpectedArtifacts OutputStatus = "unexpected_artifacts"
)

// OutputValidation contains the result of checking an output directory
type OutputValidation struct {
	Status              OutputStatus
	Variant             entities.BuildVariant
	Expected            []string
	Available           []string
	MissingArtifacts    []string
	UnexpectedArtifacts []string
}

// IsReady returns true if every planned package is present and nothing else
func (ov *OutputValidation) IsReady() bool {
	return ov.Status == StatusReady
}

// ErrorMessage returns a human-readable error message if not ready
func (ov *OutputValidation) ErrorMessage() string {
	switch ov.Status {
	case StatusReady:
		return ""
	case StatusNoArtifacts:
		return fmt.Sprintf("No %s packages found (expected: %d)", ov.Variant, len(ov.Expected))
	case StatusMissingArtifacts:
		msg := fmt.Sprintf("Package count mismatch (expected: %d, have: %d)", len(ov.Expected), len(ov.Available))
		msg += fmt.Sprintf("\n   Missing: %s", strings.Join(ov.MissingArtifacts, ", "))
		if len(ov.UnexpectedArtifacts) > 0 {
			msg += fmt.Sprintf("\n   Unexpected: %s", strings.Join(ov.UnexpectedArtifacts, ", "))
		}
		return msg
	case StatusUnexpectedArtifacts:
		return fmt.Sprintf("Unexpected packages found: %s", strings.Join(ov.UnexpectedArtifacts, ", "))
	default:
		return "Unknown status"
	}
}

// OutputService compares engine output against the artifact plan
type OutputService struct{}

// NewOutputService creates a new output service
func NewOutputService() *OutputService {
	return &OutputService{}
}

// ValidateOutputs checks that the .apk files among paths match the plan for
// variant. Files belonging to other variants are ignored.
func (s *OutputService) ValidateOutputs(plan []entities.ArtifactSpec, variant entities.BuildVariant, paths []string) *OutputValidation {
	validation := &OutputValidation{Variant: variant}

	expectedSet := make(map[string]bool)
	for _, a := range plan {
		if a.Variant == variant {
			validation.Expected = append(validation.Expected, a.FileName)
			expectedSet[a.FileName] = true
		}
	}

	suffix := "-" + string(variant) + ".apk"
	availableSet := make(map[string]bool)
	for _, p := range paths {
		base := filepath.Base(p)
		if !strings.HasPrefix(base, "app-") || !strings.HasSuffix(base, suffix) {
			continue
		}
		if availableSet[base] {
			continue
		}
		availableSet[base] = true
		validation.Available = append(validation.Available, base)
	}

	for _, name := range validation.Expected {
		if !availableSet[name] {
			validation.MissingArtifacts = append(validation.MissingArtifacts, name)
		}
	}
	for _, name := range validation.Available {
		if !expectedSet[name] {
			validation.UnexpectedArtifacts = append(validation.UnexpectedArtifacts, name)
		}
	}

	switch {
	case len(validation.Available) == 0:
		validation.Status = StatusNoArtifacts
	case len(validation.MissingArtifacts) > 0:
		validation.Status = StatusMissingArtifacts
	case len(validation.UnexpectedArtifacts) > 0:
		validation.Status = StatusUnexpectedArtifacts
	default:
		validation.Status = StatusReady
	}

	return validation
}
