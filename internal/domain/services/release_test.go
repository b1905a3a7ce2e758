package services

import (
	"testing"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

func releasePlan() []entities.ArtifactSpec {
	variants := []entities.ResolvedVariant{
		{BuildType: entities.BuildType{Variant: entities.VariantRelease}, Signed: true},
		{BuildType: entities.BuildType{Variant: entities.VariantDebug}, Signed: true},
	}
	abis := []string{entities.AbiArmeabiV7a, entities.AbiArm64V8a, entities.AbiX8664}
	return NewArtifactService().Plan(variants, abis, true, entities.AppVersion{Code: 7, Name: "1.0.7"})
}

func TestValidateOutputs(t *testing.T) {
	tests := []struct {
		name               string
		paths              []string
		expectedStatus     OutputStatus
		expectedReady      bool
		expectedMissing    int
		expectedUnexpected int
	}{
		{
			name: "all packages present - ready",
			paths: []string{
				"build/app/outputs/flutter-apk/app-armeabi-v7a-release.apk",
				"build/app/outputs/flutter-apk/app-arm64-v8a-release.apk",
				"build/app/outputs/flutter-apk/app-x86_64-release.apk",
				"build/app/outputs/flutter-apk/app-universal-release.apk",
				"build/app/outputs/flutter-apk/app-universal-release.apk.sha1",
			},
			expectedStatus: StatusReady,
			expectedReady:  true,
		},
		{
			name:            "no packages",
			paths:           []string{},
			expectedStatus:  StatusNoArtifacts,
			expectedMissing: 4,
		},
		{
			name: "debug packages are ignored",
			paths: []string{
				"app-arm64-v8a-debug.apk",
				"app-universal-debug.apk",
			},
			expectedStatus:  StatusNoArtifacts,
			expectedMissing: 4,
		},
		{
			name: "universal missing",
			paths: []string{
				"app-armeabi-v7a-release.apk",
				"app-arm64-v8a-release.apk",
				"app-x86_64-release.apk",
			},
			expectedStatus:  StatusMissingArtifacts,
			expectedMissing: 1,
		},
		{
			name: "extra x86 package",
			paths: []string{
				"app-armeabi-v7a-release.apk",
				"app-arm64-v8a-release.apk",
				"app-x86_64-release.apk",
				"app-x86-release.apk",
				"app-universal-release.apk",
			},
			expectedStatus:     StatusUnexpectedArtifacts,
			expectedUnexpected: 1,
		},
	}

	service := NewOutputService()
	plan := releasePlan()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.ValidateOutputs(plan, entities.VariantRelease, tt.paths)

			if result.Status != tt.expectedStatus {
				t.Errorf("Status = %v, want %v", result.Status, tt.expectedStatus)
			}
			if result.IsReady() != tt.expectedReady {
				t.Errorf("IsReady() = %v, want %v", result.IsReady(), tt.expectedReady)
			}
			if len(result.MissingArtifacts) != tt.expectedMissing {
				t.Errorf("MissingArtifacts = %v, want %d entries", result.MissingArtifacts, tt.expectedMissing)
			}
			if len(result.UnexpectedArtifacts) != tt.expectedUnexpected {
				t.Errorf("UnexpectedArtifacts = %v, want %d entries", result.UnexpectedArtifacts, tt.expectedUnexpected)
			}
			if tt.expectedReady && result.ErrorMessage() != "" {
				t.Errorf("ErrorMessage() = %q, want empty", result.ErrorMessage())
			}
			if !tt.expectedReady && result.ErrorMessage() == "" {
				t.Error("ErrorMessage() should not be empty")
			}
		})
	}
}
