package services

import (
	"errors"
	"testing"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

func testDescriptor() *entities.Descriptor {
	return &entities.Descriptor{
		SigningConfigs: []entities.SigningConfigRef{{Name: "release", PropertiesFile: "key.properties"}},
		BuildTypes: []entities.BuildType{
			{
				Variant:         entities.VariantRelease,
				MinifyEnabled:   true,
				ShrinkResources: true,
				SigningConfig:   "release",
			},
			{Variant: entities.VariantDebug, MinifyEnabled: true},
		},
	}
}

func TestVariantService_Resolve_WithCredentials(t *testing.T) {
	signing := map[string]entities.SigningConfig{
		"release": {
			Name: "release",
			Credentials: &entities.SigningCredentials{
				KeyAlias:      "upload",
				KeyPassword:   "kp",
				StoreFile:     "/keys/upload.jks",
				StorePassword: "sp",
				Source:        "/project/android/key.properties",
			},
		},
	}

	variants, err := NewVariantService().Resolve(testDescriptor(), signing)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(variants) != 2 {
		t.Fatalf("len(variants) = %d, want 2", len(variants))
	}

	release := variants[0]
	if release.Variant != entities.VariantRelease {
		t.Fatalf("variants[0] = %s, want release", release.Variant)
	}
	if !release.Signed || release.SigningSource != "/project/android/key.properties" {
		t.Errorf("release signed=%v source=%q", release.Signed, release.SigningSource)
	}
	if !release.MinifyEnabled || !release.ShrinkResources {
		t.Error("release should minify and shrink resources")
	}
}

func TestVariantService_Resolve_DebugNeverMinifies(t *testing.T) {
	for _, signing := range []map[string]entities.SigningConfig{
		{"release": {Name: "release"}},
		{"release": {Name: "release", Credentials: &entities.SigningCredentials{KeyAlias: "a"}}},
	} {
		variants, err := NewVariantService().Resolve(testDescriptor(), signing)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		debug := variants[1]
		if debug.MinifyEnabled {
			t.Error("debug MinifyEnabled should be false")
		}
		if !debug.UsesDebugKey || !debug.Signed {
			t.Error("debug should be signed with the debug key")
		}
	}
}

func TestVariantService_Resolve_MissingCredentials(t *testing.T) {
	signing := map[string]entities.SigningConfig{"release": {Name: "release"}}

	variants, err := NewVariantService().Resolve(testDescriptor(), signing)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if variants[0].Signed {
		t.Error("release should be unsigned without credentials")
	}
	if variants[0].SigningSource != "" {
		t.Errorf("SigningSource = %q, want empty", variants[0].SigningSource)
	}
}

func TestVariantService_Resolve_UnknownSigningConfig(t *testing.T) {
	_, err := NewVariantService().Resolve(testDescriptor(), map[string]entities.SigningConfig{})
	if !errors.Is(err, ErrUnknownSigningConfig) {
		t.Fatalf("Resolve() error = %v, want ErrUnknownSigningConfig", err)
	}
}

func TestVariantService_Resolve_ImplicitDebug(t *testing.T) {
	desc := &entities.Descriptor{}
	variants, err := NewVariantService().Resolve(desc, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if variants[0].Signed {
		t.Error("release without a signing config should be unsigned")
	}
	if !variants[1].UsesDebugKey {
		t.Error("implicit debug should use the debug key")
	}
}

func TestVariantService_Resolve_ShrinkWithoutMinify(t *testing.T) {
	desc := &entities.Descriptor{
		BuildTypes: []entities.BuildType{
			{Variant: entities.VariantRelease, ShrinkResources: true},
		},
	}

	_, err := NewVariantService().Resolve(desc, nil)
	if !errors.Is(err, ErrShrinkWithoutMinify) {
		t.Fatalf("Resolve() error = %v, want ErrShrinkWithoutMinify", err)
	}
}
