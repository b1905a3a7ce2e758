package gateways

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArtifactFinder_FindRecursive(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{
		"release/app-arm64-v8a-release.apk",
		"release/app-universal-release.apk",
		"release/output-metadata.json",
		"debug/app-debug.apk",
		"debug/notes.txt",
	} {
		p := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		writeTestFile(t, filepath.Dir(p), filepath.Base(p), "apk")
	}

	got, err := NewArtifactFinder().FindRecursive(dir)
	if err != nil {
		t.Fatalf("FindRecursive() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "debug/app-debug.apk"),
		filepath.Join(dir, "release/app-arm64-v8a-release.apk"),
		filepath.Join(dir, "release/app-universal-release.apk"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindRecursive() mismatch (-want +got):\n%s", diff)
	}
}

func TestArtifactFinder_FindRecursive_MissingDir(t *testing.T) {
	if _, err := NewArtifactFinder().FindRecursive(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("FindRecursive() should fail for a missing directory")
	}
}

func TestArtifactFinder_FindByGlob(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "app-x86_64-release.apk", "apk")
	writeTestFile(t, dir, "app-x86_64-debug.apk", "apk")

	got, err := NewArtifactFinder().FindByGlob(dir, "release")
	if err != nil {
		t.Fatalf("FindByGlob() error = %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "app-x86_64-release.apk" {
		t.Errorf("FindByGlob() = %v", got)
	}
}
