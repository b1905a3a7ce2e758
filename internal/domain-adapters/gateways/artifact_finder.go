package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApkOutputDir is where the build engine leaves split packages, relative to
// the application module
const ApkOutputDir = "build/outputs/apk"

// ArtifactFinder locates packages produced by the build engine
type ArtifactFinder struct{}

// NewArtifactFinder creates a new artifact finder
func NewArtifactFinder() *ArtifactFinder {
	return &ArtifactFinder{}
}

// FindRecursive walks outputDir and returns every app-*.apk below it,
// sorted. Engine metadata such as output-metadata.json is skipped.
func (f *ArtifactFinder) FindRecursive(outputDir string) ([]string, error) {
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("output directory does not exist: %s", outputDir)
	}

	var apks []string
	err := filepath.Walk(outputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		if strings.HasPrefix(base, "app-") && strings.HasSuffix(base, ".apk") {
			apks = append(apks, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(apks)
	return apks, nil
}

// FindByGlob returns the packages of one variant directly inside dir
func (f *ArtifactFinder) FindByGlob(dir, variant string) ([]string, error) {
	pattern := filepath.Join(dir, fmt.Sprintf("app-*%s.apk", variant))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
	}
	return matches, nil
}
