// Package yaml provides YAML-based parsers for the Flutter pubspec and the
// user configuration file.
package yaml

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pubspec is the subset of pubspec.yaml the build configuration depends on
type Pubspec struct {
	Name               string
	VersionName        string
	VersionCode        int // 0 when the version has no +build suffix
	HasVersion         bool
	DeferredComponents []string
}

// yamlPubspec represents the raw YAML structure
type yamlPubspec struct {
	Name    string      `yaml:"name"`
	Version string      `yaml:"version"`
	Flutter yamlFlutter `yaml:"flutter"`
}

type yamlFlutter struct {
	DeferredComponents []yamlDeferredComponent `yaml:"deferred-components"`
}

type yamlDeferredComponent struct {
	Name string `yaml:"name"`
}

// PubspecParser parses pubspec.yaml files
type PubspecParser struct{}

// NewPubspecParser creates a new pubspec parser
func NewPubspecParser() *PubspecParser {
	return &PubspecParser{}
}

// ParseFile parses a pubspec.yaml file
func (p *PubspecParser) ParseFile(filePath string) (*Pubspec, error) {
	//nolint:gosec // G304: filePath is the pubspec of the Flutter project being configured
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Pubspec
func (p *PubspecParser) Parse(data []byte) (*Pubspec, error) {
	var raw yamlPubspec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if raw.Name == "" {
		return nil, fmt.Errorf("pubspec must have a name")
	}

	pub := &Pubspec{Name: raw.Name}

	if raw.Version != "" {
		name, code, err := SplitVersion(raw.Version)
		if err != nil {
			return nil, err
		}
		pub.VersionName = name
		pub.VersionCode = code
		pub.HasVersion = true
	}

	for _, dc := range raw.Flutter.DeferredComponents {
		if dc.Name != "" {
			pub.DeferredComponents = append(pub.DeferredComponents, dc.Name)
		}
	}

	return pub, nil
}

// SplitVersion splits a pubspec version such as "1.4.2+17" into its
// name ("1.4.2") and build number (17). A missing build number yields 0.
func SplitVersion(version string) (string, int, error) {
	name, build, found := strings.Cut(strings.TrimSpace(version), "+")
	if name == "" {
		return "", 0, fmt.Errorf("invalid version %q", version)
	}
	if !found {
		return name, 0, nil
	}

	code, err := strconv.Atoi(build)
	if err != nil || code < 0 {
		return "", 0, fmt.Errorf("invalid build number in version %q", version)
	}
	return name, code, nil
}
