package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults for the CLI. Flags override every field.
type Config struct {
	Descriptor     string `yaml:"descriptor"`
	OutputDir      string `yaml:"output_dir"`
	RequireSigning bool   `yaml:"require_signing"`
	SigningKey     string `yaml:"signing_key"`
	VerifyKey      string `yaml:"verify_key"`
}

// ConfigLoader reads the user configuration file
type ConfigLoader struct {
	path string
}

// NewConfigLoader creates a loader for the config file at path
func NewConfigLoader(path string) *ConfigLoader {
	return &ConfigLoader{path: path}
}

// Path returns the file the loader reads
func (l *ConfigLoader) Path() string {
	return l.path
}

// Load reads the config file. A missing file yields the zero Config.
func (l *ConfigLoader) Load() (*Config, error) {
	//nolint:gosec // G304: path is the user's own config file
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", l.path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", l.path, err)
	}

	return &cfg, nil
}
