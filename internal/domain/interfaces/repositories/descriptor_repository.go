// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

// DescriptorTemplate is a parsed descriptor whose plugin-bound attributes
// have not been evaluated yet
type DescriptorTemplate interface {
	// FlutterSource returns the Flutter project root declared in the
	// flutter block, relative to the application module directory
	FlutterSource() string

	// Bind evaluates plugin-bound attributes against values and returns the
	// fully resolved descriptor
	Bind(values entities.PluginValues) (*entities.Descriptor, error)
}

// DescriptorRepository defines the interface for accessing build descriptors
type DescriptorRepository interface {
	// GetDescriptor loads the descriptor of the application module in moduleDir
	GetDescriptor(ctx context.Context, moduleDir string) (DescriptorTemplate, error)
}
