// Package gateways defines interfaces for collaborators outside the descriptor.
package gateways

import (
	"context"

	"github.com/ochairo/droidspec/internal/domain/entities"
)

// PluginBinding resolves the values the Flutter Gradle plugin exposes
type PluginBinding interface {
	// Resolve reads plugin values for the project. androidDir is the Android
	// root project directory; flutterDir is the Flutter project root.
	Resolve(ctx context.Context, androidDir, flutterDir string) (entities.PluginValues, error)
}

// CredentialsStore loads signing credentials from a properties file
type CredentialsStore interface {
	// LoadCredentials returns nil credentials and a nil error when the
	// file does not exist. storeBase anchors a relative storeFile value.
	LoadCredentials(ctx context.Context, path, storeBase string) (*entities.SigningCredentials, error)
}
