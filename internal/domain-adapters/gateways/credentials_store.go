package gateways

import (
	"context"

	"github.com/ochairo/droidspec/internal/domain/entities"
	"github.com/ochairo/droidspec/internal/external-adapters/properties"
)

// credentialsStore reads signing credentials from .properties files
type credentialsStore struct{}

// NewCredentialsStore creates a new credentials store
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewCredentialsStore() *credentialsStore {
	return &credentialsStore{}
}

// LoadCredentials returns nil credentials when path does not exist
func (s *credentialsStore) LoadCredentials(_ context.Context, path, storeBase string) (*entities.SigningCredentials, error) {
	return properties.LoadCredentials(path, storeBase)
}
