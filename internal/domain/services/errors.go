// Package services implements the domain rules applied to a parsed descriptor.
package services

import "errors"

// Sentinel errors returned by the domain services
var (
	ErrEmptyAbiSet          = errors.New("abi split is enabled but no architectures are included")
	ErrUnknownAbi           = errors.New("unknown abi")
	ErrUnknownSigningConfig = errors.New("unknown signing config")
	ErrReleaseUnsigned      = errors.New("release build has no signing credentials")
	ErrShrinkWithoutMinify  = errors.New("shrink_resources requires minify_enabled")
)
