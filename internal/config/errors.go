package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or non-positive duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidEnrichConfigs indicates invalid enrichment settings
	// (for example, a non-positive fetch timeout).
	ErrInvalidEnrichConfigs = errors.New("invalid enrichment configuration")
)
