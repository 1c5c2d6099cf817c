package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [CLIConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEncryptionConfigs indicates an unusable bootstrap pool
	// entry (unknown algorithm or secret source, missing secret data).
	ErrInvalidEncryptionConfigs = errors.New("invalid encryption configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero rotation interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidVaultConfigs indicates that the VAULT secret source is used
	// without a Vault address.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidAdapterConfigs indicates invalid CLI adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
