package secret

import "errors"

// Sentinel errors of secret resolution.
var (
	// ErrUnknownSource is returned for a secret source type outside NONE,
	// ENVIRONMENT_VARIABLE and VAULT.
	ErrUnknownSource = errors.New("unknown secret source")

	// ErrSecretNotFound is returned when the variable or Vault entry a
	// source points at is missing or empty.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrInvalidSecret is returned when a resolved secret is not valid
	// base64.
	ErrInvalidSecret = errors.New("secret is not valid base64")

	// ErrVaultNotConfigured is returned when a VAULT source is resolved but
	// no Vault client was configured.
	ErrVaultNotConfigured = errors.New("vault is not configured")

	// ErrVaultUnavailable wraps failures talking to Vault.
	ErrVaultUnavailable = errors.New("vault is unavailable")
)
