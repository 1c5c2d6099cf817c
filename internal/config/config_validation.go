// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := cfg.Encryption.validate(); err != nil {
		return err
	}

	if cfg.Workers.RotationInterval <= 0 || cfg.Workers.Concurrency < 1 || cfg.Workers.BatchSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	if models.SecretSourceType(cfg.Encryption.SecretSource) == models.SecretSourceVault && cfg.Vault.Address == "" {
		return fmt.Errorf("%w: VAULT secret source needs a vault address", ErrInvalidVaultConfigs)
	}

	return nil
}

func (e Encryption) validate() error {
	cipherType, err := crypto.ParseCipherType(e.Algorithm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncryptionConfigs, err)
	}

	source := models.SecretSourceType(e.SecretSource)
	if !source.IsValid() {
		return fmt.Errorf("%w: unknown secret source %q", ErrInvalidEncryptionConfigs, e.SecretSource)
	}
	if source == models.SecretSourceNone && cipherType != crypto.CipherNone {
		return fmt.Errorf("%w: %s needs a secret", ErrInvalidEncryptionConfigs, cipherType)
	}
	if source != models.SecretSourceNone && e.SecretData == "" {
		return fmt.Errorf("%w: secret data is empty", ErrInvalidEncryptionConfigs)
	}

	if e.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive", ErrInvalidEncryptionConfigs)
	}

	return nil
}

func (cfg *CLIConfig) validate() error {
	if cfg.ServerAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
