// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secret turns the persisted pointer of a cipher pool entry into the
// raw secret bytes. Only the pointer is ever stored; the secret itself lives
// in an environment variable or in HashiCorp Vault.
package secret

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

//go:generate mockgen -source=resolver.go -destination=../mock/secret_mock.go -package=mock

// Resolver resolves a [models.SecretSource] to raw secret bytes.
type Resolver interface {
	Resolve(ctx context.Context, source models.SecretSource) (models.BinaryString, error)
}

// VaultReader reads the base64 value stored at a KV path.
type VaultReader interface {
	ReadSecret(ctx context.Context, path string) (string, error)
}

type resolver struct {
	lookupEnv func(string) (string, bool)
	vault     VaultReader
}

// Option configures the resolver returned by [NewResolver].
type Option func(*resolver)

// WithVault enables the VAULT source.
func WithVault(v VaultReader) Option {
	return func(r *resolver) {
		r.vault = v
	}
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(r *resolver) {
		r.lookupEnv = fn
	}
}

// NewResolver returns a Resolver reading environment variables and, when
// configured with [WithVault], Vault.
func NewResolver(opts ...Option) Resolver {
	r := &resolver{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the raw secret. NONE resolves to an empty secret, which
// only the NONE cipher accepts.
func (r *resolver) Resolve(ctx context.Context, source models.SecretSource) (models.BinaryString, error) {
	log := logger.FromContext(ctx)

	var (
		encoded string
		err     error
	)

	switch source.Type {
	case models.SecretSourceNone:
		return models.NewBinaryString(nil, models.EncodingBase64), nil
	case models.SecretSourceEnvironmentVariable:
		encoded, err = r.fromEnv(source.Data)
	case models.SecretSourceVault:
		encoded, err = r.fromVault(ctx, source.Data)
	default:
		return models.BinaryString{}, fmt.Errorf("%w: %q", ErrUnknownSource, string(source.Type))
	}

	if err != nil {
		log.Err(err).
			Str("func", "resolver.Resolve").
			Str("secret_source", string(source.Type)).
			Str("secret_ref", source.Data).
			Msg("failed to resolve secret")
		return models.BinaryString{}, err
	}

	secret, err := models.ParseBase64(encoded)
	if err != nil {
		return models.BinaryString{}, fmt.Errorf("%w: %s %q", ErrInvalidSecret, source.Type, source.Data)
	}

	return secret, nil
}

func (r *resolver) fromEnv(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: environment variable name is empty", ErrSecretNotFound)
	}

	value, ok := r.lookupEnv(name)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: environment variable %q is not set", ErrSecretNotFound, name)
	}

	return value, nil
}

func (r *resolver) fromVault(ctx context.Context, path string) (string, error) {
	if r.vault == nil {
		return "", ErrVaultNotConfigured
	}
	return r.vault.ReadSecret(ctx, path)
}
