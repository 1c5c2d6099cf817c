// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SecretSourceType tells the secret resolver where the raw secret of a
// cipher pool entry lives. Only the indirection is persisted, never the
// secret itself.
type SecretSourceType string

const (
	// SecretSourceNone means the pool entry has no secret. Only valid for the
	// NONE cipher.
	SecretSourceNone SecretSourceType = "NONE"

	// SecretSourceEnvironmentVariable means Data holds the name of an
	// environment variable whose value is the base64 encoded secret.
	SecretSourceEnvironmentVariable SecretSourceType = "ENVIRONMENT_VARIABLE"

	// SecretSourceVault means Data holds a KV v2 path in HashiCorp Vault whose
	// "value" field is the base64 encoded secret.
	SecretSourceVault SecretSourceType = "VAULT"
)

// IsValid reports whether t is a known source type.
func (t SecretSourceType) IsValid() bool {
	switch t {
	case SecretSourceNone, SecretSourceEnvironmentVariable, SecretSourceVault:
		return true
	}
	return false
}

// SecretSource is a persisted pointer to a secret.
type SecretSource struct {
	Type SecretSourceType `json:"type"`
	Data string           `json:"data,omitempty"`
}

// CipherPoolEntry is one row of the cipher pool. Every protected record
// references the entry it was encrypted with; the entry with the highest
// ID is the latest one and is used for all new encryptions.
//
// TestText, TestNonce and TestCipherText hold a self-test sample encrypted
// when the entry was created. It lets any node prove it resolved the same
// secret before using the entry.
type CipherPoolEntry struct {
	ID int64 `json:"id"`

	Algorithm    string       `json:"algorithm"`
	SecretSource SecretSource `json:"secretSource"`

	TestText       string `json:"testText"`
	TestNonce      string `json:"testNonce"`
	TestCipherText string `json:"testCipherText"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
}
