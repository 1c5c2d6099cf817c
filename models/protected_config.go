package models

import "time"

// ProtectedConfig is a configuration blob stored encrypted at rest.
// CipherText and Nonce are base64 text; PoolID points at the
// [CipherPoolEntry] whose cipher produced CipherText.
type ProtectedConfig struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CipherText string    `json:"cipherText"`
	Nonce      string    `json:"nonce"`
	PoolID     int64     `json:"poolId"`
	Version    int64     `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EncryptionResult is what a service hands back after encrypting or
// re-encrypting a value: everything needed to persist the record.
type EncryptionResult struct {
	CipherText BinaryString
	Nonce      BinaryString
	PoolID     int64
}

// StoreConfigRequest is the body of a request to store a new protected
// configuration value.
type StoreConfigRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RevealedConfig is a decrypted configuration value returned to
// authorized callers.
type RevealedConfig struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	PoolID int64  `json:"poolId"`
}
