package service

import (
	"context"

	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EncryptionService keeps the cipher pool in memory and performs every
// encryption of protected data.
type EncryptionService interface {
	// Refresh reloads the pool from the database. Entries that were already
	// loaded are kept; new ones are resolved and self-tested.
	Refresh(ctx context.Context) error

	// LatestPoolID is the id of the newest usable pool entry, 0 if none.
	LatestPoolID() int64
	// IsOutdated reports whether the database holds a newer entry than
	// LatestPoolID.
	IsOutdated() bool
	// Forget drops deleted pool entries from the cache.
	Forget(ids []int64)

	EncryptWithLatest(ctx context.Context, plainText string) (models.EncryptionResult, error)
	Decrypt(ctx context.Context, cipherText, nonce models.BinaryString, poolID int64) (string, error)

	// RotateEncryption re-encrypts a value written with oldPoolID under the
	// latest pool entry and a fresh nonce.
	RotateEncryption(ctx context.Context, cipherText, nonce models.BinaryString, oldPoolID int64) (models.EncryptionResult, error)
}

type CipherPoolService interface {
	// CreatePoolEntry resolves the requested secret, self-tests the cipher
	// and appends a new latest entry to the pool.
	CreatePoolEntry(ctx context.Context, req models.RotationRequest) (models.CipherPoolEntry, error)

	// Bootstrap creates the first pool entry from cfg when the pool is
	// empty and returns the latest entry otherwise.
	Bootstrap(ctx context.Context, cfg config.Encryption) (models.CipherPoolEntry, error)

	GetAll(ctx context.Context) ([]models.CipherPoolEntry, error)

	// CleanupUnused deletes pool entries other than the latest that no
	// record uses anymore and returns their ids. It does nothing while this
	// instance does not know the latest entry of the database.
	CleanupUnused(ctx context.Context) ([]int64, error)
}

type RotationService interface {
	// StartRotation creates a pool entry for req and migrates all records
	// to it in the background.
	StartRotation(ctx context.Context, req models.RotationRequest) (models.RotationAccepted, error)

	// RotateOutdated runs one campaign synchronously.
	RotateOutdated(ctx context.Context) (models.RotationReport, error)

	Status(ctx context.Context) (models.EncryptionStatus, error)

	// Wait blocks until a campaign started by StartRotation is done.
	Wait()
}

type ProtectedConfigService interface {
	Store(ctx context.Context, req models.StoreConfigRequest) (models.ProtectedConfig, error)
	Reveal(ctx context.Context, id string) (models.RevealedConfig, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthService mints and checks operator tokens for the admin API.
type AuthService interface {
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
