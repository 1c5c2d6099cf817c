package store

import (
	"context"

	"github.com/MKhiriev/go-crypt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// CipherPoolRepository persists cipher pool entries. Entries are never
// changed; the one with the highest id is the latest. Unused old entries
// can be deleted.
type CipherPoolRepository interface {
	// Create inserts entry and returns it with ID and CreatedAt filled in.
	Create(ctx context.Context, entry models.CipherPoolEntry) (models.CipherPoolEntry, error)
	// GetAll returns every entry ordered by id.
	GetAll(ctx context.Context) ([]models.CipherPoolEntry, error)
	GetByID(ctx context.Context, id int64) (models.CipherPoolEntry, error)
	// GetLatest returns the entry with the highest id or [ErrCipherPoolEmpty].
	GetLatest(ctx context.Context) (models.CipherPoolEntry, error)
	// Delete removes the given entries that no record references and
	// returns how many rows went away.
	Delete(ctx context.Context, ids []int64) (int64, error)
}

// ProtectedConfigRepository persists encrypted configuration records.
type ProtectedConfigRepository interface {
	Save(ctx context.Context, config models.ProtectedConfig) (models.ProtectedConfig, error)
	Get(ctx context.Context, id string) (models.ProtectedConfig, error)

	// ListOutdated returns up to limit records encrypted with a pool entry
	// older than latestPoolID whose id sorts after afterID, ordered by id.
	// Records on newer entries belong to instances with a fresher pool.
	ListOutdated(ctx context.Context, latestPoolID int64, afterID string, limit int) ([]models.ProtectedConfig, error)

	// UpdateEncryption replaces the ciphertext, nonce and pool id of record
	// id only if it is still encrypted with expectedPoolID, and bumps its
	// version. Returns [ErrEncryptionConflict] otherwise.
	UpdateEncryption(ctx context.Context, id string, expectedPoolID int64, result models.EncryptionResult) error

	// CountByPool reports how many records reference each pool entry.
	CountByPool(ctx context.Context) ([]models.PoolUsage, error)

	// CountOutdated counts records encrypted with an entry older than
	// latestPoolID.
	CountOutdated(ctx context.Context, latestPoolID int64) (int64, error)
}
