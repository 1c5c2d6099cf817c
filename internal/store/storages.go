package store

import "github.com/MKhiriev/go-crypt-keeper/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	CipherPoolRepository      CipherPoolRepository
	ProtectedConfigRepository ProtectedConfigRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CipherPoolRepository:      NewCipherPoolRepository(db, log),
		ProtectedConfigRepository: NewProtectedConfigRepository(db, log),
	}
}
