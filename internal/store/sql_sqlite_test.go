// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keeper.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// existing file is left alone
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, createLocalDBFileIfNotExists(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(b))

	assert.NoError(t, createLocalDBFileIfNotExists(":memory:"))
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

// TestSQLite_RotationRoundTrip runs the repositories against a real SQLite
// file migrated with the embedded schema.
func TestSQLite_RotationRoundTrip(t *testing.T) {
	ctx := testContext()
	cfg := config.DB{DSN: filepath.Join(t.TempDir(), "keeper.db"), Driver: config.DriverSQLite}

	db, err := NewConnect(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.Equal(t, config.DriverSQLite, db.Driver())
	require.NoError(t, db.Migrate())

	storages := NewStorages(db, logger.Nop())
	pools := storages.CipherPoolRepository
	configs := storages.ProtectedConfigRepository

	_, err = pools.GetLatest(ctx)
	require.ErrorIs(t, err, ErrCipherPoolEmpty)

	first, err := pools.Create(ctx, models.CipherPoolEntry{
		Algorithm:    "NONE",
		SecretSource: models.SecretSource{Type: models.SecretSourceNone},
		TestText:     "t", TestNonce: "n", TestCipherText: "t",
	})
	require.NoError(t, err)
	second, err := pools.Create(ctx, models.CipherPoolEntry{
		Algorithm:    "AES_GCM_SIV_128",
		SecretSource: models.SecretSource{Type: models.SecretSourceEnvironmentVariable, Data: "K"},
		TestText:     "t", TestNonce: "n", TestCipherText: "c",
		CreatedBy: "admin",
	})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	latest, err := pools.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, "admin", latest.CreatedBy)
	assert.WithinDuration(t, second.CreatedAt, latest.CreatedAt, time.Millisecond)

	for _, id := range []string{"a", "b", "c"} {
		_, err = configs.Save(ctx, models.ProtectedConfig{
			ID: id, Name: "cfg-" + id, CipherText: "plain-" + id, Nonce: "n", PoolID: first.ID,
		})
		require.NoError(t, err)
	}
	_, err = configs.Save(ctx, models.ProtectedConfig{ID: "d", Name: "cfg-a", PoolID: first.ID})
	require.ErrorIs(t, err, ErrConfigNameTaken)

	outdated, err := configs.CountOutdated(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), outdated)

	page, err := configs.ListOutdated(ctx, second.ID, "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "a", page[0].ID)
	assert.Equal(t, "b", page[1].ID)

	page, err = configs.ListOutdated(ctx, second.ID, page[1].ID, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].ID)

	result := models.EncryptionResult{
		CipherText: models.BinaryStringFromText("new", models.EncodingBase64),
		Nonce:      models.BinaryStringFromText("nonce", models.EncodingBase64),
		PoolID:     second.ID,
	}
	require.NoError(t, configs.UpdateEncryption(ctx, "a", first.ID, result))
	assert.ErrorIs(t, configs.UpdateEncryption(ctx, "a", first.ID, result), ErrEncryptionConflict)
	assert.ErrorIs(t, configs.UpdateEncryption(ctx, "zzz", first.ID, result), ErrConfigNotFound)

	got, err := configs.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.PoolID)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, "bmV3", got.CipherText)

	usage, err := configs.CountByPool(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.PoolUsage{
		{PoolID: first.ID, Algorithm: "NONE", Records: 2},
		{PoolID: second.ID, Algorithm: "AES_GCM_SIV_128", Records: 1},
	}, usage)
}
