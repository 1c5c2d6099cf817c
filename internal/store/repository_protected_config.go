// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// protectedConfigRepository is the SQL implementation of
// [ProtectedConfigRepository] over the "protected_configs" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext].
// Ciphertexts and nonces are never logged.
type protectedConfigRepository struct {
	*DB
	logger *logger.Logger
}

// NewProtectedConfigRepository constructs a [ProtectedConfigRepository]
// backed by db.
func NewProtectedConfigRepository(db *DB, logger *logger.Logger) ProtectedConfigRepository {
	return &protectedConfigRepository{
		DB:     db,
		logger: logger,
	}
}

func scanProtectedConfig(row rowScanner) (models.ProtectedConfig, error) {
	var cfg models.ProtectedConfig
	err := row.Scan(
		&cfg.ID,
		&cfg.Name,
		&cfg.CipherText,
		&cfg.Nonce,
		&cfg.PoolID,
		&cfg.Version,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	return cfg, err
}

// Save inserts a new record at version 1. The returned copy carries the
// version and timestamps that were stored.
func (r *protectedConfigRepository) Save(ctx context.Context, cfg models.ProtectedConfig) (models.ProtectedConfig, error) {
	log := logger.FromContext(ctx)

	cfg.Version = 1
	cfg.CreatedAt = now()
	cfg.UpdatedAt = cfg.CreatedAt

	query, args, err := buildInsertProtectedConfigQuery(r.builder(), cfg)
	if err != nil {
		log.Err(err).Str("func", "protectedConfigRepository.Save").Msg("failed to build query")
		return models.ProtectedConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "protectedConfigRepository.Save").
				Str("name", cfg.Name).
				Msg("protected config name already exists")
			return models.ProtectedConfig{}, ErrConfigNameTaken
		}

		log.Err(err).
			Str("func", "protectedConfigRepository.Save").
			Str("record_id", cfg.ID).
			Msg("failed to insert protected config")
		return models.ProtectedConfig{}, r.wrap(ErrExecutingStatement, err)
	}

	return cfg, nil
}

func (r *protectedConfigRepository) Get(ctx context.Context, id string) (models.ProtectedConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProtectedConfigQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "protectedConfigRepository.Get").Msg("failed to build query")
		return models.ProtectedConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	cfg, err := scanProtectedConfig(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProtectedConfig{}, ErrConfigNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "protectedConfigRepository.Get").
			Str("record_id", id).
			Msg("failed to get protected config")
		return models.ProtectedConfig{}, r.wrap(ErrExecutingQuery, err)
	}

	return cfg, nil
}

// ListOutdated returns one keyset page of records still encrypted with an
// older pool entry. Pass the id of the last record of the previous page as
// afterID.
func (r *protectedConfigRepository) ListOutdated(ctx context.Context, latestPoolID int64, afterID string, limit int) ([]models.ProtectedConfig, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrBuildingSQLQuery, limit)
	}

	query, args, err := buildListOutdatedQuery(r.builder(), latestPoolID, afterID, limit)
	if err != nil {
		log.Err(err).Str("func", "protectedConfigRepository.ListOutdated").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "protectedConfigRepository.ListOutdated").
			Int64("pool_id", latestPoolID).
			Str("after_id", afterID).
			Msg("failed to list outdated protected configs")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	page := make([]models.ProtectedConfig, 0, limit)
	for rows.Next() {
		cfg, scanErr := scanProtectedConfig(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "protectedConfigRepository.ListOutdated").Msg("failed to scan protected config row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		page = append(page, cfg)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "protectedConfigRepository.ListOutdated").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return page, nil
}

// UpdateEncryption is an optimistic update keyed on the pool id the caller
// decrypted with. When no row changes, a follow-up lookup tells a missing
// record ([ErrConfigNotFound]) from one rotated concurrently
// ([ErrEncryptionConflict]).
func (r *protectedConfigRepository) UpdateEncryption(ctx context.Context, id string, expectedPoolID int64, result models.EncryptionResult) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEncryptionQuery(r.builder(), id, expectedPoolID, result, now())
	if err != nil {
		log.Err(err).Str("func", "protectedConfigRepository.UpdateEncryption").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "protectedConfigRepository.UpdateEncryption").
			Str("record_id", id).
			Int64("pool_id", result.PoolID).
			Msg("failed to update protected config encryption")
		return r.wrap(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.wrap(ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	query, args, err = buildSelectPoolIDQuery(r.builder(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var currentPoolID int64
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&currentPoolID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrConfigNotFound
	}
	if err != nil {
		return r.wrap(ErrExecutingQuery, err)
	}

	log.Warn().
		Str("func", "protectedConfigRepository.UpdateEncryption").
		Str("record_id", id).
		Int64("expected_pool_id", expectedPoolID).
		Int64("db_pool_id", currentPoolID).
		Msg("optimistic lock failed: record already rotated")

	return fmt.Errorf("%w: record %s is on pool %d, expected %d", ErrEncryptionConflict, id, currentPoolID, expectedPoolID)
}

func (r *protectedConfigRepository) CountByPool(ctx context.Context) ([]models.PoolUsage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByPoolQuery(r.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "protectedConfigRepository.CountByPool").Msg("failed to count records per pool")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var usage []models.PoolUsage
	for rows.Next() {
		var u models.PoolUsage
		if scanErr := rows.Scan(&u.PoolID, &u.Algorithm, &u.Records); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		usage = append(usage, u)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return usage, nil
}

func (r *protectedConfigRepository) CountOutdated(ctx context.Context, latestPoolID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountOutdatedQuery(r.builder(), latestPoolID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "protectedConfigRepository.CountOutdated").
			Int64("pool_id", latestPoolID).
			Msg("failed to count outdated records")
		return 0, r.wrap(ErrExecutingQuery, err)
	}

	return count, nil
}
