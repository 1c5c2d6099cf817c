package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// cipherPoolRepository is the SQL implementation of [CipherPoolRepository]
// over the "cipher_pool" table.
type cipherPoolRepository struct {
	*DB
	logger *logger.Logger
}

// NewCipherPoolRepository constructs a [CipherPoolRepository] backed by db.
func NewCipherPoolRepository(db *DB, logger *logger.Logger) CipherPoolRepository {
	return &cipherPoolRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoolEntry(row rowScanner) (models.CipherPoolEntry, error) {
	var (
		entry      models.CipherPoolEntry
		sourceType string
	)

	err := row.Scan(
		&entry.ID,
		&entry.Algorithm,
		&sourceType,
		&entry.SecretSource.Data,
		&entry.TestText,
		&entry.TestNonce,
		&entry.TestCipherText,
		&entry.CreatedAt,
		&entry.CreatedBy,
	)
	entry.SecretSource.Type = models.SecretSourceType(sourceType)

	return entry, err
}

func (r *cipherPoolRepository) Create(ctx context.Context, entry models.CipherPoolEntry) (models.CipherPoolEntry, error) {
	log := logger.FromContext(ctx)

	entry.CreatedAt = now()

	query, args, err := buildInsertPoolEntryQuery(r.builder(), entry)
	if err != nil {
		log.Err(err).Str("func", "cipherPoolRepository.Create").Msg("failed to build query")
		return models.CipherPoolEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&entry.ID)
	if errors.Is(err, sql.ErrNoRows) {
		log.Error().Str("func", "cipherPoolRepository.Create").Msg("insert returned no row")
		return models.CipherPoolEntry{}, ErrPoolEntryNotSaved
	}
	if err != nil {
		log.Err(err).
			Str("func", "cipherPoolRepository.Create").
			Str("algorithm", entry.Algorithm).
			Msg("failed to insert cipher pool entry")
		return models.CipherPoolEntry{}, r.wrap(ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "cipherPoolRepository.Create").
		Int64("pool_id", entry.ID).
		Str("algorithm", entry.Algorithm).
		Str("secret_source", string(entry.SecretSource.Type)).
		Msg("cipher pool entry created")

	return entry, nil
}

func (r *cipherPoolRepository) GetAll(ctx context.Context) ([]models.CipherPoolEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPoolEntriesQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "cipherPoolRepository.GetAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "cipherPoolRepository.GetAll").Msg("failed to query cipher pool")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.CipherPoolEntry, 0, 8)
	for rows.Next() {
		entry, scanErr := scanPoolEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "cipherPoolRepository.GetAll").Msg("failed to scan cipher pool row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "cipherPoolRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (r *cipherPoolRepository) GetByID(ctx context.Context, id int64) (models.CipherPoolEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPoolEntryByIDQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "cipherPoolRepository.GetByID").Msg("failed to build query")
		return models.CipherPoolEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanPoolEntry(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CipherPoolEntry{}, fmt.Errorf("%w: id %d", ErrPoolEntryNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "cipherPoolRepository.GetByID").
			Int64("pool_id", id).
			Msg("failed to get cipher pool entry")
		return models.CipherPoolEntry{}, r.wrap(ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *cipherPoolRepository) GetLatest(ctx context.Context) (models.CipherPoolEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLatestPoolEntryQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "cipherPoolRepository.GetLatest").Msg("failed to build query")
		return models.CipherPoolEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanPoolEntry(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CipherPoolEntry{}, ErrCipherPoolEmpty
	}
	if err != nil {
		log.Err(err).Str("func", "cipherPoolRepository.GetLatest").Msg("failed to get latest cipher pool entry")
		return models.CipherPoolEntry{}, r.wrap(ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *cipherPoolRepository) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUnusedPoolEntriesQuery(r.builder(), ids)
	if err != nil {
		log.Err(err).Str("func", "cipherPoolRepository.Delete").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "cipherPoolRepository.Delete").Ints64("pool_ids", ids).
			Msg("failed to delete cipher pool entries")
		return 0, r.wrap(ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, r.wrap(ErrExecutingStatement, err)
	}

	log.Info().Str("func", "cipherPoolRepository.Delete").Ints64("pool_ids", ids).Int64("deleted", deleted).
		Msg("unused cipher pool entries deleted")

	return deleted, nil
}
