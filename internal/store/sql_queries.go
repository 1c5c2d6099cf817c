package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

const (
	cipherPoolTable       = "cipher_pool"
	protectedConfigsTable = "protected_configs"
)

var cipherPoolColumns = []string{
	"id",
	"algorithm",
	"secret_source_type",
	"secret_source_data",
	"test_text",
	"test_nonce",
	"test_cipher_text",
	"created_at",
	"created_by",
}

var protectedConfigColumns = []string{
	"id",
	"name",
	"cipher_text",
	"nonce",
	"pool_id",
	"version",
	"created_at",
	"updated_at",
}

// ── cipher pool ─────────────────────────────────────────────────────────────

func buildInsertPoolEntryQuery(b sq.StatementBuilderType, entry models.CipherPoolEntry) (string, []any, error) {
	return b.Insert(cipherPoolTable).
		Columns(
			"algorithm",
			"secret_source_type",
			"secret_source_data",
			"test_text",
			"test_nonce",
			"test_cipher_text",
			"created_at",
			"created_by",
		).
		Values(
			entry.Algorithm,
			string(entry.SecretSource.Type),
			entry.SecretSource.Data,
			entry.TestText,
			entry.TestNonce,
			entry.TestCipherText,
			entry.CreatedAt,
			entry.CreatedBy,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectPoolEntriesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(cipherPoolColumns...).
		From(cipherPoolTable).
		OrderBy("id").
		ToSql()
}

func buildSelectPoolEntryByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(cipherPoolColumns...).
		From(cipherPoolTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectLatestPoolEntryQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(cipherPoolColumns...).
		From(cipherPoolTable).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
}

// buildDeleteUnusedPoolEntriesQuery deletes ids that no record references
// at the time of the statement.
func buildDeleteUnusedPoolEntriesQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	return b.Delete(cipherPoolTable).
		Where(sq.Eq{"id": ids}).
		Where("NOT EXISTS (SELECT 1 FROM " + protectedConfigsTable + " c WHERE c.pool_id = " + cipherPoolTable + ".id)").
		ToSql()
}

// ── protected configs ───────────────────────────────────────────────────────

func buildInsertProtectedConfigQuery(b sq.StatementBuilderType, cfg models.ProtectedConfig) (string, []any, error) {
	return b.Insert(protectedConfigsTable).
		Columns(protectedConfigColumns...).
		Values(cfg.ID, cfg.Name, cfg.CipherText, cfg.Nonce, cfg.PoolID, cfg.Version, cfg.CreatedAt, cfg.UpdatedAt).
		ToSql()
}

func buildSelectProtectedConfigQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(protectedConfigColumns...).
		From(protectedConfigsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildListOutdatedQuery pages through records by id. An empty afterID
// starts from the first record.
func buildListOutdatedQuery(b sq.StatementBuilderType, latestPoolID int64, afterID string, limit int) (string, []any, error) {
	return b.Select(protectedConfigColumns...).
		From(protectedConfigsTable).
		Where(sq.Lt{"pool_id": latestPoolID}).
		Where(sq.Gt{"id": afterID}).
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
}

func buildUpdateEncryptionQuery(b sq.StatementBuilderType, id string, expectedPoolID int64, result models.EncryptionResult, updatedAt time.Time) (string, []any, error) {
	return b.Update(protectedConfigsTable).
		Set("cipher_text", result.CipherText.String()).
		Set("nonce", result.Nonce.String()).
		Set("pool_id", result.PoolID).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id, "pool_id": expectedPoolID}).
		ToSql()
}

func buildSelectPoolIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("pool_id").
		From(protectedConfigsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCountByPoolQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("p.id", "p.algorithm", "COUNT(c.id)").
		From(cipherPoolTable + " p").
		LeftJoin(protectedConfigsTable + " c ON c.pool_id = p.id").
		GroupBy("p.id", "p.algorithm").
		OrderBy("p.id").
		ToSql()
}

func buildCountOutdatedQuery(b sq.StatementBuilderType, latestPoolID int64) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(protectedConfigsTable).
		Where(sq.Lt{"pool_id": latestPoolID}).
		ToSql()
}
