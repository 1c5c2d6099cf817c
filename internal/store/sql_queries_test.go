// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-crypt-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildListOutdatedQuery(t *testing.T) {
	const cols = "id, name, cipher_text, nonce, pool_id, version, created_at, updated_at"

	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{
			name:    "postgres placeholders",
			builder: dollar,
			want:    "SELECT " + cols + " FROM protected_configs WHERE pool_id < $1 AND id > $2 ORDER BY id LIMIT 50",
		},
		{
			name:    "sqlite placeholders",
			builder: question,
			want:    "SELECT " + cols + " FROM protected_configs WHERE pool_id < ? AND id > ? ORDER BY id LIMIT 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListOutdatedQuery(tt.builder, 3, "abc", 50)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{int64(3), "abc"}, args)
		})
	}
}

func Test_buildUpdateEncryptionQuery(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	result := models.EncryptionResult{
		CipherText: models.BinaryStringFromText("ct", models.EncodingBase64),
		Nonce:      models.BinaryStringFromText("nonce", models.EncodingBase64),
		PoolID:     2,
	}

	query, args, err := buildUpdateEncryptionQuery(dollar, "rec-1", 1, result, ts)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE protected_configs SET cipher_text = $1, nonce = $2, pool_id = $3, version = version + 1, updated_at = $4 WHERE id = $5 AND pool_id = $6",
		query)
	assert.Equal(t, []any{"Y3Q=", "bm9uY2U=", int64(2), ts, "rec-1", int64(1)}, args)
}

func Test_buildInsertPoolEntryQuery_ContainsParts(t *testing.T) {
	entry := models.CipherPoolEntry{
		Algorithm:    "AES_GCM_SIV_128",
		SecretSource: models.SecretSource{Type: models.SecretSourceVault, Data: "keeper/pool"},
		CreatedBy:    "admin",
	}

	query, args, err := buildInsertPoolEntryQuery(dollar, entry)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into cipher_pool"))
	assert.Contains(t, q, "returning id")
	assert.Contains(t, query, "$8")
	assert.NotContains(t, query, "$9")

	require.Len(t, args, 8)
	assert.Equal(t, "AES_GCM_SIV_128", args[0])
	assert.Equal(t, "VAULT", args[1])
	assert.Equal(t, "keeper/pool", args[2])
	assert.Equal(t, "admin", args[7])
}

func Test_buildSelectLatestPoolEntryQuery(t *testing.T) {
	query, args, err := buildSelectLatestPoolEntryQuery(dollar)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(query, "FROM cipher_pool ORDER BY id DESC LIMIT 1"), query)
}

func Test_buildCountQueries(t *testing.T) {
	query, _, err := buildCountByPoolQuery(dollar)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT p.id, p.algorithm, COUNT(c.id) FROM cipher_pool p LEFT JOIN protected_configs c ON c.pool_id = p.id GROUP BY p.id, p.algorithm ORDER BY p.id",
		query)

	query, args, err := buildCountOutdatedQuery(question, 4)
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM protected_configs WHERE pool_id < ?", query)
	assert.Equal(t, []any{int64(4)}, args)
}

func Test_buildDeleteUnusedPoolEntriesQuery(t *testing.T) {
	query, args, err := buildDeleteUnusedPoolEntriesQuery(dollar, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t,
		"DELETE FROM cipher_pool WHERE id IN ($1,$2) AND NOT EXISTS (SELECT 1 FROM protected_configs c WHERE c.pool_id = cipher_pool.id)",
		query)
	assert.Equal(t, []any{int64(1), int64(2)}, args)
}
