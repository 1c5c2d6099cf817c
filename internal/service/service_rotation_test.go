package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/mock"
	"github.com/MKhiriev/go-crypt-keeper/internal/store"
	"github.com/MKhiriev/go-crypt-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type rotationFixture struct {
	pool       *mock.MockCipherPoolService
	encryption *mock.MockEncryptionService
	configs    *mock.MockProtectedConfigRepository
	svc        RotationService
}

func newRotationFixture(t *testing.T, cfg config.Workers) rotationFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := rotationFixture{
		pool:       mock.NewMockCipherPoolService(ctrl),
		encryption: mock.NewMockEncryptionService(ctrl),
		configs:    mock.NewMockProtectedConfigRepository(ctrl),
	}
	f.svc = NewRotationService(f.pool, f.encryption, f.configs, cfg, logger.Nop())
	return f
}

func outdatedRecord(id string, poolID int64) models.ProtectedConfig {
	return models.ProtectedConfig{
		ID:         id,
		Name:       "cfg-" + id,
		CipherText: "Y2lwaGVy",
		Nonce:      "MTIzNDU2Nzg5MDEy",
		PoolID:     poolID,
		Version:    1,
	}
}

func rotatedResult(poolID int64) models.EncryptionResult {
	return models.EncryptionResult{
		CipherText: models.BinaryStringFromText("rotated", models.EncodingBase64),
		Nonce:      models.BinaryStringFromText("210987654321", models.EncodingBase64),
		PoolID:     poolID,
	}
}

// ── RotateOutdated ───────────────────────────────────────────────────────────

func TestRotationService_RotateOutdated_PagesAndCounts(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 2, Concurrency: 2})

	f.encryption.EXPECT().LatestPoolID().Return(int64(2)).AnyTimes()

	gomock.InOrder(
		f.configs.EXPECT().ListOutdated(gomock.Any(), int64(2), "", 2).
			Return([]models.ProtectedConfig{outdatedRecord("a", 1), outdatedRecord("b", 1)}, nil),
		f.configs.EXPECT().ListOutdated(gomock.Any(), int64(2), "b", 2).
			Return([]models.ProtectedConfig{outdatedRecord("c", 1)}, nil),
	)

	f.encryption.EXPECT().RotateEncryption(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).
		Return(rotatedResult(2), nil).Times(2)
	f.encryption.EXPECT().RotateEncryption(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).
		Return(models.EncryptionResult{}, crypto.ErrAuthenticationFailed)

	f.configs.EXPECT().UpdateEncryption(gomock.Any(), gomock.Any(), int64(1), rotatedResult(2)).
		Return(nil).Times(2)

	report, err := f.svc.RotateOutdated(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.CampaignID)
	assert.Equal(t, int64(2), report.TargetPoolID)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Rotated)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.FailedIDs, 1)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))
}

func TestRotationService_RotateOutdated_EmptyPage(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 10, Concurrency: 1})

	f.encryption.EXPECT().LatestPoolID().Return(int64(4)).AnyTimes()
	f.configs.EXPECT().ListOutdated(gomock.Any(), int64(4), "", 10).Return(nil, nil)

	report, err := f.svc.RotateOutdated(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Total)
}

func TestRotationService_RotateOutdated_NoPool(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 10, Concurrency: 1})
	f.encryption.EXPECT().LatestPoolID().Return(int64(0)).AnyTimes()

	_, err := f.svc.RotateOutdated(context.Background())
	assert.ErrorIs(t, err, ErrNoCipherPool)
}

func TestRotationService_RotateOutdated_ListError(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 10, Concurrency: 1})

	f.encryption.EXPECT().LatestPoolID().Return(int64(2)).AnyTimes()
	f.configs.EXPECT().ListOutdated(gomock.Any(), int64(2), "", 10).Return(nil, store.ErrExecutingQuery)

	_, err := f.svc.RotateOutdated(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestRotationService_RotateOutdated_RetriesRetryableOnce(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 10, Concurrency: 1})

	f.encryption.EXPECT().LatestPoolID().Return(int64(2)).AnyTimes()
	f.configs.EXPECT().ListOutdated(gomock.Any(), int64(2), "", 10).
		Return([]models.ProtectedConfig{outdatedRecord("a", 1)}, nil)
	f.encryption.EXPECT().RotateEncryption(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).
		Return(rotatedResult(2), nil)

	retryable := fmt.Errorf("%w: %w", store.ErrExecutingStatement, store.ErrRetryable)
	gomock.InOrder(
		f.configs.EXPECT().UpdateEncryption(gomock.Any(), "a", int64(1), rotatedResult(2)).Return(retryable),
		f.configs.EXPECT().UpdateEncryption(gomock.Any(), "a", int64(1), rotatedResult(2)).Return(nil),
	)

	report, err := f.svc.RotateOutdated(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Rotated)
}

func TestRotationService_RotateOutdated_SecondRetryableFailureStops(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 10, Concurrency: 1})

	f.encryption.EXPECT().LatestPoolID().Return(int64(2)).AnyTimes()
	f.configs.EXPECT().ListOutdated(gomock.Any(), int64(2), "", 10).
		Return([]models.ProtectedConfig{outdatedRecord("a", 1)}, nil)
	f.encryption.EXPECT().RotateEncryption(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).
		Return(rotatedResult(2), nil)

	retryable := fmt.Errorf("%w: %w", store.ErrExecutingStatement, store.ErrRetryable)
	f.configs.EXPECT().UpdateEncryption(gomock.Any(), "a", int64(1), rotatedResult(2)).Return(retryable).Times(2)

	report, err := f.svc.RotateOutdated(context.Background())
	assert.ErrorIs(t, err, store.ErrRetryable)
	assert.Equal(t, 1, report.Failed)
}

func TestRotationService_RotateOutdated_Conflict(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 10, Concurrency: 1})

	f.encryption.EXPECT().LatestPoolID().Return(int64(2)).AnyTimes()
	f.configs.EXPECT().ListOutdated(gomock.Any(), int64(2), "", 10).
		Return([]models.ProtectedConfig{outdatedRecord("a", 1)}, nil)
	f.encryption.EXPECT().RotateEncryption(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).
		Return(rotatedResult(2), nil)
	f.configs.EXPECT().UpdateEncryption(gomock.Any(), "a", int64(1), rotatedResult(2)).
		Return(store.ErrEncryptionConflict)

	report, err := f.svc.RotateOutdated(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Conflicts)
	assert.Zero(t, report.Rotated)
}

func TestRotationService_RotateOutdated_AbortOnError(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 10, Concurrency: 1, AbortOnError: true})

	f.encryption.EXPECT().LatestPoolID().Return(int64(2)).AnyTimes()
	f.configs.EXPECT().ListOutdated(gomock.Any(), int64(2), "", 10).
		Return([]models.ProtectedConfig{outdatedRecord("a", 1)}, nil)
	f.encryption.EXPECT().RotateEncryption(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).
		Return(models.EncryptionResult{}, crypto.ErrAuthenticationFailed)

	report, err := f.svc.RotateOutdated(context.Background())
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
	assert.Equal(t, []string{"a"}, report.FailedIDs)
}

func TestRotationService_RotateOutdated_BrokenRecordIsSkipped(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 10, Concurrency: 1})

	broken := outdatedRecord("a", 1)
	broken.CipherText = "not base64 !"

	f.encryption.EXPECT().LatestPoolID().Return(int64(2)).AnyTimes()
	f.configs.EXPECT().ListOutdated(gomock.Any(), int64(2), "", 10).
		Return([]models.ProtectedConfig{broken}, nil)

	report, err := f.svc.RotateOutdated(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
}

func TestRotationService_RotateOutdated_OutdatedPoolStops(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 10, Concurrency: 1})

	f.encryption.EXPECT().LatestPoolID().Return(int64(2)).AnyTimes()
	f.configs.EXPECT().ListOutdated(gomock.Any(), int64(2), "", 10).
		Return([]models.ProtectedConfig{outdatedRecord("a", 1)}, nil)
	f.encryption.EXPECT().RotateEncryption(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).
		Return(models.EncryptionResult{}, ErrOutdatedCipherPool)

	_, err := f.svc.RotateOutdated(context.Background())
	assert.ErrorIs(t, err, ErrOutdatedCipherPool)
}

func TestRotationService_RotateOutdated_InProgress(t *testing.T) {
	f := newRotationFixture(t, config.Workers{})
	f.svc.(*rotationService).running.Store(true)

	_, err := f.svc.RotateOutdated(context.Background())
	assert.ErrorIs(t, err, ErrRotationInProgress)

	_, err = f.svc.StartRotation(context.Background(), models.RotationRequest{})
	assert.ErrorIs(t, err, ErrRotationInProgress)
}

// ── StartRotation / Status ───────────────────────────────────────────────────

func TestRotationService_StartRotation(t *testing.T) {
	f := newRotationFixture(t, config.Workers{BatchSize: 10, Concurrency: 2})
	ctx := context.Background()

	req := models.RotationRequest{Algorithm: "AES_GCM_SIV_256", SecretSource: envSource("NEW"), RequestedBy: "ops"}

	f.pool.EXPECT().CreatePoolEntry(ctx, req).Return(models.CipherPoolEntry{ID: 3}, nil)
	f.encryption.EXPECT().Refresh(ctx).Return(nil)
	f.encryption.EXPECT().LatestPoolID().Return(int64(3)).AnyTimes()
	f.configs.EXPECT().ListOutdated(gomock.Any(), int64(3), "", 10).Return(nil, nil)

	accepted, err := f.svc.StartRotation(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(3), accepted.PoolID)
	assert.NotEmpty(t, accepted.CampaignID)

	f.svc.Wait()

	f.configs.EXPECT().CountByPool(ctx).Return([]models.PoolUsage{{PoolID: 3, Algorithm: "AES_GCM_SIV_256"}}, nil)
	f.configs.EXPECT().CountOutdated(ctx, int64(3)).Return(int64(0), nil)

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), status.LatestPoolID)
	assert.False(t, status.RotationRunning)
	require.NotNil(t, status.LastRotation)
	assert.Equal(t, accepted.CampaignID, status.LastRotation.CampaignID)
	assert.Equal(t, int64(3), status.LastRotation.TargetPoolID)
}

func TestRotationService_StartRotation_CreateFails(t *testing.T) {
	f := newRotationFixture(t, config.Workers{})
	ctx := context.Background()

	f.pool.EXPECT().CreatePoolEntry(ctx, gomock.Any()).Return(models.CipherPoolEntry{}, ErrSelfTestFailed).Times(2)

	_, err := f.svc.StartRotation(ctx, models.RotationRequest{})
	assert.ErrorIs(t, err, ErrSelfTestFailed)

	// the campaign slot must be free again
	_, err = f.svc.StartRotation(ctx, models.RotationRequest{})
	assert.ErrorIs(t, err, ErrSelfTestFailed)
}

func TestRotationService_StartRotation_NewEntryNotLatest(t *testing.T) {
	f := newRotationFixture(t, config.Workers{})
	ctx := context.Background()

	f.pool.EXPECT().CreatePoolEntry(ctx, gomock.Any()).Return(models.CipherPoolEntry{ID: 3}, nil)
	f.encryption.EXPECT().Refresh(ctx).Return(nil)
	f.encryption.EXPECT().LatestPoolID().Return(int64(2))

	_, err := f.svc.StartRotation(ctx, models.RotationRequest{})
	assert.ErrorIs(t, err, ErrOutdatedCipherPool)
}

func TestRotationService_StartRotation_RefreshFails(t *testing.T) {
	f := newRotationFixture(t, config.Workers{})
	ctx := context.Background()

	dbErr := errors.New("db down")
	f.pool.EXPECT().CreatePoolEntry(ctx, gomock.Any()).Return(models.CipherPoolEntry{ID: 3}, nil)
	f.encryption.EXPECT().Refresh(ctx).Return(dbErr)

	_, err := f.svc.StartRotation(ctx, models.RotationRequest{})
	assert.ErrorIs(t, err, dbErr)
}

func TestRotationService_Status_BeforeAnyCampaign(t *testing.T) {
	f := newRotationFixture(t, config.Workers{})
	ctx := context.Background()

	f.encryption.EXPECT().LatestPoolID().Return(int64(2))
	f.configs.EXPECT().CountByPool(ctx).Return([]models.PoolUsage{
		{PoolID: 1, Algorithm: "AES_GCM_SIV_128", Records: 4},
		{PoolID: 2, Algorithm: "AES_GCM_SIV_256", Records: 6},
	}, nil)
	f.configs.EXPECT().CountOutdated(ctx, int64(2)).Return(int64(4), nil)

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), status.OutdatedRecords)
	assert.Len(t, status.Pools, 2)
	assert.Nil(t, status.LastRotation)
}

func TestRotationService_Status_RepositoryError(t *testing.T) {
	f := newRotationFixture(t, config.Workers{})
	ctx := context.Background()

	f.encryption.EXPECT().LatestPoolID().Return(int64(2))
	f.configs.EXPECT().CountByPool(ctx).Return(nil, store.ErrExecutingQuery)

	_, err := f.svc.Status(ctx)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
