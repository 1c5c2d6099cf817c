// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/service"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// PoolRefreshWorker reloads the cipher pool so that entries created by
// other instances become usable here.
type PoolRefreshWorker struct {
	encryptionService service.EncryptionService
	interval          time.Duration

	logger *logger.Logger
}

func NewPoolRefreshWorker(encryptionService service.EncryptionService, interval time.Duration,
	log *logger.Logger,
) *PoolRefreshWorker {
	return &PoolRefreshWorker{
		encryptionService: encryptionService,
		interval:          interval,
		logger:            log,
	}
}

func (w *PoolRefreshWorker) Run(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)
	runEvery(ctx, w.interval, func(ctx context.Context) {
		if err := w.encryptionService.Refresh(ctx); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "PoolRefreshWorker.Run").Msg("cipher pool refresh failed")
		}
	})
}

// failedRetryTicks is how many ticks the worker waits before repeating a
// campaign that rotated nothing because every remaining record failed.
const failedRetryTicks = 10

// RotationWorker periodically refreshes the pool, starts a campaign when
// records encrypted with older pool entries exist and deletes pool entries
// no record uses anymore.
type RotationWorker struct {
	encryptionService service.EncryptionService
	rotationService   service.RotationService
	poolService       service.CipherPoolService
	interval          time.Duration

	logger *logger.Logger
}

func NewRotationWorker(encryptionService service.EncryptionService, rotationService service.RotationService,
	poolService service.CipherPoolService, interval time.Duration, log *logger.Logger,
) *RotationWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RotationWorker{
		encryptionService: encryptionService,
		rotationService:   rotationService,
		poolService:       poolService,
		interval:          interval,
		logger:            log,
	}
}

func (w *RotationWorker) Run(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)
	runEvery(ctx, w.interval, w.tick)
}

func (w *RotationWorker) tick(ctx context.Context) {
	log := logger.FromContext(ctx)

	if err := w.encryptionService.Refresh(ctx); err != nil {
		log.Err(err).Str("func", "RotationWorker.tick").Msg("cipher pool refresh failed")
		return
	}
	if w.encryptionService.IsOutdated() {
		log.Warn().Str("func", "RotationWorker.tick").Msg("skipping rotation, cipher pool is outdated on this instance")
		return
	}

	status, err := w.rotationService.Status(ctx)
	if err != nil {
		log.Err(err).Str("func", "RotationWorker.tick").Msg("error reading encryption status")
		return
	}
	if status.RotationRunning {
		return
	}
	if status.OutdatedRecords == 0 {
		if hasUnusedPools(status) {
			w.cleanup(ctx)
		}
		return
	}
	if w.onlyFailedRemain(status) {
		log.Debug().Str("func", "RotationWorker.tick").
			Int64("outdated_records", status.OutdatedRecords).
			Int("failed", status.LastRotation.Failed).
			Msg("outdated records failed last campaign, waiting before retry")
		return
	}

	log.Info().Int64("outdated_records", status.OutdatedRecords).
		Int64("latest_pool_id", status.LatestPoolID).
		Msg("starting rotation of outdated records")

	report, err := w.rotationService.RotateOutdated(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrRotationInProgress) {
			log.Err(err).Str("func", "RotationWorker.tick").Msg("rotation campaign failed")
		}
		return
	}
	if report.Failed == 0 {
		w.cleanup(ctx)
	}
}

// onlyFailedRemain reports whether the previous campaign for the same target
// rotated nothing and no record became outdated since.
func (w *RotationWorker) onlyFailedRemain(status models.EncryptionStatus) bool {
	last := status.LastRotation
	if last == nil || last.TargetPoolID != status.LatestPoolID {
		return false
	}
	if last.Rotated > 0 || last.Failed == 0 || status.OutdatedRecords > int64(last.Failed) {
		return false
	}
	return time.Since(last.FinishedAt) < failedRetryTicks*w.interval
}

func (w *RotationWorker) cleanup(ctx context.Context) {
	if _, err := w.poolService.CleanupUnused(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "RotationWorker.cleanup").
			Msg("cleanup of unused cipher pool entries failed")
	}
}

func hasUnusedPools(status models.EncryptionStatus) bool {
	for _, p := range status.Pools {
		if p.PoolID != status.LatestPoolID && p.Records == 0 {
			return true
		}
	}
	return false
}

// runEvery calls fn right away and then on every tick until ctx is done.
func runEvery(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		fn(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
