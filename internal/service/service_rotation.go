// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/store"
	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// maxReportedFailures caps RotationReport.FailedIDs.
const maxReportedFailures = 100

// rotationService runs rotation campaigns: one pass over every record not
// yet encrypted with the latest pool entry. At most one campaign runs per
// instance; concurrent instances are kept apart by the optimistic update on
// the record's pool id.
type rotationService struct {
	poolService       CipherPoolService
	encryptionService EncryptionService
	configRepository  store.ProtectedConfigRepository

	batchSize    int
	concurrency  int
	abortOnError bool

	ids     *utils.UUIDGenerator
	running atomic.Bool
	wg      sync.WaitGroup

	mu   sync.Mutex
	last *models.RotationReport

	logger *logger.Logger
}

func NewRotationService(poolService CipherPoolService, encryptionService EncryptionService,
	configRepository store.ProtectedConfigRepository, cfg config.Workers, log *logger.Logger,
) RotationService {
	return &rotationService{
		poolService:       poolService,
		encryptionService: encryptionService,
		configRepository:  configRepository,
		batchSize:         max(cfg.BatchSize, 1),
		concurrency:       max(cfg.Concurrency, 1),
		abortOnError:      cfg.AbortOnError,
		ids:               utils.NewUUIDGenerator(),
		logger:            log,
	}
}

// StartRotation creates and loads the new pool entry before returning, so a
// bad secret is reported to the caller. The campaign itself outlives ctx.
func (s *rotationService) StartRotation(ctx context.Context, req models.RotationRequest) (models.RotationAccepted, error) {
	if !s.running.CompareAndSwap(false, true) {
		return models.RotationAccepted{}, ErrRotationInProgress
	}

	entry, err := s.poolService.CreatePoolEntry(ctx, req)
	if err != nil {
		s.running.Store(false)
		return models.RotationAccepted{}, err
	}

	if err = s.encryptionService.Refresh(ctx); err != nil {
		s.running.Store(false)
		return models.RotationAccepted{}, err
	}
	if s.encryptionService.LatestPoolID() != entry.ID {
		s.running.Store(false)
		return models.RotationAccepted{}, fmt.Errorf("%w: pool entry %d is not the latest after refresh",
			ErrOutdatedCipherPool, entry.ID)
	}

	campaignID := s.ids.Generate()
	campaignCtx := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.running.Store(false)

		_, _ = s.campaign(campaignCtx, campaignID)
	}()

	return models.RotationAccepted{CampaignID: campaignID, PoolID: entry.ID}, nil
}

func (s *rotationService) RotateOutdated(ctx context.Context) (models.RotationReport, error) {
	if !s.running.CompareAndSwap(false, true) {
		return models.RotationReport{}, ErrRotationInProgress
	}
	defer s.running.Store(false)

	return s.campaign(ctx, s.ids.Generate())
}

func (s *rotationService) Wait() {
	s.wg.Wait()
}

func (s *rotationService) Status(ctx context.Context) (models.EncryptionStatus, error) {
	latestID := s.encryptionService.LatestPoolID()

	usage, err := s.configRepository.CountByPool(ctx)
	if err != nil {
		return models.EncryptionStatus{}, err
	}

	outdated, err := s.configRepository.CountOutdated(ctx, latestID)
	if err != nil {
		return models.EncryptionStatus{}, err
	}

	status := models.EncryptionStatus{
		LatestPoolID:    latestID,
		Pools:           usage,
		OutdatedRecords: outdated,
		RotationRunning: s.running.Load(),
	}

	s.mu.Lock()
	if s.last != nil {
		last := *s.last
		status.LastRotation = &last
	}
	s.mu.Unlock()

	return status, nil
}

// ── campaign ─────────────────────────────────────────────────────────────────

// campaignState collects per-record outcomes from the errgroup workers.
type campaignState struct {
	mu     sync.Mutex
	report models.RotationReport
}

func (c *campaignState) rotated() {
	c.mu.Lock()
	c.report.Total++
	c.report.Rotated++
	c.mu.Unlock()
}

func (c *campaignState) conflict() {
	c.mu.Lock()
	c.report.Total++
	c.report.Conflicts++
	c.mu.Unlock()
}

func (c *campaignState) failed(id string) {
	c.mu.Lock()
	c.report.Total++
	c.report.Failed++
	if len(c.report.FailedIDs) < maxReportedFailures {
		c.report.FailedIDs = append(c.report.FailedIDs, id)
	}
	c.mu.Unlock()
}

// campaign walks outdated records in id order. Records that fail stay
// outdated; the keyset cursor moves past them so the walk always ends.
func (s *rotationService) campaign(ctx context.Context, campaignID string) (models.RotationReport, error) {
	log := logger.FromContext(ctx).WithCampaign(campaignID)
	ctx = log.WithContext(ctx)

	state := &campaignState{report: models.RotationReport{
		CampaignID:   campaignID,
		TargetPoolID: s.encryptionService.LatestPoolID(),
		StartedAt:    time.Now().UTC(),
	}}

	err := s.walk(ctx, state)

	state.mu.Lock()
	state.report.FinishedAt = time.Now().UTC()
	report := state.report
	state.mu.Unlock()

	s.mu.Lock()
	s.last = &report
	s.mu.Unlock()

	log.Err(err).Str("func", "rotationService.campaign").
		Int64("target_pool_id", report.TargetPoolID).
		Int("total", report.Total).
		Int("rotated", report.Rotated).
		Int("failed", report.Failed).
		Int("conflicts", report.Conflicts).
		Dur("took", report.FinishedAt.Sub(report.StartedAt)).
		Msg("rotation campaign finished")

	return report, err
}

func (s *rotationService) walk(ctx context.Context, state *campaignState) error {
	target := state.report.TargetPoolID
	if target == 0 {
		return ErrNoCipherPool
	}

	afterID := ""
	for {
		page, err := s.configRepository.ListOutdated(ctx, target, afterID, s.batchSize)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.concurrency)
		for _, record := range page {
			record := record
			g.Go(func() error {
				return s.rotateRecord(gctx, record, state)
			})
		}
		if err = g.Wait(); err != nil {
			return err
		}

		if len(page) < s.batchSize {
			return nil
		}
		afterID = page[len(page)-1].ID
	}
}

// rotateRecord returns an error only when the campaign must stop.
func (s *rotationService) rotateRecord(ctx context.Context, record models.ProtectedConfig, state *campaignState) error {
	log := logger.FromContext(ctx)

	result, err := s.rotateValue(ctx, record)
	if err != nil {
		if !isRecordError(err) {
			return err
		}

		state.failed(record.ID)
		log.Err(err).Str("func", "rotationService.rotateRecord").
			Str("record_id", record.ID).
			Int64("pool_id", record.PoolID).
			Msg("record could not be rotated")
		if s.abortOnError {
			return fmt.Errorf("record %s: %w", record.ID, err)
		}
		return nil
	}

	err = s.configRepository.UpdateEncryption(ctx, record.ID, record.PoolID, result)
	if errors.Is(err, store.ErrRetryable) {
		log.Warn().Err(err).Str("record_id", record.ID).Msg("retrying record update")
		err = s.configRepository.UpdateEncryption(ctx, record.ID, record.PoolID, result)
	}

	switch {
	case err == nil:
		state.rotated()
		return nil
	case errors.Is(err, store.ErrEncryptionConflict), errors.Is(err, store.ErrConfigNotFound):
		state.conflict()
		log.Debug().Str("record_id", record.ID).Msg("record changed concurrently, skipped")
		return nil
	default:
		state.failed(record.ID)
		return err
	}
}

func (s *rotationService) rotateValue(ctx context.Context, record models.ProtectedConfig) (models.EncryptionResult, error) {
	cipherText, err := models.ParseBase64(record.CipherText)
	if err != nil {
		return models.EncryptionResult{}, err
	}
	nonce, err := models.ParseBase64(record.Nonce)
	if err != nil {
		return models.EncryptionResult{}, err
	}

	return s.encryptionService.RotateEncryption(ctx, cipherText, nonce, record.PoolID)
}

// isRecordError reports whether err concerns a single record and leaves
// the rest of the campaign unaffected.
func isRecordError(err error) bool {
	return crypto.IsCryptoError(err) ||
		errors.Is(err, ErrUnknownPool) ||
		errors.Is(err, models.ErrDecodingBinaryString)
}
