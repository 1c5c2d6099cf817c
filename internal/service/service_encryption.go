// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/secret"
	"github.com/MKhiriev/go-crypt-keeper/internal/store"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// encryptionService caches one cipher per pool entry. Pool entries are
// immutable, so an entry loaded once is never resolved again; Refresh only
// picks up new ones.
type encryptionService struct {
	poolRepository store.CipherPoolRepository
	resolver       secret.Resolver
	nonces         crypto.NonceGenerator
	allowOutdated  bool

	mu         sync.RWMutex
	pool       map[int64]*poolCipher
	latestID   int64
	dbLatestID int64
	// strategies holds old pool id -> latest rotations. Reset whenever the
	// latest entry changes.
	strategies map[int64]crypto.RotationStrategy

	logger *logger.Logger
}

func NewEncryptionService(poolRepository store.CipherPoolRepository, resolver secret.Resolver,
	nonces crypto.NonceGenerator, cfg config.Encryption, log *logger.Logger,
) EncryptionService {
	return &encryptionService{
		poolRepository: poolRepository,
		resolver:       resolver,
		nonces:         nonces,
		allowOutdated:  cfg.AllowOutdatedPool,
		pool:           make(map[int64]*poolCipher),
		strategies:     make(map[int64]crypto.RotationStrategy),
		logger:         log,
	}
}

// Refresh may run concurrently with itself. Pool ids only grow, so the
// cached latest and database latest ids never move back even when an older
// load finishes last.
func (s *encryptionService) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)

	entries, err := s.poolRepository.GetAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "encryptionService.Refresh").Msg("error loading cipher pool")
		return err
	}

	s.mu.RLock()
	known := make(map[int64]struct{}, len(s.pool))
	for id := range s.pool {
		known[id] = struct{}{}
	}
	s.mu.RUnlock()

	loaded := make(map[int64]*poolCipher)
	var latestID, dbLatestID int64
	for _, entry := range entries {
		dbLatestID = max(dbLatestID, entry.ID)

		if _, ok := known[entry.ID]; !ok {
			pc, err := loadPoolCipher(ctx, s.resolver, entry)
			if err != nil {
				log.WithPool(entry.ID).Err(err).Str("func", "encryptionService.Refresh").
					Msg("cipher pool entry is not usable on this instance")
				continue
			}
			loaded[entry.ID] = pc
		}
		latestID = max(latestID, entry.ID)
	}

	s.mu.Lock()
	for id, pc := range loaded {
		if _, ok := s.pool[id]; !ok {
			s.pool[id] = pc
		}
	}
	previousLatest := s.latestID
	s.latestID = max(s.latestID, latestID)
	s.dbLatestID = max(s.dbLatestID, dbLatestID)
	latestID, dbLatestID = s.latestID, s.dbLatestID
	changed := latestID != previousLatest
	if changed {
		s.strategies = make(map[int64]crypto.RotationStrategy)
	}
	var latest *poolCipher
	if changed {
		latest = s.pool[latestID]
	}
	s.mu.Unlock()

	if latest != nil {
		latestLog := log.WithPool(latestID)
		if latest.cipherType.IsInsecure() {
			latestLog.Warn().Str("func", "encryptionService.Refresh").
				Msg("latest cipher pool entry uses NONE, new data is stored unprotected")
		} else {
			latestLog.Info().Str("algorithm", latest.entry.Algorithm).
				Msg("latest cipher pool entry changed")
		}
	}
	if dbLatestID > latestID {
		log.Warn().Str("func", "encryptionService.Refresh").
			Int64("latest_pool_id", latestID).
			Int64("db_latest_pool_id", dbLatestID).
			Msg("cipher pool is outdated on this instance")
	}

	return nil
}

// Forget drops the given entries from the cache. The latest entry is kept.
func (s *encryptionService) Forget(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if id == s.latestID {
			continue
		}
		delete(s.pool, id)
		delete(s.strategies, id)
	}
}

func (s *encryptionService) LatestPoolID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latestID
}

func (s *encryptionService) IsOutdated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dbLatestID > s.latestID
}

// latest returns the cipher used for new encryptions.
func (s *encryptionService) latest() (*poolCipher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latestID == 0 {
		return nil, ErrNoCipherPool
	}
	if s.dbLatestID > s.latestID && !s.allowOutdated {
		return nil, fmt.Errorf("%w: cached latest entry %d, database has %d",
			ErrOutdatedCipherPool, s.latestID, s.dbLatestID)
	}
	return s.pool[s.latestID], nil
}

func (s *encryptionService) byID(poolID int64) (*poolCipher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pc, ok := s.pool[poolID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPool, poolID)
	}
	return pc, nil
}

func (s *encryptionService) EncryptWithLatest(ctx context.Context, plainText string) (models.EncryptionResult, error) {
	pc, err := s.latest()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "encryptionService.EncryptWithLatest").
			Msg("no cipher available for encryption")
		return models.EncryptionResult{}, err
	}

	nonce, err := s.nonces.GenerateNonce()
	if err != nil {
		return models.EncryptionResult{}, err
	}

	cipherText, err := pc.cipher.Encrypt(plainText, nonce)
	if err != nil {
		return models.EncryptionResult{}, err
	}

	return models.EncryptionResult{
		CipherText: cipherText,
		Nonce:      nonce,
		PoolID:     pc.entry.ID,
	}, nil
}

func (s *encryptionService) Decrypt(ctx context.Context, cipherText, nonce models.BinaryString, poolID int64) (string, error) {
	pc, err := s.byID(poolID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "encryptionService.Decrypt").Msg("record uses unknown pool entry")
		return "", err
	}

	return pc.cipher.Decrypt(cipherText, nonce)
}

// RotateEncryption returns the input unchanged when oldPoolID already is the
// latest entry.
func (s *encryptionService) RotateEncryption(ctx context.Context, cipherText, nonce models.BinaryString,
	oldPoolID int64,
) (models.EncryptionResult, error) {
	target, err := s.latest()
	if err != nil {
		return models.EncryptionResult{}, err
	}
	if oldPoolID == target.entry.ID {
		return models.EncryptionResult{CipherText: cipherText, Nonce: nonce, PoolID: oldPoolID}, nil
	}

	strategy, err := s.strategy(oldPoolID, target)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "encryptionService.RotateEncryption").
			Int64("old_pool_id", oldPoolID).
			Msg("no rotation strategy for pool entry")
		return models.EncryptionResult{}, err
	}

	newNonce, err := s.nonces.GenerateNonce()
	if err != nil {
		return models.EncryptionResult{}, err
	}

	rotated, err := strategy.Rotate(cipherText, nonce, crypto.WithNewNonce(newNonce))
	if err != nil {
		return models.EncryptionResult{}, err
	}

	return models.EncryptionResult{
		CipherText: rotated,
		Nonce:      newNonce,
		PoolID:     target.entry.ID,
	}, nil
}

func (s *encryptionService) strategy(oldPoolID int64, target *poolCipher) (crypto.RotationStrategy, error) {
	s.mu.RLock()
	strategy, ok := s.strategies[oldPoolID]
	s.mu.RUnlock()
	if ok && strategy != nil {
		return strategy, nil
	}

	source, err := s.byID(oldPoolID)
	if err != nil {
		return nil, err
	}

	strategy, err = crypto.NewCipherRotationStrategy(source.secret, source.cipherType, target.secret, target.cipherType)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.latestID == target.entry.ID {
		s.strategies[oldPoolID] = strategy
	}
	s.mu.Unlock()

	return strategy, nil
}
