// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/secret"
	"github.com/MKhiriev/go-crypt-keeper/internal/store"
	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// bootstrapOperator is recorded as CreatedBy of the entry created on an
// empty pool.
const bootstrapOperator = "bootstrap"

type cipherPoolService struct {
	poolRepository    store.CipherPoolRepository
	configRepository  store.ProtectedConfigRepository
	encryptionService EncryptionService
	resolver          secret.Resolver
	nonces         crypto.NonceGenerator
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewCipherPoolService(poolRepository store.CipherPoolRepository, configRepository store.ProtectedConfigRepository,
	encryptionService EncryptionService, resolver secret.Resolver, nonces crypto.NonceGenerator, log *logger.Logger,
) CipherPoolService {
	return &cipherPoolService{
		poolRepository:    poolRepository,
		configRepository:  configRepository,
		encryptionService: encryptionService,
		resolver:          resolver,
		nonces:            nonces,
		ids:               utils.NewUUIDGenerator(),
		logger:            log,
	}
}

// CreatePoolEntry validates req, proves the resolved secret works by an
// encrypt/decrypt round trip and stores the entry together with the test
// sample so every other instance can repeat the check.
func (s *cipherPoolService) CreatePoolEntry(ctx context.Context, req models.RotationRequest) (models.CipherPoolEntry, error) {
	log := logger.FromContext(ctx)

	cipherType, err := crypto.ParseCipherType(req.Algorithm)
	if err != nil {
		return models.CipherPoolEntry{}, fmt.Errorf("%w: %w", ErrInvalidRotationRequest, err)
	}
	if !req.SecretSource.Type.IsValid() {
		return models.CipherPoolEntry{}, fmt.Errorf("%w: unknown secret source %q",
			ErrInvalidRotationRequest, req.SecretSource.Type)
	}
	if cipherType.IsInsecure() != (req.SecretSource.Type == models.SecretSourceNone) {
		return models.CipherPoolEntry{}, fmt.Errorf("%w: %s cannot use secret source %s",
			ErrInvalidRotationRequest, cipherType, req.SecretSource.Type)
	}

	secretValue, err := s.resolver.Resolve(ctx, req.SecretSource)
	if err != nil {
		log.Err(err).Str("func", "cipherPoolService.CreatePoolEntry").
			Str("secret_source", string(req.SecretSource.Type)).
			Msg("secret could not be resolved")
		return models.CipherPoolEntry{}, err
	}

	cipher, err := crypto.NewCipher(cipherType, secretValue)
	if err != nil {
		return models.CipherPoolEntry{}, fmt.Errorf("%w: %w", ErrInvalidRotationRequest, err)
	}

	entry := models.CipherPoolEntry{
		Algorithm:    cipherType.String(),
		SecretSource: req.SecretSource,
		TestText:     s.ids.Generate(),
		CreatedBy:    req.RequestedBy,
	}

	nonce, err := s.nonces.GenerateNonce()
	if err != nil {
		return models.CipherPoolEntry{}, err
	}
	cipherText, err := cipher.Encrypt(entry.TestText, nonce)
	if err != nil {
		return models.CipherPoolEntry{}, fmt.Errorf("%w: %w", ErrSelfTestFailed, err)
	}
	entry.TestNonce = nonce.String()
	entry.TestCipherText = cipherText.String()

	if err = selfTest(cipher, entry); err != nil {
		log.Err(err).Str("func", "cipherPoolService.CreatePoolEntry").Msg("new cipher failed its self-test")
		return models.CipherPoolEntry{}, err
	}
	if err = tinkCrossCheck(cipherType, secretValue, cipherText, nonce, entry.TestText); err != nil {
		log.Err(err).Str("func", "cipherPoolService.CreatePoolEntry").Msg("tink cross-check failed")
		return models.CipherPoolEntry{}, err
	}

	created, err := s.poolRepository.Create(ctx, entry)
	if err != nil {
		log.Err(err).Str("func", "cipherPoolService.CreatePoolEntry").Msg("error saving cipher pool entry")
		return models.CipherPoolEntry{}, err
	}

	entryLog := log.WithPool(created.ID)
	if cipherType.IsInsecure() {
		entryLog.Warn().Str("algorithm", created.Algorithm).
			Msg("new cipher pool entry stores data unprotected")
	} else {
		entryLog.Info().Str("algorithm", created.Algorithm).
			Str("created_by", created.CreatedBy).
			Msg("cipher pool entry created")
	}

	return created, nil
}

func (s *cipherPoolService) Bootstrap(ctx context.Context, cfg config.Encryption) (models.CipherPoolEntry, error) {
	latest, err := s.poolRepository.GetLatest(ctx)
	if err == nil {
		return latest, nil
	}
	if !errors.Is(err, store.ErrCipherPoolEmpty) {
		return models.CipherPoolEntry{}, err
	}

	logger.FromContext(ctx).Info().Str("func", "cipherPoolService.Bootstrap").
		Str("algorithm", cfg.Algorithm).
		Msg("cipher pool is empty, creating initial entry")

	return s.CreatePoolEntry(ctx, models.RotationRequest{
		Algorithm: cfg.Algorithm,
		SecretSource: models.SecretSource{
			Type: models.SecretSourceType(cfg.SecretSource),
			Data: cfg.SecretData,
		},
		RequestedBy: bootstrapOperator,
	})
}

func (s *cipherPoolService) GetAll(ctx context.Context) ([]models.CipherPoolEntry, error) {
	return s.poolRepository.GetAll(ctx)
}

// CleanupUnused only trusts usage counts taken while this instance encrypts
// with the database latest entry; otherwise a fresher instance may be
// writing with an entry this one would consider unused.
func (s *cipherPoolService) CleanupUnused(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	if s.encryptionService.IsOutdated() {
		log.Warn().Str("func", "cipherPoolService.CleanupUnused").
			Msg("cipher pool is outdated on this instance, skipping cleanup")
		return nil, nil
	}

	latest, err := s.poolRepository.GetLatest(ctx)
	if err != nil {
		log.Err(err).Str("func", "cipherPoolService.CleanupUnused").Msg("error loading latest cipher pool entry")
		return nil, err
	}
	if cached := s.encryptionService.LatestPoolID(); cached != latest.ID {
		log.Warn().Str("func", "cipherPoolService.CleanupUnused").
			Int64("latest_pool_id", cached).
			Int64("db_latest_pool_id", latest.ID).
			Msg("latest cipher pool entry differs from the database, skipping cleanup")
		return nil, nil
	}

	usage, err := s.configRepository.CountByPool(ctx)
	if err != nil {
		log.Err(err).Str("func", "cipherPoolService.CleanupUnused").Msg("error counting records per pool entry")
		return nil, err
	}

	var unused []int64
	for _, u := range usage {
		if u.PoolID != latest.ID && u.Records == 0 {
			unused = append(unused, u.PoolID)
		}
	}
	if len(unused) == 0 {
		return nil, nil
	}

	deleted, err := s.poolRepository.Delete(ctx, unused)
	if err != nil {
		log.Err(err).Str("func", "cipherPoolService.CleanupUnused").Msg("error deleting unused cipher pool entries")
		return nil, err
	}
	if deleted < int64(len(unused)) {
		// some entry got a record after counting; keep whatever is still in
		// the pool
		remaining, err := s.poolRepository.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		unused = withoutEntries(unused, remaining)
	}

	s.encryptionService.Forget(unused)

	log.Info().Str("func", "cipherPoolService.CleanupUnused").Ints64("pool_ids", unused).
		Msg("unused cipher pool entries removed")

	return unused, nil
}

func withoutEntries(ids []int64, entries []models.CipherPoolEntry) []int64 {
	present := make(map[int64]struct{}, len(entries))
	for _, e := range entries {
		present[e.ID] = struct{}{}
	}

	var out []int64
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// ── pool ciphers ─────────────────────────────────────────────────────────────

// poolCipher is a loaded pool entry: its cipher plus the raw secret needed
// to build rotation strategies out of it.
type poolCipher struct {
	entry      models.CipherPoolEntry
	cipherType crypto.CipherType
	secret     models.BinaryString
	cipher     crypto.PersistenceCipher
}

// loadPoolCipher resolves the secret of entry and checks it against the
// stored self-test sample.
func loadPoolCipher(ctx context.Context, resolver secret.Resolver, entry models.CipherPoolEntry) (*poolCipher, error) {
	cipherType, err := crypto.ParseCipherType(entry.Algorithm)
	if err != nil {
		return nil, err
	}

	secretValue, err := resolver.Resolve(ctx, entry.SecretSource)
	if err != nil {
		return nil, err
	}

	cipher, err := crypto.NewCipher(cipherType, secretValue)
	if err != nil {
		return nil, err
	}

	if err = selfTest(cipher, entry); err != nil {
		return nil, err
	}

	return &poolCipher{
		entry:      entry,
		cipherType: cipherType,
		secret:     secretValue,
		cipher:     cipher,
	}, nil
}

func selfTest(cipher crypto.PersistenceCipher, entry models.CipherPoolEntry) error {
	cipherText, err := models.ParseBase64(entry.TestCipherText)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTestFailed, err)
	}
	nonce, err := models.ParseBase64(entry.TestNonce)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTestFailed, err)
	}

	plainText, err := cipher.Decrypt(cipherText, nonce)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTestFailed, err)
	}
	if plainText != entry.TestText {
		return fmt.Errorf("%w: pool entry %d decrypted to a different test text", ErrSelfTestFailed, entry.ID)
	}
	return nil
}

// tinkCrossCheck decrypts the self-test sample with Tink's AES-GCM-SIV.
// NONE has no counterpart and passes.
func tinkCrossCheck(cipherType crypto.CipherType, secretValue, cipherText, nonce models.BinaryString, want string) error {
	if cipherType.IsInsecure() {
		return nil
	}

	aead, err := crypto.NewTinkAEAD(cipherType, secretValue)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTestFailed, err)
	}
	got, err := crypto.VerifyWithTink(aead, cipherText, nonce)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTestFailed, err)
	}
	if got != want {
		return fmt.Errorf("%w: tink decrypted to a different test text", ErrSelfTestFailed)
	}
	return nil
}
