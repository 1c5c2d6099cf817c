package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/store"
	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

type protectedConfigService struct {
	configRepository  store.ProtectedConfigRepository
	encryptionService EncryptionService
	ids               *utils.UUIDGenerator

	logger *logger.Logger
}

func NewProtectedConfigService(configRepository store.ProtectedConfigRepository, encryptionService EncryptionService,
	log *logger.Logger,
) ProtectedConfigService {
	return &protectedConfigService{
		configRepository:  configRepository,
		encryptionService: encryptionService,
		ids:               utils.NewUUIDGenerator(),
		logger:            log,
	}
}

// Store encrypts req.Value with the latest pool entry and persists it under
// a new time-ordered id.
func (p *protectedConfigService) Store(ctx context.Context, req models.StoreConfigRequest) (models.ProtectedConfig, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		log.Error().Str("func", "protectedConfigService.Store").Msg("config name is empty")
		return models.ProtectedConfig{}, ErrInvalidDataProvided
	}

	result, err := p.encryptionService.EncryptWithLatest(ctx, req.Value)
	if err != nil {
		return models.ProtectedConfig{}, err
	}

	saved, err := p.configRepository.Save(ctx, models.ProtectedConfig{
		ID:         p.ids.Generate(),
		Name:       name,
		CipherText: result.CipherText.String(),
		Nonce:      result.Nonce.String(),
		PoolID:     result.PoolID,
	})
	if err != nil {
		log.Err(err).Str("func", "protectedConfigService.Store").Str("name", name).Msg("error saving protected config")
		return models.ProtectedConfig{}, err
	}

	return saved, nil
}

func (p *protectedConfigService) Reveal(ctx context.Context, id string) (models.RevealedConfig, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.RevealedConfig{}, ErrInvalidDataProvided
	}

	record, err := p.configRepository.Get(ctx, id)
	if err != nil {
		return models.RevealedConfig{}, err
	}

	cipherText, err := models.ParseBase64(record.CipherText)
	if err != nil {
		return models.RevealedConfig{}, err
	}
	nonce, err := models.ParseBase64(record.Nonce)
	if err != nil {
		return models.RevealedConfig{}, err
	}

	value, err := p.encryptionService.Decrypt(ctx, cipherText, nonce, record.PoolID)
	if err != nil {
		log.Err(err).Str("func", "protectedConfigService.Reveal").
			Str("record_id", record.ID).
			Int64("pool_id", record.PoolID).
			Msg("protected config could not be decrypted")
		return models.RevealedConfig{}, err
	}

	return models.RevealedConfig{
		ID:     record.ID,
		Name:   record.Name,
		Value:  value,
		PoolID: record.PoolID,
	}, nil
}
