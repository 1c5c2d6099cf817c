package service

import (
	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/secret"
	"github.com/MKhiriev/go-crypt-keeper/internal/store"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

type Services struct {
	EncryptionService      EncryptionService
	CipherPoolService      CipherPoolService
	RotationService        RotationService
	ProtectedConfigService ProtectedConfigService
	AppInfoService         AppInfoService
	AuthService            AuthService
}

func NewServices(storages *store.Storages, resolver secret.Resolver, cfg *config.StructuredConfig,
	build models.AppBuildInfo, log *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, log)
	if err != nil {
		return nil, err
	}

	nonces := crypto.NewNonceGenerator()
	encryptionService := NewEncryptionService(storages.CipherPoolRepository, resolver, nonces, cfg.Encryption, log)
	poolService := NewCipherPoolService(storages.CipherPoolRepository, storages.ProtectedConfigRepository,
		encryptionService, resolver, nonces, log)

	rotationService := NewRotationValidationService().Wrap(
		NewRotationService(poolService, encryptionService, storages.ProtectedConfigRepository, cfg.Workers, log),
	)
	configService := NewProtectedConfigValidationService().Wrap(
		NewProtectedConfigService(storages.ProtectedConfigRepository, encryptionService, log),
	)

	return &Services{
		EncryptionService:      encryptionService,
		CipherPoolService:      poolService,
		RotationService:        rotationService,
		ProtectedConfigService: configService,
		AppInfoService:         appInfoService,
		AuthService:            NewAuthService(cfg.App, log),
	}, nil
}
