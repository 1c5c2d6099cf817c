package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-crypt-keeper/internal/validators"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// RotationServiceWrapper decorates a RotationService, e.g. with input
// validation.
type RotationServiceWrapper interface {
	Wrap(RotationService) RotationService
}

// ProtectedConfigServiceWrapper decorates a ProtectedConfigService.
type ProtectedConfigServiceWrapper interface {
	Wrap(ProtectedConfigService) ProtectedConfigService
}

// ── rotation ─────────────────────────────────────────────────────────────────

type RotationValidationService struct {
	inner     RotationService
	validator validators.Validator
}

func NewRotationValidationService() RotationServiceWrapper {
	return &RotationValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *RotationValidationService) StartRotation(ctx context.Context, req models.RotationRequest) (models.RotationAccepted, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.RotationAccepted{}, fmt.Errorf("%w: %w", ErrInvalidRotationRequest, err)
	}

	return v.inner.StartRotation(ctx, req)
}

func (v *RotationValidationService) RotateOutdated(ctx context.Context) (models.RotationReport, error) {
	return v.inner.RotateOutdated(ctx)
}

func (v *RotationValidationService) Status(ctx context.Context) (models.EncryptionStatus, error) {
	return v.inner.Status(ctx)
}

func (v *RotationValidationService) Wait() {
	v.inner.Wait()
}

func (v *RotationValidationService) Wrap(inner RotationService) RotationService {
	v.inner = inner
	return v
}

// ── protected configs ────────────────────────────────────────────────────────

type ProtectedConfigValidationService struct {
	inner     ProtectedConfigService
	validator validators.Validator
}

func NewProtectedConfigValidationService() ProtectedConfigServiceWrapper {
	return &ProtectedConfigValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ProtectedConfigValidationService) Store(ctx context.Context, req models.StoreConfigRequest) (models.ProtectedConfig, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ProtectedConfig{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Store(ctx, req)
}

// Reveal rejects ids that are not UUIDs before touching the database.
func (v *ProtectedConfigValidationService) Reveal(ctx context.Context, id string) (models.RevealedConfig, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.RevealedConfig{}, fmt.Errorf("%w: malformed id: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Reveal(ctx, id)
}

func (v *ProtectedConfigValidationService) Wrap(inner ProtectedConfigService) ProtectedConfigService {
	v.inner = inner
	return v
}
