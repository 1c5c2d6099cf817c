package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// Field names accepted by RequestValidator.
const (
	FieldAlgorithm    = "algorithm"
	FieldSecretSource = "secret_source"
	FieldSecretData   = "secret_data"
	FieldRequestedBy  = "requested_by"
	FieldConfigName   = "name"
)

// MaxConfigNameLength matches the column width of protected_configs.name.
const MaxConfigNameLength = 255

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate supports models.RotationRequest, models.SecretSource and
// models.StoreConfigRequest, by value or by pointer.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RotationRequest:
		return v.validateRotationRequest(ctx, value, fields...)
	case *models.RotationRequest:
		return v.validateRotationRequest(ctx, *value, fields...)

	case models.SecretSource:
		return v.validateSecretSource(value)
	case *models.SecretSource:
		return v.validateSecretSource(*value)

	case models.StoreConfigRequest:
		return v.validateStoreConfigRequest(value, fields...)
	case *models.StoreConfigRequest:
		return v.validateStoreConfigRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRotationRequest(ctx context.Context, req models.RotationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAlgorithm, FieldSecretSource, FieldSecretData, FieldRequestedBy}
	}

	for _, f := range fields {
		switch f {
		case FieldAlgorithm:
			cipherType, err := crypto.ParseCipherType(req.Algorithm)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidAlgorithm, err)
			}
			if cipherType.IsInsecure() != (req.SecretSource.Type == models.SecretSourceNone) {
				return fmt.Errorf("%w: %s with %s", ErrSecretSourceMismatch, cipherType, req.SecretSource.Type)
			}
		case FieldSecretSource:
			if !req.SecretSource.Type.IsValid() {
				return ErrInvalidSecretSource
			}
		case FieldSecretData:
			if err := v.validateSecretSource(req.SecretSource); err != nil {
				return err
			}
		case FieldRequestedBy:
			if strings.TrimSpace(req.RequestedBy) == "" {
				return ErrEmptyOperator
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSecretSource requires a variable name or Vault path for every
// source but NONE.
func (v *RequestValidator) validateSecretSource(source models.SecretSource) error {
	if !source.Type.IsValid() {
		return ErrInvalidSecretSource
	}
	if source.Type != models.SecretSourceNone && strings.TrimSpace(source.Data) == "" {
		return ErrEmptySecretData
	}
	return nil
}

func (v *RequestValidator) validateStoreConfigRequest(req models.StoreConfigRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConfigName}
	}

	for _, f := range fields {
		switch f {
		case FieldConfigName:
			name := strings.TrimSpace(req.Name)
			if name == "" {
				return ErrEmptyConfigName
			}
			if len(name) > MaxConfigNameLength {
				return ErrConfigNameTooLong
			}
			if strings.ContainsFunc(name, isControl) {
				return ErrInvalidConfigName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
