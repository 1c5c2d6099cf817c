// Package adapter contains the client side of the admin REST API used by
// cryptctl.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-crypt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AdminClient talks to a running go-crypt-keeper server.
type AdminClient interface {
	// SetToken sets the bearer token sent with every authenticated request.
	SetToken(token string)
	Token() string

	Version(ctx context.Context) (string, error)

	Status(ctx context.Context) (models.EncryptionStatus, error)
	Pool(ctx context.Context) ([]models.CipherPoolEntry, error)

	// Rotate asks the server to add a pool entry and migrate all records to
	// it. The server answers before the campaign is done.
	Rotate(ctx context.Context, req models.RotationRequest) (models.RotationAccepted, error)

	StoreConfig(ctx context.Context, req models.StoreConfigRequest) (models.ProtectedConfig, error)
	RevealConfig(ctx context.Context, id string) (models.RevealedConfig, error)
}
