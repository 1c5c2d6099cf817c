package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/internal/secret"
	"github.com/MKhiriev/go-crypt-keeper/internal/service"
	"github.com/MKhiriev/go-crypt-keeper/internal/store"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched top to bottom. Request errors wrap lower level
// causes (e.g. a rotation request with a bad key wraps crypto.ErrInvalidKey),
// so they come first.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidRotationRequest, http.StatusBadRequest},
	{models.ErrDecodingBinaryString, http.StatusBadRequest},

	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrConfigNotFound, http.StatusNotFound},

	{store.ErrConfigNameTaken, http.StatusConflict},
	{service.ErrRotationInProgress, http.StatusConflict},

	{secret.ErrUnknownSource, http.StatusBadRequest},
	{secret.ErrSecretNotFound, http.StatusBadRequest},
	{secret.ErrInvalidSecret, http.StatusBadRequest},
	{service.ErrSelfTestFailed, http.StatusBadRequest},

	{service.ErrOutdatedCipherPool, http.StatusServiceUnavailable},
	{service.ErrNoCipherPool, http.StatusServiceUnavailable},
	{secret.ErrVaultNotConfigured, http.StatusServiceUnavailable},
	{secret.ErrVaultUnavailable, http.StatusServiceUnavailable},
	{store.ErrRetryable, http.StatusServiceUnavailable},

	{service.ErrUnknownPool, http.StatusInternalServerError},
	{crypto.ErrAuthenticationFailed, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage hides internals of 5xx errors from callers.
func errorMessage(err error, status int) string {
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		return http.StatusText(status)
	}
	return err.Error()
}
