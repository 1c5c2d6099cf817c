package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/mock"
	"github.com/MKhiriev/go-crypt-keeper/internal/secret"
	"github.com/MKhiriev/go-crypt-keeper/internal/service"
	"github.com/MKhiriev/go-crypt-keeper/internal/store"
	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

const (
	testToken    = "good-token"
	testOperator = "ops"
)

type handlerMocks struct {
	rotation *mock.MockRotationService
	pool     *mock.MockCipherPoolService
	configs  *mock.MockProtectedConfigService
	appInfo  *mock.MockAppInfoService
	auth     *mock.MockAuthService
}

// newMockedHandler returns a handler whose AuthService accepts testToken
// as a token of testOperator and rejects everything else.
func newMockedHandler(t *testing.T) (*Handler, *handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		rotation: mock.NewMockRotationService(ctrl),
		pool:     mock.NewMockCipherPoolService(ctrl),
		configs:  mock.NewMockProtectedConfigService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
	}

	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Operator: testOperator}, nil
		}).AnyTimes()

	h := NewHandler(&service.Services{
		RotationService:        m.rotation,
		CipherPoolService:      m.pool,
		ProtectedConfigService: m.configs,
		AppInfoService:         m.appInfo,
		AuthService:            m.auth,
	}, logger.Nop())

	return h, m
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
}

// ── Init: route registration ─────────────────────────────────────────────────

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newMockedHandler(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/encryption/status"},
		{http.MethodGet, "/api/admin/encryption/pool"},
		{http.MethodPost, "/api/admin/encryption/rotate"},
		{http.MethodPost, "/api/configs"},
		{http.MethodGet, "/api/configs/0195f6d2-6c1e-7b3a-9d1e-2f6a3c4b5d6e"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/version", nil),
		httptest.NewRequest(http.MethodDelete, "/api/admin/encryption/rotate", nil),
		httptest.NewRequest(http.MethodPut, "/api/configs/abc", nil),
	} {
		rec := serve(h, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", req.Method, req.URL.Path)
	}
}

// ── version ──────────────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h, m := newMockedHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.4.0", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "abc123", rec.Header().Get(buildCommitHeader))
}

func TestGetServerVersion_NoCommit(t *testing.T) {
	h, m := newMockedHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("dev")
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, "dev", rec.Body.String())
	assert.Empty(t, rec.Header().Get(buildCommitHeader))
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: %w", ErrInvalidJSON, errors.New("eof")), http.StatusBadRequest},
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{fmt.Errorf("%w: %w", service.ErrInvalidRotationRequest, crypto.ErrInvalidKey), http.StatusBadRequest},
		{fmt.Errorf("%w: %w", service.ErrSelfTestFailed, crypto.ErrAuthenticationFailed), http.StatusBadRequest},
		{secret.ErrSecretNotFound, http.StatusBadRequest},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{store.ErrConfigNotFound, http.StatusNotFound},
		{store.ErrConfigNameTaken, http.StatusConflict},
		{service.ErrRotationInProgress, http.StatusConflict},
		{service.ErrOutdatedCipherPool, http.StatusServiceUnavailable},
		{service.ErrNoCipherPool, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: dial tcp", secret.ErrVaultUnavailable), http.StatusServiceUnavailable},
		{crypto.ErrAuthenticationFailed, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, statusFromError(tc.err))
		})
	}
}

func TestErrorMessage_HidesInternalErrors(t *testing.T) {
	err := fmt.Errorf("%w: pq: relation missing", store.ErrExecutingQuery)

	assert.Equal(t, "Internal Server Error", errorMessage(err, http.StatusInternalServerError))
	assert.Equal(t, service.ErrNoCipherPool.Error(), errorMessage(service.ErrNoCipherPool, http.StatusServiceUnavailable))
	assert.Equal(t, store.ErrConfigNotFound.Error(), errorMessage(store.ErrConfigNotFound, http.StatusNotFound))
}
