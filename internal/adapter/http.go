// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

type httpAdminClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdminClient builds an [AdminClient] for cfg.ServerAddress. A
// scheme-less address is treated as http.
func NewHTTPAdminClient(cfg config.CLIConfig, logger *logger.Logger) (AdminClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	c := &httpAdminClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdminClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdminClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAdminClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpAdminClient) Status(ctx context.Context) (models.EncryptionStatus, error) {
	var status models.EncryptionStatus

	resp, err := h.authedRequest(ctx).
		SetResult(&status).
		Get("/api/admin/encryption/status")
	if err != nil {
		return models.EncryptionStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptionStatus{}, err
	}

	return status, nil
}

func (h *httpAdminClient) Pool(ctx context.Context) ([]models.CipherPoolEntry, error) {
	var entries []models.CipherPoolEntry

	resp, err := h.authedRequest(ctx).
		SetResult(&entries).
		Get("/api/admin/encryption/pool")
	if err != nil {
		return nil, fmt.Errorf("pool request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpAdminClient) Rotate(ctx context.Context, req models.RotationRequest) (models.RotationAccepted, error) {
	var accepted models.RotationAccepted

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&accepted).
		Post("/api/admin/encryption/rotate")
	if err != nil {
		return models.RotationAccepted{}, fmt.Errorf("rotate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RotationAccepted{}, err
	}

	logger.FromContext(ctx).Debug().Str("campaign_id", accepted.CampaignID).
		Int64("pool_id", accepted.PoolID).
		Msg("rotation accepted by server")

	return accepted, nil
}

func (h *httpAdminClient) StoreConfig(ctx context.Context, req models.StoreConfigRequest) (models.ProtectedConfig, error) {
	var stored models.ProtectedConfig

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&stored).
		Post("/api/configs")
	if err != nil {
		return models.ProtectedConfig{}, fmt.Errorf("store config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProtectedConfig{}, err
	}

	return stored, nil
}

func (h *httpAdminClient) RevealConfig(ctx context.Context, id string) (models.RevealedConfig, error) {
	var revealed models.RevealedConfig

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&revealed).
		Get("/api/configs/{id}")
	if err != nil {
		return models.RevealedConfig{}, fmt.Errorf("reveal config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RevealedConfig{}, err
	}

	return revealed, nil
}

func (h *httpAdminClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
