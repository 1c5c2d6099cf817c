// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

func (h *Handler) encryptionStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.RotationService.Status(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.encryptionStatus", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// cipherPool lists pool entries without their self-test samples.
func (h *Handler) cipherPool(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.CipherPoolService.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.cipherPool", err)
		return
	}

	for i := range entries {
		entries[i].TestText = ""
		entries[i].TestNonce = ""
		entries[i].TestCipherText = ""
	}
	if entries == nil {
		entries = []models.CipherPoolEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// rotate registers a new pool entry and starts migrating records to it.
// The operator is taken from the token, never from the body.
func (h *Handler) rotate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RotationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.rotate", err)
		return
	}

	operator, _ := utils.GetOperatorFromContext(r.Context())
	req.RequestedBy = operator

	accepted, err := h.services.RotationService.StartRotation(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.rotate", err)
		return
	}

	log.Info().Str("campaign_id", accepted.CampaignID).
		Int64("pool_id", accepted.PoolID).
		Str("operator", operator).
		Msg("rotation started")

	utils.WriteJSON(w, accepted, http.StatusAccepted)
}
