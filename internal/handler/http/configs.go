package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

func (h *Handler) storeConfig(w http.ResponseWriter, r *http.Request) {
	var req models.StoreConfigRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "*Handler.storeConfig", err)
		return
	}

	stored, err := h.services.ProtectedConfigService.Store(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.storeConfig", err)
		return
	}

	utils.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) revealConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	revealed, err := h.services.ProtectedConfigService.Reveal(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.revealConfig", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, revealed, http.StatusOK)
}
