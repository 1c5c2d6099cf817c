package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	// operator routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, withGZip)

		r.Get("/api/admin/encryption/status", h.encryptionStatus)
		r.Get("/api/admin/encryption/pool", h.cipherPool)
		r.Post("/api/admin/encryption/rotate", h.rotate)

		r.Post("/api/configs", h.storeConfig)
		r.Get("/api/configs/{id}", h.revealConfig)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
