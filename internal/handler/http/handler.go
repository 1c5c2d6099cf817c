package http

import (
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/service"
)

// Handler serves the admin API on top of the service layer. Init builds
// its router.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	log.Debug().Str("func", "http.NewHandler").Msg("admin api handler created")
	return &Handler{services: services, logger: log}
}
