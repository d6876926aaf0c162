package create_package

import (
	"errors"
	"net/http"

	"github.com/broomaam/BAAM-BookingService/internal/api/handlers"
	"github.com/broomaam/BAAM-BookingService/internal/service/catalog"
	"github.com/broomaam/BAAM-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pkg, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /packages - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /packages - Failed to create package: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages - Package created: package_id=%d", pkg.ID)
	handlers.RespondJSON(w, http.StatusCreated, pkg)
}
