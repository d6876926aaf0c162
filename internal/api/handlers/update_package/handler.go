package update_package

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/broomaam/BAAM-BookingService/internal/api/handlers"
	"github.com/broomaam/BAAM-BookingService/internal/service/catalog"
	"github.com/broomaam/BAAM-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidPackageID   = "invalid package id"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "package not found"
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

// Handle PUT /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	var req models.PackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /packages/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pkg, err := h.service.Update(r.Context(), packageID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /packages/{id} - Validation failed: package_id=%d, error=%v", packageID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, catalog.ErrPackageNotFound):
			h.logger.Warn("PUT /packages/{id} - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /packages/{id} - Failed to update package: package_id=%d, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /packages/{id} - Package updated: package_id=%d", packageID)
	handlers.RespondJSON(w, http.StatusOK, pkg)
}
