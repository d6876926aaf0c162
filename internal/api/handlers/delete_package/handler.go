package delete_package

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/broomaam/BAAM-BookingService/internal/api/handlers"
	"github.com/broomaam/BAAM-BookingService/internal/service/catalog"
)

const (
	msgInvalidPackageID = "invalid package id"
	msgNotFound         = "package not found"
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

// Handle DELETE /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	if err := h.service.Delete(r.Context(), packageID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrPackageNotFound):
			h.logger.Warn("DELETE /packages/{id} - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /packages/{id} - Failed to delete package: package_id=%d, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /packages/{id} - Package deleted: package_id=%d", packageID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
