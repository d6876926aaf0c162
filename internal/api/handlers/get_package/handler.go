package get_package

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

// Handle GET /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	pkg, err := h.service.GetByID(r.Context(), packageID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id} - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /packages/{id} - Failed to get package: package_id=%d, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pkg)
}
