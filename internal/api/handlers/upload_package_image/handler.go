package upload_package_image

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
	msgInvalidUpload    = "expected multipart form with an image field"
	msgNotFound         = "package not found"
	msgMediaUnavailable = "image storage is unavailable"
)

// maxUploadBytes caps package images at 10 MiB.
const maxUploadBytes = 10 << 20

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

// Handle POST /api/v1/packages/{packageId}/image
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /packages/{id}/image - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Warn("POST /packages/{id}/image - Failed to parse form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUpload)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.logger.Warn("POST /packages/{id}/image - Missing image field: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUpload)
		return
	}
	defer file.Close()

	pkg, err := h.service.UploadImage(r.Context(), packageID, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrPackageNotFound):
			h.logger.Warn("POST /packages/{id}/image - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrMediaUnavailable):
			h.logger.Error("POST /packages/{id}/image - Media store unavailable: %v", err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, handlers.ErrorResponse{Error: msgMediaUnavailable})

		default:
			h.logger.Error("POST /packages/{id}/image - Failed: package_id=%d, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages/{id}/image - Image uploaded: package_id=%d", packageID)
	handlers.RespondJSON(w, http.StatusOK, pkg)
}
