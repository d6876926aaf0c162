package unblock_date

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/broomaam/BAAM-BookingService/internal/api/handlers"
	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

const (
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /availability/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Unblock(r.Context(), date); err != nil {
		h.logger.Error("DELETE /availability/{date} - Failed to unblock date: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /availability/{date} - Date %s unblocked", date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
