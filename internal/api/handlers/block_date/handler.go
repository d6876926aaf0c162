package block_date

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

// Handle PUT /api/v1/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("PUT /availability/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Block(r.Context(), date); err != nil {
		h.logger.Error("PUT /availability/{date} - Failed to block date: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /availability/{date} - Date %s blocked", date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
