package check_date

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

// Handle GET /api/v1/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /availability/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	blocked, err := h.service.IsBlocked(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /availability/{date} - Failed to check date: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DateAvailabilityResponse{
		Date:      date.Format(domain.DateFormat),
		Available: !blocked,
	})
}
