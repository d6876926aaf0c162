package list_blocked_dates

import (
	"errors"
	"net/http"
	"time"

	"github.com/broomaam/BAAM-BookingService/internal/api/handlers"
	"github.com/broomaam/BAAM-BookingService/internal/domain"
	"github.com/broomaam/BAAM-BookingService/internal/service/availability"
)

const (
	msgInvalidDate  = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange = "from must not be after to"
)

// defaultWindowDays is used when the caller omits the "to" bound.
const defaultWindowDays = 90

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

// Handle GET /api/v1/availability?from=2025-10-01&to=2025-12-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := time.Now()
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = parsed
	}

	to := from.AddDate(0, 0, defaultWindowDays)
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		to = parsed
	}

	dateRange := domain.DateRange{From: domain.DayOnly(from), To: domain.DayOnly(to)}

	dates, err := h.service.ListBlocked(r.Context(), dateRange)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidRange):
			h.logger.Warn("GET /availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /availability - Failed to list blocked dates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := BlockedDatesResponse{
		From:         dateRange.From.Format(domain.DateFormat),
		To:           dateRange.To.Format(domain.DateFormat),
		BlockedDates: make([]string, 0, len(dates)),
	}
	for _, d := range dates {
		resp.BlockedDates = append(resp.BlockedDates, d.Format(domain.DateFormat))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
