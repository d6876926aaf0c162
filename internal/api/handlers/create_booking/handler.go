package create_booking

import (
	"errors"
	"net/http"

	"github.com/broomaam/BAAM-BookingService/internal/api/handlers"
	submitBooking "github.com/broomaam/BAAM-BookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgDateUnavailable    = "the selected date is unavailable"
	msgPackageNotFound    = "package not found"
	msgTooManySubmissions = "too many submissions, please try again later"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientKeyFromRequest(r))
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, submitBooking.ErrDateUnavailable):
			h.logger.Warn("POST /bookings - Date unavailable: %s", req.EventDate)
			handlers.RespondConflict(w, msgDateUnavailable)

		case errors.Is(err, submitBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, submitBooking.ErrRateLimited):
			h.logger.Warn("POST /bookings - Rate limited")
			handlers.RespondTooManyRequests(w, msgTooManySubmissions)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking submitted: booking_id=%d, reference=%s", resp.ID, resp.Reference)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
