package submit_booking

import (
	"fmt"
	"strings"

	"github.com/broomaam/BAAM-BookingService/internal/domain"
)

// validateRequest checks the submission fields before any I/O happens.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxEmailLength || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: event date is required", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: start time is malformed", ErrInvalidInput)
		}
	}

	if req.EventType != nil && len(*req.EventType) > domain.MaxEventTypeLength {
		return fmt.Errorf("%w: event type is too long", ErrInvalidInput)
	}
	if req.Venue != nil && len(*req.Venue) > domain.MaxVenueLength {
		return fmt.Errorf("%w: venue is too long", ErrInvalidInput)
	}

	if req.Guests < 0 || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guest count is out of range", ErrInvalidInput)
	}

	if req.PackageID <= 0 {
		return fmt.Errorf("%w: package id is required", ErrInvalidInput)
	}

	return nil
}
