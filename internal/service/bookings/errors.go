package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking id does not resolve
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus is returned for a status outside the known set
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned for an edge the lifecycle does not allow
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned when the backing store fails
	ErrInternal = errors.New("bookings service: internal error")
)
