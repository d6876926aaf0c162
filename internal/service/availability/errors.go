package availability

import "errors"

var (
	// ErrInvalidRange is returned when from is after to
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInternal is returned when the backing store fails
	ErrInternal = errors.New("availability service: internal error")
)
