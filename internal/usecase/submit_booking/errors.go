package submit_booking

import "errors"

var (
	// ErrInvalidInput is returned when required fields are missing or malformed
	ErrInvalidInput = errors.New("invalid booking data")

	// ErrDateUnavailable is returned when the requested date is blocked
	ErrDateUnavailable = errors.New("date is unavailable")

	// ErrPackageNotFound is returned when the requested package does not exist
	ErrPackageNotFound = errors.New("package not found")

	// ErrRateLimited is returned when the client exceeded the submission quota
	ErrRateLimited = errors.New("too many submissions")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("submit booking: internal error")
)
