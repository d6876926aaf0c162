package ratelimit

import "errors"

var (
	// ErrLimitExceeded is returned when the client spent its submission budget
	ErrLimitExceeded = errors.New("ratelimit: submission limit exceeded")

	// ErrStore is returned when Redis cannot be reached
	ErrStore = errors.New("ratelimit: store unavailable")
)
