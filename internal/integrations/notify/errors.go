package notify

import "errors"

var (
	// ErrConnect is returned when the broker connection cannot be established
	ErrConnect = errors.New("notify: failed to connect to broker")

	// ErrPublish is returned when publishing a notification fails
	ErrPublish = errors.New("notify: failed to publish notification")
)
