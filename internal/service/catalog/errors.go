package catalog

import "errors"

var (
	// ErrPackageNotFound is returned when no offering exists with the given id
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidInput is returned when offering fields fail validation
	ErrInvalidInput = errors.New("invalid package data")

	// ErrMediaUnavailable is returned when the image upload backend fails
	ErrMediaUnavailable = errors.New("media storage unavailable")

	// ErrInternal is returned when the backing store fails
	ErrInternal = errors.New("catalog service: internal error")
)
