package recommend_packages

import "errors"

var (
	// ErrInternal is returned when the catalog cannot be read
	ErrInternal = errors.New("recommend packages: internal error")
)
