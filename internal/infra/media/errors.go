package media

import "errors"

var (
	// ErrUpload is returned when storing the object fails
	ErrUpload = errors.New("media.store: upload failed")

	// ErrEmptyFile is returned for an empty payload
	ErrEmptyFile = errors.New("media.store: empty file")
)
