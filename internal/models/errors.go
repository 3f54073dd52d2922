package models

import (
	"errors"
)

var (
	// ErrStorageUnavailable is returned when storage is used before the
	// underlying store has been initialized
	ErrStorageUnavailable = errors.New("storage not initialized")

	// ErrUnsupportedFormat is returned by the intake layer for media types
	// it cannot decode
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrNotFound is returned when a requested document does not exist
	ErrNotFound = errors.New("document not found")
)
