package utils

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput is returned when an image is empty, malformed or has an unsupported
	// channel count.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig is returned for non-positive cell dimensions or bin counts.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrIndexOutOfRange is returned when a cell or bin is addressed outside its bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// NewInvalidInputError is used when an input image cannot be processed.
func NewInvalidInputError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

// NewInvalidConfigError is used when a configuration value is out of its domain.
func NewInvalidConfigError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}

// NewIndexOutOfRangeError is used when an index falls outside of [0, size).
func NewIndexOutOfRangeError(what string, index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s %d not in [0, %d)", what, index, size)
}
