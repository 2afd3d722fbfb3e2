package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrUnknownProducer  = errors.New("unknown sentence producer type")
	ErrStoreUnavailable = errors.New("store unavailable")
)
