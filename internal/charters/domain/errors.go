package domain

import "errors"

// Creation path.
var (
	ErrMalformedInput  = errors.New("request body is not valid json")
	ErrMissingField    = errors.New("missing required fields")
	ErrInvalidType     = errors.New("invalid data types")
	ErrInvalidDate     = errors.New("invalid cronogramaInicial date")
	ErrInternalFailure = errors.New("failed to create project charter")
)

// Read path.
var (
	ErrInvalidIdentifier = errors.New("invalid project charter id")
	ErrStoreUnavailable  = errors.New("project charter store unavailable")
	ErrNotFound          = errors.New("project charter not found")
)
