package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an equivalent active resource already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPermissionDenied indicates the acting user is not allowed to perform the operation.
var ErrPermissionDenied = errors.New("permission denied")

// ErrUnavailable indicates a referenced seed is not available for exchange.
var ErrUnavailable = errors.New("resource unavailable")

// ErrInvalidTransition indicates a status change that is not on the allowed edge list.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrStoreUnavailable indicates a transient persistence failure. This is the
// only kind callers may reasonably retry.
var ErrStoreUnavailable = errors.New("store unavailable")
