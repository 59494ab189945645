package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	// ErrUserNotFound is returned when a userId resolves to no stored user.
	ErrUserNotFound = errors.New("user not found")
	// ErrMissingUserID is returned when a required userId parameter is
	// absent. Distinct from ErrUserNotFound: the caller sent no id at all.
	ErrMissingUserID = errors.New("userId is required")
	// ErrInvalidLimit is returned for a limit that is not a positive integer.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

// ValidationError reports the first request field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a field validation failure,
// including the parameter-shaped sentinels.
func IsValidationError(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrMissingUserID) || errors.Is(err, ErrInvalidLimit)
}
