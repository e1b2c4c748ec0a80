package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	ErrNotFound = errors.New("not_found")
	// ErrInvalidDate is wrapped by date validation failures.
	ErrInvalidDate = errors.New("invalid_date")
	// ErrDuplicateID is wrapped when a transaction id already exists.
	ErrDuplicateID = errors.New("duplicate_id")
)

// ValidationError reports a rejected input field. The message is user-facing
// and surfaced verbatim as HTTP 400 at the API boundary.
type ValidationError struct {
	Field   string
	Message string
	wrapped error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.wrapped }

// Invalid builds a ValidationError for a field.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidWrap builds a ValidationError that also matches a sentinel via
// errors.Is.
func InvalidWrap(field, message string, sentinel error) *ValidationError {
	return &ValidationError{Field: field, Message: message, wrapped: sentinel}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
