package apierr

import "fmt"

// New creates an error of the generic kind (500, no code).
func New(message string) *Error { return newError(KindGeneric, message, nil) }

// Newf creates an error of the generic kind with a formatted message.
func Newf(format string, args ...any) *Error {
	return newError(KindGeneric, fmt.Sprintf(format, args...), nil)
}

// NewRequestError creates a 400 ERR_REQUEST_ERROR.
func NewRequestError(message string) *Error { return newError(KindRequest, message, nil) }

// NewRequestErrorf is NewRequestError with a formatted message.
func NewRequestErrorf(format string, args ...any) *Error {
	return newError(KindRequest, fmt.Sprintf(format, args...), nil)
}

// NewValidationError creates a 400 ERR_VALIDATION_ERROR carrying structured
// validation detail. The detail is shown to callers alongside the message.
//
// Example:
//
//	err := apierr.NewValidationError("invalid payload", map[string]string{"email": "required"})
func NewValidationError(message string, detail any) *Error {
	return newError(KindValidation, message, detail)
}

// NewAuthenticationError creates a 401 ERR_AUTHENTICATION_ERROR.
func NewAuthenticationError(message string) *Error {
	return newError(KindAuthentication, message, nil)
}

// NewAuthenticationErrorf is NewAuthenticationError with a formatted message.
func NewAuthenticationErrorf(format string, args ...any) *Error {
	return newError(KindAuthentication, fmt.Sprintf(format, args...), nil)
}

// NewAuthorizationError creates a 403 ERR_AUTHORIZATION_ERROR.
func NewAuthorizationError(message string) *Error {
	return newError(KindAuthorization, message, nil)
}

// NewAuthorizationErrorf is NewAuthorizationError with a formatted message.
func NewAuthorizationErrorf(format string, args ...any) *Error {
	return newError(KindAuthorization, fmt.Sprintf(format, args...), nil)
}

// NewNotFoundError creates a 404 ERR_NOT_FOUND.
func NewNotFoundError(message string) *Error { return newError(KindNotFound, message, nil) }

// NewNotFoundErrorf is NewNotFoundError with a formatted message.
func NewNotFoundErrorf(format string, args ...any) *Error {
	return newError(KindNotFound, fmt.Sprintf(format, args...), nil)
}

// NewGoneError creates a 410 ERR_GONE.
func NewGoneError(message string) *Error { return newError(KindGone, message, nil) }

// NewGoneErrorf is NewGoneError with a formatted message.
func NewGoneErrorf(format string, args ...any) *Error {
	return newError(KindGone, fmt.Sprintf(format, args...), nil)
}

// NewImplementationError creates a 500 ERR_IMPLEMENTATION_ERROR.
func NewImplementationError(message string) *Error {
	return newError(KindImplementation, message, nil)
}

// NewImplementationErrorf is NewImplementationError with a formatted message.
func NewImplementationErrorf(format string, args ...any) *Error {
	return newError(KindImplementation, fmt.Sprintf(format, args...), nil)
}

// NewDataError creates a 500 ERR_DATA_ERROR.
func NewDataError(message string) *Error { return newError(KindData, message, nil) }

// NewDataErrorf is NewDataError with a formatted message.
func NewDataErrorf(format string, args ...any) *Error {
	return newError(KindData, fmt.Sprintf(format, args...), nil)
}

// NewConnectionError creates a 503 ERR_CONNECTION_ERROR.
func NewConnectionError(message string) *Error { return newError(KindConnection, message, nil) }

// NewConnectionErrorf is NewConnectionError with a formatted message.
func NewConnectionErrorf(format string, args ...any) *Error {
	return newError(KindConnection, fmt.Sprintf(format, args...), nil)
}

// NewKind creates an error of an arbitrary kind. Validation detail cannot be
// supplied this way; use NewValidationError for that.
func NewKind(kind Kind, message string) *Error {
	if int(kind) >= len(kinds) {
		kind = KindGeneric
	}
	return newError(kind, message, nil)
}

func newError(kind Kind, message string, validation any) *Error {
	return &Error{
		kind:       kind,
		message:    message,
		validation: validation,
		stack:      captureStack(kind.Name(), message),
	}
}
