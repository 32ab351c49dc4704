package errors

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the user-defined error message.
	// E.g. "instrument id cannot be blank".
	Message string

	// Code (required) is the machine-readable error code string.
	// E.g. "order_validation_error".
	Code string

	// Field (optional) is the related field the error occurred on, if any.
	Field string
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message, code, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// Error is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	return e.Message
}

// ErrorCodeEquals checks whether a given `error` carries a specific code.
// It unwraps ErrorTracer chains before comparing.
func ErrorCodeEquals(err error, code ErrorCode) bool {
	for err != nil {
		if details, ok := err.(*ErrorDetails); ok {
			return details.Code == string(code)
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}

// IsNotFound reports whether err is one of the not-found codes returned
// by query paths.
func IsNotFound(err error) bool {
	return ErrorCodeEquals(err, OrderNotFoundError) ||
		ErrorCodeEquals(err, InstrumentNotFoundError) ||
		ErrorCodeEquals(err, GeneralNotFoundError)
}

// IsValidation reports whether err is a rejected order construction.
func IsValidation(err error) bool {
	return ErrorCodeEquals(err, OrderValidationError)
}
