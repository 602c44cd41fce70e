package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsParse checks if an error is a tokenization error
func IsParse(err error) bool {
	return GetCode(err) == CodeParse
}

// IsParam checks if an error is a parameter binding error
func IsParam(err error) bool {
	return GetCode(err) == CodeParam
}

// IsUnauthorized checks if an error is a capability gate error
func IsUnauthorized(err error) bool {
	return GetCode(err) == CodeUnauthorized
}

// IsCommand checks if an error is a domain rule violation
func IsCommand(err error) bool {
	return GetCode(err) == CodeCommand
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUserFacing reports whether the error's message may be echoed back to
// the invoking chat user.
func IsUserFacing(err error) bool {
	return GetCode(err).UserFacing()
}
