package errors

import (
	"errors"
	"strings"
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

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
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

// MessageChain joins the messages of every wrap layer with ": ", ending
// with the text of the first cause that is not an *Error. Codes are left
// out.
func MessageChain(err error) string {
	var parts []string
	for err != nil {
		e, ok := err.(*Error) //nolint:errorlint // walks the chain one layer at a time
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		if e.Message != "" {
			parts = append(parts, e.Message)
		}
		err = e.Cause
	}
	return strings.Join(parts, ": ")
}

// Status returns the HTTP status carried by a remote error, or 0
func Status(err error) int {
	status, _ := GetMeta(err)[MetaStatus].(int)
	return status
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsTransport checks if an error is a transport error
func IsTransport(err error) bool {
	return GetCode(err) == CodeTransport
}

// IsRemote checks if an error is a remote status error
func IsRemote(err error) bool {
	return GetCode(err) == CodeRemote
}

// IsSchemaMismatch checks if an error is a schema mismatch error
func IsSchemaMismatch(err error) bool {
	return GetCode(err) == CodeSchemaMismatch
}
