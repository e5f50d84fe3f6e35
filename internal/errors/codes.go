package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"

	// CodeTransport marks network, DNS and timeout failures reported by the
	// HTTP transport before any response was received.
	CodeTransport Code = "TRANSPORT"
	// CodeRemote marks a response whose HTTP status is not a success.
	CodeRemote Code = "REMOTE"
	// CodeSchemaMismatch marks a response body that does not fit the
	// expected record or envelope shape.
	CodeSchemaMismatch Code = "SCHEMA_MISMATCH"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Kind returns the human readable name of the error class, used in CLI
// diagnostics.
func (c Code) Kind() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeNotFound:
		return "not found"
	case CodeTransport:
		return "transport error"
	case CodeRemote:
		return "remote error"
	case CodeSchemaMismatch:
		return "schema mismatch"
	default:
		return "internal error"
	}
}
