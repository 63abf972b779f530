package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Sequence errors
const (
	// ErrCodeEmptySequence indicates a partial terminal operation received no elements.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeAlreadyBuilt indicates a Builder was used after Build.
	ErrCodeAlreadyBuilt ErrorCode = "ALREADY_BUILT"
	// ErrCodeOutOfRange indicates an index past the end of a sequence.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeTypeMismatch indicates a value of an unexpected type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeInvalidJSON indicates a document that could not be decoded.
	ErrCodeInvalidJSON ErrorCode = "INVALID_JSON"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// contractCodes marks codes raised by misuse of an API rather than by data.
var contractCodes = map[ErrorCode]bool{
	ErrCodeAlreadyBuilt: true,
	ErrCodeTypeMismatch: true,
}

// IsContractCode returns true if the code reports caller misuse.
func IsContractCode(code ErrorCode) bool {
	return contractCodes[code]
}
